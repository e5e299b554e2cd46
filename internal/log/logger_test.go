// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestReconfigureWritesServiceAndComponent(t *testing.T) {
	var buf bytes.Buffer
	Reconfigure(Config{Level: "debug", Output: &buf, Service: "siteadmin-test", Version: "v0.0.1"})
	t.Cleanup(func() { Reconfigure(Config{}) })

	l := WithComponent("panel")
	l.Debug().Str(FieldEvent, "test.event").Msg("hello")

	var fields map[string]any
	if err := json.Unmarshal(buf.Bytes(), &fields); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fields["service"] != "siteadmin-test" {
		t.Errorf("service = %v", fields["service"])
	}
	if fields["version"] != "v0.0.1" {
		t.Errorf("version = %v", fields["version"])
	}
	if fields[FieldComponent] != "panel" {
		t.Errorf("component = %v", fields[FieldComponent])
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("global level = %v, want debug", zerolog.GlobalLevel())
	}
}
