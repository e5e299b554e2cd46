// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package validate

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name           string
		value          string
		allowedSchemes []string
		wantErr        bool
	}{
		{"valid http", "http://example.com", []string{"http", "https"}, false},
		{"valid https", "https://example.com", []string{"http", "https"}, false},
		{"empty url", "", []string{"http"}, true},
		{"no host", "http://", []string{"http"}, true},
		{"invalid scheme", "ftp://example.com", []string{"http", "https"}, true},
		{"no scheme", "example.com", []string{"http"}, true},
		{"with port", "http://example.com:8080", []string{"http"}, false},
		{"with path", "http://example.com/path", []string{"http"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.URL("testURL", tt.value, tt.allowedSchemes)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_PositiveIntString(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"1", false},
		{"20", false},
		{" 7 ", false},
		{"0", true},
		{"-4", true},
		{"", true},
		{"ten", true},
		{"1.5", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v := New()
			v.PositiveIntString("maxEmails", tt.value)
			if got := !v.IsValid(); got != tt.wantErr {
				t.Errorf("PositiveIntString(%q) error = %v, want %v", tt.value, got, tt.wantErr)
			}
		})
	}
}

func TestValidator_Ranges(t *testing.T) {
	v := New()
	v.PositiveDuration("timeout", 0)
	v.FloatRange("samplingRate", 1.5, 0, 1)
	v.OneOf("exporter", "zipkin", []string{"grpc", "http"})
	v.NotEmpty("baseUrl", "  ")

	if got := len(v.Errors()); got != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", got, v.Err())
	}

	v = New()
	v.PositiveDuration("timeout", time.Second)
	v.FloatRange("samplingRate", 0.5, 0, 1)
	v.OneOf("exporter", "grpc", []string{"grpc", "http"})
	if err := v.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidationErrorJoinsMessages(t *testing.T) {
	v := New()
	v.Positive("a", 0)
	v.Positive("b", -1)

	err := v.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(ve.Errors()))
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected joined message, got %q", err.Error())
	}
}

func TestValidator_Custom(t *testing.T) {
	v := New()
	v.Custom("role", "emperor", func(any) error { return errors.New("not assignable") })
	if v.IsValid() {
		t.Fatal("expected custom validation error")
	}
	if v.Errors()[0].Field != "role" {
		t.Errorf("field = %q", v.Errors()[0].Field)
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, l := range LogLevels() {
		if _, err := ParseLogLevel(l); err != nil {
			t.Errorf("ParseLogLevel(%q): %v", l, err)
		}
	}
	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
