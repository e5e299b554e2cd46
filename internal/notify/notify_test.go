// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterFormatsLevels(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Notify(context.Background(), DomainAdded())
	w.Notify(context.Background(), DomainDuplicate())

	assert.Equal(t, "✓ Success: Domain added\n✗ Error: Domain already exists\n", buf.String())
}

func TestLogNotifierUsesWarnForErrors(t *testing.T) {
	var buf bytes.Buffer
	l := &Log{Logger: zerolog.New(&buf)}

	l.Notify(context.Background(), SaveFailed(errors.New("boom")))

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Equal(t, "warn", fields["level"])
	assert.Equal(t, TitleSaveFailed, fields["notice_title"])
	assert.Equal(t, "error", fields["notice_variant"])
	assert.Equal(t, "boom", fields["message"])
}

func TestSaveFailedDescription(t *testing.T) {
	assert.Equal(t, DescRetryLater, SaveFailed(nil).Description)
	assert.Equal(t, DescRetryLater, SaveFailed(errors.New("")).Description)
	assert.Equal(t, "store down", SaveFailed(errors.New("store down")).Description)
	assert.Equal(t, LevelError, SaveFailed(nil).Level)
}

func TestMultiFansOutAndSkipsNil(t *testing.T) {
	var a, b Recorder
	m := Multi(&a, nil, &b)

	m.Notify(context.Background(), SaveSucceeded())

	assert.Equal(t, []Notice{SaveSucceeded()}, a.Notices())
	assert.Equal(t, []Notice{SaveSucceeded()}, b.Notices())
}

func TestRecorderConcurrent(t *testing.T) {
	var r Recorder
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Notify(context.Background(), DomainRemoved())
		}()
	}
	wg.Wait()

	assert.Len(t, r.Notices(), 50)
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, DomainRemoved(), last)

	r.Reset()
	_, ok = r.Last()
	assert.False(t, ok)
}
