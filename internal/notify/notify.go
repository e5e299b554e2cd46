// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package notify carries transient success and failure messages from the
// settings panel to whatever surfaces them (terminal, log, tests).
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	xglog "github.com/ManuGH/siteadmin/internal/log"
	"github.com/rs/zerolog"
)

// Level distinguishes confirmations from failures.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is one transient message.
type Notice struct {
	Title       string
	Description string
	Level       Level
}

// Notifier surfaces notices. Implementations must not block for long; the
// panel calls them inline.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, n Notice)

func (f Func) Notify(ctx context.Context, n Notice) { f(ctx, n) }

// Discard drops every notice.
var Discard Notifier = Func(func(context.Context, Notice) {})

// Multi fans a notice out to every notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	return Func(func(ctx context.Context, n Notice) {
		for _, nt := range notifiers {
			if nt != nil {
				nt.Notify(ctx, n)
			}
		}
	})
}

// Log writes notices to a zerolog logger; errors at warn level.
type Log struct {
	Logger zerolog.Logger
}

// NewLog returns a Log notifier on the "notify" component logger.
func NewLog() *Log {
	return &Log{Logger: xglog.WithComponent("notify")}
}

func (l *Log) Notify(ctx context.Context, n Notice) {
	logger := xglog.WithContext(ctx, l.Logger)
	ev := logger.Info()
	if n.Level == LevelError {
		ev = logger.Warn()
	}
	ev.Str(xglog.FieldEvent, "notice").
		Str(xglog.FieldNoticeTitle, n.Title).
		Str(xglog.FieldNoticeVariant, n.Level.String()).
		Msg(n.Description)
}

// Writer prints notices as single lines, for terminals.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns a Writer notifier on out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Notify(_ context.Context, n Notice) {
	mark := "✓"
	if n.Level == LevelError {
		mark = "✗"
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.out, "%s %s: %s\n", mark, n.Title, n.Description)
}

// Recorder keeps every notice it receives. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(_ context.Context, n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of the recorded notices in arrival order.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last returns the most recent notice and whether there was one.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Reset forgets recorded notices.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}
