// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package siteconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	xglog "github.com/ManuGH/siteadmin/internal/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls OnChange with the decoded snapshot each time the file at
// Path settles after a change.
type Watcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(context.Context, SiteConfig) error
}

// Run blocks until ctx is done. The parent directory is watched rather than
// the file so atomic replaces (rename over the old inode) are still seen.
// Decode and callback errors are logged; they do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	logger := xglog.WithComponentFromContext(ctx, "siteconfig.watch")

	target, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("resolve snapshot path: %w", err)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch snapshot directory: %w", err)
	}

	logger.Info().
		Str(xglog.FieldEvent, "snapshot.watch_started").
		Str(xglog.FieldPath, target).
		Msg("watching snapshot file for changes")

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str(xglog.FieldEvent, "snapshot.watch_stopped").Msg("snapshot watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug().
				Str(xglog.FieldEvent, "snapshot.file_changed").
				Str("op", event.Op.String()).
				Msg("snapshot file changed")
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := ReadFile(target)
			if err != nil {
				logger.Warn().Err(err).Str(xglog.FieldEvent, "snapshot.decode_failed").Msg("ignoring unreadable snapshot")
				continue
			}
			if err := w.OnChange(ctx, cfg); err != nil {
				logger.Error().Err(err).Str(xglog.FieldEvent, "snapshot.apply_failed").Msg("snapshot change handler failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Str(xglog.FieldEvent, "snapshot.watch_error").Msg("snapshot watcher error")
		}
	}
}
