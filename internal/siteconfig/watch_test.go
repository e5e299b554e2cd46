// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package siteconfig

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ManuGH/siteadmin/internal/roles"
)

func TestWatcherReportsAtomicReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, WriteFile(context.Background(), path, SiteConfig{DefaultRole: roles.Knight}))

	changes := make(chan SiteConfig, 4)
	w := &Watcher{
		Path:     path,
		Debounce: 20 * time.Millisecond,
		OnChange: func(_ context.Context, c SiteConfig) error {
			changes <- c
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before the write.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, WriteFile(context.Background(), path, SiteConfig{
		DefaultRole:  roles.Duke,
		EmailDomains: DomainList{"a.com"},
	}))

	select {
	case c := <-changes:
		require.Equal(t, roles.Duke, c.DefaultRole)
		require.Equal(t, DomainList{"a.com"}, c.EmailDomains)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the change")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
