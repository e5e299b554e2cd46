// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package siteconfig

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/siteadmin/internal/roles"
)

func TestWriteFileThenReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	want := SiteConfig{
		DefaultRole:  roles.Civilian,
		EmailDomains: DomainList{"a.com", "b.com"},
		AdminContact: "ops@example.com",
		MaxEmails:    "15",
	}

	require.NoError(t, WriteFile(context.Background(), path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSnapshotRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader("defaultRole: knight\nbogus: 1\n"))
	require.Error(t, err)
}

func TestDecodeSnapshotRejectsDuplicateDomains(t *testing.T) {
	doc := "defaultRole: knight\nemailDomains:\n  - a.com\n  - ' a.com'\n"
	_, err := DecodeSnapshot(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrDuplicateDomain)
}

func TestDecodeSnapshotRejectsEmptyDocument(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeSnapshotRole(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    roles.Role
		wantErr error
	}{
		{name: "assignable", doc: "defaultRole: Knight\n", want: roles.Knight},
		{name: "empty", doc: "defaultRole: ''\n", want: ""},
		{name: "owner", doc: "defaultRole: emperor\n", wantErr: roles.ErrNotAssignable},
		{name: "unknown", doc: "defaultRole: wizard\n", wantErr: roles.ErrUnknownRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := DecodeSnapshot(strings.NewReader(tt.doc))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.DefaultRole)
		})
	}
}

func TestSnapshotCollapsesLoadedDuplicates(t *testing.T) {
	loaded := FromWire(Wire{DefaultRole: "knight", EmailDomains: "a.com,b.com,a.com"}, "20")
	require.Equal(t, 3, loaded.EmailDomains.Len())

	var buf bytes.Buffer
	require.NoError(t, EncodeSnapshot(&buf, loaded))

	back, err := DecodeSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com", "b.com"}, back.EmailDomains.Values())
}
