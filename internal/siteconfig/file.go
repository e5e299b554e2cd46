// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package siteconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	xglog "github.com/ManuGH/siteadmin/internal/log"
	"github.com/ManuGH/siteadmin/internal/roles"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Snapshot is the YAML document written by export and read by apply.
type Snapshot struct {
	DefaultRole  string   `yaml:"defaultRole"`
	EmailDomains []string `yaml:"emailDomains"`
	AdminContact string   `yaml:"adminContact"`
	MaxEmails    string   `yaml:"maxEmails,omitempty"`
}

// SnapshotOf converts c into its file representation. Duplicates loaded from
// the store are collapsed so the file reads back through SiteConfig.
func SnapshotOf(c SiteConfig) Snapshot {
	return Snapshot{
		DefaultRole:  string(c.DefaultRole),
		EmailDomains: c.EmailDomains.Unique().Values(),
		AdminContact: c.AdminContact,
		MaxEmails:    c.MaxEmails,
	}
}

// SiteConfig converts the snapshot back. Domains pass through Add so a
// hand-edited file cannot introduce empty or duplicate entries, and a
// non-empty role must be assignable.
func (s Snapshot) SiteConfig() (SiteConfig, error) {
	var role roles.Role
	if s.DefaultRole != "" {
		r, err := roles.ParseAssignable(s.DefaultRole)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("defaultRole: %w", err)
		}
		role = r
	}

	domains := DomainList{}
	for i, d := range s.EmailDomains {
		next, err := domains.Add(d)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("emailDomains[%d]: %w", i, err)
		}
		domains = next
	}
	return SiteConfig{
		DefaultRole:  role,
		EmailDomains: domains,
		AdminContact: s.AdminContact,
		MaxEmails:    s.MaxEmails,
	}, nil
}

// EncodeSnapshot writes c as YAML to w.
func EncodeSnapshot(w io.Writer, c SiteConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(SnapshotOf(c)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}

// DecodeSnapshot parses a YAML snapshot, rejecting unknown keys.
func DecodeSnapshot(r io.Reader) (SiteConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return SiteConfig{}, fmt.Errorf("decode snapshot: empty document")
		}
		return SiteConfig{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s.SiteConfig()
}

// WriteFile stores c at path atomically: the previous file stays intact
// until the new content is fsynced and renamed into place.
func WriteFile(ctx context.Context, path string, c SiteConfig) error {
	logger := xglog.WithComponentFromContext(ctx, "siteconfig")

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, c); err != nil {
		return err
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o600))
	if err != nil {
		return fmt.Errorf("create pending snapshot file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending snapshot file")
		}
	}()

	if _, err := pendingFile.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write snapshot data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace snapshot file: %w", err)
	}

	logger.Info().
		Str(xglog.FieldEvent, "snapshot.written").
		Str(xglog.FieldPath, path).
		Int(xglog.FieldDomainCount, c.EmailDomains.Len()).
		Msg("site config snapshot written")
	return nil
}

// ReadFile loads a snapshot written by WriteFile or by hand.
func ReadFile(path string) (SiteConfig, error) {
	// #nosec G304 -- path is operator supplied
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return SiteConfig{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	c, err := DecodeSnapshot(f)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
