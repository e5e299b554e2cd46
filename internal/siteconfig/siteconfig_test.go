// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package siteconfig

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/siteadmin/internal/roles"
)

func TestMaxEmailsFallback(t *testing.T) {
	assert.Equal(t, "20", MaxEmailsFallback(0))
	assert.Equal(t, "20", MaxEmailsFallback(-3))
	assert.Equal(t, "7", MaxEmailsFallback(7))
}

func TestFromWireAppliesFallback(t *testing.T) {
	got := FromWire(Wire{DefaultRole: "knight", EmailDomains: "a.com, b.com", AdminContact: "x"}, "20")

	want := SiteConfig{
		DefaultRole:  roles.Knight,
		EmailDomains: DomainList{"a.com", "b.com"},
		AdminContact: "x",
		MaxEmails:    "20",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FromWire mismatch (-want +got):\n%s", diff)
	}
}

func TestToWireAppliesFallback(t *testing.T) {
	c := SiteConfig{DefaultRole: roles.Duke, EmailDomains: DomainList{"a.com", "c.com"}}
	w := c.ToWire("20")

	assert.Equal(t, Wire{DefaultRole: "duke", EmailDomains: "a.com,c.com", MaxEmails: "20"}, w)

	c.MaxEmails = "10"
	assert.Equal(t, "10", c.ToWire("20").MaxEmails)
}

func TestWireJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(Wire{DefaultRole: "knight", EmailDomains: "a.com", AdminContact: "x", MaxEmails: "10"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"defaultRole":"knight","emailDomains":"a.com","adminContact":"x","maxEmails":"10"}`, string(raw))
}

func TestCloneDetachesDomains(t *testing.T) {
	c := SiteConfig{EmailDomains: DomainList{"a.com"}}
	cl := c.Clone()
	cl.EmailDomains[0] = "b.com"
	assert.Equal(t, "a.com", c.EmailDomains[0])
}
