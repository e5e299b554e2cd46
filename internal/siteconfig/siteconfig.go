// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package siteconfig models the site-wide settings edited by administrators
// and their wire and file representations.
package siteconfig

import (
	"strconv"

	"github.com/ManuGH/siteadmin/internal/roles"
)

// DefaultMaxActiveEmails is the built-in cap on active mailboxes per user.
const DefaultMaxActiveEmails = 20

// SiteConfig is the settings entity. EmailDomains is the source of truth for
// the allowed domains; the comma-joined string only exists in Wire.
type SiteConfig struct {
	DefaultRole  roles.Role
	EmailDomains DomainList
	AdminContact string
	MaxEmails    string
}

// Wire is the JSON body exchanged with the config store.
type Wire struct {
	DefaultRole  string `json:"defaultRole"`
	EmailDomains string `json:"emailDomains"`
	AdminContact string `json:"adminContact"`
	MaxEmails    string `json:"maxEmails"`
}

// MaxEmailsFallback renders the default cap in its wire form.
func MaxEmailsFallback(maxActive int) string {
	if maxActive <= 0 {
		maxActive = DefaultMaxActiveEmails
	}
	return strconv.Itoa(maxActive)
}

// MaxEmailsOrDefault substitutes fallback when v is empty.
func MaxEmailsOrDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// FromWire decodes a store response. The role is taken as sent; the store is
// authoritative for what it persisted.
func FromWire(w Wire, fallback string) SiteConfig {
	return SiteConfig{
		DefaultRole:  roles.Role(w.DefaultRole),
		EmailDomains: ParseDomains(w.EmailDomains),
		AdminContact: w.AdminContact,
		MaxEmails:    MaxEmailsOrDefault(w.MaxEmails, fallback),
	}
}

// ToWire encodes c for submission, applying the max-emails fallback.
func (c SiteConfig) ToWire(fallback string) Wire {
	return Wire{
		DefaultRole:  string(c.DefaultRole),
		EmailDomains: c.EmailDomains.String(),
		AdminContact: c.AdminContact,
		MaxEmails:    MaxEmailsOrDefault(c.MaxEmails, fallback),
	}
}

// Clone returns a copy that shares no slice storage with c.
func (c SiteConfig) Clone() SiteConfig {
	c.EmailDomains = DomainList(c.EmailDomains.Values())
	return c
}
