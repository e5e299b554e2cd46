// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package siteconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyDomain is returned when a domain is empty after trimming.
	ErrEmptyDomain = errors.New("siteconfig: domain is empty")
	// ErrDuplicateDomain is returned when a domain is already in the list.
	ErrDuplicateDomain = errors.New("siteconfig: domain already exists")
)

// domainSeparator joins domains in the wire representation.
const domainSeparator = ","

// DomainList is the ordered set of email domains new addresses may use.
// Values are never mutated in place; Add and Remove return new lists.
type DomainList []string

// ParseDomains decodes the comma-joined wire form. Segments are trimmed and
// empty segments dropped. Duplicates are kept as loaded.
func ParseDomains(s string) DomainList {
	if s == "" {
		return DomainList{}
	}
	parts := strings.Split(s, domainSeparator)
	out := make(DomainList, 0, len(parts))
	for _, p := range parts {
		if d := strings.TrimSpace(p); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// String returns the comma-joined wire form.
func (l DomainList) String() string {
	return strings.Join(l, domainSeparator)
}

// Len returns the number of domains.
func (l DomainList) Len() int {
	return len(l)
}

// Values returns a copy of the domains in order.
func (l DomainList) Values() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

// Contains reports whether domain is present. Matching is exact and case-sensitive.
func (l DomainList) Contains(domain string) bool {
	for _, d := range l {
		if d == domain {
			return true
		}
	}
	return false
}

// Add appends the trimmed domain and returns the new list.
func (l DomainList) Add(domain string) (DomainList, error) {
	d := strings.TrimSpace(domain)
	if d == "" {
		return l, ErrEmptyDomain
	}
	if l.Contains(d) {
		return l, fmt.Errorf("%w: %s", ErrDuplicateDomain, d)
	}
	out := make(DomainList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, d), nil
}

// Remove returns the list without entries equal to domain, order preserved.
// Removing an absent domain returns an equal list.
func (l DomainList) Remove(domain string) DomainList {
	out := make(DomainList, 0, len(l))
	for _, d := range l {
		if d != domain {
			out = append(out, d)
		}
	}
	return out
}

// Unique returns the list with repeated entries dropped, keeping the first
// occurrence of each.
func (l DomainList) Unique() DomainList {
	seen := make(map[string]struct{}, len(l))
	out := make(DomainList, 0, len(l))
	for _, d := range l {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
