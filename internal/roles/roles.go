// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package roles defines the closed set of site roles a new user can be given.
package roles

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is a site role as transmitted by the config store.
type Role string

const (
	// Emperor is the site owner. It is never an assignable default.
	Emperor  Role = "emperor"
	Duke     Role = "duke"
	Knight   Role = "knight"
	Civilian Role = "civilian"
)

// ErrUnknownRole is returned by Parse for values outside the closed set.
var ErrUnknownRole = errors.New("roles: unknown role")

// ErrNotAssignable is returned by ParseAssignable for the owner role.
var ErrNotAssignable = errors.New("roles: role cannot be a default for new users")

var all = []Role{Emperor, Duke, Knight, Civilian}

// Assignable returns the roles that may be a new user's default, in display order.
func Assignable() []Role {
	return []Role{Duke, Knight, Civilian}
}

// Parse resolves s case-insensitively against the closed role set.
func Parse(s string) (Role, error) {
	v := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range all {
		if r == v {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// ParseAssignable is Parse restricted to Assignable roles.
func ParseAssignable(s string) (Role, error) {
	r, err := Parse(s)
	if err != nil {
		return "", err
	}
	if !IsAssignable(r) {
		return "", fmt.Errorf("%w: %q", ErrNotAssignable, s)
	}
	return r, nil
}

// IsAssignable reports whether r may be used as the default role.
func IsAssignable(r Role) bool {
	for _, a := range Assignable() {
		if a == r {
			return true
		}
	}
	return false
}

// Label returns the display name of r.
func Label(r Role) string {
	// Casers carry state and are not shared between goroutines.
	return cases.Title(language.English).String(string(r))
}

func (r Role) String() string {
	return string(r)
}
