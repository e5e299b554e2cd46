// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package siteconfig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomains(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want DomainList
	}{
		{name: "empty", in: "", want: DomainList{}},
		{name: "single", in: "a.com", want: DomainList{"a.com"}},
		{name: "trims and drops empties", in: " a.com ,, b.com , ,", want: DomainList{"a.com", "b.com"}},
		{name: "keeps loaded duplicates", in: "a.com,a.com", want: DomainList{"a.com", "a.com"}},
		{name: "only separators", in: ",,,", want: DomainList{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseDomains(tt.in)); diff != "" {
				t.Errorf("ParseDomains(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestAddRoundTrips(t *testing.T) {
	inputs := []string{"a.com", " b.com", "c.org ", "mail.example.net", "A.com"}

	list := DomainList{}
	for _, in := range inputs {
		next, err := list.Add(in)
		require.NoError(t, err)
		list = next
	}

	want := DomainList{"a.com", "b.com", "c.org", "mail.example.net", "A.com"}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, ParseDomains(list.String())); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAddRejectsEmpty(t *testing.T) {
	list := DomainList{"a.com"}
	for _, in := range []string{"", "   ", "\t\n"} {
		got, err := list.Add(in)
		require.ErrorIs(t, err, ErrEmptyDomain)
		assert.Equal(t, DomainList{"a.com"}, got)
	}
}

func TestAddRejectsDuplicateAfterTrim(t *testing.T) {
	list := DomainList{"a.com", "b.com"}
	got, err := list.Add("  a.com ")
	require.ErrorIs(t, err, ErrDuplicateDomain)
	assert.Equal(t, DomainList{"a.com", "b.com"}, got)
}

func TestAddDoesNotAliasReceiver(t *testing.T) {
	base := make(DomainList, 1, 4)
	base[0] = "a.com"

	first, err := base.Add("b.com")
	require.NoError(t, err)
	second, err := base.Add("c.com")
	require.NoError(t, err)

	assert.Equal(t, DomainList{"a.com", "b.com"}, first)
	assert.Equal(t, DomainList{"a.com", "c.com"}, second)
}

func TestRemove(t *testing.T) {
	list := DomainList{"a.com", "b.com", "c.com"}

	assert.Equal(t, DomainList{"a.com", "c.com"}, list.Remove("b.com"))
	assert.Equal(t, list, list.Remove("z.com"))
	assert.Equal(t, list, list.Remove("B.com"), "match is case-sensitive")
	assert.Equal(t, DomainList{"a.com", "b.com", "c.com"}, list, "receiver unchanged")
}

func TestScenarioChain(t *testing.T) {
	list := ParseDomains("a.com,b.com")
	assert.Equal(t, []string{"a.com", "b.com"}, list.Values())

	list, err := list.Add("c.com")
	require.NoError(t, err)
	assert.Equal(t, "a.com,b.com,c.com", list.String())

	unchanged, err := list.Add("a.com")
	require.ErrorIs(t, err, ErrDuplicateDomain)
	assert.Equal(t, "a.com,b.com,c.com", unchanged.String())

	list = list.Remove("b.com")
	assert.Equal(t, "a.com,c.com", list.String())
}

func TestUnique(t *testing.T) {
	in := DomainList{"a.com", "b.com", "a.com", "c.com", "b.com"}
	got := in.Unique()
	if diff := cmp.Diff(DomainList{"a.com", "b.com", "c.com"}, got); diff != "" {
		t.Errorf("Unique mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, in, 5, "receiver unchanged")
}
