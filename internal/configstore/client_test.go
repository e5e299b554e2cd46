// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package configstore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xglog "github.com/ManuGH/siteadmin/internal/log"
	"github.com/ManuGH/siteadmin/internal/siteconfig"
)

func newTestClient(base string, opts ...Option) *Client {
	opts = append([]Option{WithHTTPClient(&http.Client{Timeout: 500 * time.Millisecond})}, opts...)
	return New(base, opts...)
}

func TestGetReturnsStoredConfig(t *testing.T) {
	m := NewMockServer()
	defer m.Close()
	m.SetConfig(siteconfig.Wire{DefaultRole: "knight", EmailDomains: "a.com,b.com", AdminContact: "x", MaxEmails: "10"})

	got, err := newTestClient(m.URL).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, siteconfig.Wire{DefaultRole: "knight", EmailDomains: "a.com,b.com", AdminContact: "x", MaxEmails: "10"}, got)
}

func TestGetNothingStoredIsNotFound(t *testing.T) {
	m := NewMockServer()
	defer m.Close()

	_, err := newTestClient(m.URL).Get(context.Background())
	require.ErrorIs(t, err, ErrNotFound)

	var se *StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Status)
	assert.Equal(t, "get", se.Operation)
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrForbidden},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusInternalServerError, ErrUpstreamError},
		{http.StatusBadGateway, ErrUpstreamError},
		{http.StatusConflict, ErrBadStatus},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			m := NewMockServer()
			defer m.Close()
			m.FailWith(http.MethodPost, tt.status)

			err := newTestClient(m.URL).Save(context.Background(), siteconfig.Wire{MaxEmails: "20"})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetInvalidJSON(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not-json"))
	}))
	defer s.Close()

	_, err := newTestClient(s.URL).Get(context.Background())
	require.ErrorIs(t, err, ErrUpstreamBadResponse)
}

func TestGetTimeout(t *testing.T) {
	release := make(chan struct{})
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer s.Close()
	defer close(release)

	c := New(s.URL, WithHTTPClient(&http.Client{}), WithTimeout(50*time.Millisecond))
	_, err := c.Get(context.Background())
	require.ErrorIs(t, err, ErrTimeout)
}

func TestUnreachableStore(t *testing.T) {
	s := httptest.NewServer(http.NotFoundHandler())
	url := s.URL
	s.Close()

	_, err := newTestClient(url).Get(context.Background())
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestSaveSendsContractBody(t *testing.T) {
	m := NewMockServer()
	defer m.Close()

	body := siteconfig.Wire{DefaultRole: "duke", EmailDomains: "a.com,c.com", AdminContact: "ops", MaxEmails: "20"}
	require.NoError(t, newTestClient(m.URL, WithToken("s3cret")).Save(context.Background(), body))

	stored, ok := m.Config()
	require.True(t, ok)
	assert.Equal(t, body, stored)

	reqs := m.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "Bearer s3cret", reqs[0].Auth)
	_, err := uuid.Parse(reqs[0].RequestID)
	assert.NoError(t, err, "request id should be a uuid")
}

func TestSaveRejectedByContract(t *testing.T) {
	m := NewMockServer()
	defer m.Close()

	err := newTestClient(m.URL).Save(context.Background(), siteconfig.Wire{DefaultRole: "emperor", MaxEmails: "20"})
	require.ErrorIs(t, err, ErrBadStatus)

	var se *StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Status)
	_, stored := m.Config()
	assert.False(t, stored)
}

func TestRequestIDFromContextIsPropagated(t *testing.T) {
	m := NewMockServer()
	defer m.Close()
	m.SetConfig(siteconfig.Wire{MaxEmails: "20"})

	ctx := xglog.ContextWithRequestID(context.Background(), "req-fixed")
	_, err := newTestClient(m.URL).Get(ctx)
	require.NoError(t, err)

	reqs := m.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "req-fixed", reqs[0].RequestID)
}

func TestBaseURLTrimsSlash(t *testing.T) {
	assert.Equal(t, "http://store:3000", New("http://store:3000/").BaseURL())
}

func TestStoreErrorMessage(t *testing.T) {
	err := &StoreError{Sentinel: ErrUpstreamError, Operation: "save", Status: 502, Body: "bad gateway"}
	assert.Equal(t, "save: config store: internal error (5xx) (HTTP 502): bad gateway", err.Error())
}

func TestWithTimeoutIndependentOfOptionOrder(t *testing.T) {
	const want = 3 * time.Second

	for name, order := range map[string]func(*http.Client) []Option{
		"timeout first": func(hc *http.Client) []Option { return []Option{WithTimeout(want), WithHTTPClient(hc)} },
		"client first":  func(hc *http.Client) []Option { return []Option{WithHTTPClient(hc), WithTimeout(want)} },
	} {
		t.Run(name, func(t *testing.T) {
			hc := &http.Client{Timeout: time.Minute}
			c := New("http://store.invalid", order(hc)...)

			assert.Equal(t, want, c.http.Timeout)
			assert.Equal(t, time.Minute, hc.Timeout, "caller's client must not be modified")
		})
	}
}

func TestDefaultTimeout(t *testing.T) {
	c := New("http://store.invalid/")
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
	assert.Equal(t, "http://store.invalid", c.BaseURL())
}
