// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package configstore is the HTTP client for the site config endpoint.
package configstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	xglog "github.com/ManuGH/siteadmin/internal/log"
	"github.com/ManuGH/siteadmin/internal/metrics"
	"github.com/ManuGH/siteadmin/internal/siteconfig"
)

// ConfigPath is the single resource served by the config store.
const ConfigPath = "/api/config"

// DefaultTimeout bounds one request when no client is supplied.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failure body ends up in errors.
const maxErrorBody = 512

const (
	opGet  = "get"
	opSave = "save"
)

// Client reads and writes the site config.
type Client struct {
	base    string
	http    *http.Client
	timeout time.Duration
	token   string
	logger  zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default traced client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. It applies to the client given
// through WithHTTPClient as well, without modifying the caller's value.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithToken sends a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New returns a client for the store at base (scheme and host, optional prefix).
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: xglog.WithComponent("configstore"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 && c.http.Timeout != c.timeout {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// BaseURL returns the normalised store base URL.
func (c *Client) BaseURL() string {
	return c.base
}

// Get fetches the stored config. Any non-2xx status is an error; a 404
// wraps ErrNotFound and means nothing has been saved yet.
func (c *Client) Get(ctx context.Context) (siteconfig.Wire, error) {
	var out siteconfig.Wire
	err := c.do(ctx, opGet, http.MethodGet, nil, func(body io.Reader) error {
		if err := json.NewDecoder(body).Decode(&out); err != nil {
			return &StoreError{Sentinel: ErrUpstreamBadResponse, Operation: opGet, Err: err}
		}
		return nil
	})
	if err != nil {
		return siteconfig.Wire{}, err
	}
	return out, nil
}

// Save submits the whole config. Any 2xx is success; the body is ignored.
func (c *Client) Save(ctx context.Context, w siteconfig.Wire) error {
	payload, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return c.do(ctx, opSave, http.MethodPost, payload, nil)
}

func (c *Client) do(ctx context.Context, op, method string, payload []byte, decode func(io.Reader) error) error {
	requestID := xglog.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = xglog.ContextWithRequestID(ctx, requestID)
	}
	logger := xglog.WithContext(ctx, c.logger).With().Str(xglog.FieldOperation, op).Logger()

	start := time.Now()
	err := c.roundTrip(ctx, op, method, requestID, payload, decode)
	elapsed := time.Since(start)
	metrics.RecordStoreRequest(op, resultLabel(err), elapsed)

	if err != nil {
		logger.Debug().
			Err(err).
			Str(xglog.FieldEvent, "configstore.request_failed").
			Dur(xglog.FieldDuration, elapsed).
			Msg("config store request failed")
		return err
	}
	logger.Debug().
		Str(xglog.FieldEvent, "configstore.request_ok").
		Dur(xglog.FieldDuration, elapsed).
		Msg("config store request completed")
	return nil
}

func (c *Client) roundTrip(ctx context.Context, op, method, requestID string, payload []byte, decode func(io.Reader) error) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+ConfigPath, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return statusError(op, res.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if decode == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	return decode(res.Body)
}
