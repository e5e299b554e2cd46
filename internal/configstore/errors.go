// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package configstore

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrNotFound            = errors.New("config store: no configuration stored")
	ErrForbidden           = errors.New("config store: access forbidden")
	ErrUpstreamUnavailable = errors.New("config store: host unreachable or transport failure")
	ErrUpstreamError       = errors.New("config store: internal error (5xx)")
	ErrBadStatus           = errors.New("config store: unexpected status")
	ErrUpstreamBadResponse = errors.New("config store: invalid response format or malformed data")
	ErrTimeout             = errors.New("config store: request timed out")
)

// StoreError wraps a sentinel with the request context it occurred in.
type StoreError struct {
	Sentinel  error
	Operation string
	Status    int
	Body      string
	Err       error // lower-level cause, e.g. a net.Error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Sentinel
}

func statusError(op string, status int, body string) *StoreError {
	var sentinel error
	switch {
	case status == http.StatusNotFound:
		sentinel = ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = ErrForbidden
	case status >= 500:
		sentinel = ErrUpstreamError
	default:
		sentinel = ErrBadStatus
	}
	return &StoreError{Sentinel: sentinel, Operation: op, Status: status, Body: body}
}

func transportError(op string, err error) *StoreError {
	sentinel := ErrUpstreamUnavailable
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		sentinel = ErrTimeout
	}
	return &StoreError{Sentinel: sentinel, Operation: op, Err: err}
}

// resultLabel maps an error to the metrics result label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrUpstreamError):
		return "upstream_error"
	case errors.Is(err, ErrBadStatus):
		return "bad_status"
	case errors.Is(err, ErrUpstreamBadResponse):
		return "bad_response"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	default:
		return "unavailable"
	}
}
