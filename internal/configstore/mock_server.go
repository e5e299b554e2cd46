// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package configstore

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"

	"github.com/ManuGH/siteadmin/internal/siteconfig"
)

//go:embed openapi.yaml
var openapiSpec []byte

// LoadOpenAPI parses and validates the embedded contract for /api/config.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi: %w", err)
	}
	return doc, nil
}

// RecordedRequest is one request seen by MockServer.
type RecordedRequest struct {
	Method    string
	RequestID string
	Auth      string
	Body      siteconfig.Wire
}

// MockServer is an in-memory config store for tests. Saved bodies are
// checked against the embedded OpenAPI contract and rejected with 400 when
// they do not match.
type MockServer struct {
	*httptest.Server
	mu       sync.RWMutex
	stored   *siteconfig.Wire
	status   map[string]int // forced status per method
	requests []RecordedRequest
	router   routers.Router
}

// NewMockServer starts a store with nothing saved (GET answers 404).
func NewMockServer() *MockServer {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		panic(err)
	}
	router, err := legacy.NewRouter(doc)
	if err != nil {
		panic(fmt.Sprintf("openapi router: %v", err))
	}

	m := &MockServer{
		status: make(map[string]int),
		router: router,
	}

	r := chi.NewRouter()
	r.Get(ConfigPath, m.handleGet)
	r.Post(ConfigPath, m.handlePost)

	m.Server = httptest.NewServer(r)
	return m
}

// SetConfig replaces the stored config.
func (m *MockServer) SetConfig(w siteconfig.Wire) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = &w
}

// Config returns the stored config and whether one exists.
func (m *MockServer) Config() (siteconfig.Wire, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.stored == nil {
		return siteconfig.Wire{}, false
	}
	return *m.stored, true
}

// FailWith forces every request with method to answer status. A zero status
// clears the override.
func (m *MockServer) FailWith(method string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if status == 0 {
		delete(m.status, method)
		return
	}
	m.status[method] = status
}

// Requests returns the requests received so far.
func (m *MockServer) Requests() []RecordedRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockServer) record(r *http.Request, body siteconfig.Wire) (forced int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, RecordedRequest{
		Method:    r.Method,
		RequestID: r.Header.Get("X-Request-ID"),
		Auth:      r.Header.Get("Authorization"),
		Body:      body,
	})
	return m.status[r.Method]
}

func (m *MockServer) handleGet(w http.ResponseWriter, r *http.Request) {
	if status := m.record(r, siteconfig.Wire{}); status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	cfg, ok := m.Config()
	if !ok {
		http.Error(w, "no configuration stored", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cfg)
}

func (m *MockServer) handlePost(w http.ResponseWriter, r *http.Request) {
	if err := m.validate(r); err != nil {
		m.record(r, siteconfig.Wire{})
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body siteconfig.Wire
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		m.record(r, siteconfig.Wire{})
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if status := m.record(r, body); status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	m.SetConfig(body)
	w.WriteHeader(http.StatusOK)
}

// validate checks r against the OpenAPI contract. openapi3filter restores
// the body after reading it.
func (m *MockServer) validate(r *http.Request) error {
	route, pathParams, err := m.router.FindRoute(r)
	if err != nil {
		return fmt.Errorf("route lookup: %w", err)
	}
	return openapi3filter.ValidateRequest(r.Context(), &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: pathParams,
		Route:      route,
	})
}
