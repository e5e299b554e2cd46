// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package panel implements the site settings editor: it loads the settings
// from the config store, lets callers edit them and submits them back,
// reporting every outcome through a notify.Notifier.
package panel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ManuGH/siteadmin/internal/configstore"
	xglog "github.com/ManuGH/siteadmin/internal/log"
	"github.com/ManuGH/siteadmin/internal/metrics"
	"github.com/ManuGH/siteadmin/internal/notify"
	"github.com/ManuGH/siteadmin/internal/roles"
	"github.com/ManuGH/siteadmin/internal/siteconfig"
	"github.com/ManuGH/siteadmin/internal/telemetry"
)

// ErrSaveInProgress is returned when Save is called while a submission is
// still in flight.
var ErrSaveInProgress = errors.New("save already in progress")

// Operation names used for logs, metrics and spans.
const (
	OpLoad         = "load"
	OpSave         = "save"
	OpAddDomain    = "add_domain"
	OpRemoveDomain = "remove_domain"
)

const (
	resultSuccess   = "success"
	resultFailure   = "failure"
	resultNotFound  = "not_found"
	resultEmpty     = "empty"
	resultDuplicate = "duplicate"
	resultSkipped   = "skipped"
)

// Store is the config store the panel reads from and writes to.
type Store interface {
	Get(ctx context.Context) (siteconfig.Wire, error)
	Save(ctx context.Context, w siteconfig.Wire) error
}

// Option configures a Panel.
type Option func(*Panel)

// WithLogger overrides the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Panel) { p.logger = l }
}

// WithTracer overrides the tracer used for operation spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Panel) { p.tracer = t }
}

// Panel holds one editing session over the site settings. It is safe for
// concurrent use; store calls are made without holding the lock.
type Panel struct {
	store    Store
	notifier notify.Notifier
	fallback string
	logger   zerolog.Logger
	tracer   trace.Tracer

	mu           sync.Mutex
	defaultRole  roles.Role
	domains      siteconfig.DomainList
	adminContact string
	maxEmails    string
	newDomain    string
	loading      bool
}

// New creates a panel. fallback is the max-emails value substituted whenever
// the field is empty; an empty fallback means siteconfig.DefaultMaxActiveEmails.
func New(store Store, notifier notify.Notifier, fallback string, opts ...Option) *Panel {
	if notifier == nil {
		notifier = notify.Discard
	}
	if fallback == "" {
		fallback = siteconfig.MaxEmailsFallback(siteconfig.DefaultMaxActiveEmails)
	}
	p := &Panel{
		store:     store,
		notifier:  notifier,
		fallback:  fallback,
		logger:    xglog.WithComponent("panel"),
		tracer:    telemetry.Tracer("panel"),
		maxEmails: fallback,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load fetches the settings and replaces the editable fields with them.
// A store without settings yet (404) is not an error: fields keep their
// initial values and nil is returned. Other failures leave the fields
// untouched, raise a "Load failed" notice and are returned.
func (p *Panel) Load(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "panel.load")
	defer span.End()
	logger := xglog.WithContext(ctx, p.logger).With().Str(xglog.FieldOperation, OpLoad).Logger()

	w, err := p.store.Get(ctx)
	if err != nil {
		if errors.Is(err, configstore.ErrNotFound) {
			logger.Info().Str(xglog.FieldEvent, "settings.absent").Msg("no settings stored yet")
			p.finish(span, OpLoad, resultNotFound, nil)
			return nil
		}
		logger.Warn().Err(err).Str(xglog.FieldEvent, "settings.load_failed").Msg("failed to fetch settings")
		p.notifier.Notify(ctx, notify.LoadFailed(err))
		p.finish(span, OpLoad, resultFailure, err)
		return fmt.Errorf("load settings: %w", err)
	}

	cfg := siteconfig.FromWire(w, p.fallback)

	p.mu.Lock()
	p.defaultRole = cfg.DefaultRole
	p.domains = cfg.EmailDomains
	p.adminContact = cfg.AdminContact
	p.maxEmails = cfg.MaxEmails
	p.mu.Unlock()

	span.SetAttributes(telemetry.SiteAttributes(string(cfg.DefaultRole), cfg.EmailDomains.Len())...)
	metrics.SetPanelDomains(cfg.EmailDomains.Len())
	logger.Debug().
		Str(xglog.FieldDefaultRole, string(cfg.DefaultRole)).
		Int(xglog.FieldDomainCount, cfg.EmailDomains.Len()).
		Str(xglog.FieldMaxEmails, cfg.MaxEmails).
		Msg("settings loaded")
	p.finish(span, OpLoad, resultSuccess, nil)
	return nil
}

// Save submits the current values. The loading flag is held for the
// duration and a concurrent Save is refused without contacting the store.
func (p *Panel) Save(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "panel.save")
	defer span.End()
	logger := xglog.WithContext(ctx, p.logger).With().Str(xglog.FieldOperation, OpSave).Logger()

	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		logger.Debug().Msg("save skipped, another save is in flight")
		p.finish(span, OpSave, resultSkipped, nil)
		return ErrSaveInProgress
	}
	p.loading = true
	w := p.snapshotLocked().ToWire(p.fallback)
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.loading = false
		p.mu.Unlock()
	}()

	span.SetAttributes(telemetry.SiteAttributes(w.DefaultRole, siteconfig.ParseDomains(w.EmailDomains).Len())...)

	if err := p.store.Save(ctx, w); err != nil {
		logger.Warn().Err(err).Str(xglog.FieldEvent, "settings.save_failed").Msg("failed to save settings")
		p.notifier.Notify(ctx, notify.SaveFailed(err))
		p.finish(span, OpSave, resultFailure, err)
		return fmt.Errorf("save settings: %w", err)
	}

	logger.Info().
		Str(xglog.FieldEvent, "settings.saved").
		Str(xglog.FieldDefaultRole, w.DefaultRole).
		Str(xglog.FieldMaxEmails, w.MaxEmails).
		Msg("settings saved")
	p.notifier.Notify(ctx, notify.SaveSucceeded())
	p.finish(span, OpSave, resultSuccess, nil)
	return nil
}

// AddDomain appends the pending domain input.
func (p *Panel) AddDomain(ctx context.Context) error {
	p.mu.Lock()
	pending := p.newDomain
	p.mu.Unlock()
	return p.AddDomainValue(ctx, pending)
}

// AddDomainValue sets the pending input to domain and adds it. Empty and
// duplicate values are rejected with an error notice and leave the list
// unchanged; on success the pending input is cleared.
func (p *Panel) AddDomainValue(ctx context.Context, domain string) error {
	ctx, span := p.tracer.Start(ctx, "panel.add_domain")
	defer span.End()

	p.mu.Lock()
	p.newDomain = domain
	next, err := p.domains.Add(domain)
	if err == nil {
		p.domains = next
		p.newDomain = ""
	}
	count := p.domains.Len()
	p.mu.Unlock()

	logger := xglog.WithContext(ctx, p.logger).With().
		Str(xglog.FieldOperation, OpAddDomain).
		Str(xglog.FieldDomain, domain).
		Logger()

	switch {
	case errors.Is(err, siteconfig.ErrEmptyDomain):
		p.notifier.Notify(ctx, notify.DomainEmpty())
		p.finish(span, OpAddDomain, resultEmpty, err)
		return err
	case errors.Is(err, siteconfig.ErrDuplicateDomain):
		logger.Debug().Msg("domain already listed")
		p.notifier.Notify(ctx, notify.DomainDuplicate())
		p.finish(span, OpAddDomain, resultDuplicate, err)
		return err
	case err != nil:
		p.finish(span, OpAddDomain, resultFailure, err)
		return err
	}

	metrics.SetPanelDomains(count)
	logger.Debug().Int(xglog.FieldDomainCount, count).Msg("domain added")
	p.notifier.Notify(ctx, notify.DomainAdded())
	p.finish(span, OpAddDomain, resultSuccess, nil)
	return nil
}

// RemoveDomain drops domain from the list. Removing an absent domain still
// reports success.
func (p *Panel) RemoveDomain(ctx context.Context, domain string) {
	ctx, span := p.tracer.Start(ctx, "panel.remove_domain")
	defer span.End()

	p.mu.Lock()
	p.domains = p.domains.Remove(domain)
	count := p.domains.Len()
	p.mu.Unlock()

	metrics.SetPanelDomains(count)
	logger := xglog.WithContext(ctx, p.logger)
	logger.Debug().
		Str(xglog.FieldOperation, OpRemoveDomain).
		Str(xglog.FieldDomain, domain).
		Int(xglog.FieldDomainCount, count).
		Msg("domain removed")
	p.notifier.Notify(ctx, notify.DomainRemoved())
	p.finish(span, OpRemoveDomain, resultSuccess, nil)
}

// Domains returns a copy of the current domain list.
func (p *Panel) Domains() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.domains.Values()
}

// SetDefaultRole edits the default role. The value is not checked; callers
// accepting user input go through roles.ParseAssignable.
func (p *Panel) SetDefaultRole(r roles.Role) {
	p.mu.Lock()
	p.defaultRole = r
	p.mu.Unlock()
}

// SetAdminContact edits the free-form admin contact.
func (p *Panel) SetAdminContact(s string) {
	p.mu.Lock()
	p.adminContact = s
	p.mu.Unlock()
}

// SetMaxEmails edits the max-emails field. An empty value is replaced by
// the fallback when saving.
func (p *Panel) SetMaxEmails(s string) {
	p.mu.Lock()
	p.maxEmails = s
	p.mu.Unlock()
}

// SetNewDomain sets the pending domain input consumed by AddDomain.
func (p *Panel) SetNewDomain(s string) {
	p.mu.Lock()
	p.newDomain = s
	p.mu.Unlock()
}

// NewDomain returns the pending domain input.
func (p *Panel) NewDomain() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.newDomain
}

// Replace overwrites every editable field with c, as a bulk edit.
func (p *Panel) Replace(c siteconfig.SiteConfig) {
	c = c.Clone()
	p.mu.Lock()
	p.defaultRole = c.DefaultRole
	p.domains = c.EmailDomains
	p.adminContact = c.AdminContact
	p.maxEmails = c.MaxEmails
	p.mu.Unlock()
	metrics.SetPanelDomains(c.EmailDomains.Len())
}

// Snapshot returns the current field values.
func (p *Panel) Snapshot() siteconfig.SiteConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// Loading reports whether a save is in flight.
func (p *Panel) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Panel) snapshotLocked() siteconfig.SiteConfig {
	return siteconfig.SiteConfig{
		DefaultRole:  p.defaultRole,
		EmailDomains: siteconfig.DomainList(p.domains.Values()),
		AdminContact: p.adminContact,
		MaxEmails:    p.maxEmails,
	}
}

func (p *Panel) finish(span trace.Span, op, result string, err error) {
	metrics.RecordPanelOperation(op, result)
	span.SetAttributes(telemetry.PanelAttributes(op, result)...)
	if err != nil && result == resultFailure {
		span.RecordError(err)
		span.SetAttributes(telemetry.ErrorAttributes(err)...)
		span.SetStatus(codes.Error, err.Error())
	}
}
