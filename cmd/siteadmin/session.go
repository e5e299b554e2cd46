// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ManuGH/siteadmin/internal/config"
	"github.com/ManuGH/siteadmin/internal/configstore"
	xglog "github.com/ManuGH/siteadmin/internal/log"
	"github.com/ManuGH/siteadmin/internal/metrics"
	"github.com/ManuGH/siteadmin/internal/notify"
	"github.com/ManuGH/siteadmin/internal/panel"
	"github.com/ManuGH/siteadmin/internal/telemetry"
	"github.com/ManuGH/siteadmin/internal/validate"
	"github.com/ManuGH/siteadmin/internal/version"
)

// session is everything one command invocation needs to talk to the store.
type session struct {
	cfg    config.AppConfig
	client *configstore.Client
	panel  *panel.Panel
	tp     *telemetry.Provider
	logger zerolog.Logger
}

func (g *globalFlags) loadConfig() (config.AppConfig, error) {
	path := g.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}

	cfg, err := config.NewLoader(path, version.Version).Load()
	if err != nil {
		return cfg, err
	}

	if g.storeURL == "" && g.logLevel == "" {
		return cfg, nil
	}
	if g.storeURL != "" {
		cfg.Store.BaseURL = g.storeURL
	}
	if g.logLevel != "" {
		level, err := validate.ParseLogLevel(strings.ToLower(g.logLevel))
		if err != nil {
			return cfg, &usageError{err: err}
		}
		cfg.Log.Level = level.String()
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, &usageError{err: err}
	}
	return cfg, nil
}

func (g *globalFlags) open(ctx context.Context) (*session, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	xglog.Reconfigure(xglog.Config{
		Level:   cfg.Log.Level,
		Output:  g.stderr,
		Service: "siteadmin",
		Version: cfg.Version,
	})
	logger := xglog.WithComponent("cli")

	tp, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "siteadmin",
		ServiceVersion: cfg.Version,
		Environment:    cfg.Telemetry.Environment,
		ExporterType:   cfg.Telemetry.Exporter,
		Endpoint:       cfg.Telemetry.Endpoint,
		SamplingRate:   cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	opts := []configstore.Option{configstore.WithTimeout(cfg.Store.Timeout)}
	if cfg.Store.Token != "" {
		opts = append(opts, configstore.WithToken(cfg.Store.Token))
	}
	client := configstore.New(cfg.Store.BaseURL, opts...)

	notifier := notify.Multi(notify.NewWriter(g.stderr), notify.NewLog())

	logger.Debug().
		Str(xglog.FieldBaseURL, client.BaseURL()).
		Str(xglog.FieldMaxEmails, cfg.MaxEmailsFallback()).
		Msg("session opened")

	return &session{
		cfg:    cfg,
		client: client,
		panel: panel.New(client, notifier, cfg.MaxEmailsFallback(),
			panel.WithTracer(tp.Tracer("panel")),
			panel.WithLogger(xglog.WithComponent("panel").With().Str(xglog.FieldBaseURL, client.BaseURL()).Logger()),
		),
		tp:     tp,
		logger: logger,
	}, nil
}

// close flushes metrics and traces. It runs on a fresh context so an
// interrupted command still exports what it recorded.
func (s *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if path := s.cfg.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			s.logger.Warn().Err(err).Str(xglog.FieldPath, path).Msg("failed to write metrics textfile")
		}
	}
	if err := s.tp.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn().Err(err).Msg("failed to flush traces")
	}
}

// withSession opens a session for cmd, runs fn and closes the session.
func (g *globalFlags) withSession(cmd *cobra.Command, fn func(context.Context, *session) error) error {
	ctx := xglog.ContextWithCorrelationID(cmd.Context(), uuid.NewString())

	s, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	return fn(ctx, s)
}
