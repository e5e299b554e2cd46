// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package config provides configuration management for siteadmin.
package config

import (
	"time"

	"github.com/ManuGH/siteadmin/internal/siteconfig"
)

// AppConfig is the effective configuration of a siteadmin run.
type AppConfig struct {
	Store     StoreConfig     `yaml:"store"`
	Emails    EmailsConfig    `yaml:"emails"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Metrics   MetricsConfig   `yaml:"metrics"`

	Version string `yaml:"-"`
}

// StoreConfig locates the config store.
type StoreConfig struct {
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
	Token   string        `yaml:"token"`
}

// EmailsConfig holds mailbox defaults.
type EmailsConfig struct {
	// MaxActive replaces an empty maxEmails on load and on save.
	MaxActive int `yaml:"maxActive"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TelemetryConfig controls OpenTelemetry tracing of store requests.
type TelemetryConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"` // grpc|http
	Endpoint     string  `yaml:"endpoint"`
	SamplingRate float64 `yaml:"samplingRate"`
	Environment  string  `yaml:"environment"`
}

// MetricsConfig controls the prometheus textfile dump.
type MetricsConfig struct {
	// TextfilePath, when set, receives the metrics after every command.
	TextfilePath string `yaml:"textfilePath"`
}

// Defaults.
const (
	DefaultStoreURL       = "http://127.0.0.1:3000"
	DefaultStoreTimeout   = 10 * time.Second
	DefaultLogLevel       = "info"
	DefaultExporter       = "grpc"
	DefaultOTLPEndpoint   = "localhost:4317"
	DefaultSamplingRate   = 1.0
	DefaultEnvironment    = "production"
	DefaultMaxActiveEmail = siteconfig.DefaultMaxActiveEmails
)

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Store: StoreConfig{
			BaseURL: DefaultStoreURL,
			Timeout: DefaultStoreTimeout,
		},
		Emails: EmailsConfig{
			MaxActive: DefaultMaxActiveEmail,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Telemetry: TelemetryConfig{
			Exporter:     DefaultExporter,
			Endpoint:     DefaultOTLPEndpoint,
			SamplingRate: DefaultSamplingRate,
			Environment:  DefaultEnvironment,
		},
	}
}

// MaxEmailsFallback is the wire value substituted for an empty maxEmails.
func (c AppConfig) MaxEmailsFallback() string {
	return siteconfig.MaxEmailsFallback(c.Emails.MaxActive)
}
