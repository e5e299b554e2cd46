// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"github.com/ManuGH/siteadmin/internal/validate"
)

// Validate validates an AppConfig using the centralized validation package
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.URL("store.baseUrl", cfg.Store.BaseURL, []string{"http", "https"})
	v.PositiveDuration("store.timeout", cfg.Store.Timeout)

	v.Positive("emails.maxActive", cfg.Emails.MaxActive)

	v.OneOf("log.level", cfg.Log.Level, validate.LogLevels())

	if cfg.Telemetry.Enabled {
		v.OneOf("telemetry.exporter", cfg.Telemetry.Exporter, []string{"grpc", "http"})
		v.NotEmpty("telemetry.endpoint", cfg.Telemetry.Endpoint)
	}
	v.FloatRange("telemetry.samplingRate", cfg.Telemetry.SamplingRate, 0, 1)

	return v.Err()
}
