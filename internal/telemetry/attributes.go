// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Common attribute keys for panel spans.
const (
	PanelOperationKey  = "panel.operation"
	PanelResultKey     = "panel.result"
	SiteDomainCountKey = "site.email_domains"
	SiteDefaultRoleKey = "site.default_role"
	SiteDomainKey      = "site.domain"
	ErrorKey           = "error"
)

// PanelAttributes describes one panel operation outcome.
func PanelAttributes(operation, result string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(PanelOperationKey, operation),
		attribute.String(PanelResultKey, result),
	}
}

// SiteAttributes summarises the settings being saved or loaded.
func SiteAttributes(defaultRole string, domainCount int) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 2)
	if defaultRole != "" {
		attrs = append(attrs, attribute.String(SiteDefaultRoleKey, defaultRole))
	}
	return append(attrs, attribute.Int(SiteDomainCountKey, domainCount))
}

// ErrorAttributes creates error-related span attributes.
func ErrorAttributes(err error) []attribute.KeyValue {
	if err == nil {
		return nil
	}
	return []attribute.KeyValue{
		attribute.Bool(ErrorKey, true),
		attribute.String("error.message", err.Error()),
	}
}
