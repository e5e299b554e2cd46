// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID     = "request_id"
	FieldCorrelationID = "correlation_id"
	FieldTraceID       = "trace_id"
	FieldSpanID        = "span_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldOperation = "operation"

	// Store fields
	FieldBaseURL  = "base_url"
	FieldStatus   = "status"
	FieldDuration = "duration"

	// Settings fields
	FieldDomain      = "domain"
	FieldDomainCount = "domain_count"
	FieldDefaultRole = "default_role"
	FieldMaxEmails   = "max_emails"

	// Notice fields
	FieldNoticeTitle   = "notice_title"
	FieldNoticeVariant = "notice_variant"

	// Path fields
	FieldPath = "path"
)
