// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package metrics holds the prometheus collectors for config store traffic
// and panel outcomes.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry collects every siteadmin metric. A dedicated registry keeps
// one-shot CLI runs from exporting Go runtime noise into textfiles.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	storeRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "siteadmin_configstore_requests_total",
		Help: "Config store requests by operation and outcome",
	}, []string{
		"operation", // get|save
		"result",    // success|not_found|forbidden|upstream_error|bad_status|bad_response|unavailable|timeout
	})

	storeRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "siteadmin_configstore_request_duration_seconds",
		Help:    "Config store request latency by operation",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	panelOperationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "siteadmin_panel_operations_total",
		Help: "Settings panel operations by outcome",
	}, []string{
		"operation", // load|save|add_domain|remove_domain
		"result",    // success|failure|empty|duplicate|not_found|skipped
	})

	panelDomains = factory.NewGauge(prometheus.GaugeOpts{
		Name: "siteadmin_panel_email_domains",
		Help: "Number of allowed email domains in the panel's current state",
	})
)

// RecordStoreRequest counts one config store round trip.
func RecordStoreRequest(operation, result string, d time.Duration) {
	storeRequestsTotal.WithLabelValues(operation, result).Inc()
	storeRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordPanelOperation counts one panel operation outcome.
func RecordPanelOperation(operation, result string) {
	panelOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetPanelDomains records the size of the panel's domain list.
func SetPanelDomains(n int) {
	panelDomains.Set(float64(n))
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
