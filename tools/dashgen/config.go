package main

import "errors"

// KnownMetrics is the set of metric names exported by quote-service plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"ipq_http_request_duration_seconds": true,
	"ipq_http_requests_total":           true,

	// Health metrics.
	"ipq_healthz_up": true,
	"ipq_readyz_up":  true,

	// Completion gateway metrics.
	"ipq_gateway_call_duration_seconds": true,
	"ipq_gateway_errors_total":          true,
	"ipq_fallback_total":                true,

	// Supplier directory metrics.
	"ipq_supplier_directory_size": true,

	// Recording rules.
	"ipq:http_requests:rate5m":  true,
	"ipq:http_errors:rate5m":    true,
	"ipq:gateway_errors:rate5m": true,
	"ipq:fallbacks:rate5m":      true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
