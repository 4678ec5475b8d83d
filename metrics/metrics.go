// Package metrics provides Prometheus metrics for the GTIN MCP server.
// It tracks request counts, latencies and validation outcomes per GTIN length.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "gtin_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// ChecksTotal counts validation outcomes by GTIN length
	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "checks_total",
		Help:      "Validation outcomes by GTIN length and result",
	}, []string{"length", "result"})

	// FixesTotal counts normalization outcomes by GTIN length
	FixesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "fixes_total",
		Help:      "Normalization outcomes by GTIN length and result",
	}, []string{"length", "result"})

	// DetectionsTotal counts detection requests by number of matching lengths
	DetectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "detections_total",
		Help:      "Detection requests by number of matching lengths",
	}, []string{"matches"})

	// BatchCodes measures batch size distribution
	BatchCodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "batch_codes",
		Help:      "Number of codes per batch request",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250},
	})

	// RateLimitRejections counts requests rejected due to rate limiting
	RateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected due to rate limiting",
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordCheck records one validation outcome
func RecordCheck(length int, valid bool) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	ChecksTotal.WithLabelValues(strconv.Itoa(length), result).Inc()
}

// RecordFix records one normalization outcome. The outcome is "ok" or the
// failure kind reported to the caller.
func RecordFix(length int, outcome string) {
	FixesTotal.WithLabelValues(strconv.Itoa(length), outcome).Inc()
}

// RecordDetect records a detection request and its match count
func RecordDetect(matches int) {
	DetectionsTotal.WithLabelValues(strconv.Itoa(matches)).Inc()
}

// RecordBatch records a batch request: its size and the per-code outcomes
func RecordBatch(length, size, valid int) {
	BatchCodes.Observe(float64(size))
	label := strconv.Itoa(length)
	ChecksTotal.WithLabelValues(label, "valid").Add(float64(valid))
	ChecksTotal.WithLabelValues(label, "invalid").Add(float64(size - valid))
}
