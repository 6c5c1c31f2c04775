// Package metrics provides Prometheus metrics for the Akamai MCP server.
// It tracks tool calls, Akamai API latencies, cache performance, and
// workflow polling.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "alecs_mcp"
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

	// CacheHits counts cache hits
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_hits_total",
		Help:      "Total cache hit count",
	})

	// CacheMisses counts cache misses
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_misses_total",
		Help:      "Total cache miss count",
	})

	// CacheSize tracks current cache entry count
	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "cache_entries",
		Help:      "Current number of cache entries",
	})

	// CacheEvictions counts cache evictions
	CacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_evictions_total",
		Help:      "Total cache eviction count",
	})

	// AkamaiAPILatency measures control-plane API call latency by service and operation
	AkamaiAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "akamai_api_latency_seconds",
		Help:      "Akamai API call latency by service and operation",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "operation"})

	// AkamaiAPIRequestsTotal counts control-plane API requests
	AkamaiAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "akamai_api_requests_total",
		Help:      "Total Akamai API requests by service, operation and status",
	}, []string{"service", "operation", "status"})

	// AkamaiAPIRetries counts API request retries
	AkamaiAPIRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "akamai_api_retries_total",
		Help:      "Akamai API retry count by service and operation",
	}, []string{"service", "operation"})

	// WorkflowPolls counts status polls issued by async workflows
	WorkflowPolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "workflow_polls_total",
		Help:      "Status polls issued while waiting for async operations",
	}, []string{"operation"})

	// WorkflowOutcomes counts workflow terminal outcomes
	WorkflowOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "workflow_outcomes_total",
		Help:      "Async workflow outcomes by operation and result",
	}, []string{"operation", "result"})

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

// RecordCacheAccess records a cache hit or miss
func RecordCacheAccess(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// SetCacheSize updates the current cache size gauge
func SetCacheSize(size int64) {
	CacheSize.Set(float64(size))
}

// RecordWorkflowOutcome records an async workflow terminal result
func RecordWorkflowOutcome(operation string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	WorkflowOutcomes.WithLabelValues(operation, result).Inc()
}
