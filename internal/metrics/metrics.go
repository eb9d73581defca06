// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for:
// - API endpoint latency and throughput
// - Cache efficiency per category
// - Upstream API calls (Google Maps, WeatherAPI, LLM)
// - Circuit breakers guarding upstream calls
// - Ranker outcomes and route scanning

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roadtrip_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}, // trip plans fan out to several upstreams
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roadtrip_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"category", "tier"}, // tier: "memory", "persistent"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"category"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "roadtrip_cache_entries",
			Help: "Current number of cached entries in memory",
		},
		[]string{"category"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry or clear)",
		},
		[]string{"category"},
	)

	CacheTierErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_cache_tier_errors_total",
			Help: "Total number of persistent cache tier failures",
		},
		[]string{"backend", "operation"},
	)

	// Upstream API Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_upstream_requests_total",
			Help: "Total number of upstream API calls",
		},
		[]string{"service", "operation", "result"}, // result: "success", "error", "rate_limited"
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roadtrip_upstream_request_duration_seconds",
			Help:    "Duration of upstream API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "roadtrip_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Recommendation Metrics
	RankerOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_ranker_outcomes_total",
			Help: "AI ranking outcomes",
		},
		[]string{"category", "outcome"}, // outcome: "matched", "fallback", "llm_error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roadtrip_recommendation_duration_seconds",
			Help:    "Duration of a full recommendation run in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
		},
	)

	ScannerPointsScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roadtrip_route_scanner_points_total",
			Help: "Total number of sampled route points searched",
		},
	)

	ScannerAttractionsFound = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roadtrip_route_scanner_attractions",
			Help:    "Number of attractions returned per route scan",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	// Trip Planner Metrics
	PlannerComponentErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadtrip_planner_component_errors_total",
			Help: "Trip planner components that failed or timed out",
		},
		[]string{"component"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "roadtrip_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamCall records the outcome and latency of one upstream call.
func RecordUpstreamCall(service, operation string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(service, operation, result).Inc()
	UpstreamRequestDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// RecordUpstreamRateLimited counts an HTTP 429 from an upstream service.
func RecordUpstreamRateLimited(service, operation string) {
	UpstreamRequestsTotal.WithLabelValues(service, operation, "rate_limited").Inc()
}

// RecordRankerOutcome counts one ranking run.
func RecordRankerOutcome(category, outcome string) {
	RankerOutcomes.WithLabelValues(category, outcome).Inc()
}

// RecordScan records one completed route scan.
func RecordScan(points, attractions int) {
	ScannerPointsScanned.Add(float64(points))
	ScannerAttractionsFound.Observe(float64(attractions))
}
