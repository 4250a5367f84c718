// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package metrics provides Prometheus instrumentation for the
// calculation engine: API latency and throughput, ephemeris cache
// efficiency, solver convergence, ranking fan-out, and circuit
// breaker health.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Ephemeris Metrics
	EphemerisCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ephemeris_cache_hits_total",
			Help: "Total number of ephemeris position cache hits",
		},
	)

	EphemerisCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ephemeris_cache_misses_total",
			Help: "Total number of ephemeris position cache misses",
		},
	)

	EphemerisCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ephemeris_cache_entries",
			Help: "Current number of cached ephemeris positions",
		},
	)

	EphemerisRangeErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ephemeris_range_errors_total",
			Help: "Total number of requests outside the ephemeris validity window",
		},
	)

	// Chart Metrics
	ChartBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_build_duration_seconds",
			Help:    "Duration of chart assembly in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"kind"}, // "natal", "detailed", "solar_return"
	)

	HousesUndefinedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "houses_undefined_total",
			Help: "Total number of chart builds degraded by a polar house failure",
		},
	)

	// Solar Return Metrics
	SolverConvergenceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solar_return_convergence_failures_total",
			Help: "Total number of solar return bisections that failed to converge",
		},
	)

	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranking_duration_seconds",
			Help:    "Duration of full multi-city ranking runs in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	RankingCitiesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ranking_cities_dropped_total",
			Help: "Total number of cities dropped from rankings due to solve failures",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records duration and count for one API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, endpoint, statusCode).Observe(duration.Seconds())
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordChartBuild records one chart assembly.
func RecordChartBuild(kind string, duration time.Duration) {
	ChartBuildDuration.WithLabelValues(kind).Observe(duration.Seconds())
}
