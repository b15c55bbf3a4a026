// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// Index metrics
	IndexItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_index_items",
			Help: "Number of catalog items in the similarity index",
		},
	)

	IndexVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_index_vocabulary_size",
			Help: "Number of terms in the TF-IDF vocabulary",
		},
	)

	SimilarityBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_similarity_build_duration_seconds",
			Help:    "Time spent building an all-pairs similarity matrix",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		},
		[]string{"method"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Recommendation requests by method actually used and fallback flag",
		},
		[]string{"method", "fallback"},
	)

	// Artwork enrichment metrics
	ArtworkCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "artwork_cache_hits_total",
			Help: "Artwork lookups served from the LRU cache",
		},
	)

	ArtworkCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "artwork_cache_misses_total",
			Help: "Artwork lookups that missed the LRU cache",
		},
	)

	ArtworkCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "artwork_cache_entries",
			Help: "Current number of cached artwork entries",
		},
	)

	ArtworkLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artwork_lookups_total",
			Help: "External artwork lookups by result",
		},
		[]string{"result"}, // "found", "not_found", "error"
	)

	// Circuit breaker metrics
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
		[]string{"name", "result"}, // "success", "failure", "rejected"
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

// RecordAPIRequest records one finished API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}

// ObserveSimilarityBuild records how long a matrix build took.
func ObserveSimilarityBuild(method string, d time.Duration) {
	SimilarityBuildDuration.WithLabelValues(method).Observe(d.Seconds())
}

// RecordRecommendation counts a served recommendation request.
func RecordRecommendation(methodUsed string, fallback bool) {
	f := "false"
	if fallback {
		f = "true"
	}
	RecommendationsTotal.WithLabelValues(methodUsed, f).Inc()
}
