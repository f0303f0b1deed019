// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation request source labels.
const (
	SourceGenerated = "generated"
	SourceCache     = "cache"
	SourceColdStart = "cold_start"
)

// Behavior event labels.
const (
	EventConsultation = "consultation"
	EventSearchQuery  = "search_query"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Matching Metrics
	MatchRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_requests_total",
			Help: "Total number of match requests served",
		},
	)

	MatchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_results",
			Help:    "Number of results returned per match request",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_duration_seconds",
			Help:    "Duration of one scoring pass over the registry",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Recommendation Metrics
	RecommendationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"source"}, // "generated", "cache", "cold_start"
	)

	RecommendationListSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_list_size",
			Help:    "Final recommendation list size per request",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10},
		},
	)

	// Similarity Metrics
	SimilarityRebuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "similarity_rebuilds_total",
			Help: "Total number of similarity matrix rebuilds",
		},
	)

	SimilarityRebuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "similarity_rebuild_duration_seconds",
			Help:    "Duration of similarity matrix rebuilds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SimilarityProviders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_providers",
			Help: "Number of providers covered by the last rebuild",
		},
	)

	// Behavior Metrics
	BehaviorEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "behavior_events_total",
			Help: "Total number of client behavior updates",
		},
		[]string{"event"}, // "consultation", "search_query"
	)

	// Registry Metrics
	RegisteredProviders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registered_providers",
			Help: "Current number of registered providers",
		},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordMatchRequest records one scoring pass and its result count.
func RecordMatchRequest(results int, duration time.Duration) {
	MatchRequestsTotal.Inc()
	MatchResults.Observe(float64(results))
	MatchDuration.Observe(duration.Seconds())
}

// RecordRecommendationRequest records one recommendation request and the
// size of the returned list.
func RecordRecommendationRequest(source string, listSize int) {
	RecommendationRequestsTotal.WithLabelValues(source).Inc()
	RecommendationListSize.Observe(float64(listSize))
}

// RecordSimilarityRebuild records one similarity matrix rebuild.
func RecordSimilarityRebuild(providers int, duration time.Duration) {
	SimilarityRebuildsTotal.Inc()
	SimilarityRebuildDuration.Observe(duration.Seconds())
	SimilarityProviders.Set(float64(providers))
}

// RecordBehaviorEvent records one client behavior update.
func RecordBehaviorEvent(event string) {
	BehaviorEventsTotal.WithLabelValues(event).Inc()
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPRequestsInFlight.Inc()
	} else {
		HTTPRequestsInFlight.Dec()
	}
}
