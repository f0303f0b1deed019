// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/providers", "200"))

	RecordHTTPRequest("GET", "/api/v1/providers", "200", 12*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/providers", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordMatchRequest(t *testing.T) {
	before := testutil.ToFloat64(MatchRequestsTotal)

	RecordMatchRequest(3, 500*time.Microsecond)
	RecordMatchRequest(0, 100*time.Microsecond)

	assert.Equal(t, before+2, testutil.ToFloat64(MatchRequestsTotal))
}

func TestRecordRecommendationRequestBySource(t *testing.T) {
	sources := []string{SourceGenerated, SourceCache, SourceColdStart}

	for _, source := range sources {
		before := testutil.ToFloat64(RecommendationRequestsTotal.WithLabelValues(source))
		RecordRecommendationRequest(source, 2)
		after := testutil.ToFloat64(RecommendationRequestsTotal.WithLabelValues(source))
		assert.Equal(t, before+1, after, "source %s", source)
	}
}

func TestRecordSimilarityRebuild(t *testing.T) {
	before := testutil.ToFloat64(SimilarityRebuildsTotal)

	RecordSimilarityRebuild(42, 3*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(SimilarityRebuildsTotal))
	assert.Equal(t, 42.0, testutil.ToFloat64(SimilarityProviders))
}

func TestRecordBehaviorEvent(t *testing.T) {
	before := testutil.ToFloat64(BehaviorEventsTotal.WithLabelValues(EventConsultation))

	RecordBehaviorEvent(EventConsultation)

	after := testutil.ToFloat64(BehaviorEventsTotal.WithLabelValues(EventConsultation))
	assert.Equal(t, before+1, after)
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(HTTPRequestsInFlight)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	assert.Equal(t, start+2, testutil.ToFloat64(HTTPRequestsInFlight))

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	assert.Equal(t, start, testutil.ToFloat64(HTTPRequestsInFlight))
}
