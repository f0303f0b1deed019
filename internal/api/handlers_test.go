// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomtom215/oraclia/internal/behavior"
	"github.com/tomtom215/oraclia/internal/config"
	"github.com/tomtom215/oraclia/internal/matching"
	"github.com/tomtom215/oraclia/internal/models"
	"github.com/tomtom215/oraclia/internal/recommend"
	"github.com/tomtom215/oraclia/internal/registry"
	"github.com/tomtom215/oraclia/internal/similarity"
)

func newTestServer(t *testing.T) (http.Handler, *registry.Registry) {
	t.Helper()

	logger := zerolog.Nop()
	reg := registry.New(logger)
	behaviors := behavior.NewMemory()
	sim := similarity.New(reg, logger)
	matcher := matching.NewEngine(reg, logger)
	recommender := recommend.NewEngine(reg, behaviors, sim, recommend.Options{}, logger)

	handlers := NewHandlers(reg, matcher, recommender, logger)
	return NewRouter(handlers, config.Default().Server), reg
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope APIResponse
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func testProvider(id string) models.ProviderProfile {
	return models.ProviderProfile{
		ID:                  id,
		DisplayName:         "Madame " + id,
		Categories:          []string{"Tarot"},
		PricePerMinute:      2.5,
		Rating:              4.8,
		Online:              true,
		Load:                20,
		ResponseTimeMinutes: 3,
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestUpsertAndListProviders(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/providers", testProvider("op-1"))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)

	rec, envelope = doJSON(t, handler, http.MethodGet, "/api/v1/providers", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 1, envelope.Meta.Count)
}

func TestUpsertProviderValidation(t *testing.T) {
	handler, _ := newTestServer(t)

	p := testProvider("")
	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/providers", p)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, ErrCodeValidationFailed, envelope.Error.Code)
}

func TestStatusUpdateUnknownProvider(t *testing.T) {
	handler, _ := newTestServer(t)

	online := true
	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/providers/ghost/status",
		models.ProviderStatusUpdate{Online: &online})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, ErrCodeNotFound, envelope.Error.Code)
}

func TestStatusUpdateMergesPartialFields(t *testing.T) {
	handler, reg := newTestServer(t)

	_, _ = doJSON(t, handler, http.MethodPost, "/api/v1/providers", testProvider("op-1"))

	offline := false
	load := 75
	rec, _ := doJSON(t, handler, http.MethodPost, "/api/v1/providers/op-1/status",
		models.ProviderStatusUpdate{Online: &offline, Load: &load})
	assert.Equal(t, http.StatusOK, rec.Code)

	p, ok := reg.Get("op-1")
	require.True(t, ok)
	assert.False(t, p.Online)
	assert.Equal(t, 75, p.Load)
	// Untouched fields survive the merge.
	assert.Equal(t, 2.5, p.PricePerMinute)
}

func TestMatchEndpoint(t *testing.T) {
	handler, _ := newTestServer(t)
	_, _ = doJSON(t, handler, http.MethodPost, "/api/v1/providers", testProvider("op-1"))

	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/match", models.RequestCriteria{
		ClientID:            "cl-1",
		PreferredCategories: []string{"Tarot"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var results []models.MatchScore
	require.NoError(t, json.Unmarshal(raw, &results))

	require.Len(t, results, 1)
	assert.Equal(t, "op-1", results[0].ProviderID)
	assert.Greater(t, results[0].Score, 0.0)
}

func TestMatchRequiresClientID(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/match", models.RequestCriteria{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, ErrCodeValidationFailed, envelope.Error.Code)
}

func TestConsultationFeedsAffinity(t *testing.T) {
	handler, _ := newTestServer(t)
	_, _ = doJSON(t, handler, http.MethodPost, "/api/v1/providers", testProvider("op-1"))

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/v1/consultations", map[string]interface{}{
		"client_id":        "cl-1",
		"provider_id":      "op-1",
		"category":         "Tarot",
		"rating":           5,
		"duration_minutes": 20,
		"cost":             40,
		"timestamp":        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The next match for the same client now carries the affinity reason.
	_, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/match", models.RequestCriteria{
		ClientID: "cl-1",
	})

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var results []models.MatchScore
	require.NoError(t, json.Unmarshal(raw, &results))

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Reasons, "Hai già consultato questo esperto")
}

func TestRecommendationsColdStart(t *testing.T) {
	handler, _ := newTestServer(t)
	_, _ = doJSON(t, handler, http.MethodPost, "/api/v1/providers", testProvider("op-1"))

	rec, envelope := doJSON(t, handler, http.MethodGet, "/api/v1/recommendations/new-client", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 2, envelope.Meta.Count)
}

func TestAddSearchQuery(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/clients/cl-1/searches",
		map[string]string{"query": "tarocchi amore"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)
}

func TestAddSearchQueryRequiresQuery(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/clients/cl-1/searches",
		map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, ErrCodeValidationFailed, envelope.Error.Code)
}

func TestInvalidJSONBody(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDReused(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "trace-me-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "trace-me-123", rec.Header().Get("X-Request-ID"))
}

func TestMetricsEndpointExposed(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
