// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tomtom215/oraclia/internal/matching"
	"github.com/tomtom215/oraclia/internal/metrics"
	"github.com/tomtom215/oraclia/internal/models"
	"github.com/tomtom215/oraclia/internal/recommend"
	"github.com/tomtom215/oraclia/internal/registry"
)

// Handlers holds the endpoint implementations and their collaborators.
type Handlers struct {
	registry    registry.Store
	matcher     *matching.Engine
	recommender *recommend.Engine
	validate    *validator.Validate
	logger      zerolog.Logger
	startedAt   time.Time
}

// NewHandlers creates the endpoint set.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHandlers(reg registry.Store, matcher *matching.Engine, recommender *recommend.Engine, logger zerolog.Logger) *Handlers {
	return &Handlers{
		registry:    reg,
		matcher:     matcher,
		recommender: recommender,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger.With().Str("component", "api").Logger(),
		startedAt:   time.Now(),
	}
}

// Match handles POST /api/v1/match: score all providers against the
// submitted criteria and return the ranked list.
func (h *Handlers) Match(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var criteria models.RequestCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		rw.BadRequest("invalid request body")
		return
	}
	if err := h.validate.Struct(&criteria); err != nil {
		rw.ValidationError("invalid match criteria", validationDetails(err))
		return
	}

	start := time.Now()
	results := h.matcher.FindBestMatches(r.Context(), &criteria)
	metrics.RecordMatchRequest(len(results), time.Since(start))

	rw.SuccessWithCount(results, len(results))
}

// Recommendations handles GET /api/v1/recommendations/{clientID}.
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	clientID := chi.URLParam(r, "clientID")
	if clientID == "" {
		rw.BadRequest("client ID is required")
		return
	}

	recs := h.recommender.Generate(r.Context(), clientID)
	rw.SuccessWithCount(recs, len(recs))
}

// UpsertProvider handles POST /api/v1/providers: full profile upsert
// from the provider directory.
func (h *Handlers) UpsertProvider(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var profile models.ProviderProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		rw.BadRequest("invalid request body")
		return
	}
	if err := h.validate.Struct(&profile); err != nil {
		rw.ValidationError("invalid provider profile", validationDetails(err))
		return
	}

	h.registry.Upsert(profile)
	metrics.RegisteredProviders.Set(float64(h.registry.Count()))

	rw.Created(map[string]string{"id": profile.ID})
}

// UpdateProviderStatus handles POST /api/v1/providers/{id}/status:
// partial last-write-wins merge.
func (h *Handlers) UpdateProviderStatus(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := chi.URLParam(r, "id")
	var update models.ProviderStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		rw.BadRequest("invalid request body")
		return
	}

	if !h.registry.UpdateStatus(id, update) {
		rw.NotFound("unknown provider")
		return
	}

	rw.Success(map[string]string{"id": id})
}

// ListProviders handles GET /api/v1/providers: registry snapshot.
func (h *Handlers) ListProviders(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	providers := h.registry.Snapshot()
	rw.SuccessWithCount(providers, len(providers))
}

// consultationReport is the ledger's completion event payload.
type consultationReport struct {
	ClientID string `json:"client_id" validate:"required"`
	models.Consultation
}

// RecordConsultation handles POST /api/v1/consultations: a completed
// consultation updates the behavior profile and, when rated well, the
// matching engine's affinity ledger.
func (h *Handlers) RecordConsultation(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var report consultationReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		rw.BadRequest("invalid request body")
		return
	}
	if err := h.validate.Struct(&report); err != nil {
		rw.ValidationError("invalid consultation report", validationDetails(err))
		return
	}

	profile, err := h.recommender.RecordConsultation(report.ClientID, report.Consultation)
	if err != nil {
		h.logger.Error().Err(err).Str("client_id", report.ClientID).Msg("consultation update failed")
		rw.InternalError("failed to record consultation")
		return
	}

	if report.Successful() {
		h.matcher.RecordSuccessfulConsultation(report.ClientID, report.ProviderID)
	}

	rw.Created(profile)
}

// searchReport is the search layer's query payload.
type searchReport struct {
	Query string `json:"query" validate:"required"`
}

// AddSearchQuery handles POST /api/v1/clients/{clientID}/searches.
func (h *Handlers) AddSearchQuery(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	clientID := chi.URLParam(r, "clientID")
	var report searchReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		rw.BadRequest("invalid request body")
		return
	}
	if err := h.validate.Struct(&report); err != nil {
		rw.ValidationError("invalid search query", validationDetails(err))
		return
	}

	if err := h.recommender.AddSearchQuery(clientID, report.Query); err != nil {
		h.logger.Error().Err(err).Str("client_id", clientID).Msg("search query update failed")
		rw.InternalError("failed to record search query")
		return
	}

	rw.Created(map[string]string{"client_id": clientID})
}

// Health handles GET /api/v1/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	rw.Success(map[string]interface{}{
		"status":         "ok",
		"providers":      h.registry.Count(),
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}

// validationDetails flattens validator errors into field/tag pairs for
// the error envelope.
func validationDetails(err error) []map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]map[string]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, map[string]string{
			"field": fe.Field(),
			"tag":   fe.Tag(),
		})
	}
	return details
}
