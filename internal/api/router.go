// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tomtom215/oraclia/internal/config"
)

// NewRouter builds the full HTTP routing tree.
func NewRouter(handlers *Handlers, cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(AccessLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
		r.Use(PrometheusMetrics)

		r.Get("/health", handlers.Health)

		r.Post("/match", handlers.Match)
		r.Get("/recommendations/{clientID}", handlers.Recommendations)

		r.Route("/providers", func(r chi.Router) {
			r.Get("/", handlers.ListProviders)
			r.Post("/", handlers.UpsertProvider)
			r.Post("/{id}/status", handlers.UpdateProviderStatus)
		})

		r.Post("/consultations", handlers.RecordConsultation)
		r.Post("/clients/{clientID}/searches", handlers.AddSearchQuery)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
