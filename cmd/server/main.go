// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package main is the entry point for the Oraclia engine.
//
// Oraclia matches marketplace clients to consultation providers through
// weighted multi-factor scoring and serves personalized recommendations
// built from client behavior and a provider-similarity model. External
// collaborators (provider directory, consultation ledger, search/UI
// layer) talk to it over a plain JSON HTTP API.
//
// The server initializes components in the following order:
//
//  1. Configuration: koanf v2 layering defaults, config.yaml, ORACLIA_* env vars
//  2. Logging: global zerolog logger per the loaded configuration
//  3. Stores: provider registry plus the in-memory or BadgerDB behavior store
//  4. Engines: matching, similarity (with metrics observer), recommendation
//  5. HTTP API: chi router with rate limiting, CORS, and Prometheus metrics
//  6. Supervision: suture tree running the HTTP listener and the
//     similarity refresher until SIGINT/SIGTERM
//
// Example usage:
//
//	export ORACLIA_SERVER_PORT=8474
//	export ORACLIA_LOGGING_LEVEL=debug
//	export ORACLIA_BEHAVIOR_BACKEND=badger
//	export ORACLIA_BEHAVIOR_BADGER_PATH=/data/oraclia/behavior
//	./oraclia
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/oraclia/internal/api"
	"github.com/tomtom215/oraclia/internal/behavior"
	"github.com/tomtom215/oraclia/internal/config"
	"github.com/tomtom215/oraclia/internal/logging"
	"github.com/tomtom215/oraclia/internal/matching"
	"github.com/tomtom215/oraclia/internal/metrics"
	"github.com/tomtom215/oraclia/internal/recommend"
	"github.com/tomtom215/oraclia/internal/registry"
	"github.com/tomtom215/oraclia/internal/server"
	"github.com/tomtom215/oraclia/internal/similarity"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config errors fall back to the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.Logger()

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("behavior_backend", cfg.Behavior.Backend).
		Dur("similarity_refresh", cfg.Similarity.RefreshInterval).
		Msg("Starting Oraclia")

	behaviors, err := newBehaviorStore(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open behavior store")
	}
	defer func() {
		if err := behaviors.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing behavior store")
		}
	}()

	reg := registry.New(logger)

	sim := similarity.New(reg, logger)
	sim.SetRebuildObserver(metrics.RecordSimilarityRebuild)

	matcher := matching.NewEngine(reg, logger)
	recommender := recommend.NewEngine(reg, behaviors, sim, recommend.Options{
		MaxRecommendations: cfg.Recommend.MaxRecommendations,
		CacheTTL:           cfg.Recommend.CacheTTL,
	}, logger)

	handlers := api.NewHandlers(reg, matcher, recommender, logger)
	router := api.NewRouter(handlers, cfg.Server)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeCfg := server.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := server.NewTree(treeCfg)
	tree.Add(server.NewHTTPService(httpServer, cfg.Server.ShutdownTimeout))
	tree.Add(server.NewRefreshService(sim, cfg.Similarity.RefreshInterval, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Oraclia ready")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor stopped with error")
	}

	logging.Info().Msg("Oraclia stopped")
}

// newBehaviorStore opens the configured behavior store backend.
func newBehaviorStore(cfg *config.Config) (behavior.Store, error) {
	if cfg.Behavior.Backend == "badger" {
		return behavior.NewBadger(cfg.Behavior.BadgerPath, logging.Logger())
	}
	return behavior.NewMemory(), nil
}
