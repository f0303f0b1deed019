// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package logging provides the zerolog-based global logger for Oraclia.
//
// Initialize once at startup, then log through the package helpers or
// component child loggers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("component", "matching").Msg("engine ready")
//
//	matchLogger := logging.With().Str("component", "matching").Logger()
//
// Request-scoped correlation IDs travel through context.Context; the API
// middleware attaches one per request and handlers retrieve it with
// RequestIDFromContext.
package logging
