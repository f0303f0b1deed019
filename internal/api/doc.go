// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package api exposes the engine to its external collaborators over
// plain JSON HTTP: the provider directory pushes profiles and status
// updates, the consultation ledger reports completed consultations, the
// search layer feeds queries, and the UI reads ranked matches and
// recommendations.
//
// All responses use a standard success/error envelope encoded with
// goccy/go-json. Every request carries an X-Request-ID header for log
// correlation. Routing is chi with httprate rate limiting and CORS.
package api
