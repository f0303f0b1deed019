// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package server runs the service under a suture supervision tree: the
// HTTP listener and the periodic similarity refresher each run as a
// supervised service and are restarted with backoff on failure.
// Supervisor events are logged through the sutureslog adapter into the
// shared zerolog pipeline.
package server
