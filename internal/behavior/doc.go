// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package behavior accumulates per-client interaction history: completed
// consultations, recent search queries, favorites, derived time-of-day
// slots, running session average, and cumulative spend.
//
// Profiles are created lazily on first update. The Store interface has
// two implementations:
//
//   - Memory: process-lifetime map, the reference behavior
//   - Badger: BadgerDB-backed, for deployments that want profiles to
//     survive restarts without touching engine logic
//
// Both apply the same mutation rules (see apply.go), so the persistence
// choice never changes observable behavior.
package behavior
