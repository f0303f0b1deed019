// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package recommend aggregates personalized recommendations from four
// independent sources: provider similarity over well-rated history,
// category correlation, preferred time slots, and loyalty promotions.
//
// Candidates from all sources are merged, sorted by priority then
// confidence, and capped. A client with no behavior profile gets a
// fixed cold-start list so the UI is never empty. Results are cached
// per client with a short TTL; behavior updates routed through the
// engine invalidate the cached entry.
package recommend
