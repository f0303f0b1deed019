// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package matching scores and ranks providers against a client's request
// criteria.
//
// Scoring is additive across independently weighted factors: category
// fit, price fit, rating fit, availability, response speed, client
// affinity, and flat experience/success bonuses. The weights are
// ceilings and are not normalized to sum to 100. Bonuses can push a
// score past the nominal total; renormalizing would change ranking
// outcomes, so the raw scale is kept pending a product decision.
//
// Every triggered factor appends a display reason string so the UI can
// explain a match without re-deriving the score. The engine degrades
// silently: an empty registry yields an empty result, unknown IDs are
// no-ops, and missing optional criteria default to neutral values.
package matching
