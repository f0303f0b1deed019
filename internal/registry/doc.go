// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package registry holds the in-memory provider catalog.
//
// The catalog is owned by the external provider directory: profiles enter
// via Upsert and mutate only via UpdateStatus partial merges. The engine
// never deletes a profile.
//
// The Store interface decouples the scoring engines from the in-memory
// implementation so a durable catalog can be swapped in without touching
// scoring logic. Mutation listeners let downstream models (the similarity
// matrix) invalidate derived state without polling.
package registry
