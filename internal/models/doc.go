// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package models defines the plain data records exchanged between the
// matching and recommendation engine and its external collaborators.
//
// The engine consumes and produces these records as-is; it owns no wire
// format beyond their JSON encoding. Records are grouped by owner:
//
//   - ProviderProfile / ProviderStatusUpdate: provider directory
//   - RequestCriteria: client session context
//   - Consultation: consultation ledger
//   - MatchScore / Recommendation: engine outputs consumed by the UI layer
//
// All records are value types with no behavior beyond parsing and
// ordering helpers for the enumerated fields.
package models
