// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package behavior

import "github.com/tomtom215/oraclia/internal/models"

// Store is the behavior profile repository consumed by the
// recommendation engine and fed by the consultation ledger and search
// layer.
type Store interface {
	// Get returns the profile for the client. The second return value is
	// false when no profile exists yet (cold start).
	Get(clientID string) (models.ClientBehaviorProfile, bool)

	// RecordConsultation appends a completed consultation to the client's
	// history, creating the profile lazily. It returns the updated
	// profile.
	RecordConsultation(clientID string, c models.Consultation) (models.ClientBehaviorProfile, error)

	// AddSearchQuery appends a search query, evicting the oldest entry
	// once the bounded log is full. Empty queries are ignored.
	AddSearchQuery(clientID, query string) error

	// Close releases any backing resources.
	Close() error
}
