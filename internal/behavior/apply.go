// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package behavior

import (
	"time"

	"github.com/tomtom215/oraclia/internal/models"
)

// newProfile creates an empty profile for a client.
func newProfile(clientID string) models.ClientBehaviorProfile {
	return models.ClientBehaviorProfile{ClientID: clientID}
}

// applyConsultation mutates a profile with one completed consultation.
// Shared by every Store implementation so persistence choice never
// changes observable behavior.
func applyConsultation(p *models.ClientBehaviorProfile, c models.Consultation, now time.Time) {
	if c.Timestamp.IsZero() {
		c.Timestamp = now
	}

	p.Consultations = append(p.Consultations, c)

	// Running mean over the full history.
	n := float64(len(p.Consultations))
	p.AverageSessionMinutes += (float64(c.DurationMinutes) - p.AverageSessionMinutes) / n

	p.TotalSpend += c.Cost

	// Auto-favorite on high ratings; the list is append-only.
	if c.Successful() && !contains(p.FavoriteProviderIDs, c.ProviderID) {
		p.FavoriteProviderIDs = append(p.FavoriteProviderIDs, c.ProviderID)
	}

	slot := models.SlotForHour(c.Timestamp.Hour())
	if !contains(p.PreferredTimeSlots, slot) {
		p.PreferredTimeSlots = append(p.PreferredTimeSlots, slot)
	}
}

// applySearchQuery appends a query to the bounded FIFO log.
func applySearchQuery(p *models.ClientBehaviorProfile, query string) {
	if query == "" {
		return
	}
	p.SearchQueries = append(p.SearchQueries, query)
	if excess := len(p.SearchQueries) - models.MaxSearchQueries; excess > 0 {
		p.SearchQueries = append([]string(nil), p.SearchQueries[excess:]...)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
