// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package models

import "time"

// MaxSearchQueries bounds the per-client search query log. Older entries
// are evicted FIFO.
const MaxSearchQueries = 20

// FavoriteRatingThreshold is the rating at which a consultation
// auto-adds the provider to the client's favorites.
const FavoriteRatingThreshold = 4.0

// Consultation is one completed consultation as reported by the
// consultation ledger.
type Consultation struct {
	// ProviderID is the provider who served the consultation.
	ProviderID string `json:"provider_id" validate:"required"`

	// Category is the consultation category.
	Category string `json:"category"`

	// Rating is the rating the client gave (0-5).
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`

	// DurationMinutes is the session length.
	DurationMinutes int `json:"duration_minutes" validate:"gte=0"`

	// Cost is the amount billed for the session, used to accumulate the
	// client's total spend.
	Cost float64 `json:"cost" validate:"gte=0"`

	// Timestamp is when the consultation completed.
	Timestamp time.Time `json:"timestamp"`
}

// Successful reports whether the consultation counts as a positive
// signal for affinity and favorites.
func (c Consultation) Successful() bool {
	return c.Rating >= FavoriteRatingThreshold
}

// ClientBehaviorProfile is a client's accumulated interaction history,
// created lazily on first update.
type ClientBehaviorProfile struct {
	// ClientID identifies the client.
	ClientID string `json:"client_id"`

	// Consultations is the ordered consultation history, oldest first.
	Consultations []Consultation `json:"consultations"`

	// SearchQueries holds the most recent search queries, oldest first,
	// bounded to MaxSearchQueries.
	SearchQueries []string `json:"search_queries"`

	// FavoriteProviderIDs is the append-only favorites list. Providers are
	// auto-added when a consultation is rated at or above
	// FavoriteRatingThreshold and never removed.
	FavoriteProviderIDs []string `json:"favorite_provider_ids"`

	// PreferredTimeSlots are the time-of-day slots the client consults in,
	// derived from consultation timestamps.
	PreferredTimeSlots []string `json:"preferred_time_slots"`

	// AverageSessionMinutes is the running mean consultation duration.
	AverageSessionMinutes float64 `json:"average_session_minutes"`

	// TotalSpend is the cumulative amount spent across consultations.
	TotalSpend float64 `json:"total_spend"`
}

// Time-of-day slot names used in PreferredTimeSlots.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotNight     = "night"
)

// SlotForHour buckets an hour of day (0-23) into a named slot.
func SlotForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotAfternoon
	case hour >= 18 && hour < 24:
		return SlotEvening
	default:
		return SlotNight
	}
}
