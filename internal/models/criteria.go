// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package models

import "strings"

// Urgency expresses how quickly the client needs a consultation.
type Urgency int

// Medium is the zero value so that criteria omitting urgency get the
// neutral default.
const (
	// UrgencyMedium prefers available providers.
	UrgencyMedium Urgency = iota
	// UrgencyLow tolerates offline providers and longer waits.
	UrgencyLow
	// UrgencyHigh requires immediate availability.
	UrgencyHigh
)

// String returns the wire name of the urgency level.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyMedium:
		return "medium"
	case UrgencyHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseUrgency maps a wire name to an Urgency. Unrecognized values fall
// back to medium, the neutral default.
func ParseUrgency(s string) Urgency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return UrgencyLow
	case "high":
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}

// MarshalJSON encodes the urgency as its wire name.
func (u Urgency) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON decodes an urgency wire name.
func (u *Urgency) UnmarshalJSON(data []byte) error {
	*u = ParseUrgency(strings.Trim(string(data), `"`))
	return nil
}

// ConsultationMode is the requested consultation channel.
type ConsultationMode string

// Supported consultation channels.
const (
	ModeChat  ConsultationMode = "chat"
	ModeVoice ConsultationMode = "voice"
	ModeEmail ConsultationMode = "email"
)

// RequestCriteria is a client's stated preferences for one matching
// request. Criteria are consumed once and never persisted.
type RequestCriteria struct {
	// ClientID identifies the requesting client.
	ClientID string `json:"client_id" validate:"required"`

	// PreferredCategories are the requested category tags. May be empty,
	// in which case category fit is scored neutrally.
	PreferredCategories []string `json:"preferred_categories"`

	// MaxPricePerMinute caps the acceptable rate. Nil means no cap.
	MaxPricePerMinute *float64 `json:"max_price_per_minute,omitempty" validate:"omitempty,gt=0"`

	// MinRating is the minimum acceptable aggregate rating. Nil means none.
	MinRating *float64 `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`

	// PreferredLanguages restricts matching to these languages when set.
	PreferredLanguages []string `json:"preferred_languages,omitempty"`

	// AvoidProviderIDs lists providers the client explicitly avoids.
	AvoidProviderIDs []string `json:"avoid_provider_ids,omitempty"`

	// Urgency is the requested response urgency.
	Urgency Urgency `json:"urgency"`

	// Mode is the requested consultation channel.
	Mode ConsultationMode `json:"mode,omitempty" validate:"omitempty,oneof=chat voice email"`
}

// MatchScore is the ranked suitability of one provider for one request.
// Immutable once returned.
type MatchScore struct {
	// ProviderID identifies the scored provider.
	ProviderID string `json:"provider_id"`

	// Score is the additive weighted score. Results never contain
	// non-positive scores.
	Score float64 `json:"score"`

	// Reasons are ordered display strings explaining which factors fired,
	// so the UI never has to re-derive the score.
	Reasons []string `json:"reasons"`

	// EstimatedWaitMinutes is a heuristic wait estimate, not a
	// queueing-theoretic one.
	EstimatedWaitMinutes int `json:"estimated_wait_minutes"`
}
