// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package models

import "strings"

// RecommendationType tags what a recommendation points at.
type RecommendationType string

// Recommendation type tags.
const (
	RecommendationProvider  RecommendationType = "provider"
	RecommendationCategory  RecommendationType = "category"
	RecommendationTimeSlot  RecommendationType = "time_slot"
	RecommendationPromotion RecommendationType = "promotion"
)

// Priority orders recommendations ahead of confidence.
type Priority int

const (
	// PriorityLow sorts last.
	PriorityLow Priority = iota
	// PriorityMedium sorts between high and low.
	PriorityMedium
	// PriorityHigh sorts first.
	PriorityHigh
)

// String returns the wire name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// ParsePriority maps a wire name to a Priority, defaulting to low.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// MarshalJSON encodes the priority as its wire name.
func (p Priority) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON decodes a priority wire name.
func (p *Priority) UnmarshalJSON(data []byte) error {
	*p = ParsePriority(strings.Trim(string(data), `"`))
	return nil
}

// Recommendation is one personalized suggestion produced by the
// recommendation engine.
type Recommendation struct {
	// Type tags the suggestion target.
	Type RecommendationType `json:"type"`

	// Title is the display headline.
	Title string `json:"title"`

	// Description is the display body.
	Description string `json:"description"`

	// Confidence is the engine's confidence in the suggestion (0-100).
	Confidence float64 `json:"confidence"`

	// ProviderID is set for provider recommendations.
	ProviderID string `json:"provider_id,omitempty"`

	// Category is set for category recommendations.
	Category string `json:"category,omitempty"`

	// Justification explains why the suggestion was made.
	Justification string `json:"justification"`

	// Priority orders the final list ahead of confidence.
	Priority Priority `json:"priority"`
}
