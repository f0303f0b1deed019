// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package models

import "time"

// ProviderProfile describes one consultation provider as supplied by the
// external provider directory. Profiles are mutated only through
// ProviderStatusUpdate merges; the engine never deletes them.
type ProviderProfile struct {
	// ID is the directory-assigned provider identifier.
	ID string `json:"id" validate:"required"`

	// DisplayName is the provider's public name.
	DisplayName string `json:"display_name"`

	// Categories are the consultation category tags the provider serves
	// (e.g. "Tarot", "Astrology").
	Categories []string `json:"categories"`

	// PricePerMinute is the billing rate in the marketplace currency.
	PricePerMinute float64 `json:"price_per_minute" validate:"gte=0"`

	// Rating is the aggregate client rating on a 0-5 scale.
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`

	// Languages lists the ISO language codes the provider supports.
	Languages []string `json:"languages"`

	// Online indicates current presence as of the last status update.
	// Presence is a snapshot, not a real-time guarantee.
	Online bool `json:"online"`

	// Load is the current utilization percentage (0-100).
	Load int `json:"load" validate:"gte=0,lte=100"`

	// ResponseTimeMinutes is the average time to first response.
	ResponseTimeMinutes int `json:"response_time_minutes"`

	// SuccessRate is the historical successful-consultation percentage (0-100).
	SuccessRate float64 `json:"success_rate" validate:"gte=0,lte=100"`

	// Specialties are finer-grained skill tags within the categories.
	Specialties []string `json:"specialties"`

	// YearsExperience is the provider's declared years of practice.
	YearsExperience int `json:"years_experience"`

	// LastActiveAt is when the provider last updated their status.
	LastActiveAt time.Time `json:"last_active_at"`
}

// ProviderStatusUpdate carries a partial profile mutation. Nil fields are
// left untouched; set fields are merged last-write-wins with no range
// validation, matching the directory's update contract.
type ProviderStatusUpdate struct {
	Online              *bool    `json:"online,omitempty"`
	Load                *int     `json:"load,omitempty"`
	ResponseTimeMinutes *int     `json:"response_time_minutes,omitempty"`
	PricePerMinute      *float64 `json:"price_per_minute,omitempty"`
	Rating              *float64 `json:"rating,omitempty"`
	SuccessRate         *float64 `json:"success_rate,omitempty"`
	Categories          []string `json:"categories,omitempty"`
	Specialties         []string `json:"specialties,omitempty"`
	Languages           []string `json:"languages,omitempty"`
}

// ApplyTo merges the update into the profile and stamps LastActiveAt.
func (u ProviderStatusUpdate) ApplyTo(p *ProviderProfile, now time.Time) {
	if u.Online != nil {
		p.Online = *u.Online
	}
	if u.Load != nil {
		p.Load = *u.Load
	}
	if u.ResponseTimeMinutes != nil {
		p.ResponseTimeMinutes = *u.ResponseTimeMinutes
	}
	if u.PricePerMinute != nil {
		p.PricePerMinute = *u.PricePerMinute
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.SuccessRate != nil {
		p.SuccessRate = *u.SuccessRate
	}
	if u.Categories != nil {
		p.Categories = u.Categories
	}
	if u.Specialties != nil {
		p.Specialties = u.Specialties
	}
	if u.Languages != nil {
		p.Languages = u.Languages
	}
	p.LastActiveAt = now
}
