// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package matching

import (
	"strings"

	"github.com/tomtom215/oraclia/internal/models"
)

// Factor weight ceilings. Deliberately not normalized: bonuses can push
// a total past the nominal sum and the ranking depends on that.
const (
	categoryWeight     = 30.0
	priceWeight        = 20.0
	ratingWeight       = 15.0
	availabilityWeight = 15.0
	responseWeight     = 10.0

	affinityBonus   = 10.0
	avoidPenalty    = 5.0
	experienceBonus = 5.0
	successBonus    = 5.0

	// neutralCategoryFit applies when the client states no categories,
	// so providers are not unfairly zeroed out.
	neutralCategoryFit = 0.5

	// flatPriceFactor applies when no price cap is given.
	flatPriceFactor = 0.8

	// offlineLowUrgencyBonus is the only availability credit an offline
	// provider can earn, and only when the client is not in a hurry.
	offlineLowUrgencyBonus = 5.0

	// responseDecayMinutes is where the response-speed factor hits zero.
	responseDecayMinutes = 30.0

	experienceYearsThreshold = 10
	successRateThreshold     = 90.0
	busyLoadThreshold        = 50
	excellentRating          = 4.5
	fastResponseMinutes      = 5
)

// Display reasons, in the marketplace UI locale.
const (
	reasonPerfectSpecialty  = "Specializzazione perfetta"
	reasonRelatedSpecialty  = "Specializzazione affine"
	reasonWithinBudget      = "Prezzo nel tuo budget"
	reasonExcellentRating   = "Valutazioni eccellenti"
	reasonAvailableNow      = "Subito disponibile"
	reasonByAppointment     = "Disponibile su appuntamento"
	reasonFastResponse      = "Risposta rapida"
	reasonPreviousSuccess   = "Hai già consultato questo esperto"
	reasonLongExperience    = "Esperienza pluriennale"
	reasonHighSuccessRate   = "Alto tasso di successo"
)

// scoreProvider computes the additive match score and the ordered reason
// list for one provider. hasAffinity reports a recorded successful
// consultation between this client and provider; affinity from history
// takes precedence over the avoid-list penalty.
func scoreProvider(p *models.ProviderProfile, criteria *models.RequestCriteria, hasAffinity bool) (float64, []string) {
	var score float64
	var reasons []string

	// Category fit.
	fit := neutralCategoryFit
	if len(criteria.PreferredCategories) > 0 {
		matched := 0
		for _, want := range criteria.PreferredCategories {
			if matchesAnyCategory(want, p.Categories) {
				matched++
			}
		}
		fit = float64(matched) / float64(len(criteria.PreferredCategories))
		switch {
		case fit == 1:
			reasons = append(reasons, reasonPerfectSpecialty)
		case fit >= 0.5:
			reasons = append(reasons, reasonRelatedSpecialty)
		}
	}
	score += fit * categoryWeight

	// Price fit: within a stated cap the factor falls off linearly as
	// the rate approaches the cap; above the cap the factor is skipped.
	if criteria.MaxPricePerMinute != nil {
		maxPrice := *criteria.MaxPricePerMinute
		if maxPrice > 0 && p.PricePerMinute <= maxPrice {
			score += (1 - p.PricePerMinute/maxPrice) * priceWeight
			reasons = append(reasons, reasonWithinBudget)
		}
	} else {
		score += flatPriceFactor * priceWeight
	}

	// Rating fit.
	if criteria.MinRating == nil || p.Rating >= *criteria.MinRating {
		score += p.Rating / 5 * ratingWeight
		if p.Rating >= excellentRating {
			reasons = append(reasons, reasonExcellentRating)
		}
	}

	// Availability.
	if p.Online {
		score += (1 - float64(p.Load)/100) * availabilityWeight
		if p.Load < busyLoadThreshold {
			reasons = append(reasons, reasonAvailableNow)
		}
	} else if criteria.Urgency == models.UrgencyLow {
		score += offlineLowUrgencyBonus
		reasons = append(reasons, reasonByAppointment)
	}

	// Response speed: linear decay to zero at responseDecayMinutes.
	if rt := float64(p.ResponseTimeMinutes); rt < responseDecayMinutes {
		score += (responseDecayMinutes - rt) / responseDecayMinutes * responseWeight
		if p.ResponseTimeMinutes <= fastResponseMinutes {
			reasons = append(reasons, reasonFastResponse)
		}
	}

	// Client affinity.
	switch {
	case hasAffinity:
		score += affinityBonus
		reasons = append(reasons, reasonPreviousSuccess)
	case containsID(criteria.AvoidProviderIDs, p.ID):
		score -= avoidPenalty
	}

	// Flat bonuses.
	if p.YearsExperience >= experienceYearsThreshold {
		score += experienceBonus
		reasons = append(reasons, reasonLongExperience)
	}
	if p.SuccessRate >= successRateThreshold {
		score += successBonus
		reasons = append(reasons, reasonHighSuccessRate)
	}

	return score, reasons
}

// estimateWaitMinutes is a display heuristic, not a queueing estimate.
func estimateWaitMinutes(p *models.ProviderProfile) int {
	if p.Online {
		wait := p.ResponseTimeMinutes + p.Load/10
		if wait < 1 {
			return 1
		}
		return wait
	}
	if p.ResponseTimeMinutes > 15 {
		return p.ResponseTimeMinutes
	}
	return 15
}

// matchesAnyCategory fuzzy-matches a requested category against provider
// tags: case-insensitive substring in either direction.
func matchesAnyCategory(want string, tags []string) bool {
	w := strings.ToLower(strings.TrimSpace(want))
	if w == "" {
		return false
	}
	for _, tag := range tags {
		tl := strings.ToLower(tag)
		if strings.Contains(tl, w) || strings.Contains(w, tl) {
			return true
		}
	}
	return false
}

// speaksAny reports whether the provider serves at least one of the
// requested languages. No stated preference, or a provider without a
// declared language list, always passes.
func speaksAny(spoken, wanted []string) bool {
	if len(wanted) == 0 || len(spoken) == 0 {
		return true
	}
	for _, w := range wanted {
		for _, s := range spoken {
			if strings.EqualFold(s, w) {
				return true
			}
		}
	}
	return false
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
