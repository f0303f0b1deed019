// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/oraclia/internal/behavior"
	"github.com/tomtom215/oraclia/internal/metrics"
	"github.com/tomtom215/oraclia/internal/models"
	"github.com/tomtom215/oraclia/internal/registry"
	"github.com/tomtom215/oraclia/internal/similarity"
)

// Source thresholds and confidence values.
const (
	// DefaultMaxRecommendations caps the final list.
	DefaultMaxRecommendations = 10

	similarCandidates       = 3
	similarityFloor         = 60.0
	highConfidenceThreshold = 80.0

	frequentCategoryMin   = 2
	confidencePerVisit    = 20.0
	maxConfidence         = 100.0
	eveningConfidence     = 75.0
	loyaltySpendThreshold = 100.0
	loyaltyConfidence     = 90.0
	freeConsultThreshold  = 5
	freeConsultConfidence = 100.0

	coldStartProviderConfidence = 80.0
	coldStartCategoryConfidence = 70.0
)

// categoryCorrelations is the static correlation table used by the
// category source. Keys are lowercased.
var categoryCorrelations = map[string][]string{
	"tarot":      {"Cartomancy", "Sibyls", "Oracles"},
	"cartomancy": {"Tarot", "Sibyls"},
	"sibyls":     {"Cartomancy", "Oracles"},
	"astrology":  {"Numerology", "Karmic Astrology"},
	"numerology": {"Astrology", "Angelic Numbers"},
	"love":       {"Tarot", "Cartomancy"},
}

// coldStartCategory is the category suggested to clients without any
// history.
const coldStartCategory = "Tarot"

type cacheEntry struct {
	recs      []models.Recommendation
	expiresAt time.Time
}

// Engine aggregates recommendations from the behavior store, the
// similarity model, and the provider registry. Safe for concurrent use.
type Engine struct {
	providers registry.Store
	behaviors behavior.Store
	sim       *similarity.Model
	logger    zerolog.Logger

	maxRecommendations int
	cacheTTL           time.Duration

	cacheMu sync.Mutex
	cache   map[string]cacheEntry

	now func() time.Time
}

// Options tunes the engine; zero values select the defaults.
type Options struct {
	// MaxRecommendations caps the final list. Defaults to
	// DefaultMaxRecommendations.
	MaxRecommendations int

	// CacheTTL bounds how long a generated list is served from cache.
	// Zero or negative disables caching.
	CacheTTL time.Duration
}

// NewEngine creates a recommendation engine over the given stores.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(providers registry.Store, behaviors behavior.Store, sim *similarity.Model, opts Options, logger zerolog.Logger) *Engine {
	maxRecs := opts.MaxRecommendations
	if maxRecs <= 0 {
		maxRecs = DefaultMaxRecommendations
	}

	return &Engine{
		providers:          providers,
		behaviors:          behaviors,
		sim:                sim,
		logger:             logger.With().Str("component", "recommend").Logger(),
		maxRecommendations: maxRecs,
		cacheTTL:           opts.CacheTTL,
		cache:              make(map[string]cacheEntry),
		now:                time.Now,
	}
}

// Generate returns the personalized recommendation list for the client,
// sorted by priority then descending confidence and capped. A client
// with no behavior profile gets the fixed cold-start list; the result
// is never empty and never an error.
func (e *Engine) Generate(ctx context.Context, clientID string) []models.Recommendation {
	if cached, ok := e.fromCache(clientID); ok {
		metrics.RecordRecommendationRequest(metrics.SourceCache, len(cached))
		return cached
	}

	select {
	case <-ctx.Done():
		return nil
	default:
	}

	profile, ok := e.behaviors.Get(clientID)
	if !ok {
		recs := e.coldStart()
		metrics.RecordRecommendationRequest(metrics.SourceColdStart, len(recs))
		e.store(clientID, recs)
		return recs
	}

	var candidates []models.Recommendation
	candidates = append(candidates, e.fromSimilarProviders(&profile)...)
	candidates = append(candidates, e.fromCategoryCorrelations(&profile)...)
	candidates = append(candidates, fromTimeSlots(&profile)...)
	candidates = append(candidates, fromLoyalty(&profile)...)

	sortRecommendations(candidates)
	if len(candidates) > e.maxRecommendations {
		candidates = candidates[:e.maxRecommendations]
	}

	e.logger.Debug().
		Str("client_id", clientID).
		Int("recommendations", len(candidates)).
		Msg("recommendations generated")

	metrics.RecordRecommendationRequest(metrics.SourceGenerated, len(candidates))
	e.store(clientID, candidates)
	return candidates
}

// RecordConsultation routes a completed consultation to the behavior
// store and invalidates the client's cached recommendations.
func (e *Engine) RecordConsultation(clientID string, c models.Consultation) (models.ClientBehaviorProfile, error) {
	profile, err := e.behaviors.RecordConsultation(clientID, c)
	if err != nil {
		return profile, fmt.Errorf("record consultation: %w", err)
	}
	metrics.RecordBehaviorEvent(metrics.EventConsultation)
	e.Invalidate(clientID)
	return profile, nil
}

// AddSearchQuery routes a search query to the behavior store and
// invalidates the client's cached recommendations.
func (e *Engine) AddSearchQuery(clientID, query string) error {
	if err := e.behaviors.AddSearchQuery(clientID, query); err != nil {
		return fmt.Errorf("add search query: %w", err)
	}
	metrics.RecordBehaviorEvent(metrics.EventSearchQuery)
	e.Invalidate(clientID)
	return nil
}

// Invalidate drops the client's cached recommendation list.
func (e *Engine) Invalidate(clientID string) {
	e.cacheMu.Lock()
	delete(e.cache, clientID)
	e.cacheMu.Unlock()
}

// fromSimilarProviders emits provider recommendations derived from the
// similarity model: for every consultation rated at or above the
// favorite threshold, the top similar providers above the floor
// qualify. Duplicates keep the highest confidence.
func (e *Engine) fromSimilarProviders(profile *models.ClientBehaviorProfile) []models.Recommendation {
	best := make(map[string]models.Recommendation)

	for _, c := range profile.Consultations {
		if !c.Successful() {
			continue
		}
		for _, scored := range e.sim.TopSimilar(c.ProviderID, similarCandidates, similarityFloor) {
			priority := models.PriorityMedium
			if scored.Similarity > highConfidenceThreshold {
				priority = models.PriorityHigh
			}

			rec := models.Recommendation{
				Type:          models.RecommendationProvider,
				Title:         fmt.Sprintf("Consulta %s", e.displayName(scored.ProviderID)),
				Description:   "Un esperto molto simile a quelli che hai apprezzato",
				Confidence:    scored.Similarity,
				ProviderID:    scored.ProviderID,
				Justification: "Simile a un esperto che hai valutato positivamente",
				Priority:      priority,
			}

			if prev, seen := best[scored.ProviderID]; !seen || rec.Confidence > prev.Confidence {
				best[scored.ProviderID] = rec
			}
		}
	}

	recs := make([]models.Recommendation, 0, len(best))
	for _, rec := range best {
		recs = append(recs, rec)
	}
	return recs
}

// fromCategoryCorrelations suggests correlated categories the client
// has not tried yet, for every category visited at least
// frequentCategoryMin times.
func (e *Engine) fromCategoryCorrelations(profile *models.ClientBehaviorProfile) []models.Recommendation {
	freq := make(map[string]int)
	tried := make(map[string]struct{})
	for _, c := range profile.Consultations {
		key := strings.ToLower(strings.TrimSpace(c.Category))
		if key == "" {
			continue
		}
		freq[key]++
		tried[key] = struct{}{}
	}

	best := make(map[string]models.Recommendation)
	for category, count := range freq {
		if count < frequentCategoryMin {
			continue
		}
		confidence := float64(count) * confidencePerVisit
		if confidence > maxConfidence {
			confidence = maxConfidence
		}

		for _, related := range categoryCorrelations[category] {
			key := strings.ToLower(related)
			if _, done := tried[key]; done {
				continue
			}

			rec := models.Recommendation{
				Type:          models.RecommendationCategory,
				Title:         fmt.Sprintf("Scopri la categoria %s", related),
				Description:   fmt.Sprintf("Affine a %s, che consulti spesso", titleCase(category)),
				Confidence:    confidence,
				Category:      related,
				Justification: fmt.Sprintf("Hai consultato %s %d volte", titleCase(category), count),
				Priority:      models.PriorityMedium,
			}

			if prev, seen := best[key]; !seen || rec.Confidence > prev.Confidence {
				best[key] = rec
			}
		}
	}

	recs := make([]models.Recommendation, 0, len(best))
	for _, rec := range best {
		recs = append(recs, rec)
	}
	return recs
}

// fromTimeSlots emits the evening-availability suggestion for clients
// who consult in the evening.
func fromTimeSlots(profile *models.ClientBehaviorProfile) []models.Recommendation {
	for _, slot := range profile.PreferredTimeSlots {
		if slot != models.SlotEvening {
			continue
		}
		return []models.Recommendation{{
			Type:          models.RecommendationTimeSlot,
			Title:         "Esperti disponibili in serata",
			Description:   "Molti esperti sono online nelle tue ore preferite",
			Confidence:    eveningConfidence,
			Justification: "Preferisci consultazioni serali",
			Priority:      models.PriorityLow,
		}}
	}
	return nil
}

// fromLoyalty emits the two loyalty promotions. They are independent
// and may both fire.
func fromLoyalty(profile *models.ClientBehaviorProfile) []models.Recommendation {
	var recs []models.Recommendation

	if profile.TotalSpend > loyaltySpendThreshold {
		recs = append(recs, models.Recommendation{
			Type:          models.RecommendationPromotion,
			Title:         "Sconto fedeltà del 10%",
			Description:   "Un ringraziamento per la tua fedeltà",
			Confidence:    loyaltyConfidence,
			Justification: fmt.Sprintf("Hai superato %.0f crediti di spesa", loyaltySpendThreshold),
			Priority:      models.PriorityHigh,
		})
	}

	if len(profile.Consultations) >= freeConsultThreshold {
		recs = append(recs, models.Recommendation{
			Type:          models.RecommendationPromotion,
			Title:         "Consulto gratuito di 5 minuti",
			Description:   "Il tuo prossimo consulto inizia gratis",
			Confidence:    freeConsultConfidence,
			Justification: fmt.Sprintf("Hai completato almeno %d consulti", freeConsultThreshold),
			Priority:      models.PriorityHigh,
		})
	}

	return recs
}

// coldStart builds the fixed default list for clients without history:
// one popular-provider suggestion and one popular-category suggestion.
func (e *Engine) coldStart() []models.Recommendation {
	provider := models.Recommendation{
		Type:          models.RecommendationProvider,
		Title:         "L'esperto più amato del momento",
		Description:   "Inizia con un esperto apprezzato dalla community",
		Confidence:    coldStartProviderConfidence,
		Justification: "Suggerimento per i nuovi clienti",
		Priority:      models.PriorityMedium,
	}
	if popular, ok := e.popularProvider(); ok {
		provider.Title = fmt.Sprintf("Consulta %s", displayNameOf(popular))
		provider.ProviderID = popular.ID
	}

	category := models.Recommendation{
		Type:          models.RecommendationCategory,
		Title:         fmt.Sprintf("Inizia con la categoria %s", coldStartCategory),
		Description:   "La categoria più richiesta dai nuovi clienti",
		Confidence:    coldStartCategoryConfidence,
		Category:      coldStartCategory,
		Justification: "Suggerimento per i nuovi clienti",
		Priority:      models.PriorityMedium,
	}

	return []models.Recommendation{provider, category}
}

// popularProvider picks the highest-rated registered provider,
// tie-broken by ID for determinism.
func (e *Engine) popularProvider() (models.ProviderProfile, bool) {
	snapshot := e.providers.Snapshot()
	if len(snapshot) == 0 {
		return models.ProviderProfile{}, false
	}

	best := snapshot[0]
	for _, p := range snapshot[1:] {
		if p.Rating > best.Rating {
			best = p
		}
	}
	return best, true
}

func (e *Engine) displayName(providerID string) string {
	if p, ok := e.providers.Get(providerID); ok {
		return displayNameOf(p)
	}
	return providerID
}

//nolint:gocritic // hugeParam: profiles are value records by design
func displayNameOf(p models.ProviderProfile) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.ID
}

// sortRecommendations orders by priority, then descending confidence,
// then title for a stable final list.
func sortRecommendations(recs []models.Recommendation) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority > recs[j].Priority
		}
		if recs[i].Confidence != recs[j].Confidence {
			return recs[i].Confidence > recs[j].Confidence
		}
		return recs[i].Title < recs[j].Title
	})
}

func (e *Engine) fromCache(clientID string) ([]models.Recommendation, bool) {
	if e.cacheTTL <= 0 {
		return nil, false
	}

	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	entry, ok := e.cache[clientID]
	if !ok || e.now().After(entry.expiresAt) {
		delete(e.cache, clientID)
		return nil, false
	}

	out := make([]models.Recommendation, len(entry.recs))
	copy(out, entry.recs)
	return out, true
}

func (e *Engine) store(clientID string, recs []models.Recommendation) {
	if e.cacheTTL <= 0 {
		return
	}

	kept := make([]models.Recommendation, len(recs))
	copy(kept, recs)

	e.cacheMu.Lock()
	e.cache[clientID] = cacheEntry{recs: kept, expiresAt: e.now().Add(e.cacheTTL)}
	e.cacheMu.Unlock()
}

// titleCase restores display casing for a lowercased category key.
func titleCase(category string) string {
	if category == "" {
		return category
	}
	return strings.ToUpper(category[:1]) + category[1:]
}
