// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package similarity

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/oraclia/internal/models"
	"github.com/tomtom215/oraclia/internal/registry"
)

// Factor weights. The four terms sum to 100, the similarity ceiling.
const (
	categoryWeight  = 40.0
	priceWeight     = 20.0
	ratingWeight    = 20.0
	specialtyWeight = 20.0

	// priceProximityRange is the price difference at which price
	// proximity reaches zero.
	priceProximityRange = 5.0
)

// ScoredProvider pairs a provider with its similarity to a source
// provider.
type ScoredProvider struct {
	// ProviderID identifies the similar provider.
	ProviderID string `json:"provider_id"`

	// Similarity is the 0-100 similarity value.
	Similarity float64 `json:"similarity"`
}

// Model holds the lazily rebuilt pairwise similarity matrix.
// Safe for concurrent use.
type Model struct {
	store  registry.Store
	logger zerolog.Logger

	mu          sync.RWMutex
	matrix      map[string]map[string]float64
	dirty       bool
	version     int
	lastBuiltAt time.Time

	// onRebuild observes rebuild durations (metrics hook). May be nil.
	onRebuild func(providers int, d time.Duration)
}

// New creates a similarity model over the given provider store and
// registers its invalidation hook when the store supports mutation
// listeners.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(store registry.Store, logger zerolog.Logger) *Model {
	m := &Model{
		store:  store,
		logger: logger.With().Str("component", "similarity").Logger(),
		dirty:  true,
	}
	if reg, ok := store.(*registry.Registry); ok {
		reg.OnMutation(m.Invalidate)
	}
	return m
}

// SetRebuildObserver installs a callback invoked after every rebuild.
func (m *Model) SetRebuildObserver(fn func(providers int, d time.Duration)) {
	m.mu.Lock()
	m.onRebuild = fn
	m.mu.Unlock()
}

// Invalidate marks the matrix stale; the next read rebuilds it.
func (m *Model) Invalidate() {
	m.mu.Lock()
	m.dirty = true
	m.mu.Unlock()
}

// Similarity returns the similarity between two providers. The second
// return value is false when either provider is unknown to the matrix.
func (m *Model) Similarity(a, b string) (float64, bool) {
	m.ensureFresh()

	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.matrix[a]
	if !ok {
		return 0, false
	}
	sim, ok := row[b]
	return sim, ok
}

// TopSimilar returns up to k providers most similar to the given one,
// descending, keeping only entries strictly above the threshold.
// Unknown providers yield an empty result, never an error.
func (m *Model) TopSimilar(providerID string, k int, threshold float64) []ScoredProvider {
	m.ensureFresh()

	m.mu.RLock()
	row, ok := m.matrix[providerID]
	if !ok || k <= 0 {
		m.mu.RUnlock()
		return nil
	}

	scored := make([]ScoredProvider, 0, len(row))
	for id, sim := range row {
		if sim > threshold {
			scored = append(scored, ScoredProvider{ProviderID: id, Similarity: sim})
		}
	}
	m.mu.RUnlock()

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		return scored[i].ProviderID < scored[j].ProviderID
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// Version returns the rebuild generation, incremented on every rebuild.
func (m *Model) Version() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// LastBuiltAt returns when the matrix was last rebuilt.
func (m *Model) LastBuiltAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastBuiltAt
}

// Rebuild recomputes the full matrix over the current registry snapshot.
func (m *Model) Rebuild() {
	start := time.Now()
	providers := m.store.Snapshot()

	matrix := make(map[string]map[string]float64, len(providers))
	for i := range providers {
		row := make(map[string]float64, len(providers)-1)
		matrix[providers[i].ID] = row
	}

	// Compute each unordered pair once and mirror it, keeping the
	// symmetry invariant exact rather than merely numerically close.
	for i := range providers {
		for j := i + 1; j < len(providers); j++ {
			sim := pairSimilarity(&providers[i], &providers[j])
			matrix[providers[i].ID][providers[j].ID] = sim
			matrix[providers[j].ID][providers[i].ID] = sim
		}
	}

	m.mu.Lock()
	m.matrix = matrix
	m.dirty = false
	m.version++
	m.lastBuiltAt = time.Now()
	observer := m.onRebuild
	version := m.version
	m.mu.Unlock()

	elapsed := time.Since(start)
	m.logger.Debug().
		Int("providers", len(providers)).
		Int("version", version).
		Dur("elapsed", elapsed).
		Msg("similarity matrix rebuilt")

	if observer != nil {
		observer(len(providers), elapsed)
	}
}

// ensureFresh rebuilds the matrix when a mutation has marked it dirty.
func (m *Model) ensureFresh() {
	m.mu.RLock()
	dirty := m.dirty
	m.mu.RUnlock()

	if dirty {
		m.Rebuild()
	}
}

// pairSimilarity computes the weighted 0-100 similarity of two profiles.
func pairSimilarity(a, b *models.ProviderProfile) float64 {
	sim := categoryWeight * overlapRatio(a.Categories, b.Categories)
	sim += priceWeight * proximity(a.PricePerMinute, b.PricePerMinute, priceProximityRange)
	sim += ratingWeight * proximity(a.Rating, b.Rating, 1.0)
	sim += specialtyWeight * overlapRatio(a.Specialties, b.Specialties)
	return sim
}

// overlapRatio is |a ∩ b| / max(|a|, |b|) over case-insensitive tags.
func overlapRatio(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[strings.ToLower(s)] = struct{}{}
	}

	intersection := 0
	seen := make(map[string]struct{}, len(b))
	for _, s := range b {
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := setA[key]; ok {
			intersection++
		}
	}

	larger := len(setA)
	if len(seen) > larger {
		larger = len(seen)
	}
	return float64(intersection) / float64(larger)
}

// proximity maps an absolute difference onto [0, 1], reaching zero at
// the given range.
func proximity(a, b, valueRange float64) float64 {
	return math.Max(0, 1-math.Abs(a-b)/valueRange)
}
