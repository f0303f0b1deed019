// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package similarity

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomtom215/oraclia/internal/models"
	"github.com/tomtom215/oraclia/internal/registry"
)

func seededModel(t *testing.T, providers ...models.ProviderProfile) (*Model, *registry.Registry) {
	t.Helper()
	reg := registry.New(zerolog.Nop())
	m := New(reg, zerolog.Nop())
	for _, p := range providers {
		reg.Upsert(p)
	}
	return m, reg
}

func TestSymmetryInvariant(t *testing.T) {
	m, _ := seededModel(t,
		models.ProviderProfile{ID: "a", Categories: []string{"Tarot", "Love"}, PricePerMinute: 2.5, Rating: 4.9, Specialties: []string{"cartomancy"}},
		models.ProviderProfile{ID: "b", Categories: []string{"Tarot"}, PricePerMinute: 3.0, Rating: 4.1, Specialties: []string{"cartomancy", "sibyls"}},
		models.ProviderProfile{ID: "c", Categories: []string{"Astrology"}, PricePerMinute: 1.0, Rating: 3.0},
	)

	ids := []string{"a", "b", "c"}
	for _, x := range ids {
		for _, y := range ids {
			if x == y {
				continue
			}
			sx, okX := m.Similarity(x, y)
			sy, okY := m.Similarity(y, x)
			require.True(t, okX)
			require.True(t, okY)
			assert.Equal(t, sx, sy, "similarity(%s,%s) must equal similarity(%s,%s)", x, y, y, x)
		}
	}
}

func TestIdenticalProfilesScoreFull(t *testing.T) {
	twin := func(id string) models.ProviderProfile {
		return models.ProviderProfile{
			ID:             id,
			Categories:     []string{"Tarot", "Love"},
			PricePerMinute: 2.5,
			Rating:         4.9,
			Specialties:    []string{"cartomancy"},
		}
	}
	m, _ := seededModel(t, twin("a"), twin("b"))

	sim, ok := m.Similarity("a", "b")
	require.True(t, ok)
	assert.InDelta(t, 100.0, sim, 1e-9)
}

func TestDisjointProfilesScoreByProximityOnly(t *testing.T) {
	m, _ := seededModel(t,
		models.ProviderProfile{ID: "a", Categories: []string{"Tarot"}, PricePerMinute: 2.0, Rating: 4.0},
		models.ProviderProfile{ID: "b", Categories: []string{"Runes"}, PricePerMinute: 2.0, Rating: 4.0},
	)

	// No category/specialty overlap; identical price and rating
	// contribute the two 20-point proximity terms.
	sim, ok := m.Similarity("a", "b")
	require.True(t, ok)
	assert.InDelta(t, 40.0, sim, 1e-9)
}

func TestPairSimilarityFormula(t *testing.T) {
	a := models.ProviderProfile{
		ID:             "a",
		Categories:     []string{"Tarot", "Love"},
		PricePerMinute: 2.0,
		Rating:         4.5,
		Specialties:    []string{"x", "y"},
	}
	b := models.ProviderProfile{
		ID:             "b",
		Categories:     []string{"tarot"},
		PricePerMinute: 4.5,
		Rating:         4.0,
		Specialties:    []string{"y"},
	}

	// category: 1/2 -> 20; price: 1-2.5/5=0.5 -> 10;
	// rating: 1-0.5=0.5 -> 10; specialty: 1/2 -> 10. Total 50.
	assert.InDelta(t, 50.0, pairSimilarity(&a, &b), 1e-9)
}

func TestOverlapRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"both empty", nil, nil, 0},
		{"one empty", []string{"x"}, nil, 0},
		{"identical", []string{"x", "y"}, []string{"y", "x"}, 1},
		{"case insensitive", []string{"Tarot"}, []string{"tarot"}, 1},
		{"partial", []string{"x", "y", "z"}, []string{"x"}, 1.0 / 3.0},
		{"duplicates collapse", []string{"x"}, []string{"x", "X", "x"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, overlapRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDirtyFlagLazyRebuild(t *testing.T) {
	m, reg := seededModel(t,
		models.ProviderProfile{ID: "a", Categories: []string{"Tarot"}},
		models.ProviderProfile{ID: "b", Categories: []string{"Tarot"}},
	)

	_, ok := m.Similarity("a", "b")
	require.True(t, ok)
	v1 := m.Version()

	// A read without intervening mutations must not rebuild.
	m.Similarity("a", "b")
	assert.Equal(t, v1, m.Version())

	// Registry mutation invalidates; the next read rebuilds and sees the
	// new provider.
	reg.Upsert(models.ProviderProfile{ID: "c", Categories: []string{"Tarot"}})
	_, ok = m.Similarity("a", "c")
	assert.True(t, ok)
	assert.Greater(t, m.Version(), v1)
}

func TestTopSimilarOrderingAndThreshold(t *testing.T) {
	m, _ := seededModel(t,
		models.ProviderProfile{ID: "src", Categories: []string{"Tarot"}, PricePerMinute: 2, Rating: 4.5, Specialties: []string{"s"}},
		models.ProviderProfile{ID: "near", Categories: []string{"Tarot"}, PricePerMinute: 2, Rating: 4.5, Specialties: []string{"s"}},
		models.ProviderProfile{ID: "mid", Categories: []string{"Tarot"}, PricePerMinute: 3, Rating: 4.0},
		models.ProviderProfile{ID: "far", Categories: []string{"Runes"}, PricePerMinute: 9, Rating: 1.0},
	)

	top := m.TopSimilar("src", 3, 60)
	require.NotEmpty(t, top)
	assert.Equal(t, "near", top[0].ProviderID)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Similarity, top[i].Similarity)
	}
	for _, s := range top {
		assert.Greater(t, s.Similarity, 60.0)
		assert.NotEqual(t, "src", s.ProviderID)
	}
}

func TestTopSimilarUnknownProvider(t *testing.T) {
	m, _ := seededModel(t, models.ProviderProfile{ID: "a"})
	assert.Empty(t, m.TopSimilar("ghost", 3, 60))
}

func TestRebuildObserver(t *testing.T) {
	m, _ := seededModel(t,
		models.ProviderProfile{ID: "a"},
		models.ProviderProfile{ID: "b"},
	)

	var observedProviders int
	m.SetRebuildObserver(func(providers int, _ time.Duration) {
		observedProviders = providers
	})

	m.Rebuild()
	assert.Equal(t, 2, observedProviders)
}
