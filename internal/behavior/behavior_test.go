// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package behavior

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomtom215/oraclia/internal/models"
)

// storeFactories lets every behavioral test run against both backends.
func storeFactories(t *testing.T) map[string]func() Store {
	t.Helper()
	return map[string]func() Store{
		"memory": func() Store { return NewMemory() },
		"badger": func() Store {
			s, err := NewBadger(t.TempDir(), zerolog.Nop())
			require.NoError(t, err)
			return s
		},
	}
}

func TestColdStartHasNoProfile(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory()
			defer s.Close()

			_, ok := s.Get("nobody")
			assert.False(t, ok)
		})
	}
}

func TestRecordConsultationCreatesLazily(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory()
			defer s.Close()

			ts := time.Date(2026, 2, 10, 20, 30, 0, 0, time.UTC)
			p, err := s.RecordConsultation("cl-1", models.Consultation{
				ProviderID:      "op-1",
				Category:        "Tarot",
				Rating:          4.5,
				DurationMinutes: 30,
				Cost:            45,
				Timestamp:       ts,
			})
			require.NoError(t, err)

			assert.Equal(t, "cl-1", p.ClientID)
			require.Len(t, p.Consultations, 1)
			assert.Equal(t, 30.0, p.AverageSessionMinutes)
			assert.Equal(t, 45.0, p.TotalSpend)
			assert.Equal(t, []string{"op-1"}, p.FavoriteProviderIDs)
			assert.Equal(t, []string{models.SlotEvening}, p.PreferredTimeSlots)

			stored, ok := s.Get("cl-1")
			require.True(t, ok)
			assert.Equal(t, p.TotalSpend, stored.TotalSpend)
		})
	}
}

func TestRunningAverageAndSpend(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory()
			defer s.Close()

			durations := []int{10, 20, 60}
			for i, d := range durations {
				_, err := s.RecordConsultation("cl-1", models.Consultation{
					ProviderID:      fmt.Sprintf("op-%d", i),
					DurationMinutes: d,
					Cost:            10,
					Timestamp:       time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
				})
				require.NoError(t, err)
			}

			p, ok := s.Get("cl-1")
			require.True(t, ok)
			assert.InDelta(t, 30.0, p.AverageSessionMinutes, 1e-9)
			assert.InDelta(t, 30.0, p.TotalSpend, 1e-9)
		})
	}
}

func TestFavoritesAppendOnlyNoDuplicates(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory()
			defer s.Close()

			for i := 0; i < 3; i++ {
				_, err := s.RecordConsultation("cl-1", models.Consultation{
					ProviderID: "op-1",
					Rating:     5,
				})
				require.NoError(t, err)
			}

			// Low ratings never add favorites.
			_, err := s.RecordConsultation("cl-1", models.Consultation{
				ProviderID: "op-2",
				Rating:     3.9,
			})
			require.NoError(t, err)

			p, _ := s.Get("cl-1")
			assert.Equal(t, []string{"op-1"}, p.FavoriteProviderIDs)
		})
	}
}

func TestSearchQueryFIFOEviction(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory()
			defer s.Close()

			for i := 1; i <= 25; i++ {
				require.NoError(t, s.AddSearchQuery("cl-1", fmt.Sprintf("query-%d", i)))
			}

			p, ok := s.Get("cl-1")
			require.True(t, ok)
			require.Len(t, p.SearchQueries, models.MaxSearchQueries)

			// Oldest five evicted; 6..25 retained in order.
			assert.Equal(t, "query-6", p.SearchQueries[0])
			assert.Equal(t, "query-25", p.SearchQueries[len(p.SearchQueries)-1])
		})
	}
}

func TestEmptySearchQueryIgnored(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.AddSearchQuery("cl-1", ""))
	_, ok := s.Get("cl-1")
	assert.False(t, ok)
}

func TestReturnedProfileIsDetached(t *testing.T) {
	s := NewMemory()
	_, err := s.RecordConsultation("cl-1", models.Consultation{ProviderID: "op-1", Rating: 5})
	require.NoError(t, err)

	p, _ := s.Get("cl-1")
	p.FavoriteProviderIDs[0] = "tampered"

	fresh, _ := s.Get("cl-1")
	assert.Equal(t, "op-1", fresh.FavoriteProviderIDs[0])
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBadger(dir, zerolog.Nop())
	require.NoError(t, err)
	_, err = s.RecordConsultation("cl-1", models.Consultation{ProviderID: "op-1", Rating: 5, Cost: 120})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewBadger(dir, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	p, ok := reopened.Get("cl-1")
	require.True(t, ok)
	assert.Equal(t, 120.0, p.TotalSpend)
	assert.Equal(t, []string{"op-1"}, p.FavoriteProviderIDs)
}
