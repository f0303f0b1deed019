// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package matching

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tomtom215/oraclia/internal/models"
	"github.com/tomtom215/oraclia/internal/registry"
)

// Engine ranks providers against request criteria and keeps the
// per-client affinity ledger. Safe for concurrent use.
type Engine struct {
	store  registry.Store
	logger zerolog.Logger

	// affinities maps client ID to the set of providers the client has
	// had a recorded successful consultation with.
	affinityMu sync.RWMutex
	affinities map[string]map[string]struct{}
}

// NewEngine creates a matching engine over the given provider store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(store registry.Store, logger zerolog.Logger) *Engine {
	return &Engine{
		store:      store,
		logger:     logger.With().Str("component", "matching").Logger(),
		affinities: make(map[string]map[string]struct{}),
	}
}

// FindBestMatches scores every registered provider against the criteria
// and returns matches with positive scores, strictly descending. An
// empty registry yields an empty list, never an error; ctx is honored
// between providers so a cancelled request stops early.
func (e *Engine) FindBestMatches(ctx context.Context, criteria *models.RequestCriteria) []models.MatchScore {
	providers := e.store.Snapshot()
	results := make([]models.MatchScore, 0, len(providers))

	for i := range providers {
		select {
		case <-ctx.Done():
			return results
		default:
		}

		p := &providers[i]
		if !speaksAny(p.Languages, criteria.PreferredLanguages) {
			continue
		}

		hasAffinity := e.HasAffinity(criteria.ClientID, p.ID)
		score, reasons := scoreProvider(p, criteria, hasAffinity)
		if score <= 0 {
			continue
		}

		results = append(results, models.MatchScore{
			ProviderID:           p.ID,
			Score:                score,
			Reasons:              reasons,
			EstimatedWaitMinutes: estimateWaitMinutes(p),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].EstimatedWaitMinutes != results[j].EstimatedWaitMinutes {
			return results[i].EstimatedWaitMinutes < results[j].EstimatedWaitMinutes
		}
		return results[i].ProviderID < results[j].ProviderID
	})

	e.logger.Debug().
		Str("client_id", criteria.ClientID).
		Int("providers", len(providers)).
		Int("matches", len(results)).
		Msg("match request scored")

	return results
}

// RecordSuccessfulConsultation adds the provider to the client's
// affinity set. Idempotent: repeated calls never duplicate entries.
func (e *Engine) RecordSuccessfulConsultation(clientID, providerID string) {
	if clientID == "" || providerID == "" {
		return
	}

	e.affinityMu.Lock()
	set, ok := e.affinities[clientID]
	if !ok {
		set = make(map[string]struct{})
		e.affinities[clientID] = set
	}
	set[providerID] = struct{}{}
	e.affinityMu.Unlock()
}

// HasAffinity reports whether the client has a recorded successful
// consultation with the provider.
func (e *Engine) HasAffinity(clientID, providerID string) bool {
	e.affinityMu.RLock()
	defer e.affinityMu.RUnlock()
	_, ok := e.affinities[clientID][providerID]
	return ok
}
