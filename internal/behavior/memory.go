// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package behavior

import (
	"sync"
	"time"

	"github.com/tomtom215/oraclia/internal/models"
)

// Memory is the in-memory Store. Profiles live for the process lifetime.
// Safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]models.ClientBehaviorProfile
	now      func() time.Time
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory behavior store.
func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[string]models.ClientBehaviorProfile),
		now:      time.Now,
	}
}

// Get returns the profile for the client, if one exists.
func (m *Memory) Get(clientID string) (models.ClientBehaviorProfile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[clientID]
	return cloneProfile(p), ok
}

// RecordConsultation appends a consultation, creating the profile lazily.
func (m *Memory) RecordConsultation(clientID string, c models.Consultation) (models.ClientBehaviorProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[clientID]
	if !ok {
		p = newProfile(clientID)
	}
	applyConsultation(&p, c, m.now())
	m.profiles[clientID] = p
	return cloneProfile(p), nil
}

// AddSearchQuery appends a search query to the bounded log.
func (m *Memory) AddSearchQuery(clientID, query string) error {
	if query == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[clientID]
	if !ok {
		p = newProfile(clientID)
	}
	applySearchQuery(&p, query)
	m.profiles[clientID] = p
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}

// cloneProfile deep-copies slice fields so callers cannot mutate stored
// state through the returned value.
//
//nolint:gocritic // hugeParam: profiles are value records by design
func cloneProfile(p models.ClientBehaviorProfile) models.ClientBehaviorProfile {
	p.Consultations = append([]models.Consultation(nil), p.Consultations...)
	p.SearchQueries = append([]string(nil), p.SearchQueries...)
	p.FavoriteProviderIDs = append([]string(nil), p.FavoriteProviderIDs...)
	p.PreferredTimeSlots = append([]string(nil), p.PreferredTimeSlots...)
	return p
}
