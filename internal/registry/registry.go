// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/oraclia/internal/models"
)

// Store is the provider catalog read/write surface consumed by the
// matching and similarity engines.
type Store interface {
	// Upsert inserts or replaces a full provider profile.
	Upsert(profile models.ProviderProfile)

	// Get returns the profile for the given ID.
	Get(id string) (models.ProviderProfile, bool)

	// Snapshot returns a copy of all profiles, ordered by ID for
	// deterministic iteration.
	Snapshot() []models.ProviderProfile

	// UpdateStatus merges a partial update into the stored profile.
	// Unknown IDs are silent no-ops; the return value reports whether a
	// profile was touched.
	UpdateStatus(id string, update models.ProviderStatusUpdate) bool

	// Count returns the number of registered providers.
	Count() int
}

// Listener is notified after every catalog mutation.
type Listener func()

// Registry is the in-memory Store implementation. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]models.ProviderProfile
	listeners []Listener

	logger zerolog.Logger
	now    func() time.Time
}

var _ Store = (*Registry)(nil)

// New creates an empty provider registry.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(logger zerolog.Logger) *Registry {
	return &Registry{
		providers: make(map[string]models.ProviderProfile),
		logger:    logger.With().Str("component", "registry").Logger(),
		now:       time.Now,
	}
}

// OnMutation registers a listener invoked after every catalog change.
// Listeners must be cheap; they run synchronously outside the lock.
func (r *Registry) OnMutation(l Listener) {
	r.mu.Lock()
	r.listeners = append(r.listeners, l)
	r.mu.Unlock()
}

// Upsert inserts or replaces a provider profile.
//
//nolint:gocritic // hugeParam: profiles are value records by design
func (r *Registry) Upsert(profile models.ProviderProfile) {
	if profile.ID == "" {
		return
	}

	r.mu.Lock()
	if profile.LastActiveAt.IsZero() {
		profile.LastActiveAt = r.now()
	}
	_, existed := r.providers[profile.ID]
	r.providers[profile.ID] = profile
	r.mu.Unlock()

	r.logger.Debug().
		Str("provider_id", profile.ID).
		Bool("replaced", existed).
		Msg("provider upserted")

	r.notify()
}

// Get returns the profile for the given ID.
func (r *Registry) Get(id string) (models.ProviderProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	return p, ok
}

// Snapshot returns a copy of all profiles ordered by ID.
func (r *Registry) Snapshot() []models.ProviderProfile {
	r.mu.RLock()
	out := make([]models.ProviderProfile, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateStatus merges a partial update into the stored profile.
// Unknown provider IDs are silently ignored.
func (r *Registry) UpdateStatus(id string, update models.ProviderStatusUpdate) bool {
	r.mu.Lock()
	p, ok := r.providers[id]
	if !ok {
		r.mu.Unlock()
		r.logger.Debug().Str("provider_id", id).Msg("status update for unknown provider ignored")
		return false
	}
	update.ApplyTo(&p, r.now())
	r.providers[id] = p
	r.mu.Unlock()

	r.notify()
	return true
}

// Count returns the number of registered providers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// notify invokes mutation listeners outside the lock.
func (r *Registry) notify() {
	r.mu.RLock()
	listeners := make([]Listener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}
