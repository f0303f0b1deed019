// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package behavior

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tomtom215/oraclia/internal/models"
)

// profileKeyPrefix namespaces profile keys in the badger keyspace.
const profileKeyPrefix = "profile:"

// Badger is the BadgerDB-backed Store. Each profile is one key holding
// the JSON-encoded record; mutations are read-modify-write transactions.
type Badger struct {
	db     *badger.DB
	logger zerolog.Logger
	now    func() time.Time
}

var _ Store = (*Badger)(nil)

// NewBadger opens (or creates) the behavior database at path.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBadger(path string, logger zerolog.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil). // badger's own logger is noisy; we log transitions ourselves
		WithCompactL0OnClose(true)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open behavior db at %s: %w", path, err)
	}

	logger = logger.With().Str("component", "behavior-badger").Logger()
	logger.Info().Str("path", path).Msg("behavior store opened")

	return &Badger{db: db, logger: logger, now: time.Now}, nil
}

// Get returns the profile for the client, if one exists.
func (b *Badger) Get(clientID string) (models.ClientBehaviorProfile, bool) {
	var p models.ClientBehaviorProfile
	found := false

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(clientID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &p); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		// Per the degradation contract a broken read behaves like a
		// missing profile; the caller falls back to cold start.
		b.logger.Error().Err(err).Str("client_id", clientID).Msg("profile read failed")
	}

	return p, found
}

// RecordConsultation appends a consultation inside one transaction.
func (b *Badger) RecordConsultation(clientID string, c models.Consultation) (models.ClientBehaviorProfile, error) {
	var updated models.ClientBehaviorProfile

	err := b.db.Update(func(txn *badger.Txn) error {
		p, err := b.loadOrCreate(txn, clientID)
		if err != nil {
			return err
		}
		applyConsultation(&p, c, b.now())
		updated = p
		return b.save(txn, clientID, p)
	})
	if err != nil {
		return models.ClientBehaviorProfile{}, fmt.Errorf("record consultation for %s: %w", clientID, err)
	}

	return updated, nil
}

// AddSearchQuery appends a search query inside one transaction.
func (b *Badger) AddSearchQuery(clientID, query string) error {
	if query == "" {
		return nil
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		p, err := b.loadOrCreate(txn, clientID)
		if err != nil {
			return err
		}
		applySearchQuery(&p, query)
		return b.save(txn, clientID, p)
	})
	if err != nil {
		return fmt.Errorf("add search query for %s: %w", clientID, err)
	}
	return nil
}

// Close closes the underlying database.
func (b *Badger) Close() error {
	b.logger.Info().Msg("behavior store closing")
	return b.db.Close()
}

// loadOrCreate reads a profile within a transaction, creating an empty
// one when the key is absent.
func (b *Badger) loadOrCreate(txn *badger.Txn, clientID string) (models.ClientBehaviorProfile, error) {
	item, err := txn.Get(profileKey(clientID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return newProfile(clientID), nil
	}
	if err != nil {
		return models.ClientBehaviorProfile{}, err
	}

	var p models.ClientBehaviorProfile
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &p)
	})
	if err != nil {
		return models.ClientBehaviorProfile{}, err
	}
	return p, nil
}

// save writes a profile within a transaction.
//
//nolint:gocritic // hugeParam: profiles are value records by design
func (b *Badger) save(txn *badger.Txn, clientID string, p models.ClientBehaviorProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return txn.Set(profileKey(clientID), data)
}

func profileKey(clientID string) []byte {
	return []byte(profileKeyPrefix + clientID)
}
