// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package server

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Rebuilder is satisfied by the similarity model.
type Rebuilder interface {
	Rebuild()
}

// RefreshService rebuilds the similarity matrix on a fixed interval.
// Registry mutations already invalidate the matrix for lazy rebuild;
// the periodic pass keeps rebuild cost off the request path under a
// steady mutation stream.
type RefreshService struct {
	model    Rebuilder
	interval time.Duration
	logger   zerolog.Logger
}

// NewRefreshService creates the periodic refresher.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRefreshService(model Rebuilder, interval time.Duration, logger zerolog.Logger) *RefreshService {
	return &RefreshService{
		model:    model,
		interval: interval,
		logger:   logger.With().Str("component", "similarity-refresh").Logger(),
	}
}

// Serve implements suture.Service. A non-positive interval disables the
// refresher; it then blocks until shutdown so the supervisor does not
// restart it in a loop.
func (s *RefreshService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("periodic refresh disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("periodic refresh started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.model.Rebuild()
		}
	}
}

// String implements fmt.Stringer for supervisor logging.
func (s *RefreshService) String() string {
	return "similarity-refresh"
}
