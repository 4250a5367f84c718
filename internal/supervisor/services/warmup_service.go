// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/solmundi/astrolabe/internal/logging"
)

// Warmer primes a computation backend. Satisfied by
// *ephemeris.Keplerian.
type Warmer interface {
	Warm(ctx context.Context) error
}

var _ suture.Service = (*WarmupService)(nil)

// WarmupService runs the ephemeris warm-up once at startup and then
// idles until shutdown. Running it under supervision means a broken
// ephemeris backend surfaces as a supervisor failure loop rather
// than as request-time errors.
type WarmupService struct {
	warmer Warmer
	name   string
}

// NewWarmupService creates a warmup service for the given backend.
func NewWarmupService(warmer Warmer) *WarmupService {
	return &WarmupService{
		warmer: warmer,
		name:   "ephemeris-warmup",
	}
}

// Serve implements suture.Service. After a successful warm-up the
// service parks on the context so suture does not restart it.
func (s *WarmupService) Serve(ctx context.Context) error {
	if err := s.warmer.Warm(ctx); err != nil {
		return fmt.Errorf("warmup failed: %w", err)
	}
	logging.Info().Str("service", s.name).Msg("Ephemeris warm-up complete")

	<-ctx.Done()
	return ctx.Err()
}

// String implements fmt.Stringer.
func (s *WarmupService) String() string {
	return s.name
}
