// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package ephemeris

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Provider computes geocentric ecliptic longitudes. Implementations
// must be safe for concurrent use and deterministic: equal inputs
// produce bit-identical outputs.
type Provider interface {
	// Longitude returns the geocentric ecliptic longitude of body at t,
	// in [0,360). Returns *RangeError when t is outside the supported
	// window.
	Longitude(ctx context.Context, body Body, t time.Time) (float64, error)

	// Speed returns the instantaneous rate of longitude change in
	// degrees per day. Negative values indicate retrograde motion.
	Speed(ctx context.Context, body Body, t time.Time) (float64, error)

	// Positions returns longitudes for all ten bodies at t.
	Positions(ctx context.Context, t time.Time) (map[Body]float64, error)
}

// PositionCache memoizes computed longitudes. Implementations must be
// safe for concurrent use. A nil cache disables memoization.
type PositionCache interface {
	Get(key string) (float64, bool)
	Set(key string, lon float64)
}

// speedStep is the half-window of the central finite difference used
// for Speed. Six hours is small enough to resolve lunar motion and
// large enough to stay clear of floating-point cancellation.
const speedStep = 6 * time.Hour

// Keplerian is the built-in Provider. The zero value is ready to use;
// attach a PositionCache with WithCache to memoize repeated lookups
// (forecast scans and return solvers hit the same instants often).
type Keplerian struct {
	cache PositionCache
}

// NewKeplerian returns a provider without memoization.
func NewKeplerian() *Keplerian {
	return &Keplerian{}
}

// WithCache returns a provider that memoizes through c.
func (k *Keplerian) WithCache(c PositionCache) *Keplerian {
	return &Keplerian{cache: c}
}

// Longitude implements Provider.
func (k *Keplerian) Longitude(ctx context.Context, body Body, t time.Time) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !body.Valid() {
		return 0, fmt.Errorf("ephemeris: unknown body %d", int(body))
	}
	if err := checkRange(t); err != nil {
		return 0, err
	}

	var key string
	if k.cache != nil {
		// Nanosecond-exact key: determinism makes equal instants
		// interchangeable, so no rounding is applied.
		key = body.String() + "@" + t.UTC().Format(time.RFC3339Nano)
		if lon, ok := k.cache.Get(key); ok {
			return lon, nil
		}
	}

	lon := k.compute(body, t)
	if k.cache != nil {
		k.cache.Set(key, lon)
	}
	return lon, nil
}

func (k *Keplerian) compute(body Body, t time.Time) float64 {
	switch body {
	case Sun:
		return sunLongitude(centuriesSinceJ2000(t))
	case Moon:
		return moonLongitude(daysSinceJ2000(t))
	default:
		return planetLongitude(body, centuriesSinceJ2000(t))
	}
}

// Speed implements Provider using a central finite difference over
// 12 hours. Both sample instants must lie inside the supported window.
func (k *Keplerian) Speed(ctx context.Context, body Body, t time.Time) (float64, error) {
	before, err := k.Longitude(ctx, body, t.Add(-speedStep))
	if err != nil {
		return 0, err
	}
	after, err := k.Longitude(ctx, body, t.Add(speedStep))
	if err != nil {
		return 0, err
	}

	delta := signedDelta(after, before)
	days := (2 * speedStep).Hours() / 24.0
	return delta / days, nil
}

// Positions implements Provider.
func (k *Keplerian) Positions(ctx context.Context, t time.Time) (map[Body]float64, error) {
	out := make(map[Body]float64, int(numBodies))
	for _, b := range AllBodies() {
		lon, err := k.Longitude(ctx, b, t)
		if err != nil {
			return nil, err
		}
		out[b] = lon
	}
	return out, nil
}

// Warm primes the provider by computing a full position set at the
// J2000.0 epoch. Startup calls this once so table or cache failures
// surface before the server accepts traffic.
func (k *Keplerian) Warm(ctx context.Context) error {
	ref := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if _, err := k.Positions(ctx, ref); err != nil {
		return fmt.Errorf("ephemeris warm-up: %w", err)
	}
	return nil
}

// signedDelta returns a-b wrapped into (-180,180].
func signedDelta(a, b float64) float64 {
	d := math.Mod(a-b+180.0, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d - 180.0
}
