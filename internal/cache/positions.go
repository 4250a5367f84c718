// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package cache

import (
	"time"

	"github.com/solmundi/astrolabe/internal/metrics"
)

// PositionCache adapts the bounded LRU to the ephemeris provider's
// memoization interface. Forecast scans and solar return solvers
// revisit the same instants often, so even a small cache removes most
// of the repeated Kepler iterations.
type PositionCache struct {
	lru *LRU
}

// NewPositionCache returns a position cache holding at most capacity
// longitudes. Entries live for ttl; positions are pure functions of
// time, so a generous ttl is safe and only bounds memory turnover.
func NewPositionCache(capacity int, ttl time.Duration) *PositionCache {
	return &PositionCache{lru: NewLRU(capacity, ttl)}
}

// Get returns the cached longitude for key, recording hit and miss
// metrics.
func (p *PositionCache) Get(key string) (float64, bool) {
	v, ok := p.lru.Get(key)
	if !ok {
		metrics.EphemerisCacheMisses.Inc()
		return 0, false
	}
	lon, ok := v.(float64)
	if !ok {
		metrics.EphemerisCacheMisses.Inc()
		return 0, false
	}
	metrics.EphemerisCacheHits.Inc()
	return lon, true
}

// Set stores a longitude under key.
func (p *PositionCache) Set(key string, lon float64) {
	p.lru.Set(key, lon)
	metrics.EphemerisCacheSize.Set(float64(p.lru.Len()))
}

// Stats reports the underlying LRU statistics.
func (p *PositionCache) Stats() Stats {
	return p.lru.GetStats()
}
