// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package cache

import "time"

// Cacher is the interface both cache implementations satisfy, so
// callers can swap the TTL cache for the bounded LRU.
//
//	var c Cacher = cache.New(5 * time.Minute)
//	var c Cacher = cache.NewLRU(8192, time.Hour)
type Cacher interface {
	// Get retrieves a value; the second result is false when absent
	// or expired.
	Get(key string) (interface{}, bool)

	// Set stores a value with the default TTL.
	Set(key string, value interface{})

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value interface{}, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all entries from the cache.
	Clear()

	// GetStats returns cache statistics.
	GetStats() Stats

	// HitRate returns the cache hit rate as a percentage.
	HitRate() float64
}

var (
	_ Cacher = (*Cache)(nil)
	_ Cacher = (*LRU)(nil)
)
