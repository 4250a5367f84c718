// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU is a bounded least-recently-used cache with per-entry TTL. It
// serves the ephemeris position cache, where the working set during a
// forecast or ranking sweep is large but strongly clustered in time.
type LRU struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List
	index    map[string]*list.Element
	stats    Stats
}

type lruEntry struct {
	key       string
	value     interface{}
	expiresAt time.Time
}

// NewLRU creates an LRU cache holding at most capacity entries, each
// valid for ttl. A non-positive capacity defaults to 4096.
func NewLRU(capacity int, ttl time.Duration) *LRU {
	if capacity <= 0 {
		capacity = 4096
	}
	return &LRU{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		index:    make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a value and marks it most recently used.
func (l *LRU) Get(key string) (interface{}, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	elem, ok := l.index[key]
	if !ok {
		l.stats.Misses++
		return nil, false
	}

	entry := elem.Value.(*lruEntry)
	if time.Now().After(entry.expiresAt) {
		l.removeElement(elem)
		l.stats.Misses++
		l.stats.Evictions++
		return nil, false
	}

	l.order.MoveToFront(elem)
	l.stats.Hits++
	return entry.value, true
}

// Set stores a value, evicting the least recently used entry when
// the cache is full.
func (l *LRU) Set(key string, value interface{}) {
	l.SetWithTTL(key, value, l.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (l *LRU) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if elem, ok := l.index[key]; ok {
		entry := elem.Value.(*lruEntry)
		entry.value = value
		entry.expiresAt = now.Add(ttl)
		l.order.MoveToFront(elem)
		return
	}

	if l.order.Len() >= l.capacity {
		if oldest := l.order.Back(); oldest != nil {
			l.removeElement(oldest)
			l.stats.Evictions++
		}
	}

	elem := l.order.PushFront(&lruEntry{
		key:       key,
		value:     value,
		expiresAt: now.Add(ttl),
	})
	l.index[key] = elem
	l.stats.TotalKeys = int64(len(l.index))
}

// Delete removes an entry. Safe to call for absent keys.
func (l *LRU) Delete(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if elem, ok := l.index[key]; ok {
		l.removeElement(elem)
		l.stats.Evictions++
	}
}

// Clear removes all entries.
func (l *LRU) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	evictions := int64(len(l.index))
	l.order.Init()
	l.index = make(map[string]*list.Element, l.capacity)
	l.stats.Evictions += evictions
	l.stats.TotalKeys = 0
}

// Len returns the current number of entries.
func (l *LRU) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.index)
}

// GetStats returns a snapshot of the cache statistics.
func (l *LRU) GetStats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		Hits:      l.stats.Hits,
		Misses:    l.stats.Misses,
		Evictions: l.stats.Evictions,
		TotalKeys: int64(len(l.index)),
	}
}

// HitRate returns the cache hit rate as a percentage.
func (l *LRU) HitRate() float64 {
	stats := l.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// removeElement must be called with the lock held.
func (l *LRU) removeElement(elem *list.Element) {
	l.order.Remove(elem)
	entry := elem.Value.(*lruEntry)
	delete(l.index, entry.key)
	l.stats.TotalKeys = int64(len(l.index))
}
