// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Fatal("Get on empty cache returned a value")
	}

	c.Set("chart:london", 42.5)
	v, ok := c.Get("chart:london")
	if !ok {
		t.Fatal("Get after Set returned no value")
	}
	if v.(float64) != 42.5 {
		t.Errorf("Get = %v, want 42.5", v)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(time.Minute)

	c.SetWithTTL("short", "gone", -time.Second)
	if _, ok := c.Get("short"); ok {
		t.Error("expired entry still retrievable")
	}

	c.SetWithTTL("long", "kept", time.Hour)
	if _, ok := c.Get("long"); !ok {
		t.Error("unexpired entry not retrievable")
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still retrievable")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("unrelated entry lost on Delete")
	}

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("entry survived Clear")
	}
}

func TestCacheStats(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)

	c.Get("a")
	c.Get("a")
	c.Get("missing")

	stats := c.GetStats()
	if stats.Hits != 2 {
		t.Errorf("Hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}

	rate := c.HitRate()
	if rate < 66.0 || rate > 67.0 {
		t.Errorf("HitRate = %v, want ~66.7", rate)
	}
}

func TestCacheHitRateEmpty(t *testing.T) {
	c := New(time.Minute)
	if rate := c.HitRate(); rate != 0 {
		t.Errorf("HitRate on untouched cache = %v, want 0", rate)
	}
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		Lat float64
		Lon float64
	}

	a := GenerateKey("chart", params{51.5, -0.12})
	b := GenerateKey("chart", params{51.5, -0.12})
	if a != b {
		t.Errorf("same inputs produced different keys: %q vs %q", a, b)
	}

	c := GenerateKey("chart", params{48.8, 2.35})
	if a == c {
		t.Error("different params produced the same key")
	}

	d := GenerateKey("forecast", params{51.5, -0.12})
	if a == d {
		t.Error("different methods produced the same key")
	}
}

func TestLRUEviction(t *testing.T) {
	l := NewLRU(2, time.Minute)

	l.Set("a", 1)
	l.Set("b", 2)

	// Touch a so b becomes the eviction candidate.
	if _, ok := l.Get("a"); !ok {
		t.Fatal("a missing before eviction")
	}

	l.Set("c", 3)
	if _, ok := l.Get("b"); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := l.Get("a"); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := l.Get("c"); !ok {
		t.Error("new entry missing after eviction")
	}
	if got := l.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestLRUUpdateExisting(t *testing.T) {
	l := NewLRU(2, time.Minute)

	l.Set("a", 1)
	l.Set("a", 2)
	if got := l.Len(); got != 1 {
		t.Errorf("Len after overwrite = %d, want 1", got)
	}
	v, _ := l.Get("a")
	if v.(int) != 2 {
		t.Errorf("Get = %v, want 2", v)
	}
}

func TestLRUExpiry(t *testing.T) {
	l := NewLRU(8, time.Minute)

	l.SetWithTTL("stale", "x", -time.Second)
	if _, ok := l.Get("stale"); ok {
		t.Error("expired entry still retrievable")
	}
	if got := l.Len(); got != 0 {
		t.Errorf("Len after expired Get = %d, want 0", got)
	}
}

func TestLRUClear(t *testing.T) {
	l := NewLRU(8, time.Minute)
	for i := 0; i < 5; i++ {
		l.Set(fmt.Sprintf("k%d", i), i)
	}

	l.Clear()
	if got := l.Len(); got != 0 {
		t.Errorf("Len after Clear = %d, want 0", got)
	}
	if _, ok := l.Get("k0"); ok {
		t.Error("entry survived Clear")
	}
}

func TestLRUDefaultCapacity(t *testing.T) {
	l := NewLRU(0, time.Minute)
	for i := 0; i < 100; i++ {
		l.Set(fmt.Sprintf("k%d", i), i)
	}
	if got := l.Len(); got != 100 {
		t.Errorf("Len = %d, want 100 with default capacity", got)
	}
}

func TestPositionCache(t *testing.T) {
	pc := NewPositionCache(16, time.Hour)

	if _, ok := pc.Get("Sun@2026-01-01"); ok {
		t.Fatal("Get on empty position cache returned a value")
	}

	pc.Set("Sun@2026-01-01", 280.123)
	lon, ok := pc.Get("Sun@2026-01-01")
	if !ok {
		t.Fatal("Get after Set returned no value")
	}
	if lon != 280.123 {
		t.Errorf("Get = %v, want 280.123", lon)
	}

	stats := pc.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Stats = %d hits / %d misses, want 1/1", stats.Hits, stats.Misses)
	}
}

func TestPositionCacheEviction(t *testing.T) {
	pc := NewPositionCache(2, time.Hour)

	pc.Set("a", 1.0)
	pc.Set("b", 2.0)
	pc.Set("c", 3.0)

	if _, ok := pc.Get("a"); ok {
		t.Error("oldest position survived eviction in a capacity-2 cache")
	}
	if lon, ok := pc.Get("c"); !ok || lon != 3.0 {
		t.Errorf("Get(c) = %v, %v; want 3.0, true", lon, ok)
	}
}
