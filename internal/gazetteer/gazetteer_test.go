// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package gazetteer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
		ok    bool
	}{
		{"exact match", "London", "London", true},
		{"case insensitive", "buenos aires", "Buenos Aires", true},
		{"unknown", "Atlantis", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Lookup(tt.query)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.query, ok, tt.ok)
			}
			if ok && c.Name != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.query, c.Name, tt.want)
			}
		})
	}
}

func TestCities(t *testing.T) {
	cities := Cities()
	if len(cities) != 16 {
		t.Fatalf("cities = %d, want 16", len(cities))
	}
	for i := 1; i < len(cities); i++ {
		if cities[i].Name <= cities[i-1].Name {
			t.Errorf("cities not sorted: %q after %q", cities[i].Name, cities[i-1].Name)
		}
	}
	for _, c := range cities {
		if c.Region == "" {
			t.Errorf("%s missing region", c.Name)
		}
		if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
			t.Errorf("%s coordinates out of range: %v, %v", c.Name, c.Latitude, c.Longitude)
		}
	}
}

func TestSearch(t *testing.T) {
	hits := Search("lon")
	if len(hits) != 2 || hits[0].Name != "Barcelona" || hits[1].Name != "London" {
		t.Errorf("Search(lon) = %+v, want Barcelona and London", hits)
	}

	hits = Search("SOUTH AMERICA")
	if len(hits) != 2 || hits[0].Name != "Buenos Aires" || hits[1].Name != "Rio de Janeiro" {
		t.Errorf("Search(SOUTH AMERICA) = %+v", hits)
	}

	if hits := Search(""); hits != nil {
		t.Errorf("Search(empty) = %+v, want nil", hits)
	}
	if hits := Search("xyzzy"); len(hits) != 0 {
		t.Errorf("Search(xyzzy) = %+v, want none", hits)
	}
}

func TestResolve(t *testing.T) {
	found, missing := Resolve([]string{"Zurich", "Nowhere", "Lisbon"})
	if len(found) != 2 || found[0].Name != "Zurich" || found[1].Name != "Lisbon" {
		t.Errorf("found = %+v", found)
	}
	if len(missing) != 1 || missing[0] != "Nowhere" {
		t.Errorf("missing = %v", missing)
	}
}

func TestRemoteResolverPrefersTable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	r := NewRemoteResolver(srv.URL, time.Second)
	c, err := r.Lookup(context.Background(), "London")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if c.Name != "London" {
		t.Errorf("city = %q", c.Name)
	}
	if calls.Load() != 0 {
		t.Errorf("remote called %d times for a table city", calls.Load())
	}
}

func TestRemoteResolverFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Montevideo" {
			t.Errorf("query name = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"name":"Montevideo","latitude":-34.9011,"longitude":-56.1645,"country":"Uruguay"}]}`))
	}))
	defer srv.Close()

	r := NewRemoteResolver(srv.URL, time.Second)
	c, err := r.Lookup(context.Background(), "Montevideo")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if c.Name != "Montevideo" || c.Region != "Uruguay" {
		t.Errorf("city = %+v", c)
	}
	if c.Latitude > -34 || c.Latitude < -35 {
		t.Errorf("latitude = %v", c.Latitude)
	}
}

func TestRemoteResolverNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	r := NewRemoteResolver(srv.URL, time.Second)
	if _, err := r.Lookup(context.Background(), "Xyzzy"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRemoteResolverServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewRemoteResolver(srv.URL, time.Second)
	if _, err := r.Lookup(context.Background(), "Montevideo"); err == nil {
		t.Fatal("expected error from failing backend")
	}
}
