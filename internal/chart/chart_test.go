// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package chart

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/houses"
	"github.com/solmundi/astrolabe/internal/timelord"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

var buenosAires = Location{Latitude: -34.6037, Longitude: -58.3816}

func TestBuildSnapshot(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	when := time.Date(1990, 7, 15, 3, 30, 0, 0, time.UTC)

	ch, err := Build(context.Background(), prov, when, buenosAires, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := len(ch.Planets); got != 10 {
		t.Fatalf("planets = %d, want 10", got)
	}
	wantOrder := []string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}
	for i, p := range ch.Planets {
		if p.Name != wantOrder[i] {
			t.Errorf("planets[%d] = %q, want %q", i, p.Name, wantOrder[i])
		}
		if p.Longitude < 0 || p.Longitude >= 360 {
			t.Errorf("%s longitude %v out of range", p.Name, p.Longitude)
		}
		if want := zodiac.SignOf(p.Longitude).String(); p.Sign != want {
			t.Errorf("%s sign = %q, want %q", p.Name, p.Sign, want)
		}
		if p.House < 1 || p.House > 12 {
			t.Errorf("%s house = %d, want 1..12", p.Name, p.House)
		}
		if p.Formatted == "" {
			t.Errorf("%s formatted empty", p.Name)
		}
	}

	if ch.Houses == nil {
		t.Fatal("houses block missing")
	}
	if got := len(ch.Houses.Houses); got != 12 {
		t.Errorf("cusps = %d, want 12", got)
	}
	if ch.HousesNote != "" {
		t.Errorf("unexpected houses note %q", ch.HousesNote)
	}

	seen := map[[2]string]bool{}
	for _, a := range ch.Aspects {
		if a.A == a.B {
			t.Errorf("self aspect %v", a)
		}
		key := [2]string{a.A, a.B}
		if seen[key] {
			t.Errorf("duplicate pair %v", key)
		}
		seen[key] = true
		if a.Orb < 0 || a.Orb > 6 {
			t.Errorf("aspect %v orb %v outside default limit", a, a.Orb)
		}
	}

	if ch.Sect != timelord.Diurnal && ch.Sect != timelord.Nocturnal {
		t.Errorf("sect = %v", ch.Sect)
	}
	if !ch.Datetime.Equal(when) {
		t.Errorf("datetime = %v, want %v", ch.Datetime, when)
	}
}

func TestBuildDeterministic(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	when := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	a, err := Build(context.Background(), prov, when, buenosAires, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(context.Background(), prov, when, buenosAires, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := range a.Planets {
		if a.Planets[i] != b.Planets[i] {
			t.Errorf("planet %d differs between identical builds", i)
		}
	}
	if len(a.Aspects) != len(b.Aspects) {
		t.Errorf("aspect count differs: %d vs %d", len(a.Aspects), len(b.Aspects))
	}
}

func TestBuildPolarDegrades(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	when := time.Date(2000, 6, 21, 12, 0, 0, 0, time.UTC)
	tromso := Location{Latitude: 69.65, Longitude: 18.96}

	ch, err := Build(context.Background(), prov, when, tromso, Options{System: houses.Placidus})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ch.Houses != nil {
		t.Error("expected nil houses beyond the placidus limit")
	}
	if ch.HousesNote == "" {
		t.Error("expected an explanatory note")
	}
	if got := len(ch.Planets); got != 10 {
		t.Fatalf("planets = %d, want 10", got)
	}
	for _, p := range ch.Planets {
		if p.House != 0 {
			t.Errorf("%s house = %d, want 0 in degraded chart", p.Name, p.House)
		}
	}
	if len(ch.Aspects) == 0 {
		t.Error("aspects should still be computed")
	}

	// Whole sign has no polar limit.
	ch, err = Build(context.Background(), prov, when, tromso, Options{System: houses.WholeSign})
	if err != nil {
		t.Fatalf("Build whole sign: %v", err)
	}
	if ch.Houses == nil {
		t.Fatal("whole sign houses missing")
	}
}

func TestBuildOutOfRange(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	when := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := Build(context.Background(), prov, when, buenosAires, Options{}); err == nil {
		t.Fatal("expected range error")
	}
}

func TestBuildDetailed(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	when := time.Date(1990, 7, 15, 3, 30, 0, 0, time.UTC)

	det, err := BuildDetailed(context.Background(), prov, when, buenosAires, Options{})
	if err != nil {
		t.Fatalf("BuildDetailed: %v", err)
	}

	axis := math.Mod(det.LunarNodes.NorthNode.Longitude-det.LunarNodes.SouthNode.Longitude+720, 360)
	if math.Abs(axis-180) > 1e-6 {
		t.Errorf("node axis separation = %v, want 180", axis)
	}

	fortune, ok := det.ArabicParts["part_of_fortune"]
	if !ok {
		t.Fatal("part_of_fortune missing")
	}
	sun, _ := det.Planet("Sun")
	moon, _ := det.Planet("Moon")
	var want float64
	if det.Sect == timelord.Diurnal {
		want = zodiac.Normalize(det.Houses.Asc + moon.Longitude - sun.Longitude)
	} else {
		want = zodiac.Normalize(det.Houses.Asc + sun.Longitude - moon.Longitude)
	}
	if math.Abs(fortune.Longitude-want) > 0.01 {
		t.Errorf("fortune = %v, want %v", fortune.Longitude, want)
	}
	if want := zodiac.SignOf(fortune.Longitude).String(); fortune.Sign != want {
		t.Errorf("fortune sign = %q, want %q", fortune.Sign, want)
	}

	if got := len(det.Lots); got != 4 {
		t.Errorf("lots = %d, want 4", got)
	}
}

func TestBuildDetailedPolar(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	when := time.Date(2000, 6, 21, 12, 0, 0, 0, time.UTC)
	tromso := Location{Latitude: 69.65, Longitude: 18.96}

	det, err := BuildDetailed(context.Background(), prov, when, tromso, Options{System: houses.Placidus})
	if err != nil {
		t.Fatalf("BuildDetailed: %v", err)
	}
	if det.ArabicParts != nil || det.Lots != nil {
		t.Error("lots require a real ascendant")
	}
	if det.LunarNodes.NorthNode.Sign == "" {
		t.Error("lunar nodes should survive a houses failure")
	}
}

func TestDerived(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	birth := time.Date(1990, 7, 15, 3, 30, 0, 0, time.UTC)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	d, err := Derived(context.Background(), prov, birth, buenosAires, now, Options{})
	if err != nil {
		t.Fatalf("Derived: %v", err)
	}

	if d.Profection.Age != 35 {
		t.Errorf("profection age = %d, want 35", d.Profection.Age)
	}
	if d.Profection.House != 12 {
		t.Errorf("profection house = %d, want 12", d.Profection.House)
	}

	if d.Firdaria.Current == nil {
		t.Fatal("expected an active firdaria period")
	}
	if !d.Firdaria.Current.Start.Before(now) || !d.Firdaria.Current.End.After(now) {
		t.Errorf("current period [%v, %v) does not bracket %v",
			d.Firdaria.Current.Start, d.Firdaria.Current.End, now)
	}

	if d.LunarTransit.MoonPosition < 0 || d.LunarTransit.MoonPosition >= 360 {
		t.Errorf("moon position %v out of range", d.LunarTransit.MoonPosition)
	}
	for _, a := range d.LunarTransit.Aspects {
		if a.Planet == "" {
			t.Errorf("contact missing natal planet: %+v", a)
		}
		if a.Orb < 0 {
			t.Errorf("negative orb %v", a.Orb)
		}
	}
}

func TestDerivedBeyondCycle(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	birth := time.Date(1950, 1, 1, 12, 0, 0, 0, time.UTC)
	now := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

	d, err := Derived(context.Background(), prov, birth, buenosAires, now, Options{})
	if err != nil {
		t.Fatalf("Derived: %v", err)
	}
	if d.Firdaria.Current != nil {
		t.Error("cycle is exhausted after 75 years, want nil current")
	}
	if d.Profection.Age != 80 {
		t.Errorf("profection age = %d, want 80", d.Profection.Age)
	}
}

func TestDerivedBeforeBirth(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	birth := time.Date(1990, 7, 15, 3, 30, 0, 0, time.UTC)
	now := birth.AddDate(-1, 0, 0)

	if _, err := Derived(context.Background(), prov, birth, buenosAires, now, Options{}); err == nil {
		t.Fatal("expected an error for a query before birth")
	}
}
