// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package almanac

import (
	"math"
	"testing"
	"time"

	"github.com/solmundi/astrolabe/internal/timelord"
)

func TestFortuneAndSpirit(t *testing.T) {
	sun, moon, asc := 280.0, 100.0, 10.0

	dayFortune := Fortune(sun, moon, asc, timelord.Diurnal)
	if want := math.Mod(10+100-280+360, 360); math.Abs(dayFortune-want) > 1e-9 {
		t.Errorf("diurnal Fortune = %v, want %v", dayFortune, want)
	}

	nightFortune := Fortune(sun, moon, asc, timelord.Nocturnal)
	if want := math.Mod(10+280-100, 360); math.Abs(nightFortune-want) > 1e-9 {
		t.Errorf("nocturnal Fortune = %v, want %v", nightFortune, want)
	}

	// Spirit is the sect inverse of Fortune.
	if got := Spirit(sun, moon, asc, timelord.Diurnal); math.Abs(got-nightFortune) > 1e-9 {
		t.Errorf("diurnal Spirit = %v, want nocturnal Fortune %v", got, nightFortune)
	}
	if got := Spirit(sun, moon, asc, timelord.Nocturnal); math.Abs(got-dayFortune) > 1e-9 {
		t.Errorf("nocturnal Spirit = %v, want diurnal Fortune %v", got, dayFortune)
	}
}

func TestDerivedLots(t *testing.T) {
	if got := Eros(50, 200, 10); math.Abs(got-220) > 1e-9 {
		t.Errorf("Eros = %v, want 220", got)
	}
	if got := Necessity(190, 260, 10); math.Abs(got-300) > 1e-9 {
		t.Errorf("Necessity = %v, want 300", got)
	}
}

func TestAllLots(t *testing.T) {
	lots := AllLots(280, 100, 260, 50, 10, timelord.Diurnal, nil)
	if len(lots) != 4 {
		t.Fatalf("got %d lots, want 4", len(lots))
	}
	names := []string{"Fortuna", "Spirit", "Eros", "Necessity"}
	for i, want := range names {
		if lots[i].Name != want {
			t.Errorf("lot %d = %s, want %s", i, lots[i].Name, want)
		}
		if lots[i].Longitude < 0 || lots[i].Longitude >= 360 {
			t.Errorf("%s longitude %v out of range", lots[i].Name, lots[i].Longitude)
		}
		if lots[i].House != 0 {
			t.Errorf("%s house set without a house block", lots[i].Name)
		}
	}
}

func TestSolarCondition(t *testing.T) {
	sun := 100.0
	tests := []struct {
		name      string
		planetLon float64
		planet    string
		wantState string
	}{
		{"cazimi in the heart", 100.2, "Mercury", StateCazimi},
		{"combust close", 103, "Venus", StateCombust},
		{"combust within eight", 107.9, "Mercury", StateCombust},
		{"under beams", 110, "Mars", StateUnderBeams},
		{"under beams outer edge", 116.9, "Jupiter", StateUnderBeams},
		{"free", 120, "Saturn", StateFree},
		{"free far side", 280, "Mars", StateFree},
		{"sun not applicable", 100, "Sun", StateNA},
		{"moon not applicable", 104, "Moon", StateNA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Condition(tt.planetLon, sun, tt.planet)
			if got.State != tt.wantState {
				t.Errorf("Condition(%v) = %s, want %s", tt.planetLon, got.State, tt.wantState)
			}
		})
	}
}

// Band edges are half-open on the outer side: exactly 8 degrees is
// under the beams, not combust.
func TestSolarConditionBoundaries(t *testing.T) {
	sun := 0.0
	if got := Condition(CazimiLimit, sun, "Mercury"); got.State != StateCombust {
		t.Errorf("at cazimi limit = %s, want combust", got.State)
	}
	if got := Condition(CombustLimit, sun, "Mercury"); got.State != StateUnderBeams {
		t.Errorf("at combust limit = %s, want under_beams", got.State)
	}
	if got := Condition(UnderBeamsLimit, sun, "Mercury"); got.State != StateFree {
		t.Errorf("at beams limit = %s, want free", got.State)
	}
}

func TestMansionOf(t *testing.T) {
	tests := []struct {
		name      string
		moonLon   float64
		wantIndex int
		wantName  string
	}{
		{"zero aries opens the first", 0, 1, "Al-Sharatain"},
		{"just before second", 12.85, 1, "Al-Sharatain"},
		{"second mansion", 12.9, 2, "Al-Butain"},
		{"ninety degrees", 90, 8, "Al-Nathrah"},
		{"last mansion", 355, 28, "Al-Batn al-Hut"},
		{"wraps at 360", 359.999, 28, "Al-Batn al-Hut"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MansionOf(tt.moonLon)
			if got.Index != tt.wantIndex || got.Name != tt.wantName {
				t.Errorf("MansionOf(%v) = %d/%s, want %d/%s",
					tt.moonLon, got.Index, got.Name, tt.wantIndex, tt.wantName)
			}
			if got.PositionInMansion < 0 || got.PositionInMansion > MansionWidth {
				t.Errorf("position in mansion %v out of range", got.PositionInMansion)
			}
		})
	}
}

// The 28 mansions partition the circle with no gaps.
func TestMansionPartition(t *testing.T) {
	for lon := 0.1; lon < 360; lon += 0.2 {
		m := MansionOf(lon)
		if m.Index < 1 || m.Index > 28 {
			t.Fatalf("MansionOf(%v) index %d out of 1..28", lon, m.Index)
		}
		end := m.End
		if end == 0 {
			end = 360
		}
		if lon < m.Start || lon >= end {
			t.Fatalf("MansionOf(%v) interval [%v,%v) does not hold the longitude", lon, m.Start, m.End)
		}
	}
}

func TestMansionsByNature(t *testing.T) {
	counts := map[string]int{}
	for _, nature := range []string{NatureFortunate, NatureUnfortunate, NatureMixed, NatureNeutral} {
		counts[nature] = len(MansionsByNature(nature))
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 28 {
		t.Errorf("natures cover %d mansions, want 28 (%v)", total, counts)
	}
	if counts[NatureFortunate] == 0 || counts[NatureUnfortunate] == 0 {
		t.Errorf("expected both fortunate and unfortunate mansions, got %v", counts)
	}
}

func TestOrbForMagnitude(t *testing.T) {
	tests := []struct {
		mag  float64
		want float64
	}{
		{-1.5, 2.0},
		{0.9, 2.0},
		{1.0, 1.5},
		{1.9, 1.5},
		{2.1, 1.0},
		{3.5, 0.5},
	}
	for _, tt := range tests {
		if got := OrbForMagnitude(tt.mag); got != tt.want {
			t.Errorf("OrbForMagnitude(%v) = %v, want %v", tt.mag, got, tt.want)
		}
	}
}

func TestStarContacts(t *testing.T) {
	epoch := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	// Sun exactly on Regulus at epoch.
	contacts := Contacts([]NamedPoint{{Name: "Sun", Longitude: 149.76}}, epoch)
	found := false
	for _, c := range contacts {
		if c.Star == "Regulus" && c.Planet == "Sun" {
			found = true
			if c.Orb != 0 {
				t.Errorf("Regulus orb = %v, want 0", c.Orb)
			}
			if !c.Match {
				t.Error("contact not marked as match")
			}
		}
	}
	if !found {
		t.Fatal("Sun on Regulus not reported")
	}

	// A point far from every star yields nothing.
	if got := Contacts([]NamedPoint{{Name: "Moon", Longitude: 10}}, epoch); len(got) != 0 {
		t.Errorf("expected no contacts at 10 Aries, got %v", got)
	}
}

// Precession carries star longitudes forward about 0.014 degrees per
// year; half a century moves Regulus roughly 0.7 degrees.
func TestStarPrecession(t *testing.T) {
	regulus := Catalog()[0]
	at2050 := StarLongitudeAt(regulus, time.Date(2050, 1, 1, 12, 0, 0, 0, time.UTC))
	shift := at2050 - regulus.Longitude
	if shift < 0.65 || shift > 0.75 {
		t.Errorf("Regulus precession over 50 years = %v, want about 0.7", shift)
	}
}
