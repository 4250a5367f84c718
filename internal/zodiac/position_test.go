// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package zodiac

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 123.45, 123.45},
		{"exactly 360", 360, 0},
		{"over 360", 390.5, 30.5},
		{"negative", -30, 330},
		{"large negative", -750, 330},
		{"large positive", 1085, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestArcDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"same point", 10, 10, 0},
		{"simple", 10, 40, 30},
		{"wrap shorter", 350, 10, 20},
		{"opposition", 0, 180, 180},
		{"beyond opposition", 0, 190, 170},
		{"negative input", -10, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArcDistance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ArcDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSignedDelta(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"ahead", 40, 10, 30},
		{"behind", 10, 40, -30},
		{"wrap ahead", 10, 350, 20},
		{"wrap behind", 350, 10, -20},
		{"opposition", 180, 0, 180},
		{"opposition reversed", 0, 180, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignedDelta(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SignedDelta(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		lon      float64
		wantSign string
		wantDeg  float64
	}{
		{"zero Aries", 0, "Aries", 0},
		{"natal sun capricorn", 280.95, "Capricorn", 10.95},
		{"cancer mid", 103.12, "Cancer", 13.12},
		{"last degree pisces", 359.99, "Pisces", 29.99},
		{"sign boundary belongs to next", 30.0, "Taurus", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.lon)
			if got.SignName != tt.wantSign {
				t.Errorf("Resolve(%v).SignName = %q, want %q", tt.lon, got.SignName, tt.wantSign)
			}
			if math.Abs(got.DegreeInSign-tt.wantDeg) > 1e-9 {
				t.Errorf("Resolve(%v).DegreeInSign = %v, want %v", tt.lon, got.DegreeInSign, tt.wantDeg)
			}
			if got.DegreeInSign < 0 || got.DegreeInSign >= 30 {
				t.Errorf("DegreeInSign %v out of [0,30)", got.DegreeInSign)
			}
		})
	}
}

// Circular consistency: resolving L and L+360 must be identical for any L.
func TestResolveCircularConsistency(t *testing.T) {
	for lon := -720.0; lon < 720.0; lon += 7.3 {
		a := Resolve(lon)
		b := Resolve(lon + 360)
		if a.SignName != b.SignName {
			t.Fatalf("Resolve(%v).Sign = %s but Resolve(%v).Sign = %s", lon, a.SignName, lon+360, b.SignName)
		}
		if math.Abs(a.DegreeInSign-b.DegreeInSign) > 1e-9 {
			t.Fatalf("degree mismatch at %v: %v vs %v", lon, a.DegreeInSign, b.DegreeInSign)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		lon  float64
		want string
	}{
		{103.12, "13°07' Cancer"},
		{0, "0°00' Aries"},
		{155.5, "5°30' Virgo"},
	}
	for _, tt := range tests {
		if got := Format(tt.lon); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.lon, got, tt.want)
		}
	}
}

func TestSignProperties(t *testing.T) {
	if got := Leo.TraditionalRuler(); got != "Sun" {
		t.Errorf("Leo traditional ruler = %s, want Sun", got)
	}
	if got := Scorpio.TraditionalRuler(); got != "Mars" {
		t.Errorf("Scorpio traditional ruler = %s, want Mars", got)
	}
	if got := Scorpio.ModernRuler(); got != "Pluto" {
		t.Errorf("Scorpio modern ruler = %s, want Pluto", got)
	}
	if got := Aries.Opposite(); got != Libra {
		t.Errorf("Aries.Opposite() = %s, want Libra", got)
	}
	if got := Capricorn.Offset(3); got != Aries {
		t.Errorf("Capricorn.Offset(3) = %s, want Aries", got)
	}
	if got := Aries.Offset(-1); got != Pisces {
		t.Errorf("Aries.Offset(-1) = %s, want Pisces", got)
	}
}
