// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package aspect detects angular relationships between chart bodies:
// the classical major aspects, optional minors, natal pairwise scans,
// and cross-chart (transit-to-natal) scans with applying/separating
// determination and mutual reception.
package aspect

import (
	"github.com/solmundi/astrolabe/internal/dignity"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// Type is a closed enumeration of supported aspects. Declaration order
// is the fixed priority order used to break exact-orb ties: majors in
// canonical sequence, then minors.
type Type int

const (
	Conjunction Type = iota
	Sextile
	Square
	Trine
	Opposition
	Semisextile
	Semisquare
	Sesquisquare
	Quincunx

	numTypes
)

var typeNames = [numTypes]string{
	"conjunction", "sextile", "square", "trine", "opposition",
	"semisextile", "semisquare", "sesquisquare", "quincunx",
}

var typeAngles = [numTypes]float64{0, 60, 90, 120, 180, 30, 45, 135, 150}

// String returns the lowercase wire name of the aspect.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "unknown"
	}
	return typeNames[t]
}

// MarshalJSON encodes the aspect as its wire name.
func (t Type) MarshalJSON() ([]byte, error) {
	name := t.String()
	buf := make([]byte, 0, len(name)+2)
	buf = append(buf, '"')
	buf = append(buf, name...)
	buf = append(buf, '"')
	return buf, nil
}

// Angle returns the canonical angular separation of the aspect.
func (t Type) Angle() float64 { return typeAngles[t] }

// Major reports whether the aspect is one of the five Ptolemaic majors.
func (t Type) Major() bool { return t <= Opposition }

// Harmonious reports whether the aspect is classically soft. Used by
// scoring; conjunctions are neutral and report false.
func (t Type) Harmonious() bool { return t == Trine || t == Sextile }

// Hard reports whether the aspect is classically challenging.
func (t Type) Hard() bool { return t == Square || t == Opposition }

// DefaultOrb is the maximum orb for natal pairwise scans.
const DefaultOrb = 6.0

// crossCutoff bounds the closest-aspect search in cross-chart scans
// before the per-type transit orbs are applied.
const crossCutoff = 10.0

// TransitOrbs are the per-type maximum orbs for transit-to-natal
// contacts. Types absent from the map fall back to DefaultTransitOrb.
var TransitOrbs = map[Type]float64{
	Conjunction:  8,
	Opposition:   8,
	Trine:        8,
	Square:       7,
	Sextile:      6,
	Semisextile:  3,
	Quincunx:     3,
	Semisquare:   2,
	Sesquisquare: 2,
}

// DefaultTransitOrb applies to aspect types without a TransitOrbs entry.
const DefaultTransitOrb = 3.0

// TransitOrb returns the maximum transit orb for an aspect type.
func TransitOrb(t Type) float64 {
	if orb, ok := TransitOrbs[t]; ok {
		return orb
	}
	return DefaultTransitOrb
}

// Placement is one body's state for aspect scanning. SpeedKnown guards
// Speed: applying/separating is only determined when the caller really
// measured a speed, never assumed.
type Placement struct {
	Name       string
	Longitude  float64
	Speed      float64
	SpeedKnown bool
}

// Aspect is one detected contact between two bodies of the same chart.
type Aspect struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Kind  Type    `json:"type"`
	Orb   float64 `json:"orb"`
	Angle float64 `json:"angle"`
}

// Transit is one detected contact between a transiting body and a
// natal body. Applying is nil when the transiting speed is unknown.
type Transit struct {
	NatalPlanet      string  `json:"natal_planet"`
	TransitPlanet    string  `json:"transit_planet"`
	Kind             Type    `json:"aspect"`
	Orb              float64 `json:"orb"`
	Applying         *bool   `json:"applying"`
	Exactness        string  `json:"exactness"`
	NatalLongitude   float64 `json:"natal_longitude"`
	TransitLongitude float64 `json:"transit_longitude"`
}

// MutualReception reports whether two planets each occupy a sign
// domicile-ruled by the other under the given tradition.
func MutualReception(planetA string, lonA float64, planetB string, lonB float64, trad dignity.Tradition) bool {
	return dignity.Ruler(zodiac.SignOf(lonA), trad) == planetB &&
		dignity.Ruler(zodiac.SignOf(lonB), trad) == planetA
}
