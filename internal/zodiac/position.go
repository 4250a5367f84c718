// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package zodiac

import (
	"fmt"
	"math"
)

// Position is the zodiacal decomposition of an ecliptic longitude.
//
// Positions are pure values derived from a longitude; they carry no
// reference to the instant or chart that produced them.
type Position struct {
	// Longitude is the normalized ecliptic longitude in [0,360).
	Longitude float64 `json:"longitude"`

	// Sign is the zodiacal sign containing the longitude.
	Sign Sign `json:"-"`

	// SignName is the English sign name (serialized form of Sign).
	SignName string `json:"sign"`

	// DegreeInSign is the offset within the sign, in [0,30).
	DegreeInSign float64 `json:"degree_in_sign"`

	// Formatted is the traditional notation, e.g. `13°07' Cancer`.
	Formatted string `json:"formatted"`
}

// Normalize maps an arbitrary longitude into [0,360).
func Normalize(lon float64) float64 {
	lon = math.Mod(lon, 360.0)
	if lon < 0 {
		lon += 360.0
	}
	return lon
}

// ArcDistance returns the shortest angular separation between two
// longitudes. The result is always in [0,180].
func ArcDistance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SignedDelta returns the signed shortest-arc difference a-b,
// in (-180,180]. Positive means a is ahead of b in zodiacal order.
func SignedDelta(a, b float64) float64 {
	d := Normalize(a - b)
	if d > 180 {
		d -= 360.0
	}
	return d
}

// SignOf returns the sign containing the given longitude.
func SignOf(lon float64) Sign {
	return Sign(int(Normalize(lon)/SignSpan) % 12)
}

// DegreeInSign returns the offset of the longitude within its sign,
// in [0,30).
func DegreeInSign(lon float64) float64 {
	return math.Mod(Normalize(lon), SignSpan)
}

// Resolve decomposes a longitude into its zodiacal position. The input
// may be any real number; it is normalized into [0,360) first, so
// Resolve(L) and Resolve(L+360) are identical.
func Resolve(lon float64) Position {
	norm := Normalize(lon)
	sign := SignOf(norm)
	deg := DegreeInSign(norm)
	return Position{
		Longitude:    norm,
		Sign:         sign,
		SignName:     sign.String(),
		DegreeInSign: deg,
		Formatted:    Format(norm),
	}
}

// Format renders a longitude in traditional degree-minute notation,
// e.g. `15°32' Aries`.
func Format(lon float64) string {
	deg := DegreeInSign(lon)
	d := int(deg)
	m := int((deg - float64(d)) * 60)
	return fmt.Sprintf("%d°%02d' %s", d, m, SignOf(lon))
}
