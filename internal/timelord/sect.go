// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package timelord

import "math"

// Sect divides charts into day and night births, which selects the
// firdaria sequence and the sect benefic/malefic in scoring.
type Sect int

const (
	Diurnal Sect = iota
	Nocturnal
)

// String returns the wire name used in the derived block.
func (s Sect) String() string {
	if s == Nocturnal {
		return "nocturnal"
	}
	return "diurnal"
}

// MarshalJSON encodes the sect as its wire name.
func (s Sect) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// SectOf derives sect from the Sun's position relative to the
// Ascendant-Descendant axis: the Sun in the upper hemisphere (the
// half-circle holding houses 7 through 12) makes the chart diurnal.
// A Sun exactly on the Ascendant counts diurnal (rising), exactly on
// the Descendant nocturnal (set).
func SectOf(sunLon, ascLon float64) Sect {
	d := math.Mod(sunLon-ascLon, 360.0)
	if d < 0 {
		d += 360.0
	}
	if d == 0 || d > 180 {
		return Diurnal
	}
	return Nocturnal
}
