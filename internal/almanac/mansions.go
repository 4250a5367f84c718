// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package almanac

import (
	"math"

	"github.com/solmundi/astrolabe/internal/zodiac"
)

// MansionWidth is the span of one lunar mansion: 28 equal divisions
// of the circle starting at 0 Aries.
const MansionWidth = 360.0 / 28.0

// Mansion natures.
const (
	NatureFortunate   = "fortunate"
	NatureUnfortunate = "unfortunate"
	NatureMixed       = "mixed"
	NatureNeutral     = "neutral"
)

// mansionEntry is one catalog row; start longitudes are derived from
// the index so the table cannot drift from the 360/28 division.
type mansionEntry struct {
	name   string
	nature string
	ruler  string
}

var mansionCatalog = [28]mansionEntry{
	{"Al-Sharatain", NatureNeutral, "Mars"},
	{"Al-Butain", NatureFortunate, "Venus"},
	{"Al-Thurayya", NatureFortunate, "Moon"},
	{"Al-Dabaran", NatureMixed, "Mercury"},
	{"Al-Haqa'ah", NatureNeutral, "Moon"},
	{"Al-Han'ah", NatureMixed, "Sun"},
	{"Al-Dhira", NatureMixed, "Jupiter"},
	{"Al-Nathrah", NatureUnfortunate, "Saturn"},
	{"Al-Tarf", NatureUnfortunate, "Mercury"},
	{"Al-Jabhah", NatureNeutral, "Saturn"},
	{"Al-Zubrah", NatureFortunate, "Jupiter"},
	{"Al-Sarfah", NatureMixed, "Mars"},
	{"Al-Awwa", NatureFortunate, "Venus"},
	{"Al-Simak", NatureFortunate, "Mercury"},
	{"Al-Ghafr", NatureFortunate, "Moon"},
	{"Al-Zubana", NatureMixed, "Saturn"},
	{"Al-Iklil", NatureMixed, "Jupiter"},
	{"Al-Qalb", NatureUnfortunate, "Mars"},
	{"Al-Shaulah", NatureUnfortunate, "Moon"},
	{"Al-Na'am", NatureFortunate, "Saturn"},
	{"Al-Baldah", NatureMixed, "Jupiter"},
	{"Sa'd al-Dhabih", NatureFortunate, "Venus"},
	{"Sa'd Bula", NatureFortunate, "Mercury"},
	{"Sa'd al-Su'ud", NatureFortunate, "Sun"},
	{"Sa'd al-Akhbiyah", NatureFortunate, "Moon"},
	{"Al-Fargh al-Mukdim", NatureMixed, "Saturn"},
	{"Al-Fargh al-Thani", NatureMixed, "Jupiter"},
	{"Al-Batn al-Hut", NatureFortunate, "Mars"},
}

// Mansion is the Moon's mansion placement.
type Mansion struct {
	Index             int     `json:"index"`
	Name              string  `json:"name"`
	Start             float64 `json:"start"`
	End               float64 `json:"end"`
	Nature            string  `json:"nature"`
	Ruler             string  `json:"ruler"`
	PositionInMansion float64 `json:"position_in_mansion"`
}

// MansionOf resolves the lunar mansion holding a Moon longitude.
// Mansion intervals are half-open [start, end).
func MansionOf(moonLon float64) Mansion {
	lon := zodiac.Normalize(moonLon)

	i := int(lon / MansionWidth)
	if i >= len(mansionCatalog) { // guards lon just below 360 rounding up
		i = len(mansionCatalog) - 1
	}

	start := float64(i) * MansionWidth
	entry := mansionCatalog[i]
	return Mansion{
		Index:             i + 1,
		Name:              entry.name,
		Start:             start,
		End:               math.Mod(start+MansionWidth, 360),
		Nature:            entry.nature,
		Ruler:             entry.ruler,
		PositionInMansion: round2(lon - start),
	}
}

// MansionsByNature lists the mansions of a given nature in catalog
// order, for electional work.
func MansionsByNature(nature string) []Mansion {
	var out []Mansion
	for i, entry := range mansionCatalog {
		if entry.nature != nature {
			continue
		}
		start := float64(i) * MansionWidth
		out = append(out, Mansion{
			Index:  i + 1,
			Name:   entry.name,
			Start:  start,
			End:    math.Mod(start+MansionWidth, 360),
			Nature: entry.nature,
			Ruler:  entry.ruler,
		})
	}
	return out
}
