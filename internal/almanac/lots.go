// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package almanac

import (
	"math"

	"github.com/solmundi/astrolabe/internal/houses"
	"github.com/solmundi/astrolabe/internal/timelord"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// Lot is one computed arabic lot.
type Lot struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
	House     int     `json:"house,omitempty"`
}

// Fortune returns the Lot of Fortune. The formula reverses with sect:
// ASC + Moon - Sun by day, ASC + Sun - Moon by night.
func Fortune(sunLon, moonLon, ascLon float64, sect timelord.Sect) float64 {
	if sect == timelord.Diurnal {
		return zodiac.Normalize(ascLon + moonLon - sunLon)
	}
	return zodiac.Normalize(ascLon + sunLon - moonLon)
}

// Spirit returns the Lot of Spirit, the sect inverse of Fortune.
func Spirit(sunLon, moonLon, ascLon float64, sect timelord.Sect) float64 {
	if sect == timelord.Diurnal {
		return zodiac.Normalize(ascLon + sunLon - moonLon)
	}
	return zodiac.Normalize(ascLon + moonLon - sunLon)
}

// Eros returns the Lot of Eros: ASC + Venus - Spirit.
func Eros(venusLon, spiritLon, ascLon float64) float64 {
	return zodiac.Normalize(ascLon + venusLon - spiritLon)
}

// Necessity returns the Lot of Necessity: ASC + Fortune - Mercury.
func Necessity(fortuneLon, mercuryLon, ascLon float64) float64 {
	return zodiac.Normalize(ascLon + fortuneLon - mercuryLon)
}

// AllLots computes the four principal lots for one chart snapshot.
// The Ascendant must be a real computed angle; callers without houses
// must not call this with a substitute. The house block is optional
// and, when present, adds house placements.
func AllLots(sunLon, moonLon, mercuryLon, venusLon, ascLon float64, sect timelord.Sect, block *houses.Block) []Lot {
	fortune := Fortune(sunLon, moonLon, ascLon, sect)
	spirit := Spirit(sunLon, moonLon, ascLon, sect)

	entries := []struct {
		name string
		lon  float64
	}{
		{"Fortuna", fortune},
		{"Spirit", spirit},
		{"Eros", Eros(venusLon, spirit, ascLon)},
		{"Necessity", Necessity(fortune, mercuryLon, ascLon)},
	}

	out := make([]Lot, 0, len(entries))
	for _, e := range entries {
		lot := Lot{
			Name:      e.name,
			Longitude: e.lon,
			Sign:      zodiac.SignOf(e.lon).String(),
			Degree:    round1(zodiac.DegreeInSign(e.lon)),
		}
		if block != nil {
			lot.House = houses.Assign(e.lon, block)
		}
		out = append(out, lot)
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
