// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package almanac

import "github.com/solmundi/astrolabe/internal/zodiac"

// Solar condition thresholds in degrees of angular distance from the
// Sun. Bands are half-open on the outer edge: [0, cazimi) cazimi,
// [cazimi, combust) combust, [combust, beams) under the beams.
const (
	CazimiLimit     = 17.0 / 60.0
	CombustLimit    = 8.0
	UnderBeamsLimit = 17.0
)

// Solar condition states.
const (
	StateCazimi     = "cazimi"
	StateCombust    = "combust"
	StateUnderBeams = "under_beams"
	StateFree       = "free"
	StateNA         = "n/a"
)

// SolarCondition classifies one planet's distance from the Sun.
type SolarCondition struct {
	State       string  `json:"state"`
	DistanceDeg float64 `json:"distance_deg"`
}

// Condition classifies a planet's solar condition. The luminaries
// themselves report "n/a": the Sun is the reference point and the
// Moon's solar phases are not combustion.
func Condition(planetLon, sunLon float64, planet string) SolarCondition {
	if planet == "Sun" || planet == "Moon" {
		return SolarCondition{State: StateNA}
	}

	d := zodiac.ArcDistance(planetLon, sunLon)

	state := StateFree
	switch {
	case d < CazimiLimit:
		state = StateCazimi
	case d < CombustLimit:
		state = StateCombust
	case d < UnderBeamsLimit:
		state = StateUnderBeams
	}
	return SolarCondition{State: state, DistanceDeg: round2(d)}
}

// Conditions classifies every named placement against the Sun.
func Conditions(placements map[string]float64, sunLon float64) map[string]SolarCondition {
	out := make(map[string]SolarCondition, len(placements))
	for name, lon := range placements {
		out[name] = Condition(lon, sunLon, name)
	}
	return out
}
