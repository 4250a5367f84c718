// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package almanac

import (
	"fmt"
	"time"

	"github.com/solmundi/astrolabe/internal/zodiac"
)

// Star is one fixed-star catalog row. Longitude is the ecliptic
// longitude at the J2000.0 epoch; query-time longitudes add general
// precession.
type Star struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Magnitude float64 `json:"magnitude"`
	Nature    string  `json:"nature"`
	Notes     string  `json:"notes"`
}

// starCatalog lists the principal fixed stars in fixed order, keeping
// contact output deterministic.
var starCatalog = []Star{
	{"Regulus", 149.76, 1.4, "Mars-Jupiter", "Heart of the Lion: royalty, honor, success"},
	{"Aldebaran", 69.88, 0.9, "Mars", "Eye of the Bull: military honor, impulsiveness"},
	{"Antares", 249.76, 1.0, "Mars-Jupiter", "Heart of the Scorpion: obstinacy, violence"},
	{"Fomalhaut", 333.76, 1.2, "Venus-Mercury", "Mouth of the Fish: idealism, art, magic"},
	{"Spica", 203.76, 1.0, "Venus-Mars", "The wheat ear: protection, success, talent"},
	{"Algol", 56.0, 2.1, "Saturn-Jupiter", "Head of Medusa: danger, violence"},
	{"Sirius", 104.0, -1.5, "Jupiter-Mars", "The Dog Star: honor, wealth, devotion"},
	{"Vega", 285.0, 0.0, "Venus-Mercury", "Criticism, idealism, refinement"},
	{"Arcturus", 204.0, -0.04, "Mars-Jupiter", "Protection, wealth, honor"},
	{"Betelgeuse", 88.76, 0.5, "Mars-Mercury", "Adventure, quick success, shifting fortune"},
}

// precessionRate is the general precession in ecliptic longitude,
// degrees per Julian year.
const precessionRate = 50.29 / 3600.0

var starEpoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// StarLongitudeAt returns a star's ecliptic longitude precessed from
// the catalog epoch to t.
func StarLongitudeAt(s Star, t time.Time) float64 {
	years := t.Sub(starEpoch).Hours() / 24.0 / 365.25
	return zodiac.Normalize(s.Longitude + precessionRate*years)
}

// OrbForMagnitude returns the traditional conjunction orb: brighter
// stars reach further.
func OrbForMagnitude(magnitude float64) float64 {
	switch {
	case magnitude < 1:
		return 2.0
	case magnitude < 2:
		return 1.5
	case magnitude < 3:
		return 1.0
	default:
		return 0.5
	}
}

// StarContact is one planet-to-fixed-star conjunction.
type StarContact struct {
	Star      string  `json:"star"`
	Magnitude float64 `json:"mag"`
	Position  string  `json:"long"`
	Planet    string  `json:"planet"`
	Match     bool    `json:"match"`
	Orb       float64 `json:"orb"`
	Nature    string  `json:"nature"`
	Notes     string  `json:"notes"`
}

// NamedPoint is a chart point participating in star-contact scans.
type NamedPoint struct {
	Name      string
	Longitude float64
}

// Contacts finds every planet-to-star conjunction at t within the
// magnitude-scaled orbs, in planet-major catalog-minor order.
func Contacts(points []NamedPoint, t time.Time) []StarContact {
	var out []StarContact
	for _, p := range points {
		for _, s := range starCatalog {
			starLon := StarLongitudeAt(s, t)
			orb := zodiac.ArcDistance(p.Longitude, starLon)
			if orb > OrbForMagnitude(s.Magnitude) {
				continue
			}
			out = append(out, StarContact{
				Star:      s.Name,
				Magnitude: s.Magnitude,
				Position:  formatStarPosition(starLon),
				Planet:    p.Name,
				Match:     true,
				Orb:       round2(orb),
				Nature:    s.Nature,
				Notes:     s.Notes,
			})
		}
	}
	return out
}

// Catalog returns a copy of the star catalog.
func Catalog() []Star {
	out := make([]Star, len(starCatalog))
	copy(out, starCatalog)
	return out
}

func formatStarPosition(lon float64) string {
	sign := zodiac.SignOf(lon)
	return fmt.Sprintf("%s %d°", sign, int(zodiac.DegreeInSign(lon)))
}
