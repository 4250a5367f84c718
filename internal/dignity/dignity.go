// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package dignity evaluates essential dignities: the classical
// strength-or-weakness rating a planet earns from its sign placement.
//
// Evaluation is table-driven from the rulership tables in the zodiac
// package, so dignity and reception logic can never drift apart. The
// rulership tradition (traditional vs. modern outer-planet rulers) is
// an explicit parameter on every call; there is no package-level mode.
package dignity

import (
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// Tradition selects which rulership table grounds the evaluation.
type Tradition int

const (
	// Traditional uses the seven classical rulers only: Mars rules
	// Scorpio, Saturn rules Aquarius, Jupiter rules Pisces, and the
	// outer planets hold no domicile, exaltation, detriment, or fall.
	Traditional Tradition = iota

	// Modern assigns Scorpio to Pluto, Aquarius to Uranus, and Pisces
	// to Neptune, and includes the modern outer-planet exaltations.
	Modern
)

// String returns the lowercase name used in request parameters.
func (t Tradition) String() string {
	if t == Modern {
		return "modern"
	}
	return "traditional"
}

// TraditionByName parses a request-level tradition name. Unrecognized
// names report false.
func TraditionByName(name string) (Tradition, bool) {
	switch name {
	case "traditional":
		return Traditional, true
	case "modern":
		return Modern, true
	default:
		return 0, false
	}
}

// Fixed point values of the classical scoring scheme.
const (
	domicileScore   = 5
	exaltationScore = 4
	detrimentScore  = -5
	fallScore       = -4
)

// exaltationOrb is how close to the tabulated exaltation degree a
// planet must stand for the exaltation (or fall) to count, measured as
// shortest arc within the sign.
const exaltationOrb = 5.0

// exaltation pairs a sign with the traditional degree of exaltation
// within it.
type exaltation struct {
	sign   zodiac.Sign
	degree float64
}

// classicalExaltations covers the seven visible planets and applies
// under both traditions.
var classicalExaltations = map[string]exaltation{
	"Sun":     {zodiac.Aries, 19},
	"Moon":    {zodiac.Taurus, 3},
	"Mercury": {zodiac.Virgo, 15},
	"Venus":   {zodiac.Pisces, 27},
	"Mars":    {zodiac.Capricorn, 28},
	"Jupiter": {zodiac.Cancer, 15},
	"Saturn":  {zodiac.Libra, 21},
}

// modernExaltations extends the table to the outer planets and applies
// only under the Modern tradition.
var modernExaltations = map[string]exaltation{
	"Uranus":  {zodiac.Scorpio, 0},
	"Neptune": {zodiac.Cancer, 0},
	"Pluto":   {zodiac.Leo, 0},
}

// Dignity is the evaluated essential dignity of one planet placement.
// Exactly one category applies: detriment and fall oppose domicile and
// exaltation, and peregrine is the default when the score nets to zero.
type Dignity struct {
	Domicile   bool `json:"domicile"`
	Exaltation bool `json:"exaltation"`
	Detriment  bool `json:"detriment"`
	Fall       bool `json:"fall"`
	Peregrine  bool `json:"peregrine"`
	Score      int  `json:"score"`
}

// Category returns the name of the applying dignity category.
func (d Dignity) Category() string {
	switch {
	case d.Domicile:
		return "domicile"
	case d.Exaltation:
		return "exaltation"
	case d.Detriment:
		return "detriment"
	case d.Fall:
		return "fall"
	default:
		return "peregrine"
	}
}

// ruler returns the domicile lord of a sign under the given tradition.
func ruler(s zodiac.Sign, trad Tradition) string {
	if trad == Modern {
		return s.ModernRuler()
	}
	return s.TraditionalRuler()
}

// Ruler exposes the per-tradition domicile lord for callers that need
// reception and chart-ruler logic.
func Ruler(s zodiac.Sign, trad Tradition) string {
	return ruler(s, trad)
}

// exaltationOf looks up the exaltation entry for a planet under the
// given tradition.
func exaltationOf(planet string, trad Tradition) (exaltation, bool) {
	if ex, ok := classicalExaltations[planet]; ok {
		return ex, true
	}
	if trad == Modern {
		ex, ok := modernExaltations[planet]
		return ex, ok
	}
	return exaltation{}, false
}

// withinOrb reports whether a degree-in-sign stands within the
// exaltation orb of the tabulated degree, wrapping across the sign
// boundary (29 degrees is 1 degree away from a 0-degree station).
func withinOrb(degInSign, station float64) bool {
	d := degInSign - station
	if d < 0 {
		d = -d
	}
	if d > zodiac.SignSpan/2 {
		d = zodiac.SignSpan - d
	}
	return d <= exaltationOrb
}

// Evaluate rates the essential dignity of planet at the given ecliptic
// longitude under the selected tradition. Exaltation and fall require
// standing within the orb of the tabulated degree; a planet in its
// exaltation sign but outside the orb rates peregrine.
//
// Exactly one category applies. Where the raw tables overlap (Mercury
// in Virgo is both its domicile and its exaltation sign), precedence
// is domicile, exaltation, detriment, fall.
func Evaluate(planet string, lon float64, trad Tradition) Dignity {
	sign := zodiac.SignOf(lon)
	deg := zodiac.DegreeInSign(lon)

	ex, hasEx := exaltationOf(planet, trad)
	exalted := hasEx && sign == ex.sign && withinOrb(deg, ex.degree)
	// Fall is the sign opposite the exaltation, same degree.
	fallen := hasEx && sign == ex.sign.Opposite() && withinOrb(deg, ex.degree)

	var d Dignity
	switch {
	case ruler(sign, trad) == planet:
		d.Domicile = true
		d.Score = domicileScore
	case exalted:
		d.Exaltation = true
		d.Score = exaltationScore
	case ruler(sign.Opposite(), trad) == planet:
		d.Detriment = true
		d.Score = detrimentScore
	case fallen:
		d.Fall = true
		d.Score = fallScore
	default:
		d.Peregrine = true
	}
	return d
}
