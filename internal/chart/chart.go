// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package chart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/solmundi/astrolabe/internal/aspect"
	"github.com/solmundi/astrolabe/internal/dignity"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/houses"
	"github.com/solmundi/astrolabe/internal/timelord"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// Location is a geographic point, latitude north-positive and
// longitude east-positive.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Options selects the variable parts of chart assembly. The zero
// value means Placidus houses, traditional rulerships, majors only.
type Options struct {
	System       houses.System
	Tradition    dignity.Tradition
	IncludeMinor bool
}

// Planet is one placed body with its sign resolution, dignity, and
// house assignment. House is zero when houses are unavailable.
type Planet struct {
	Name         string          `json:"name"`
	Longitude    float64         `json:"longitude"`
	Sign         string          `json:"sign"`
	DegreeInSign float64         `json:"degree_in_sign"`
	Formatted    string          `json:"formatted"`
	Dignity      dignity.Dignity `json:"dignity"`
	House        int             `json:"house,omitempty"`
}

// Chart is the assembled snapshot. Houses is nil when the requested
// system is undefined for the location; HousesNote then explains why.
type Chart struct {
	Datetime   time.Time       `json:"datetime"`
	Location   Location        `json:"location"`
	Planets    []Planet        `json:"planets"`
	Aspects    []aspect.Aspect `json:"aspects"`
	Houses     *houses.Block   `json:"houses,omitempty"`
	HousesNote string          `json:"houses_note,omitempty"`
	Sect       timelord.Sect   `json:"sect"`
}

// Build assembles a chart for one instant and location. All positions
// come from a single Positions call so the snapshot is internally
// consistent. A house failure degrades the chart instead of failing
// it; any other error aborts.
func Build(ctx context.Context, prov ephemeris.Provider, t time.Time, loc Location, opts Options) (*Chart, error) {
	positions, err := prov.Positions(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("chart: positions at %s: %w", t.Format(time.RFC3339), err)
	}

	ch := &Chart{
		Datetime: t.UTC(),
		Location: loc,
	}

	block, herr := houses.Compute(t, loc.Latitude, loc.Longitude, opts.System)
	if herr != nil {
		var ue *houses.UndefinedError
		if !errors.As(herr, &ue) {
			return nil, fmt.Errorf("chart: houses: %w", herr)
		}
		ch.HousesNote = "Houses not available: " + herr.Error()
	} else {
		ch.Houses = block
	}

	placements := make([]aspect.Placement, 0, len(positions))
	for _, body := range ephemeris.AllBodies() {
		lon := positions[body]
		name := body.String()
		p := Planet{
			Name:         name,
			Longitude:    round4(lon),
			Sign:         zodiac.SignOf(lon).String(),
			DegreeInSign: round2(zodiac.DegreeInSign(lon)),
			Formatted:    zodiac.Format(lon),
			Dignity:      dignity.Evaluate(name, lon, opts.Tradition),
		}
		if ch.Houses != nil {
			p.House = houses.Assign(lon, ch.Houses)
		}
		ch.Planets = append(ch.Planets, p)
		placements = append(placements, aspect.Placement{Name: name, Longitude: lon})
	}

	ch.Aspects = aspect.Between(placements, aspect.DefaultOrb, opts.IncludeMinor)
	ch.Sect = sectOf(t, loc, positions[ephemeris.Sun], ch.Houses)
	return ch, nil
}

// sectOf prefers the solar altitude test; without a horizon reference
// it falls back to the Sun-vs-Ascendant hemisphere rule, and without
// either it defaults to diurnal.
func sectOf(t time.Time, loc Location, sunLon float64, block *houses.Block) timelord.Sect {
	if math.Abs(loc.Latitude) <= houses.MaxPlacidusLatitude {
		if houses.SunAboveHorizon(t, loc.Latitude, loc.Longitude, sunLon) {
			return timelord.Diurnal
		}
		return timelord.Nocturnal
	}
	if block != nil {
		return timelord.SectOf(sunLon, block.Asc)
	}
	return timelord.Diurnal
}

// Planet returns the named placement, or false when absent.
func (c *Chart) Planet(name string) (Planet, bool) {
	for _, p := range c.Planets {
		if p.Name == name {
			return p, true
		}
	}
	return Planet{}, false
}

// AscSign returns the rising sign, or false when houses are
// unavailable.
func (c *Chart) AscSign() (zodiac.Sign, bool) {
	if c.Houses == nil {
		return 0, false
	}
	return zodiac.SignOf(c.Houses.Asc), true
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
