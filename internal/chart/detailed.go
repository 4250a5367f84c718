// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package chart

import (
	"context"
	"time"

	"github.com/solmundi/astrolabe/internal/almanac"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// Point is a single resolved ecliptic position used for derived
// points: lots and lunar nodes.
type Point struct {
	Longitude float64 `json:"longitude"`
	Sign      string  `json:"sign"`
	Formatted string  `json:"formatted"`
}

func pointAt(lon float64) Point {
	return Point{
		Longitude: round4(lon),
		Sign:      zodiac.SignOf(lon).String(),
		Formatted: zodiac.Format(lon),
	}
}

// LunarNodes pairs the mean node axis endpoints.
type LunarNodes struct {
	NorthNode Point `json:"north_node"`
	SouthNode Point `json:"south_node"`
}

// Detailed is a chart enriched with lot and node positions. The lot
// formulas need a real Ascendant, so ArabicParts and Lots are nil when
// houses were unavailable; the node axis never needs one.
type Detailed struct {
	*Chart

	ArabicParts map[string]Point `json:"arabic_parts,omitempty"`
	Lots        []almanac.Lot    `json:"lots,omitempty"`
	LunarNodes  LunarNodes       `json:"lunar_nodes"`
}

// BuildDetailed assembles the enriched chart. It shares Build's
// degradation behavior for houses.
func BuildDetailed(ctx context.Context, prov ephemeris.Provider, t time.Time, loc Location, opts Options) (*Detailed, error) {
	base, err := Build(ctx, prov, t, loc, opts)
	if err != nil {
		return nil, err
	}

	det := &Detailed{
		Chart: base,
		LunarNodes: LunarNodes{
			NorthNode: pointAt(ephemeris.NorthNode(t)),
			SouthNode: pointAt(ephemeris.SouthNode(t)),
		},
	}

	if base.Houses == nil {
		return det, nil
	}

	sun, _ := base.Planet("Sun")
	moon, _ := base.Planet("Moon")
	mercury, _ := base.Planet("Mercury")
	venus, _ := base.Planet("Venus")

	det.Lots = almanac.AllLots(sun.Longitude, moon.Longitude, mercury.Longitude, venus.Longitude,
		base.Houses.Asc, base.Sect, base.Houses)
	det.ArabicParts = map[string]Point{
		"part_of_fortune": pointAt(det.Lots[0].Longitude),
	}
	return det, nil
}
