// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package chart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/solmundi/astrolabe/internal/aspect"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/houses"
	"github.com/solmundi/astrolabe/internal/timelord"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// LunarAspect is one contact of the transiting Moon to a natal planet.
type LunarAspect struct {
	Planet string      `json:"planet"`
	Kind   aspect.Type `json:"type"`
	Orb    float64     `json:"orb"`
}

// LunarTransit is the Moon's position at the query instant and its
// contacts against the natal planets.
type LunarTransit struct {
	MoonPosition float64       `json:"moon_position"`
	Aspects      []LunarAspect `json:"aspects"`
}

// FirdariaBlock wraps the active period. Current is nil once the
// 75-year cycle has run out.
type FirdariaBlock struct {
	Current *timelord.Current `json:"current"`
}

// DerivedBlock is the time-lord summary for a nativity at a query
// instant: sect, the active firdaria period, the profected year, and
// the Moon's current contacts to the natal chart.
type DerivedBlock struct {
	Sect         timelord.Sect              `json:"sect"`
	Firdaria     FirdariaBlock              `json:"firdaria"`
	Profection   timelord.AnnualProfection  `json:"profection"`
	Monthly      timelord.MonthlyProfection `json:"monthly"`
	LunarTransit LunarTransit               `json:"lunar_transit"`
}

// Derived computes the time-lord block. Sect and the natal frame come
// from the birth instant; the firdaria, profection, and lunar transit
// are evaluated at now. Queries before birth fail; queries past the
// firdaria cycle leave Current nil.
func Derived(ctx context.Context, prov ephemeris.Provider, birth time.Time, loc Location, now time.Time, opts Options) (*DerivedBlock, error) {
	natal, err := Build(ctx, prov, birth, loc, opts)
	if err != nil {
		return nil, err
	}

	ascSign, ok := natal.AscSign()
	if !ok {
		// Whole sign has no polar limit, so the profection frame
		// survives a Placidus failure.
		block, herr := houses.Compute(birth, loc.Latitude, loc.Longitude, houses.WholeSign)
		if herr != nil {
			return nil, fmt.Errorf("chart: derived ascendant: %w", herr)
		}
		ascSign = zodiac.SignOf(block.Asc)
	}

	out := &DerivedBlock{Sect: natal.Sect}

	cur, err := timelord.CurrentPeriod(birth, natal.Sect, now)
	switch {
	case err == nil:
		out.Firdaria.Current = &cur
	case errors.Is(err, timelord.ErrCycleComplete):
		// leave nil
	default:
		return nil, err
	}

	annual, err := timelord.Annual(birth, now, ascSign)
	if err != nil {
		return nil, err
	}
	out.Profection = annual

	monthly, err := timelord.Monthly(birth, now, ascSign)
	if err != nil {
		return nil, err
	}
	out.Monthly = monthly

	lt, err := lunarTransit(ctx, prov, natal, now)
	if err != nil {
		return nil, err
	}
	out.LunarTransit = lt
	return out, nil
}

func lunarTransit(ctx context.Context, prov ephemeris.Provider, natal *Chart, now time.Time) (LunarTransit, error) {
	moonLon, err := prov.Longitude(ctx, ephemeris.Moon, now)
	if err != nil {
		return LunarTransit{}, fmt.Errorf("chart: transiting moon: %w", err)
	}
	moonSpeed, serr := prov.Speed(ctx, ephemeris.Moon, now)

	natalPlacements := make([]aspect.Placement, 0, len(natal.Planets))
	for _, p := range natal.Planets {
		natalPlacements = append(natalPlacements, aspect.Placement{Name: p.Name, Longitude: p.Longitude})
	}
	moon := aspect.Placement{Name: "Moon", Longitude: moonLon, Speed: moonSpeed, SpeedKnown: serr == nil}

	contacts := aspect.Cross(natalPlacements, []aspect.Placement{moon}, false)
	out := LunarTransit{
		MoonPosition: round4(moonLon),
		Aspects:      make([]LunarAspect, 0, len(contacts)),
	}
	for _, c := range contacts {
		out.Aspects = append(out.Aspects, LunarAspect{Planet: c.NatalPlanet, Kind: c.Kind, Orb: c.Orb})
	}
	return out, nil
}
