// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package solarreturn

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/solmundi/astrolabe/internal/aspect"
	"github.com/solmundi/astrolabe/internal/chart"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/forecast"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

const (
	// solveTolerance is the acceptable angular residual, in degrees.
	// 0.001 deg of solar motion is about 90 seconds of clock time.
	solveTolerance = 0.001

	solveIterations = 20

	// bracketDays spans the search window around the anniversary.
	bracketDays = 2
)

// ConvergenceError reports a bisection that failed to reach the
// tolerance within the iteration cap.
type ConvergenceError struct {
	Year     int
	Residual float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("solarreturn: bisection for year %d stalled at %.6f deg residual",
		e.Year, e.Residual)
}

// Find returns the instant in the target year when the transiting Sun
// reaches its natal longitude. The natal longitude is taken from the
// birth instant itself.
func Find(ctx context.Context, prov ephemeris.Provider, birth time.Time, year int) (time.Time, error) {
	target, err := prov.Longitude(ctx, ephemeris.Sun, birth)
	if err != nil {
		return time.Time{}, fmt.Errorf("solarreturn: natal sun: %w", err)
	}

	// The Sun moves about a degree a day, so a bracket of a few days
	// around the calendar anniversary always contains exactly one
	// crossing and the offset is monotonic across it.
	anchor := time.Date(year, birth.Month(), birth.Day(),
		birth.Hour(), birth.Minute(), birth.Second(), 0, time.UTC)
	lo := anchor.AddDate(0, 0, -bracketDays)
	hi := anchor.AddDate(0, 0, bracketDays)

	offset := func(t time.Time) (float64, error) {
		lon, err := prov.Longitude(ctx, ephemeris.Sun, t)
		if err != nil {
			return 0, fmt.Errorf("solarreturn: sun at %s: %w", t.Format(time.RFC3339), err)
		}
		return zodiac.SignedDelta(lon, target), nil
	}

	gLo, err := offset(lo)
	if err != nil {
		return time.Time{}, err
	}

	var mid time.Time
	var gMid float64
	for i := 0; i < solveIterations; i++ {
		mid = lo.Add(hi.Sub(lo) / 2)
		gMid, err = offset(mid)
		if err != nil {
			return time.Time{}, err
		}
		if math.Abs(gMid) < solveTolerance {
			return mid, nil
		}
		if (gLo < 0) == (gMid < 0) {
			lo, gLo = mid, gMid
		} else {
			hi = mid
		}
	}
	return time.Time{}, &ConvergenceError{Year: year, Residual: math.Abs(gMid)}
}

// Planet is one placed body in a solar-return chart.
type Planet struct {
	Name  string  `json:"name"`
	Lon   float64 `json:"lon"`
	Sign  string  `json:"sign"`
	House int     `json:"house,omitempty"`
}

// Summary aggregates the return chart's aspect strengths into a
// signed total and a categorical label.
type Summary struct {
	TotalScore     float64 `json:"total_score"`
	NumAspects     int     `json:"num_aspects"`
	Interpretation string  `json:"interpretation"`
}

// Chart is a solved and scored solar return.
type Chart struct {
	SolarReturnDatetime time.Time       `json:"solar_return_datetime"`
	BirthDate           time.Time       `json:"birth_date"`
	Location            chart.Location  `json:"location"`
	Year                int             `json:"year"`
	Planets             []Planet        `json:"planets"`
	Aspects             []aspect.Aspect `json:"aspects"`
	ScoreSummary        Summary         `json:"score_summary"`

	// snapshot retains the full chart for the ranking engine.
	snapshot *chart.Chart
}

// BuildChart solves the return instant and assembles the chart at the
// given location. House failures degrade the chart the same way
// natal assembly does.
func BuildChart(ctx context.Context, prov ephemeris.Provider, birth time.Time, loc chart.Location, year int, opts chart.Options) (*Chart, error) {
	when, err := Find(ctx, prov, birth, year)
	if err != nil {
		return nil, err
	}

	snap, err := chart.Build(ctx, prov, when, loc, opts)
	if err != nil {
		return nil, err
	}

	out := &Chart{
		SolarReturnDatetime: when,
		BirthDate:           birth.UTC(),
		Location:            loc,
		Year:                year,
		Aspects:             snap.Aspects,
		ScoreSummary:        summarize(snap.Aspects),
		snapshot:            snap,
	}
	for _, p := range snap.Planets {
		out.Planets = append(out.Planets, Planet{
			Name:  p.Name,
			Lon:   p.Longitude,
			Sign:  p.Sign,
			House: p.House,
		})
	}
	return out, nil
}

// summarize applies the forecast weight table to the chart's own
// aspects: each contact contributes its aspect weight scaled by the
// first planet's weight and damped by orb.
func summarize(aspects []aspect.Aspect) Summary {
	w := forecast.DefaultWeights()
	var total float64
	for _, a := range aspects {
		pw, ok := w.Planets[a.A]
		if !ok {
			pw = 1
		}
		total += w.Aspects[a.Kind] * pw * math.Exp(-a.Orb/3)
	}
	total = math.Round(total*1000) / 1000

	label := "neutral"
	switch {
	case total > 0:
		label = "favorable"
	case total < 0:
		label = "challenging"
	}
	return Summary{TotalScore: total, NumAspects: len(aspects), Interpretation: label}
}
