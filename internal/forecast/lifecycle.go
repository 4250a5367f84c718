// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package forecast

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// CycleEvent is one generational transit: the moment a slow body
// reaches a cardinal angle from its own natal place. Approx is a
// calendar date; the underlying crossing is refined to day precision.
type CycleEvent struct {
	Cycle  string `json:"cycle"`
	Planet string `json:"planet"`
	Angle  int    `json:"angle"`
	Approx string `json:"approx"`
}

// cycleBodies are scanned oldest-first. Jupiter joins the scan only
// on request; its 12-year cycle produces many more events than the
// generational markers.
var cycleBodies = []ephemeris.Body{
	ephemeris.Saturn, ephemeris.Uranus, ephemeris.Neptune, ephemeris.Pluto,
}

// cycleAngles are the crossings that count as life-cycle events.
var cycleAngles = [4]float64{0, 90, 180, 270}

const (
	cycleScanStep  = 30 * 24 * time.Hour
	cycleHorizonYr = 90

	// bisection stops once the bracket is narrower than a day
	refineTarget = 24 * time.Hour
)

func cycleName(planet string, angle float64) string {
	switch angle {
	case 0:
		return planet + " Return"
	case 180:
		return planet + " Opposition"
	default:
		return planet + " Square"
	}
}

// LifeCycles scans ninety years forward from birth, clipped to the
// provider's window, and reports every cardinal-angle crossing of the
// slow bodies over their natal places, chronologically.
func (e *Engine) LifeCycles(ctx context.Context, birth time.Time, includeJupiter bool) ([]CycleEvent, error) {
	bodies := cycleBodies
	if includeJupiter {
		bodies = append([]ephemeris.Body{ephemeris.Jupiter}, bodies...)
	}

	end := birth.AddDate(cycleHorizonYr, 0, 0)
	if end.After(ephemeris.MaxTime) {
		end = ephemeris.MaxTime.Add(-cycleScanStep)
	}

	events := make([]CycleEvent, 0, 32)
	for _, body := range bodies {
		natal, err := e.prov.Longitude(ctx, body, birth)
		if err != nil {
			return nil, fmt.Errorf("forecast: natal %s: %w", body, err)
		}
		found, err := e.scanBody(ctx, body, natal, birth, end)
		if err != nil {
			return nil, err
		}
		events = append(events, found...)
	}

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].Approx < events[b].Approx
	})
	return events, nil
}

// scanBody walks [start, end] in fixed steps, watching the signed
// offset of the transiting body from each cardinal angle. A sign flip
// between consecutive samples brackets a crossing, which bisection
// then narrows to under a day.
func (e *Engine) scanBody(ctx context.Context, body ephemeris.Body, natal float64, start, end time.Time) ([]CycleEvent, error) {
	offset := func(t time.Time, angle float64) (float64, error) {
		lon, err := e.prov.Longitude(ctx, body, t)
		if err != nil {
			return 0, fmt.Errorf("forecast: %s at %s: %w", body, t.Format(time.RFC3339), err)
		}
		delta := zodiac.Normalize(lon - natal)
		return zodiac.SignedDelta(delta, angle), nil
	}

	var events []CycleEvent
	prev := make([]float64, len(cycleAngles))
	for i, angle := range cycleAngles {
		g, err := offset(start, angle)
		if err != nil {
			return nil, err
		}
		prev[i] = g
	}

	for t := start.Add(cycleScanStep); !t.After(end); t = t.Add(cycleScanStep) {
		for i, angle := range cycleAngles {
			g, err := offset(t, angle)
			if err != nil {
				return nil, err
			}
			// A slow body moves a few degrees per step; a large jump
			// in the offset is the 180-degree wrap, not a crossing.
			if prev[i]*g < 0 && abs(prev[i]) < 45 && abs(g) < 45 {
				when, err := e.refine(ctx, offset, angle, t.Add(-cycleScanStep), t)
				if err != nil {
					return nil, err
				}
				events = append(events, CycleEvent{
					Cycle:  cycleName(body.String(), angle),
					Planet: body.String(),
					Angle:  int(angle),
					Approx: when.UTC().Format("2006-01-02"),
				})
			}
			prev[i] = g
		}
	}
	return events, nil
}

// refine bisects a bracketed crossing until the bracket is under a
// day and returns its midpoint.
func (e *Engine) refine(ctx context.Context, offset func(time.Time, float64) (float64, error), angle float64, lo, hi time.Time) (time.Time, error) {
	gLo, err := offset(lo, angle)
	if err != nil {
		return time.Time{}, err
	}
	for hi.Sub(lo) > refineTarget {
		mid := lo.Add(hi.Sub(lo) / 2)
		gMid, err := offset(mid, angle)
		if err != nil {
			return time.Time{}, err
		}
		if gLo*gMid <= 0 {
			hi = mid
		} else {
			lo, gLo = mid, gMid
		}
	}
	return lo.Add(hi.Sub(lo) / 2), nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
