// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package forecast

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/solmundi/astrolabe/internal/aspect"
	"github.com/solmundi/astrolabe/internal/ephemeris"
)

// Weights parameterize the favorability score. Aspect weights carry
// the sign (harmonious positive, hard negative); planet weights scale
// by the transiting body. Missing planet entries default to 1,
// missing aspect entries to 0.
type Weights struct {
	Aspects map[aspect.Type]float64
	Planets map[string]float64
}

// DefaultWeights returns the stock scoring table.
func DefaultWeights() Weights {
	return Weights{
		Aspects: map[aspect.Type]float64{
			aspect.Trine:       1.0,
			aspect.Sextile:     0.6,
			aspect.Conjunction: 0.3,
			aspect.Square:      -1.0,
			aspect.Opposition:  -0.8,
		},
		Planets: map[string]float64{
			"Sun":     1.0,
			"Moon":    1.0,
			"Mercury": 0.9,
			"Venus":   1.1,
			"Mars":    1.1,
			"Jupiter": 1.2,
			"Saturn":  1.2,
			"Uranus":  1.0,
			"Neptune": 1.0,
			"Pluto":   1.0,
		},
	}
}

// orbDecay is the e-folding orb in degrees: an exact contact counts
// in full, a contact at the orb limit is damped to roughly e^-2.
const orbDecay = 3.0

// SamplePoint is one (instant, score) sample.
type SamplePoint struct {
	T time.Time `json:"t"`
	F float64   `json:"F"`
}

// Peak is a detected local extremum.
type Peak struct {
	T    time.Time `json:"t"`
	F    float64   `json:"F"`
	Kind string    `json:"kind"`
}

// Series is a sampled favorability curve with its extrema.
type Series struct {
	Timeseries []SamplePoint `json:"timeseries"`
	Peaks      []Peak        `json:"peaks"`
}

// peakWindow is the neighbor span, in samples, an extremum must
// dominate on each side.
const peakWindow = 3

// peakTopK caps the number of reported extrema.
const peakTopK = 10

// Engine computes forecast products against one ephemeris provider.
type Engine struct {
	prov    ephemeris.Provider
	weights Weights
}

// NewEngine returns an engine with the given weights. Zero-value
// weights fall back to the defaults.
func NewEngine(prov ephemeris.Provider, w Weights) *Engine {
	if w.Aspects == nil && w.Planets == nil {
		w = DefaultWeights()
	}
	return &Engine{prov: prov, weights: w}
}

// score sums the weighted contacts of all transiting planets against
// all natal planets. Majors only, default orb, exponential damping.
func (e *Engine) score(natal, transiting map[ephemeris.Body]float64) float64 {
	var total float64
	for _, tb := range ephemeris.AllBodies() {
		tLon, ok := transiting[tb]
		if !ok {
			continue
		}
		pw, ok := e.weights.Planets[tb.String()]
		if !ok {
			pw = 1
		}
		for _, nb := range ephemeris.AllBodies() {
			nLon, ok := natal[nb]
			if !ok {
				continue
			}
			kind, orb, _, ok := aspect.Match(tLon, nLon, aspect.DefaultOrb, false)
			if !ok {
				continue
			}
			total += e.weights.Aspects[kind] * pw * math.Exp(-orb/orbDecay)
		}
	}
	return total
}

// Series samples F(t) over [start, end] at a fixed step and detects
// its extrema. The endpoints are inclusive; equal inputs always yield
// an identical series.
func (e *Engine) Series(ctx context.Context, birth, start, end time.Time, step time.Duration) (*Series, error) {
	if step <= 0 {
		return nil, fmt.Errorf("forecast: non-positive step %v", step)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("forecast: end %s precedes start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	natal, err := e.prov.Positions(ctx, birth)
	if err != nil {
		return nil, fmt.Errorf("forecast: natal positions: %w", err)
	}

	out := &Series{}
	for t := start; !t.After(end); t = t.Add(step) {
		transiting, err := e.prov.Positions(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("forecast: positions at %s: %w", t.Format(time.RFC3339), err)
		}
		out.Timeseries = append(out.Timeseries, SamplePoint{
			T: t.UTC(),
			F: round4(e.score(natal, transiting)),
		})
	}
	out.Peaks = detectPeaks(out.Timeseries, peakWindow, peakTopK)
	return out, nil
}

// detectPeaks returns the local extrema of the series: points that
// strictly dominate every neighbor within window samples on both
// sides. The window doubles as the minimum separation between
// reported extrema. Results are capped to the topK largest by
// magnitude, strongest first.
func detectPeaks(series []SamplePoint, window, topK int) []Peak {
	var peaks []Peak
	for i := window; i < len(series)-window; i++ {
		v := series[i].F
		isPeak, isValley := true, true
		for j := i - window; j <= i+window; j++ {
			if j == i {
				continue
			}
			if series[j].F >= v {
				isPeak = false
			}
			if series[j].F <= v {
				isValley = false
			}
		}
		switch {
		case isPeak:
			peaks = append(peaks, Peak{T: series[i].T, F: v, Kind: "peak"})
		case isValley:
			peaks = append(peaks, Peak{T: series[i].T, F: v, Kind: "valley"})
		}
	}
	sort.SliceStable(peaks, func(a, b int) bool {
		return math.Abs(peaks[a].F) > math.Abs(peaks[b].F)
	})
	if len(peaks) > topK {
		peaks = peaks[:topK]
	}
	return peaks
}

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
