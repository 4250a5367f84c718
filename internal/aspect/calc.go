// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package aspect

import (
	"math"

	"github.com/solmundi/astrolabe/internal/zodiac"
)

// Match finds the aspect relating two longitudes, if any. It picks the
// candidate with the smallest orb; an exact tie resolves to the
// higher-priority type (declaration order). The returned angle is the
// circular separation and orb its distance from the canonical angle.
func Match(aLon, bLon, maxOrb float64, includeMinor bool) (kind Type, orb, angle float64, ok bool) {
	angle = zodiac.ArcDistance(aLon, bLon)

	limit := numTypes
	if !includeMinor {
		limit = Opposition + 1
	}

	best := Type(-1)
	bestOrb := math.Inf(1)
	for t := Type(0); t < limit; t++ {
		if o := math.Abs(angle - t.Angle()); o < bestOrb {
			bestOrb = o
			best = t
		}
	}

	if best < 0 || bestOrb > maxOrb {
		return 0, 0, angle, false
	}
	return best, bestOrb, angle, true
}

// Between scans all unordered pairs of one chart's placements and
// returns the detected aspects in input order. Symmetric: swapping the
// pair changes only the a/b labeling, never detection.
func Between(placements []Placement, maxOrb float64, includeMinor bool) []Aspect {
	var out []Aspect
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			kind, orb, angle, ok := Match(a.Longitude, b.Longitude, maxOrb, includeMinor)
			if !ok {
				continue
			}
			out = append(out, Aspect{
				A:     a.Name,
				B:     b.Name,
				Kind:  kind,
				Orb:   round2(orb),
				Angle: round2(angle),
			})
		}
	}
	return out
}

// Cross scans every (natal, transiting) pair and returns contacts
// within the per-type transit orbs, in natal-major transit-minor input
// order.
func Cross(natal, transiting []Placement, includeMinor bool) []Transit {
	var out []Transit
	for _, n := range natal {
		for _, tr := range transiting {
			kind, orb, _, ok := Match(n.Longitude, tr.Longitude, crossCutoff, includeMinor)
			if !ok || orb > TransitOrb(kind) {
				continue
			}

			applying := applyingState(n.Longitude, tr, kind)
			out = append(out, Transit{
				NatalPlanet:      n.Name,
				TransitPlanet:    tr.Name,
				Kind:             kind,
				Orb:              round2(orb),
				Applying:         applying,
				Exactness:        exactness(orb, applying),
				NatalLongitude:   n.Longitude,
				TransitLongitude: tr.Longitude,
			})
		}
	}
	return out
}

// applyingState reports whether the orb to the exact aspect angle is
// closing, from the transiting body's instantaneous speed. Unknown or
// zero speed yields nil rather than a guess.
func applyingState(natalLon float64, tr Placement, kind Type) *bool {
	if !tr.SpeedKnown || tr.Speed == 0 {
		return nil
	}

	delta := zodiac.SignedDelta(tr.Longitude, natalLon)
	sep := math.Abs(delta)

	// Rate of change of the separation, then of the orb |sep - angle|.
	sepRate := tr.Speed
	if delta < 0 {
		sepRate = -sepRate
	}
	orbRate := sepRate
	if sep < kind.Angle() {
		orbRate = -orbRate
	}

	v := orbRate < 0
	return &v
}

func exactness(orb float64, applying *bool) string {
	switch {
	case orb < 1:
		return "exact"
	case applying == nil:
		return "indeterminate"
	case *applying:
		return "approaching"
	default:
		return "separating"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
