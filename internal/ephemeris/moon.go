// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package ephemeris

import (
	"math"
	"time"
)

// moonLongitude returns the geocentric ecliptic longitude of the Moon
// using a truncated series over the principal lunar arguments. The
// leading terms (evection, variation, annual equation) keep the error
// well under half a degree across the supported window.
func moonLongitude(d float64) float64 {
	// Mean elements, degrees, d = days since J2000.0.
	lp := 218.3164477 + 13.17639648*d     // mean longitude
	m := 357.5291092 + 0.98560028*d       // Sun's mean anomaly
	mp := 134.9633964 + 13.06499295*d     // Moon's mean anomaly
	dElong := 297.8501921 + 12.19074912*d // mean elongation
	f := 93.2720950 + 13.22935024*d       // argument of latitude

	sin := func(deg float64) float64 { return math.Sin(deg * degToRad) }

	lon := lp +
		6.288774*sin(mp) +
		1.274027*sin(2*dElong-mp) +
		0.658314*sin(2*dElong) +
		0.213618*sin(2*mp) -
		0.185116*sin(m) -
		0.114332*sin(2*f) +
		0.058793*sin(2*dElong-2*mp) +
		0.057066*sin(2*dElong-m-mp) +
		0.053322*sin(2*dElong+mp) +
		0.045758*sin(2*dElong-m)

	return normalize(lon)
}

// nodeReference anchors the mean lunar node model: the node is taken at
// 0 degrees Aries on 1900-01-01 UTC and regresses 19.3356 degrees per
// Julian year.
var nodeReference = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

const nodeRatePerYear = -19.3356

// NorthNode returns the mean lunar north node longitude at t.
// The south node is always the exact opposite point.
func NorthNode(t time.Time) float64 {
	days := t.UTC().Sub(nodeReference).Hours() / 24.0
	return normalize(nodeRatePerYear * days / 365.25)
}

// SouthNode returns the mean lunar south node longitude at t.
func SouthNode(t time.Time) float64 {
	return normalize(NorthNode(t) + 180.0)
}
