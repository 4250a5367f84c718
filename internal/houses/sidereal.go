// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package houses

import (
	"math"
	"time"

	"github.com/solmundi/astrolabe/internal/ephemeris"
)

const degToRad = math.Pi / 180.0

// gmst returns Greenwich mean sidereal time in degrees.
func gmst(t time.Time) float64 {
	n := ephemeris.JulianDay(t) - 2451545.0
	return normalize(280.46061837 + 360.98564736629*n)
}

// armc returns the right ascension of the local meridian (local
// sidereal time) in degrees, for an east-positive geographic longitude.
func armc(t time.Time, geoLon float64) float64 {
	return normalize(gmst(t) + geoLon)
}

// obliquity returns the mean obliquity of the ecliptic in degrees.
func obliquity(t time.Time) float64 {
	T := (ephemeris.JulianDay(t) - 2451545.0) / 36525.0
	return 23.43929111 - 0.01300417*T
}

// eclipticOfRA returns the ecliptic longitude of the equator point with
// right ascension ra, both in degrees. Quadrant-correct.
func eclipticOfRA(ra, eps float64) float64 {
	lon := math.Atan2(math.Sin(ra*degToRad), math.Cos(ra*degToRad)*math.Cos(eps*degToRad)) / degToRad
	return normalize(lon)
}

// declinationOf returns the declination of an ecliptic point at
// longitude lon, in degrees.
func declinationOf(lon, eps float64) float64 {
	return math.Asin(math.Sin(eps*degToRad)*math.Sin(lon*degToRad)) / degToRad
}

// raOf returns the right ascension of an ecliptic point at longitude
// lon, in degrees. Quadrant-correct.
func raOf(lon, eps float64) float64 {
	ra := math.Atan2(math.Sin(lon*degToRad)*math.Cos(eps*degToRad), math.Cos(lon*degToRad)) / degToRad
	return normalize(ra)
}

// SunAboveHorizon reports whether the Sun stands above the local
// horizon, which fixes the chart's sect. sunLon is the Sun's ecliptic
// longitude at the instant; the caller supplies it so sect agrees with
// the chart's own position snapshot.
func SunAboveHorizon(t time.Time, lat, geoLon, sunLon float64) bool {
	eps := obliquity(t)
	dec := declinationOf(sunLon, eps) * degToRad
	ra := raOf(sunLon, eps)

	h := (armc(t, geoLon) - ra) * degToRad
	phi := lat * degToRad

	sinAlt := math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(h)
	return sinAlt > 0
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}
