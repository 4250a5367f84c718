// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package ephemeris

import "time"

// j2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT,
// treated here as UT; the difference is irrelevant at arcminute scale).
const j2000 = 2451545.0

// JulianDay converts a time to Julian Day number. The input is first
// normalized to UTC, so equal instants in different zones convert
// identically.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	year := t.Year()
	month := int(t.Month())
	day := t.Day()

	if month <= 2 {
		year--
		month += 12
	}

	a := year / 100
	b := 2 - a + a/4

	jd := float64(int(365.25*float64(year+4716))) +
		float64(int(30.6001*float64(month+1))) +
		float64(day) + float64(b) - 1524.5

	dayFraction := (float64(t.Hour()) +
		float64(t.Minute())/60.0 +
		float64(t.Second())/3600.0 +
		float64(t.Nanosecond())/3.6e12) / 24.0

	return jd + dayFraction
}

// daysSinceJ2000 returns fractional days elapsed since the J2000.0 epoch.
func daysSinceJ2000(t time.Time) float64 {
	return JulianDay(t) - j2000
}

// centuriesSinceJ2000 returns Julian centuries elapsed since J2000.0,
// the time unit the orbital element rates are expressed in.
func centuriesSinceJ2000(t time.Time) float64 {
	return daysSinceJ2000(t) / 36525.0
}
