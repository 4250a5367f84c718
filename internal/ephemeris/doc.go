// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package ephemeris computes geocentric ecliptic longitudes for the ten
// classical chart bodies (Sun through Pluto) at arbitrary instants.
//
// The built-in provider is a self-contained Keplerian model: planetary
// positions come from the JPL approximate orbital elements (valid for
// 1800-01-01 through 2050-01-01), the Moon from a truncated lunar
// series, and the Sun from the Earth-Moon barycenter orbit. Accuracy is
// on the order of arcminutes, which is ample for sign, house, aspect,
// and dignity work.
//
// All computations are deterministic: the same (body, instant) pair
// always yields the bit-identical longitude, so results are safe to
// cache and responses are idempotent. Instants outside the supported
// range are rejected with *RangeError rather than extrapolated.
package ephemeris
