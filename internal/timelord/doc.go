// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package timelord computes the two classical time-lord systems:
// annual/monthly profections and the Persian firdaria periods.
//
// Both are pure calendar arithmetic anchored at birth. Profections
// advance one house per completed year of life from the natal
// Ascendant; firdaria walk a fixed 75-year sequence of planetary
// periods whose order depends on the chart's sect. All intervals are
// half-open [start, end), and a query before birth or beyond the
// defined cycle is a named error, never a wrap.
package timelord
