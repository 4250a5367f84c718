// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package forecast produces favorability time series and life-cycle
// event scans from transiting positions against a natal chart.
//
// The favorability score F(t) is a weighted sum over the aspects
// active at t between transiting and natal planets, each contact
// damped exponentially by its orb. Peaks and valleys are local
// extrema over a sliding window, so noise-level wiggles between
// samples are not reported as cycle turns.
//
// Life-cycle scanning tracks the slow bodies from birth and records
// an event each time the transiting body crosses 0, 90, 180, or 270
// degrees from its natal place, refining each crossing to day
// precision by bisection.
package forecast
