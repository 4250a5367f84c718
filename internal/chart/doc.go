// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package chart assembles complete natal charts from the lower-level
// calculation packages. A chart is a snapshot: every position in it is
// computed from the same instant and location, so planets, aspects,
// houses, lots, and nodes are mutually consistent.
//
// House computation can fail at extreme latitudes under Placidus.
// Chart assembly degrades rather than fails: planets and aspects are
// still returned, house numbers are omitted, and the block carries an
// explanatory note. Lots require a real Ascendant and are omitted in
// the degraded form.
package chart
