// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package almanac holds the smaller classical enrichments of a chart:
// arabic lots, solar conditions (cazimi through combust to under the
// beams), the 28 lunar mansions, and fixed-star contacts.
//
// Everything here is table arithmetic over longitudes already computed
// elsewhere; the tables are immutable package constants.
package almanac
