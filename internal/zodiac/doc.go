// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package zodiac provides the static zodiacal reference tables and the
// pure longitude-to-position resolver that every other calculation
// package builds on.
//
// The rulership, exaltation, element and modality tables defined here are
// the single source of truth for dignity, reception, profection and
// ranking logic. They are immutable package-level constants: shared
// read-only state by design, never mutated at runtime.
//
// All circular (mod-360) arithmetic helpers live here as well so that
// aspect, house and solver code agree on one wraparound convention:
// Normalize maps any longitude into [0,360), and ArcDistance returns the
// shortest angular separation (always <= 180 degrees).
package zodiac
