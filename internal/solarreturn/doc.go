// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package solarreturn finds exact solar-return instants and scores
// the resulting charts across candidate relocation cities.
//
// The solver bisects the Sun's longitude against its natal value
// inside a bracket around each birthday anniversary. The ranking
// engine then rebuilds the return chart per city and applies five
// classical sub-scores: essential dignities, angularity, solar
// conditions, aspects with reception, and sect.
package solarreturn
