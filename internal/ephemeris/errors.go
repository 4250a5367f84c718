// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package ephemeris

import (
	"fmt"
	"time"
)

// MinTime and MaxTime bound the validity window of the orbital element
// tables. Requests outside [MinTime, MaxTime) fail with *RangeError.
var (
	MinTime = time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)
	MaxTime = time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC)
)

// RangeError reports a request outside the supported ephemeris window.
type RangeError struct {
	Instant time.Time
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ephemeris: instant %s outside supported range [%s, %s)",
		e.Instant.Format(time.RFC3339),
		MinTime.Format(time.RFC3339),
		MaxTime.Format(time.RFC3339))
}

// checkRange validates the instant against the element tables' window.
func checkRange(t time.Time) error {
	if t.Before(MinTime) || !t.Before(MaxTime) {
		return &RangeError{Instant: t}
	}
	return nil
}
