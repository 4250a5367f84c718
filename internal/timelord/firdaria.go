// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package timelord

import (
	"errors"
	"time"
)

// ErrCycleComplete rejects firdaria queries beyond the defined
// 75-year cycle. The cycle does not wrap; callers surface the
// condition explicitly.
var ErrCycleComplete = errors.New("timelord: query instant beyond the 75-year firdaria cycle")

// firdariaEntry is one planetary period in the fixed sequence.
type firdariaEntry struct {
	planet string
	years  int
}

// The two sect sequences are rotations plus the nodal tail; both sum
// to the 75-year cycle.
var (
	diurnalSequence = []firdariaEntry{
		{"Sun", 10}, {"Venus", 8}, {"Mercury", 13}, {"Moon", 9},
		{"Saturn", 11}, {"Jupiter", 12}, {"Mars", 7},
		{"North Node", 3}, {"South Node", 2},
	}
	nocturnalSequence = []firdariaEntry{
		{"Moon", 9}, {"Saturn", 11}, {"Jupiter", 12}, {"Mars", 7},
		{"Sun", 10}, {"Venus", 8}, {"Mercury", 13},
		{"North Node", 3}, {"South Node", 2},
	}
)

// CycleYears is the total length of the firdaria cycle.
const CycleYears = 75

// yearDuration converts firdaria years to wall time using the Julian
// year, matching the proportional subdivision arithmetic.
func yearDuration(years float64) time.Duration {
	return time.Duration(years * 365.25 * 24 * float64(time.Hour))
}

// SubPeriod is one minor period within a major firdaria period.
type SubPeriod struct {
	Planet        string    `json:"planet"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationYears float64   `json:"duration_years"`
}

// MajorPeriod is one major firdaria period with its minor subdivision.
type MajorPeriod struct {
	Major string      `json:"major"`
	Years int         `json:"years"`
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
	Sub   []SubPeriod `json:"sub"`
}

// Current is the active major/minor pair at a query instant. Start and
// End bound the minor period.
type Current struct {
	Major string    `json:"major"`
	Sub   string    `json:"sub"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func sequenceFor(sect Sect) []firdariaEntry {
	if sect == Nocturnal {
		return nocturnalSequence
	}
	return diurnalSequence
}

// Firdaria returns the full 75-year period table from birth. Each
// major period subdivides into nine minors following the sequence
// rotated to start at the major lord, each lasting its base years
// scaled by major_years/75.
func Firdaria(birth time.Time, sect Sect) []MajorPeriod {
	seq := sequenceFor(sect)

	out := make([]MajorPeriod, 0, len(seq))
	cursor := birth
	for i, major := range seq {
		end := cursor.Add(yearDuration(float64(major.years)))

		subs := make([]SubPeriod, 0, len(seq))
		subCursor := cursor
		for j := range seq {
			entry := seq[(i+j)%len(seq)]
			years := float64(entry.years) / CycleYears * float64(major.years)
			subEnd := subCursor.Add(yearDuration(years))
			subs = append(subs, SubPeriod{
				Planet:        entry.planet,
				Start:         subCursor,
				End:           subEnd,
				DurationYears: years,
			})
			subCursor = subEnd
		}

		out = append(out, MajorPeriod{
			Major: major.planet,
			Years: major.years,
			Start: cursor,
			End:   end,
			Sub:   subs,
		})
		cursor = end
	}
	return out
}

// CurrentPeriod locates the active major/minor pair at query. Queries
// before birth fail with ErrBeforeBirth, and past the end of the cycle
// with ErrCycleComplete; the cycle never wraps.
func CurrentPeriod(birth time.Time, sect Sect, query time.Time) (Current, error) {
	if query.Before(birth) {
		return Current{}, ErrBeforeBirth
	}

	for _, major := range Firdaria(birth, sect) {
		if query.Before(major.Start) || !query.Before(major.End) {
			continue
		}
		for _, sub := range major.Sub {
			if !query.Before(sub.Start) && query.Before(sub.End) {
				return Current{
					Major: major.Major,
					Sub:   sub.Planet,
					Start: sub.Start,
					End:   sub.End,
				}, nil
			}
		}
		// Sub-periods tile the major period; rounding at the final
		// boundary resolves to the last minor.
		last := major.Sub[len(major.Sub)-1]
		return Current{Major: major.Major, Sub: last.Planet, Start: last.Start, End: last.End}, nil
	}
	return Current{}, ErrCycleComplete
}
