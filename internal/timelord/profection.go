// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package timelord

import (
	"errors"
	"time"

	"github.com/solmundi/astrolabe/internal/dignity"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// ErrBeforeBirth rejects time-lord queries for instants preceding the
// birth instant.
var ErrBeforeBirth = errors.New("timelord: query instant precedes birth")

// AnnualProfection is the profected year: the house counted from the
// natal Ascendant, the sign occupying it, and that sign's domicile
// lord as time lord of the year.
type AnnualProfection struct {
	Age           int    `json:"year"`
	House         int    `json:"house"`
	ProfectedSign string `json:"profected_sign"`
	TimeLord      string `json:"time_lord"`
	SignOffset    int    `json:"sign_offset"`
}

// MonthlyProfection nests inside the annual period: each calendar
// month from the last birthday advances one further sign.
type MonthlyProfection struct {
	Month       int    `json:"month"`
	MonthlySign string `json:"monthly_sign"`
	MonthlyLord string `json:"monthly_lord"`
}

// age returns completed years of life at query, anchored on the
// calendar birthday: the year ticks at the (month, day) anniversary,
// not at a fractional solar-year boundary.
func age(birth, query time.Time) int {
	b, q := birth.UTC(), query.UTC()
	years := q.Year() - b.Year()
	if q.Month() < b.Month() || (q.Month() == b.Month() && q.Day() < b.Day()) {
		years--
	}
	return years
}

// lastBirthday returns the most recent calendar anniversary of birth
// at or before query (by date, ignoring time of day).
func lastBirthday(birth, query time.Time) time.Time {
	b, q := birth.UTC(), query.UTC()
	anniversary := time.Date(q.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	if anniversary.After(q) {
		anniversary = time.Date(q.Year()-1, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	}
	return anniversary
}

// Annual computes the annual profection at query for a chart with the
// given natal Ascendant sign. Time lords follow the traditional
// rulership table regardless of the chart's display tradition.
func Annual(birth, query time.Time, natalAsc zodiac.Sign) (AnnualProfection, error) {
	if query.Before(birth) {
		return AnnualProfection{}, ErrBeforeBirth
	}

	years := age(birth, query)
	offset := years % 12
	sign := natalAsc.Offset(offset)

	return AnnualProfection{
		Age:           years,
		House:         offset + 1,
		ProfectedSign: sign.String(),
		TimeLord:      dignity.Ruler(sign, dignity.Traditional),
		SignOffset:    offset,
	}, nil
}

// Monthly computes the monthly profection nested in the current annual
// period: calendar months elapsed since the last birthday, mod 12,
// advance the annual sign further.
func Monthly(birth, query time.Time, natalAsc zodiac.Sign) (MonthlyProfection, error) {
	annual, err := Annual(birth, query, natalAsc)
	if err != nil {
		return MonthlyProfection{}, err
	}

	anchor := lastBirthday(birth, query)
	q := query.UTC()
	months := (q.Year()-anchor.Year())*12 + int(q.Month()-anchor.Month())
	offset := ((months % 12) + 12) % 12

	annualSign, _ := zodiac.SignByName(annual.ProfectedSign)
	sign := annualSign.Offset(offset)

	return MonthlyProfection{
		Month:       offset,
		MonthlySign: sign.String(),
		MonthlyLord: dignity.Ruler(sign, dignity.Traditional),
	}, nil
}
