// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package models

// Request DTOs for the computation endpoints. All datetimes are
// RFC3339 strings and are normalized to UTC before any computation.
// Validation tags are enforced by internal/validation before a
// request reaches the engine.

// ChartRequest asks for a natal chart snapshot.
type ChartRequest struct {
	Datetime     string  `json:"datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Lat          float64 `json:"lat" validate:"latitude"`
	Lon          float64 `json:"lon" validate:"longitude"`
	System       string  `json:"system,omitempty" validate:"omitempty,house_system"`
	Tradition    string  `json:"tradition,omitempty" validate:"omitempty,tradition"`
	IncludeMinor bool    `json:"include_minor,omitempty"`
}

// DerivedRequest asks for the time-lord block (sect, firdaria,
// profections, lunar transits) for a birth chart at a query instant.
// Now defaults to the current time when empty.
type DerivedRequest struct {
	BirthDatetime string  `json:"birth_datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Lat           float64 `json:"lat" validate:"latitude"`
	Lon           float64 `json:"lon" validate:"longitude"`
	Now           string  `json:"now,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	System        string  `json:"system,omitempty" validate:"omitempty,house_system"`
	Tradition     string  `json:"tradition,omitempty" validate:"omitempty,tradition"`
}

// TransitsRequest asks for aspects from transiting bodies to natal
// positions at a given instant.
type TransitsRequest struct {
	BirthDatetime   string  `json:"birth_datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Lat             float64 `json:"lat" validate:"latitude"`
	Lon             float64 `json:"lon" validate:"longitude"`
	TransitDatetime string  `json:"transit_datetime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IncludeMinor    bool    `json:"include_minor,omitempty"`
}

// ForecastRequest asks for the composite favorability series over a
// date range.
type ForecastRequest struct {
	BirthDatetime string  `json:"birth_datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Lat           float64 `json:"lat" validate:"latitude"`
	Lon           float64 `json:"lon" validate:"longitude"`
	Start         string  `json:"start" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	End           string  `json:"end" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	StepDays      int     `json:"step_days,omitempty" validate:"omitempty,gte=1,lte=90"`
}

// LifeCyclesRequest asks for outer-planet cycle events scanned
// forward from birth.
type LifeCyclesRequest struct {
	BirthDatetime  string `json:"birth_datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	IncludeJupiter bool   `json:"include_jupiter,omitempty"`
}

// SolarReturnRequest asks for the solar return chart of a target
// year. Location is where the return chart is cast; City, when set,
// overrides Lat/Lon via the gazetteer.
type SolarReturnRequest struct {
	BirthDatetime string  `json:"birth_datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Year          int     `json:"year" validate:"required,gte=1800,lte=2049"`
	Lat           float64 `json:"lat" validate:"latitude"`
	Lon           float64 `json:"lon" validate:"longitude"`
	City          string  `json:"city,omitempty"`
	Tradition     string  `json:"tradition,omitempty" validate:"omitempty,tradition"`
}

// RankingRequest asks for a weighted comparison of solar return
// charts across candidate cities. An empty Cities list ranks the
// full built-in table.
type RankingRequest struct {
	BirthDatetime string   `json:"birth_datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Year          int      `json:"year" validate:"required,gte=1800,lte=2049"`
	Cities        []string `json:"cities,omitempty"`
	TopN          int      `json:"top_n,omitempty" validate:"omitempty,gte=1,lte=50"`
	Tradition     string   `json:"tradition,omitempty" validate:"omitempty,tradition"`
}

// ProfectionsRequest asks for annual and monthly profections.
type ProfectionsRequest struct {
	BirthDatetime string  `json:"birth_datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Lat           float64 `json:"lat" validate:"latitude"`
	Lon           float64 `json:"lon" validate:"longitude"`
	QueryDatetime string  `json:"query_datetime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// FardarsRequest asks for the firdaria period active at a query
// instant.
type FardarsRequest struct {
	BirthDatetime string  `json:"birth_datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Lat           float64 `json:"lat" validate:"latitude"`
	Lon           float64 `json:"lon" validate:"longitude"`
	QueryDatetime string  `json:"query_datetime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// LotsRequest asks for the arabic lots of a birth chart.
type LotsRequest struct {
	Datetime string  `json:"datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Lat      float64 `json:"lat" validate:"latitude"`
	Lon      float64 `json:"lon" validate:"longitude"`
	System   string  `json:"system,omitempty" validate:"omitempty,house_system"`
}

// MansionsRequest asks for the lunar mansion occupied by the Moon.
type MansionsRequest struct {
	Datetime string `json:"datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// FixedStarsRequest asks for fixed star contacts to chart points.
type FixedStarsRequest struct {
	Datetime string  `json:"datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Lat      float64 `json:"lat" validate:"latitude"`
	Lon      float64 `json:"lon" validate:"longitude"`
}
