// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/solmundi/astrolabe/internal/aspect"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/houses"
	"github.com/solmundi/astrolabe/internal/models"
	"github.com/solmundi/astrolabe/internal/timelord"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// natalAscSign computes the ascendant sign at birth, falling back to
// whole sign houses at polar latitudes where Placidus is undefined.
// The ascendant point itself is system-independent.
func natalAscSign(t time.Time, lat, lon float64) (zodiac.Sign, error) {
	block, err := houses.Compute(t, lat, lon, houses.Placidus)
	if err != nil {
		var undefErr *houses.UndefinedError
		if !errors.As(err, &undefErr) {
			return 0, err
		}
		block, err = houses.Compute(t, lat, lon, houses.WholeSign)
		if err != nil {
			return 0, err
		}
	}
	return zodiac.SignOf(block.Asc), nil
}

// birthSect resolves the diurnal/nocturnal sect at birth from the
// Sun's altitude, with the horizon formula degrading to the
// Sun-vs-ascendant hemisphere test at polar latitudes.
func birthSect(ctx context.Context, prov ephemeris.Provider, t time.Time, lat, lon float64) (timelord.Sect, error) {
	sunLon, err := prov.Longitude(ctx, ephemeris.Sun, t)
	if err != nil {
		return 0, err
	}

	if math.Abs(lat) <= houses.MaxPlacidusLatitude {
		if houses.SunAboveHorizon(t, lat, lon, sunLon) {
			return timelord.Diurnal, nil
		}
		return timelord.Nocturnal, nil
	}

	block, err := houses.Compute(t, lat, lon, houses.WholeSign)
	if err != nil {
		return 0, err
	}
	return timelord.SectOf(sunLon, block.Asc), nil
}

// Profections computes the annual and monthly profection periods
// active at the query instant.
func (h *Handler) Profections(w http.ResponseWriter, r *http.Request) {
	var req models.ProfectionsRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if !validateAndRespond(w, &req) {
		return
	}

	birth, query, ok := h.parseBirthAndQuery(w, req.BirthDatetime, req.QueryDatetime)
	if !ok {
		return
	}

	asc, err := natalAscSign(birth, req.Lat, req.Lon)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	annual, err := timelord.Annual(birth, query, asc)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	monthly, err := timelord.Monthly(birth, query, asc)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	resp := models.Success(map[string]interface{}{
		"natal_asc_sign": asc.String(),
		"annual":         annual,
		"monthly":        monthly,
	})
	respondJSON(w, http.StatusOK, &resp)
}

// Fardars computes the firdaria period active at the query instant.
// A query past the 75-year cycle reports a null current period.
func (h *Handler) Fardars(w http.ResponseWriter, r *http.Request) {
	var req models.FardarsRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if !validateAndRespond(w, &req) {
		return
	}

	birth, query, ok := h.parseBirthAndQuery(w, req.BirthDatetime, req.QueryDatetime)
	if !ok {
		return
	}

	sect, err := birthSect(r.Context(), h.prov, birth, req.Lat, req.Lon)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	var current *timelord.Current
	period, err := timelord.CurrentPeriod(birth, sect, query)
	switch {
	case err == nil:
		current = &period
	case errors.Is(err, timelord.ErrCycleComplete):
		current = nil
	default:
		respondEngineError(w, err)
		return
	}

	resp := models.Success(map[string]interface{}{
		"sect":    sect,
		"current": current,
	})
	respondJSON(w, http.StatusOK, &resp)
}

// Transits computes aspects from transiting bodies to the natal
// positions. The transit instant defaults to the current time.
func (h *Handler) Transits(w http.ResponseWriter, r *http.Request) {
	var req models.TransitsRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if !validateAndRespond(w, &req) {
		return
	}

	birth, transitT, ok := h.parseBirthAndQuery(w, req.BirthDatetime, req.TransitDatetime)
	if !ok {
		return
	}

	natalPos, err := h.prov.Positions(r.Context(), birth)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	transitPos, err := h.prov.Positions(r.Context(), transitT)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	natal := make([]aspect.Placement, 0, len(natalPos))
	transiting := make([]aspect.Placement, 0, len(transitPos))
	for _, body := range ephemeris.AllBodies() {
		natal = append(natal, aspect.Placement{
			Name:      body.String(),
			Longitude: natalPos[body],
		})

		p := aspect.Placement{
			Name:      body.String(),
			Longitude: transitPos[body],
		}
		if speed, serr := h.prov.Speed(r.Context(), body, transitT); serr == nil {
			p.Speed = speed
			p.SpeedKnown = true
		}
		transiting = append(transiting, p)
	}

	transits := aspect.Cross(natal, transiting, req.IncludeMinor)

	resp := models.Success(map[string]interface{}{
		"transit_datetime": transitT.Format(time.RFC3339),
		"transits":         transits,
	})
	respondJSON(w, http.StatusOK, &resp)
}
