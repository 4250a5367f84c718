// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"net/http"
	"time"

	"github.com/solmundi/astrolabe/internal/chart"
	"github.com/solmundi/astrolabe/internal/gazetteer"
	"github.com/solmundi/astrolabe/internal/metrics"
	"github.com/solmundi/astrolabe/internal/models"
	"github.com/solmundi/astrolabe/internal/solarreturn"
)

// SolarReturn solves for the instant the transiting Sun returns to
// its natal longitude and casts the return chart there. A known city
// name overrides raw coordinates.
func (h *Handler) SolarReturn(w http.ResponseWriter, r *http.Request) {
	var req models.SolarReturnRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if !validateAndRespond(w, &req) {
		return
	}

	birth, err := parseInstant(req.BirthDatetime)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "birth_datetime is not RFC3339", err)
		return
	}

	loc := chart.Location{Latitude: req.Lat, Longitude: req.Lon}
	if req.City != "" {
		city, ok := gazetteer.Lookup(req.City)
		if !ok {
			respondError(w, http.StatusNotFound, "CITY_NOT_FOUND", "unknown city: "+sanitizeLogValue(req.City), nil)
			return
		}
		loc = chart.Location{Latitude: city.Latitude, Longitude: city.Longitude}
	}

	start := time.Now()
	srChart, err := solarreturn.BuildChart(r.Context(), h.prov, birth, loc, req.Year,
		chartOptions("", req.Tradition, false))
	if err != nil {
		respondEngineError(w, err)
		return
	}
	metrics.RecordChartBuild("solar_return", time.Since(start))

	resp := models.SuccessTimed(srChart, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// SolarReturnRanking scores the solar return chart across candidate
// relocation cities and ranks them. An empty city list means the
// whole built-in gazetteer.
func (h *Handler) SolarReturnRanking(w http.ResponseWriter, r *http.Request) {
	var req models.RankingRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if !validateAndRespond(w, &req) {
		return
	}

	birth, err := parseInstant(req.BirthDatetime)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "birth_datetime is not RFC3339", err)
		return
	}

	cities := gazetteer.Cities()
	if len(req.Cities) > 0 {
		found, missing := gazetteer.Resolve(req.Cities)
		if len(missing) > 0 {
			apiResp := models.Error("CITY_NOT_FOUND", "some requested cities are unknown",
				map[string]interface{}{"missing": missing})
			respondJSON(w, http.StatusNotFound, &apiResp)
			return
		}
		cities = found
	}

	topN := req.TopN
	if topN == 0 {
		topN = h.cfg.Ranking.DefaultTopN
	}

	start := time.Now()
	ranking, err := solarreturn.RankWithWorkers(r.Context(), h.prov, birth, req.Year, cities, topN,
		h.cfg.Ranking.Workers, chartOptions("", req.Tradition, false))
	if err != nil {
		respondEngineError(w, err)
		return
	}

	resp := models.SuccessTimed(ranking, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}
