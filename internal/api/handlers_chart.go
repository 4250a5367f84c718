// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"net/http"
	"time"

	"github.com/solmundi/astrolabe/internal/chart"
	"github.com/solmundi/astrolabe/internal/metrics"
	"github.com/solmundi/astrolabe/internal/models"
)

// Chart computes a natal chart snapshot: planets with dignities,
// aspects, houses, and sect.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	var req models.ChartRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if !validateAndRespond(w, &req) {
		return
	}

	t, err := parseInstant(req.Datetime)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "datetime is not RFC3339", err)
		return
	}

	start := time.Now()
	snap, err := chart.Build(r.Context(), h.prov, t, chart.Location{Latitude: req.Lat, Longitude: req.Lon},
		chartOptions(req.System, req.Tradition, req.IncludeMinor))
	if err != nil {
		respondEngineError(w, err)
		return
	}
	metrics.RecordChartBuild("natal", time.Since(start))

	resp := models.SuccessTimed(snap, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// ChartDetailed computes the natal chart plus arabic lots and lunar
// nodes.
func (h *Handler) ChartDetailed(w http.ResponseWriter, r *http.Request) {
	var req models.ChartRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if !validateAndRespond(w, &req) {
		return
	}

	t, err := parseInstant(req.Datetime)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "datetime is not RFC3339", err)
		return
	}

	start := time.Now()
	det, err := chart.BuildDetailed(r.Context(), h.prov, t, chart.Location{Latitude: req.Lat, Longitude: req.Lon},
		chartOptions(req.System, req.Tradition, req.IncludeMinor))
	if err != nil {
		respondEngineError(w, err)
		return
	}
	metrics.RecordChartBuild("detailed", time.Since(start))

	resp := models.SuccessTimed(det, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// Derived computes the time-lord block: sect, firdaria, annual and
// monthly profections, and the Moon's current transits to the natal
// chart.
func (h *Handler) Derived(w http.ResponseWriter, r *http.Request) {
	var req models.DerivedRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if !validateAndRespond(w, &req) {
		return
	}

	birth, now, ok := h.parseBirthAndQuery(w, req.BirthDatetime, req.Now)
	if !ok {
		return
	}

	start := time.Now()
	block, err := chart.Derived(r.Context(), h.prov, birth,
		chart.Location{Latitude: req.Lat, Longitude: req.Lon}, now,
		chartOptions(req.System, req.Tradition, false))
	if err != nil {
		respondEngineError(w, err)
		return
	}

	resp := models.SuccessTimed(block, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// parseBirthAndQuery parses a required birth timestamp and an
// optional query timestamp defaulting to the current time. A false
// return means the error response has already been written.
func (h *Handler) parseBirthAndQuery(w http.ResponseWriter, birthRaw, queryRaw string) (birth, query time.Time, ok bool) {
	birth, err := parseInstant(birthRaw)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "birth_datetime is not RFC3339", err)
		return time.Time{}, time.Time{}, false
	}

	query = time.Now().UTC()
	if queryRaw != "" {
		query, err = parseInstant(queryRaw)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "query datetime is not RFC3339", err)
			return time.Time{}, time.Time{}, false
		}
	}
	return birth, query, true
}
