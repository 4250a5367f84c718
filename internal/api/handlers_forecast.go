// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"net/http"
	"time"

	"github.com/solmundi/astrolabe/internal/models"
)

// Forecast samples the transit favorability function over a date
// range and reports the series with its ranked peaks and troughs.
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	var req models.ForecastRequest
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
	start, err := parseInstant(req.Start)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "start is not RFC3339", err)
		return
	}
	end, err := parseInstant(req.End)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "end is not RFC3339", err)
		return
	}
	if end.Before(start) {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "end must not precede start", nil)
		return
	}

	stepDays := req.StepDays
	if stepDays == 0 {
		stepDays = 7
	}

	began := time.Now()
	series, err := h.forecast.Series(r.Context(), birth, start, end, time.Duration(stepDays)*24*time.Hour)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	resp := models.SuccessTimed(series, time.Since(began))
	respondJSON(w, http.StatusOK, &resp)
}

// LifeCycles locates the classical age-milestone transits: Saturn
// return and its squares and oppositions, the Uranus opposition, the
// nodal reversals, and optionally the Jupiter returns.
func (h *Handler) LifeCycles(w http.ResponseWriter, r *http.Request) {
	var req models.LifeCyclesRequest
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

	began := time.Now()
	events, err := h.forecast.LifeCycles(r.Context(), birth, req.IncludeJupiter)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	resp := models.SuccessTimed(map[string]interface{}{"events": events}, time.Since(began))
	respondJSON(w, http.StatusOK, &resp)
}
