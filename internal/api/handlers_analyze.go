// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"net/http"
	"time"

	"github.com/solmundi/astrolabe/internal/chart"
	"github.com/solmundi/astrolabe/internal/models"
)

// Analyze computes the natal chart and the time-lord block in one
// call. The blocks fail independently: a failing block is replaced by
// an error object in its slot while the sibling still computes, so a
// polar birthplace that breaks houses does not take the firdaria down
// with it.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
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

	loc := chart.Location{Latitude: req.Lat, Longitude: req.Lon}
	opts := chartOptions(req.System, req.Tradition, false)
	start := time.Now()

	result := make(map[string]interface{}, 2)

	if natal, err := chart.Build(r.Context(), h.prov, birth, loc, opts); err != nil {
		result["natal"] = map[string]string{"error": err.Error()}
	} else {
		result["natal"] = natal
	}

	if derived, err := chart.Derived(r.Context(), h.prov, birth, loc, now, opts); err != nil {
		result["derived"] = map[string]string{"error": err.Error()}
	} else {
		result["derived"] = derived
	}

	resp := models.SuccessTimed(result, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}
