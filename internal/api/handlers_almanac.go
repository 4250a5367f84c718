// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"net/http"

	"github.com/solmundi/astrolabe/internal/almanac"
	"github.com/solmundi/astrolabe/internal/chart"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/models"
)

// Lots computes the arabic lots for an instant and place. The lot
// formulas require a real Ascendant, so a location where no house
// system yields one is an error rather than a partial result.
func (h *Handler) Lots(w http.ResponseWriter, r *http.Request) {
	var req models.LotsRequest
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

	det, err := chart.BuildDetailed(r.Context(), h.prov, t,
		chart.Location{Latitude: req.Lat, Longitude: req.Lon},
		chartOptions(req.System, "", false))
	if err != nil {
		respondEngineError(w, err)
		return
	}
	if det.Lots == nil {
		respondError(w, http.StatusUnprocessableEntity, "HOUSES_UNDEFINED",
			"lots require an ascendant, which is undefined at this location", nil)
		return
	}

	resp := models.Success(map[string]interface{}{
		"datetime":    req.Datetime,
		"sect":        det.Sect,
		"lots":        det.Lots,
		"lunar_nodes": det.LunarNodes,
	})
	respondJSON(w, http.StatusOK, &resp)
}

// LunarMansions resolves which of the 28 lunar mansions holds the Moon.
func (h *Handler) LunarMansions(w http.ResponseWriter, r *http.Request) {
	var req models.MansionsRequest
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

	moonLon, err := h.prov.Longitude(r.Context(), ephemeris.Moon, t)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	resp := models.Success(map[string]interface{}{
		"datetime":      req.Datetime,
		"moon_position": moonLon,
		"mansion":       almanac.MansionOf(moonLon),
	})
	respondJSON(w, http.StatusOK, &resp)
}

// FixedStars reports conjunctions between the planets and the bright
// star catalog, precessed to the chart date.
func (h *Handler) FixedStars(w http.ResponseWriter, r *http.Request) {
	var req models.FixedStarsRequest
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

	positions, err := h.prov.Positions(r.Context(), t)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	points := make([]almanac.NamedPoint, 0, len(positions))
	for _, body := range ephemeris.AllBodies() {
		points = append(points, almanac.NamedPoint{
			Name:      body.String(),
			Longitude: positions[body],
		})
	}

	resp := models.Success(map[string]interface{}{
		"datetime": req.Datetime,
		"contacts": almanac.Contacts(points, t),
	})
	respondJSON(w, http.StatusOK, &resp)
}
