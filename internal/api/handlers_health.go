// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"net/http"
	"time"

	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/models"
)

// Health summarizes service health: liveness plus the ephemeris
// probe, with the provider's supported time range for clients that
// need to pre-validate dates.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	probe := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	if _, err := h.prov.Positions(r.Context(), probe); err != nil {
		status = "degraded"
	}
	resp := models.Success(map[string]interface{}{
		"status":         status,
		"ephemeris_from": ephemeris.MinTime.Format("2006-01-02"),
		"ephemeris_to":   ephemeris.MaxTime.Format("2006-01-02"),
	})
	respondJSON(w, http.StatusOK, &resp)
}

// HealthLive reports process liveness. It never touches the engine.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	resp := models.Success(map[string]string{"status": "alive"})
	respondJSON(w, http.StatusOK, &resp)
}

// HealthReady probes the ephemeris with a cheap position computation.
// A provider that cannot place the planets means the service cannot
// answer any chart request.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	probe := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	if _, err := h.prov.Positions(r.Context(), probe); err != nil {
		respondError(w, http.StatusServiceUnavailable, "EPHEMERIS_UNAVAILABLE", "ephemeris probe failed", err)
		return
	}
	resp := models.Success(map[string]string{"status": "ready"})
	respondJSON(w, http.StatusOK, &resp)
}
