// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"errors"
	"net/http"

	"github.com/solmundi/astrolabe/internal/gazetteer"
	"github.com/solmundi/astrolabe/internal/models"
)

// CitySearch looks up candidate relocation cities by substring
// against the built-in table. When the query matches nothing locally
// and the remote gazetteer is enabled, a single exact remote lookup
// runs behind the circuit breaker.
func (h *Handler) CitySearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "query parameter q is required", nil)
		return
	}

	cities := gazetteer.Search(q)
	if len(cities) == 0 && h.resolver != nil {
		city, err := h.resolver.Lookup(r.Context(), q)
		switch {
		case err == nil:
			cities = []gazetteer.City{city}
		case errors.Is(err, gazetteer.ErrNotFound):
			// fall through to the empty result
		default:
			respondError(w, http.StatusBadGateway, "GAZETTEER_UNAVAILABLE", "remote city lookup failed", err)
			return
		}
	}

	resp := models.Success(map[string]interface{}{
		"query":  q,
		"cities": cities,
	})
	respondJSON(w, http.StatusOK, &resp)
}
