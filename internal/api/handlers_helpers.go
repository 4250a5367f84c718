// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/solmundi/astrolabe/internal/chart"
	"github.com/solmundi/astrolabe/internal/dignity"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/houses"
	"github.com/solmundi/astrolabe/internal/logging"
	"github.com/solmundi/astrolabe/internal/models"
	"github.com/solmundi/astrolabe/internal/solarreturn"
	"github.com/solmundi/astrolabe/internal/timelord"
	"github.com/solmundi/astrolabe/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent
// log injection.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	etag := generateETag(data)
	w.Header().Set("ETag", etag)

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	resp := models.Error(code, message, nil)
	respondJSON(w, status, &resp)
}

// decodeBody decodes a JSON request body into v, bounded by the
// configured body cap. A false return means the error response has
// already been written.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.API.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "MALFORMED_JSON", "Request body is not valid JSON", err)
		return false
	}
	return true
}

// validateAndRespond validates a request struct. Missing required
// fields are a 400; present-but-invalid values are a 422. A false
// return means the error response has already been written.
func validateAndRespond(w http.ResponseWriter, req interface{}) bool {
	verr := validation.ValidateStruct(req)
	if verr == nil {
		return true
	}

	status := http.StatusUnprocessableEntity
	for _, fe := range verr.Errors() {
		if fe.Tag() == "required" {
			status = http.StatusBadRequest
			break
		}
	}

	apiErr := verr.ToAPIError()
	resp := models.Error(apiErr.Code, apiErr.Message, apiErr.Details)
	respondJSON(w, status, &resp)
	return false
}

// parseInstant parses an RFC3339 timestamp and normalizes it to UTC.
func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// chartOptions maps validated request strings onto engine enums.
func chartOptions(system, tradition string, includeMinor bool) chart.Options {
	sys, _ := houses.SystemByName(strings.ToLower(system))
	trad, _ := dignity.TraditionByName(strings.ToLower(tradition))
	if tradition == "" {
		trad = dignity.Traditional
	}
	return chart.Options{
		System:       sys,
		Tradition:    trad,
		IncludeMinor: includeMinor,
	}
}

// respondEngineError maps engine failures onto HTTP statuses and
// named error codes. Downstream consumers distinguish range,
// convergence, and validation failures, so the codes must stay
// specific.
func respondEngineError(w http.ResponseWriter, err error) {
	var rangeErr *ephemeris.RangeError
	if errors.As(err, &rangeErr) {
		respondError(w, http.StatusUnprocessableEntity, "EPHEMERIS_RANGE_ERROR", err.Error(), nil)
		return
	}

	var housesErr *houses.UndefinedError
	if errors.As(err, &housesErr) {
		respondError(w, http.StatusUnprocessableEntity, "HOUSES_UNDEFINED", err.Error(), nil)
		return
	}

	var convErr *solarreturn.ConvergenceError
	if errors.As(err, &convErr) {
		respondError(w, http.StatusInternalServerError, "CONVERGENCE_ERROR", err.Error(), nil)
		return
	}

	if errors.Is(err, timelord.ErrBeforeBirth) {
		respondError(w, http.StatusUnprocessableEntity, "BEFORE_BIRTH", err.Error(), nil)
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		respondError(w, http.StatusGatewayTimeout, "DEADLINE_EXCEEDED", "Computation exceeded the request deadline", nil)
		return
	}

	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), err)
}
