// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package api provides the HTTP handlers and Chi routing for the
// calculation engine. Handlers decode a JSON request, validate it,
// run the engine, and wrap the result in the models.APIResponse
// envelope. Contracted field names live on the engine types
// themselves; handlers never rename fields.
package api

import (
	"github.com/solmundi/astrolabe/internal/config"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/forecast"
	"github.com/solmundi/astrolabe/internal/gazetteer"
)

// Handler holds the dependencies shared by all HTTP handlers. It is
// stateless between requests; every computation is self-contained.
type Handler struct {
	prov     ephemeris.Provider
	forecast *forecast.Engine
	resolver *gazetteer.RemoteResolver
	cfg      *config.Config
}

// NewHandler creates the handler set backed by the given provider.
// The remote gazetteer is only wired in when enabled; city lookups
// otherwise stay on the built-in table.
func NewHandler(prov ephemeris.Provider, cfg *config.Config) *Handler {
	h := &Handler{
		prov:     prov,
		forecast: forecast.NewEngine(prov, forecast.DefaultWeights()),
		cfg:      cfg,
	}
	if cfg.Gazetteer.RemoteEnabled {
		h.resolver = gazetteer.NewRemoteResolver(cfg.Gazetteer.RemoteURL, cfg.Gazetteer.RemoteTimeout)
	}
	return h
}
