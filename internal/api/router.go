// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solmundi/astrolabe/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc decorators to Chi's
// func(http.Handler) http.Handler shape so they compose with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router wires handlers to routes.
type Router struct {
	handler *Handler
	chiMW   *ChiMiddleware
}

// NewRouter creates the router for a handler set.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMW: chiMW}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMiddleware(middleware.RequestLogger))
	r.Use(router.chiMW.CORS())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMW.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	// Compute endpoints: every operation takes a JSON body, so all
	// are POST. Responses compress well, the forecast and ranking
	// payloads especially.
	r.Route("/api/astro", func(r chi.Router) {
		r.Use(router.chiMW.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Post("/chart", router.handler.Chart)
		r.Post("/chart-detailed", router.handler.ChartDetailed)
		r.Post("/derived", router.handler.Derived)
		r.Post("/analyze", router.handler.Analyze)
		r.Post("/transits", router.handler.Transits)
		r.Post("/profections", router.handler.Profections)
		r.Post("/fardars", router.handler.Fardars)
		r.Post("/lots", router.handler.Lots)
		r.Post("/lunar-mansion", router.handler.LunarMansions)
		r.Post("/fixed-stars", router.handler.FixedStars)
		r.Post("/forecast", router.handler.Forecast)
		r.Post("/life-cycles", router.handler.LifeCycles)
		r.Post("/solar-return", router.handler.SolarReturn)
		r.Post("/solar-return/ranking", router.handler.SolarReturnRanking)
	})

	r.Route("/api/cities", func(r chi.Router) {
		r.Use(router.chiMW.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Get("/search", router.handler.CitySearch)
	})

	return r
}
