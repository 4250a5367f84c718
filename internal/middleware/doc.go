// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package middleware provides HTTP middleware for the API server:
// request ID propagation, structured request logging, Prometheus
// instrumentation, and gzip compression.
//
// Middleware are plain func(http.HandlerFunc) http.HandlerFunc
// decorators so they compose with chi routes and with each other:
//
//	handler = middleware.RequestID(
//	    middleware.RequestLogger(
//	        middleware.PrometheusMetrics(
//	            middleware.Compression(apiHandler))))
package middleware
