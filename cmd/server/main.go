// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package main is the entry point for the Astrolabe server.
//
// Astrolabe computes classical and Persian astrology: natal charts
// with essential dignities, aspects and houses, time-lord techniques
// (profections, firdaria), arabic lots, lunar mansions, fixed star
// contacts, transit forecasting, and relocated solar return charts
// ranked across candidate cities.
//
// The server initializes in this order:
//
//  1. Configuration: Koanf v2 layered sources (env > config.yaml > defaults)
//  2. Logging: zerolog, structured JSON or console
//  3. Ephemeris: Keplerian provider, optionally LRU-cached
//  4. Supervisor tree: ephemeris warm-up and HTTP server under suture
//
// Shutdown is graceful on SIGINT and SIGTERM: the server stops
// accepting connections, drains in-flight requests, and reports any
// service that failed to stop within the timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/solmundi/astrolabe/internal/api"
	"github.com/solmundi/astrolabe/internal/cache"
	"github.com/solmundi/astrolabe/internal/config"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/logging"
	"github.com/solmundi/astrolabe/internal/supervisor"
	"github.com/solmundi/astrolabe/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Bool("ephemeris_cache", cfg.Ephemeris.CacheEnabled).
		Msg("Starting Astrolabe")

	prov := ephemeris.NewKeplerian()
	if cfg.Ephemeris.CacheEnabled {
		pc := cache.NewPositionCache(cfg.Ephemeris.CacheCapacity, cfg.Ephemeris.CacheTTL)
		prov = prov.WithCache(pc)
		logging.Info().
			Int("capacity", cfg.Ephemeris.CacheCapacity).
			Dur("ttl", cfg.Ephemeris.CacheTTL).
			Msg("Ephemeris position cache enabled")
	}

	handler := api.NewHandler(prov, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg)))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddEngineService(services.NewWarmupService(prov))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
