// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds all application configuration. It is loaded once at
// startup and is immutable afterwards, so it is safe for concurrent
// read access from multiple goroutines.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in sensible defaults for every setting
//  2. Config File: optional YAML file (config.yaml) for persistent settings
//  3. Environment Variables: override any setting
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Ephemeris EphemerisConfig `koanf:"ephemeris"`
	Gazetteer GazetteerConfig `koanf:"gazetteer"`
	Ranking   RankingConfig   `koanf:"ranking"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8090)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 15s)
//   - ENVIRONMENT: "development" or "production"
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// APIConfig holds request-handling limits for the HTTP API.
//
// Environment Variables:
//   - RATE_LIMIT_REQUESTS: Requests allowed per window per client (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Turn rate limiting off entirely
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - API_MAX_BODY_BYTES: Request body cap in bytes (default: 1MB)
type APIConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes"`
}

// EphemerisConfig controls position memoization. Forecast scans and
// solar return solvers revisit the same instants often, so the cache
// is on by default.
//
// Environment Variables:
//   - EPHEMERIS_CACHE_ENABLED: Enable position memoization (default: true)
//   - EPHEMERIS_CACHE_CAPACITY: Max cached longitudes (default: 65536)
//   - EPHEMERIS_CACHE_TTL: Entry lifetime (default: 24h)
type EphemerisConfig struct {
	CacheEnabled  bool          `koanf:"cache_enabled"`
	CacheCapacity int           `koanf:"cache_capacity"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`
}

// GazetteerConfig holds settings for the optional remote geocoding
// fallback. When disabled, only the built-in city table is consulted.
//
// Environment Variables:
//   - GAZETTEER_REMOTE_ENABLED: Enable remote geocoding fallback (default: false)
//   - GAZETTEER_REMOTE_URL: Geocoding service base URL
//   - GAZETTEER_REMOTE_TIMEOUT: Per-request timeout (default: 10s)
type GazetteerConfig struct {
	RemoteEnabled bool          `koanf:"remote_enabled"`
	RemoteURL     string        `koanf:"remote_url"`
	RemoteTimeout time.Duration `koanf:"remote_timeout"`
}

// RankingConfig holds settings for multi-city solar return ranking.
//
// Environment Variables:
//   - RANKING_WORKERS: Concurrent chart builds during ranking (default: 4)
//   - RANKING_TOP_N: Default number of top recommendations (default: 5)
type RankingConfig struct {
	Workers     int `koanf:"workers"`
	DefaultTopN int `koanf:"default_top_n"`
}

// LoggingConfig holds log output settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port the server should bind to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateEphemeris(); err != nil {
		return err
	}
	if err := c.validateGazetteer(); err != nil {
		return err
	}
	if err := c.validateRanking(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	switch strings.ToLower(c.Server.Environment) {
	case "development", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
}

func (c *Config) validateAPI() error {
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.API.RateLimitReqs)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.API.RateLimitWindow)
		}
	}
	if c.API.MaxBodyBytes < 1024 {
		return fmt.Errorf("API_MAX_BODY_BYTES must be at least 1024, got %d", c.API.MaxBodyBytes)
	}
	return nil
}

func (c *Config) validateEphemeris() error {
	if !c.Ephemeris.CacheEnabled {
		return nil
	}
	if c.Ephemeris.CacheCapacity < 1 {
		return fmt.Errorf("EPHEMERIS_CACHE_CAPACITY must be at least 1, got %d", c.Ephemeris.CacheCapacity)
	}
	if c.Ephemeris.CacheTTL <= 0 {
		return fmt.Errorf("EPHEMERIS_CACHE_TTL must be positive, got %s", c.Ephemeris.CacheTTL)
	}
	return nil
}

func (c *Config) validateGazetteer() error {
	if !c.Gazetteer.RemoteEnabled {
		return nil
	}
	if c.Gazetteer.RemoteURL == "" {
		return fmt.Errorf("GAZETTEER_REMOTE_URL is required when GAZETTEER_REMOTE_ENABLED=true")
	}
	u, err := url.Parse(c.Gazetteer.RemoteURL)
	if err != nil {
		return fmt.Errorf("GAZETTEER_REMOTE_URL is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("GAZETTEER_REMOTE_URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("GAZETTEER_REMOTE_URL has no host: %q", c.Gazetteer.RemoteURL)
	}
	if c.Gazetteer.RemoteTimeout <= 0 {
		return fmt.Errorf("GAZETTEER_REMOTE_TIMEOUT must be positive, got %s", c.Gazetteer.RemoteTimeout)
	}
	return nil
}

func (c *Config) validateRanking() error {
	if c.Ranking.Workers < 1 {
		return fmt.Errorf("RANKING_WORKERS must be at least 1, got %d", c.Ranking.Workers)
	}
	if c.Ranking.DefaultTopN < 1 {
		return fmt.Errorf("RANKING_TOP_N must be at least 1, got %d", c.Ranking.DefaultTopN)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
