// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/nonexistent/astrolabe-config.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8090 {
		t.Errorf("Server.Port = %d, want 8090", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %s, want 30s", cfg.Server.Timeout)
	}
	if !cfg.Ephemeris.CacheEnabled {
		t.Error("Ephemeris.CacheEnabled default should be true")
	}
	if cfg.Ephemeris.CacheCapacity != 65536 {
		t.Errorf("Ephemeris.CacheCapacity = %d, want 65536", cfg.Ephemeris.CacheCapacity)
	}
	if cfg.Gazetteer.RemoteEnabled {
		t.Error("Gazetteer.RemoteEnabled default should be false")
	}
	if cfg.Ranking.Workers != 4 {
		t.Errorf("Ranking.Workers = %d, want 4", cfg.Ranking.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "*" {
		t.Errorf("API.CORSOrigins = %v, want [*]", cfg.API.CORSOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/nonexistent/astrolabe-config.yaml")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EPHEMERIS_CACHE_TTL", "1h")
	t.Setenv("RANKING_TOP_N", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Ephemeris.CacheTTL != time.Hour {
		t.Errorf("Ephemeris.CacheTTL = %s, want 1h", cfg.Ephemeris.CacheTTL)
	}
	if cfg.Ranking.DefaultTopN != 3 {
		t.Errorf("Ranking.DefaultTopN = %d, want 3", cfg.Ranking.DefaultTopN)
	}
}

func TestLoadCORSOriginsFromEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/nonexistent/astrolabe-config.yaml")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.API.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.API.CORSOrigins, want)
	}
	for i, origin := range want {
		if cfg.API.CORSOrigins[i] != origin {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.API.CORSOrigins[i], origin)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := strings.Join([]string{
		"server:",
		"  port: 9200",
		"  environment: production",
		"logging:",
		"  format: console",
	}, "\n")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9200 {
		t.Errorf("Server.Port = %d, want 9200", cfg.Server.Port)
	}
	if !cfg.Server.IsProduction() {
		t.Error("IsProduction should be true")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	// Untouched sections keep their defaults.
	if cfg.Ranking.Workers != 4 {
		t.Errorf("Ranking.Workers = %d, want 4", cfg.Ranking.Workers)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9200\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9300")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9300 {
		t.Errorf("Server.Port = %d, want env override 9300", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Server.Timeout = -time.Second },
			wantErr: "HTTP_TIMEOUT",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.Server.Environment = "staging" },
			wantErr: "ENVIRONMENT",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.API.RateLimitReqs = 0 },
			wantErr: "RATE_LIMIT_REQUESTS",
		},
		{
			name: "rate limit ignored when disabled",
			mutate: func(c *Config) {
				c.API.RateLimitDisabled = true
				c.API.RateLimitReqs = 0
			},
		},
		{
			name:    "tiny body cap",
			mutate:  func(c *Config) { c.API.MaxBodyBytes = 10 },
			wantErr: "API_MAX_BODY_BYTES",
		},
		{
			name:    "zero cache capacity",
			mutate:  func(c *Config) { c.Ephemeris.CacheCapacity = 0 },
			wantErr: "EPHEMERIS_CACHE_CAPACITY",
		},
		{
			name: "cache capacity ignored when disabled",
			mutate: func(c *Config) {
				c.Ephemeris.CacheEnabled = false
				c.Ephemeris.CacheCapacity = 0
			},
		},
		{
			name:    "remote gazetteer without URL",
			mutate:  func(c *Config) { c.Gazetteer.RemoteEnabled = true },
			wantErr: "GAZETTEER_REMOTE_URL",
		},
		{
			name: "remote gazetteer with bad scheme",
			mutate: func(c *Config) {
				c.Gazetteer.RemoteEnabled = true
				c.Gazetteer.RemoteURL = "ftp://geo.example"
			},
			wantErr: "http or https",
		},
		{
			name: "remote gazetteer valid",
			mutate: func(c *Config) {
				c.Gazetteer.RemoteEnabled = true
				c.Gazetteer.RemoteURL = "https://geocoding-api.open-meteo.com"
			},
		},
		{
			name:    "zero ranking workers",
			mutate:  func(c *Config) { c.Ranking.Workers = 0 },
			wantErr: "RANKING_WORKERS",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"EPHEMERIS_CACHE_TTL", "ephemeris.cache_ttl"},
		{"GAZETTEER_REMOTE_URL", "gazetteer.remote_url"},
		{"LOG_LEVEL", "logging.level"},
		{"RANKING_TOP_N", "ranking.default_top_n"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}
