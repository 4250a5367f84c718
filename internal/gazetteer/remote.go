// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package gazetteer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/solmundi/astrolabe/internal/logging"
	"github.com/solmundi/astrolabe/internal/metrics"
)

// ErrNotFound is returned when neither the table nor the remote
// service knows the place.
var ErrNotFound = errors.New("gazetteer: place not found")

// RemoteResolver looks up places against a geocoding HTTP API,
// falling back to it only for names missing from the built-in table.
// Remote calls run behind a circuit breaker so a degraded geocoding
// service cannot stall ranking requests.
// Outbound calls are also throttled client-side so bursts of ranking
// requests stay within the geocoding service's published limits.
type RemoteResolver struct {
	baseURL string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker[City]
	limiter *rate.Limiter
	name    string
}

// NewRemoteResolver builds a resolver for a geocoding endpoint
// compatible with the open-meteo search API. The breaker opens after
// a 60% failure rate across at least 10 requests and probes again
// after 2 minutes.
func NewRemoteResolver(baseURL string, timeout time.Duration) *RemoteResolver {
	cbName := "gazetteer-remote"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[City](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= 0.6 {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening gazetteer circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] Gazetteer state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &RemoteResolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cb:      cb,
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		name:    cbName,
	}
}

// Lookup resolves a place name, preferring the built-in table.
func (r *RemoteResolver) Lookup(ctx context.Context, name string) (City, error) {
	if c, ok := Lookup(name); ok {
		return c, nil
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return City{}, fmt.Errorf("gazetteer: rate limit wait: %w", err)
	}

	city, err := r.cb.Execute(func() (City, error) {
		return r.fetch(ctx, name)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "rejected").Inc()
			logging.Warn().Err(err).Str("place", name).Msg("[CIRCUIT BREAKER] Gazetteer request rejected")
		} else if !errors.Is(err, ErrNotFound) {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "failure").Inc()
			counts := r.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(r.name).Set(float64(counts.ConsecutiveFailures))
		}
		return City{}, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(r.name, "success").Inc()
	return city, nil
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

func (r *RemoteResolver) fetch(ctx context.Context, name string) (City, error) {
	u := fmt.Sprintf("%s/v1/search?name=%s&count=1", r.baseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return City{}, fmt.Errorf("gazetteer: build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return City{}, fmt.Errorf("gazetteer: geocode %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return City{}, fmt.Errorf("gazetteer: geocode %q: unexpected status %d", name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return City{}, fmt.Errorf("gazetteer: read response: %w", err)
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return City{}, fmt.Errorf("gazetteer: decode response: %w", err)
	}
	if len(decoded.Results) == 0 {
		return City{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	hit := decoded.Results[0]
	return City{
		Name:      hit.Name,
		Latitude:  hit.Latitude,
		Longitude: hit.Longitude,
		Region:    hit.Country,
	}, nil
}

func stateToString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	default:
		return "open"
	}
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
