// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package gazetteer resolves city names to coordinates. A built-in
// table covers the sixteen stock relocation cities; an optional
// remote resolver extends lookups to arbitrary places behind a
// circuit breaker.
package gazetteer

import (
	"sort"
	"strings"
)

// City is one resolvable place.
type City struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Region    string  `json:"region"`
}

// relocationCities is the stock table: sixteen cities spread across
// regions, four per classical element grouping.
var relocationCities = map[string]City{
	// Fire
	"Dubai":       {Name: "Dubai", Latitude: 25.2048, Longitude: 55.2708, Region: "Middle East"},
	"Los Angeles": {Name: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437, Region: "North America"},
	"Barcelona":   {Name: "Barcelona", Latitude: 41.3851, Longitude: 2.1734, Region: "Europe"},
	"Sydney":      {Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093, Region: "Oceania"},

	// Earth
	"Zurich":     {Name: "Zurich", Latitude: 47.3769, Longitude: 8.5417, Region: "Europe"},
	"Singapore":  {Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198, Region: "Asia"},
	"Toronto":    {Name: "Toronto", Latitude: 43.6532, Longitude: -79.3832, Region: "North America"},
	"Copenhagen": {Name: "Copenhagen", Latitude: 55.6761, Longitude: 12.5683, Region: "Europe"},

	// Air
	"London":        {Name: "London", Latitude: 51.5074, Longitude: -0.1278, Region: "Europe"},
	"Amsterdam":     {Name: "Amsterdam", Latitude: 52.3676, Longitude: 4.9041, Region: "Europe"},
	"San Francisco": {Name: "San Francisco", Latitude: 37.7749, Longitude: -122.4194, Region: "North America"},
	"Berlin":        {Name: "Berlin", Latitude: 52.5200, Longitude: 13.4050, Region: "Europe"},

	// Water
	"Venice":         {Name: "Venice", Latitude: 45.4408, Longitude: 12.3155, Region: "Europe"},
	"Rio de Janeiro": {Name: "Rio de Janeiro", Latitude: -22.9068, Longitude: -43.1729, Region: "South America"},
	"Lisbon":         {Name: "Lisbon", Latitude: 38.7223, Longitude: -9.1393, Region: "Europe"},
	"Buenos Aires":   {Name: "Buenos Aires", Latitude: -34.6037, Longitude: -58.3816, Region: "South America"},
}

// Lookup resolves a city from the built-in table. The match is
// case-insensitive.
func Lookup(name string) (City, bool) {
	if c, ok := relocationCities[name]; ok {
		return c, true
	}
	for key, c := range relocationCities {
		if strings.EqualFold(key, name) {
			return c, true
		}
	}
	return City{}, false
}

// Cities returns the full stock table sorted by name.
func Cities() []City {
	out := make([]City, 0, len(relocationCities))
	for _, c := range relocationCities {
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

// Search returns the cities whose name or region contains the query,
// case-insensitively, sorted by name. An empty query matches nothing.
func Search(q string) []City {
	if q == "" {
		return nil
	}
	q = strings.ToLower(q)
	var out []City
	for _, c := range relocationCities {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Region), q) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

// Resolve maps a list of names onto cities from the table, preserving
// order and reporting the names it could not resolve.
func Resolve(names []string) (found []City, missing []string) {
	for _, name := range names {
		if c, ok := Lookup(name); ok {
			found = append(found, c)
		} else {
			missing = append(missing, name)
		}
	}
	return found, missing
}
