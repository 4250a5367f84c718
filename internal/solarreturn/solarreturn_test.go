// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package solarreturn

import (
	"context"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/solmundi/astrolabe/internal/aspect"
	"github.com/solmundi/astrolabe/internal/chart"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/gazetteer"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

var testBirth = time.Date(1990, 7, 15, 3, 30, 0, 0, time.UTC)

func TestFind(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	ctx := context.Background()

	when, err := Find(ctx, prov, testBirth, 2026)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	anchor := time.Date(2026, 7, 15, 3, 30, 0, 0, time.UTC)
	if d := when.Sub(anchor); d < -2*24*time.Hour || d > 2*24*time.Hour {
		t.Errorf("return instant %v too far from anniversary %v", when, anchor)
	}

	natal, err := prov.Longitude(ctx, ephemeris.Sun, testBirth)
	if err != nil {
		t.Fatalf("natal sun: %v", err)
	}
	at, err := prov.Longitude(ctx, ephemeris.Sun, when)
	if err != nil {
		t.Fatalf("sun at return: %v", err)
	}
	if residual := zodiac.ArcDistance(at, natal); residual >= 0.0011 {
		t.Errorf("residual = %v deg, want < 0.0011", residual)
	}

	again, err := Find(ctx, prov, testBirth, 2026)
	if err != nil {
		t.Fatalf("Find again: %v", err)
	}
	if !when.Equal(again) {
		t.Errorf("solver not deterministic: %v vs %v", when, again)
	}
}

func TestFindLeapBirthday(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	birth := time.Date(1988, 2, 29, 10, 0, 0, 0, time.UTC)

	when, err := Find(context.Background(), prov, birth, 2027)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if when.Year() != 2027 {
		t.Errorf("return year = %d, want 2027", when.Year())
	}
}

func TestFindOutOfRange(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	if _, err := Find(context.Background(), prov, testBirth, 2055); err == nil {
		t.Fatal("expected error beyond the ephemeris window")
	}
}

func TestBuildChart(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	loc := chart.Location{Latitude: 51.5074, Longitude: -0.1278}

	sr, err := BuildChart(context.Background(), prov, testBirth, loc, 2026, chart.Options{})
	if err != nil {
		t.Fatalf("BuildChart: %v", err)
	}

	if sr.Year != 2026 {
		t.Errorf("year = %d", sr.Year)
	}
	if !sr.BirthDate.Equal(testBirth) {
		t.Errorf("birth date = %v", sr.BirthDate)
	}
	if got := len(sr.Planets); got != 10 {
		t.Fatalf("planets = %d, want 10", got)
	}
	for _, p := range sr.Planets {
		if want := zodiac.SignOf(p.Lon).String(); p.Sign != want {
			t.Errorf("%s sign = %q, want %q", p.Name, p.Sign, want)
		}
		if p.House < 1 || p.House > 12 {
			t.Errorf("%s house = %d", p.Name, p.House)
		}
	}
	if sr.ScoreSummary.NumAspects != len(sr.Aspects) {
		t.Errorf("num_aspects = %d, aspects = %d", sr.ScoreSummary.NumAspects, len(sr.Aspects))
	}
	switch sr.ScoreSummary.Interpretation {
	case "favorable", "challenging", "neutral":
	default:
		t.Errorf("interpretation = %q", sr.ScoreSummary.Interpretation)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		aspects []aspect.Aspect
		label   string
	}{
		{
			name:    "soft aspect is favorable",
			aspects: []aspect.Aspect{{A: "Jupiter", B: "Sun", Kind: aspect.Trine, Orb: 0}},
			label:   "favorable",
		},
		{
			name:    "hard aspect is challenging",
			aspects: []aspect.Aspect{{A: "Saturn", B: "Mars", Kind: aspect.Square, Orb: 0}},
			label:   "challenging",
		},
		{
			name:  "no aspects is neutral",
			label: "neutral",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := summarize(tt.aspects)
			if s.Interpretation != tt.label {
				t.Errorf("interpretation = %q, want %q (score %v)", s.Interpretation, tt.label, s.TotalScore)
			}
			if s.NumAspects != len(tt.aspects) {
				t.Errorf("num_aspects = %d", s.NumAspects)
			}
		})
	}
}

func TestRank(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	cities, missing := gazetteer.Resolve([]string{"London", "Zurich", "Buenos Aires"})
	if len(missing) != 0 {
		t.Fatalf("unresolved cities: %v", missing)
	}

	r, err := Rank(context.Background(), prov, testBirth, 2027, cities, 2, chart.Options{})
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if r.CitiesAnalyzed != 3 {
		t.Errorf("cities_analyzed = %d, want 3", r.CitiesAnalyzed)
	}
	if len(r.Rankings) != 3 {
		t.Fatalf("rankings = %d, want 3", len(r.Rankings))
	}
	if len(r.TopRecommendations) != 2 {
		t.Errorf("top recommendations = %d, want 2", len(r.TopRecommendations))
	}
	if r.Year != 2027 {
		t.Errorf("year = %d", r.Year)
	}
	if r.Criteria == "" {
		t.Error("criteria missing")
	}

	for i, cs := range r.Rankings {
		if i > 0 {
			prev := r.Rankings[i-1]
			if cs.TotalScore > prev.TotalScore {
				t.Errorf("rankings not descending at %d: %v after %v", i, cs.TotalScore, prev.TotalScore)
			}
			if cs.TotalScore == prev.TotalScore && cs.Breakdown.Dignities > prev.Breakdown.Dignities {
				t.Errorf("dignities tie-break violated at %d", i)
			}
		}
		if cs.Breakdown.Dignities > 35 || cs.Breakdown.Angularity > 25 ||
			cs.Breakdown.SolarConditions > 15 || cs.Breakdown.SolarConditions < -10 ||
			cs.Breakdown.AspectsReception > 15 || cs.Breakdown.Sect > 10 {
			t.Errorf("%s breakdown outside caps: %+v", cs.City, cs.Breakdown)
		}
		if cs.ChartSummary.AscSign == "" || cs.ChartSummary.MCSign == "" {
			t.Errorf("%s chart summary incomplete: %+v", cs.City, cs.ChartSummary)
		}
		sum := cs.Breakdown.Dignities + cs.Breakdown.Angularity + cs.Breakdown.SolarConditions +
			cs.Breakdown.AspectsReception + cs.Breakdown.Sect
		if math.Abs(sum-cs.TotalScore) > 0.01 {
			t.Errorf("%s total %v does not match breakdown sum %v", cs.City, cs.TotalScore, sum)
		}
	}

	if r.TopRecommendations[0] != r.Rankings[0].City {
		t.Errorf("top recommendation %q is not the best ranked %q", r.TopRecommendations[0], r.Rankings[0].City)
	}

	again, err := Rank(context.Background(), prov, testBirth, 2027, cities, 2, chart.Options{})
	if err != nil {
		t.Fatalf("Rank again: %v", err)
	}
	if !reflect.DeepEqual(r, again) {
		t.Error("ranking not deterministic across identical runs")
	}
}

func TestRankTopNCapped(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	cities, _ := gazetteer.Resolve([]string{"London", "Lisbon"})

	r, err := Rank(context.Background(), prov, testBirth, 2026, cities, 10, chart.Options{})
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(r.TopRecommendations) != 2 {
		t.Errorf("top recommendations = %d, want 2 (capped at cities analyzed)", len(r.TopRecommendations))
	}
}

func TestRankIsolatesCityFailures(t *testing.T) {
	prov := ephemeris.NewKeplerian()
	cities, _ := gazetteer.Resolve([]string{"London", "Zurich"})

	// A year past the ephemeris window fails every city's solve; the
	// ranking itself must still succeed, just empty.
	r, err := Rank(context.Background(), prov, testBirth, 2055, cities, 3, chart.Options{})
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if r.CitiesAnalyzed != 0 || len(r.Rankings) != 0 || len(r.TopRecommendations) != 0 {
		t.Errorf("expected empty ranking, got %+v", r)
	}
}
