// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package solarreturn

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/solmundi/astrolabe/internal/almanac"
	"github.com/solmundi/astrolabe/internal/aspect"
	"github.com/solmundi/astrolabe/internal/chart"
	"github.com/solmundi/astrolabe/internal/dignity"
	"github.com/solmundi/astrolabe/internal/ephemeris"
	"github.com/solmundi/astrolabe/internal/gazetteer"
	"github.com/solmundi/astrolabe/internal/logging"
	"github.com/solmundi/astrolabe/internal/timelord"
	"github.com/solmundi/astrolabe/internal/zodiac"
)

// Sub-score caps. Each criterion saturates independently so one
// extreme chart cannot dominate the total.
const (
	capDignities  = 35.0
	capAngularity = 25.0
	capSolar      = 15.0
	floorSolar    = -10.0
	capReception  = 15.0
	capSect       = 10.0
)

// rankWorkers bounds concurrent per-city chart solves.
const rankWorkers = 4

// Criteria names the scoring scheme in ranking responses.
const Criteria = "Persian/Hellenistic (dignities, angularity, sect, reception, solar conditions)"

var (
	benefics = map[string]bool{"Jupiter": true, "Venus": true}
	malefics = map[string]bool{"Saturn": true, "Mars": true}
)

// Breakdown is the per-criterion decomposition of a city's total.
type Breakdown struct {
	Dignities        float64 `json:"dignities"`
	Angularity       float64 `json:"angularity"`
	SolarConditions  float64 `json:"solar_conditions"`
	AspectsReception float64 `json:"aspects_reception"`
	Sect             float64 `json:"sect"`
}

// ChartSummary is the compact per-city chart identity.
type ChartSummary struct {
	AscSign             string    `json:"asc_sign"`
	MCSign              string    `json:"mc_sign"`
	SolarReturnDatetime time.Time `json:"solar_return_datetime"`
}

// CityScore is one ranked candidate.
type CityScore struct {
	City         string         `json:"city"`
	Coordinates  chart.Location `json:"coordinates"`
	Region       string         `json:"region"`
	TotalScore   float64        `json:"total_score"`
	Breakdown    Breakdown      `json:"breakdown"`
	ChartSummary ChartSummary   `json:"chart_summary"`
}

// Ranking is the full multi-city result.
type Ranking struct {
	TopRecommendations []string    `json:"top_recommendations"`
	Rankings           []CityScore `json:"rankings"`
	Criteria           string      `json:"criteria"`
	CitiesAnalyzed     int         `json:"cities_analyzed"`
	Year               int         `json:"year"`
}

// Rank solves and scores a solar return per candidate city. City
// failures are isolated: a city whose solve or chart fails is logged
// and dropped, the rest still rank. Ordering is deterministic: total
// descending, then dignities descending, then city name.
func Rank(ctx context.Context, prov ephemeris.Provider, birth time.Time, year int, cities []gazetteer.City, topN int, opts chart.Options) (*Ranking, error) {
	return RankWithWorkers(ctx, prov, birth, year, cities, topN, rankWorkers, opts)
}

// RankWithWorkers is Rank with an explicit pool size. A non-positive
// size falls back to the default.
func RankWithWorkers(ctx context.Context, prov ephemeris.Provider, birth time.Time, year int, cities []gazetteer.City, topN, workers int, opts chart.Options) (*Ranking, error) {
	if workers <= 0 {
		workers = rankWorkers
	}
	results := make([]*CityScore, len(cities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, city := range cities {
		g.Go(func() error {
			sc, err := ScoreCity(gctx, prov, birth, city, year, opts)
			if err != nil {
				logging.Warn().Err(err).Str("city", city.Name).Int("year", year).Msg("Dropping city from solar return ranking")
				return nil
			}
			results[i] = sc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rankings := make([]CityScore, 0, len(results))
	for _, r := range results {
		if r != nil {
			rankings = append(rankings, *r)
		}
	}

	sort.SliceStable(rankings, func(a, b int) bool {
		if rankings[a].TotalScore != rankings[b].TotalScore {
			return rankings[a].TotalScore > rankings[b].TotalScore
		}
		if rankings[a].Breakdown.Dignities != rankings[b].Breakdown.Dignities {
			return rankings[a].Breakdown.Dignities > rankings[b].Breakdown.Dignities
		}
		return rankings[a].City < rankings[b].City
	})

	if topN > len(rankings) {
		topN = len(rankings)
	}
	if topN < 0 {
		topN = 0
	}
	top := make([]string, 0, topN)
	for _, r := range rankings[:topN] {
		top = append(top, r.City)
	}

	return &Ranking{
		TopRecommendations: top,
		Rankings:           rankings,
		Criteria:           Criteria,
		CitiesAnalyzed:     len(rankings),
		Year:               year,
	}, nil
}

// ScoreCity solves the return for one city and applies the five
// sub-scores.
func ScoreCity(ctx context.Context, prov ephemeris.Provider, birth time.Time, city gazetteer.City, year int, opts chart.Options) (*CityScore, error) {
	loc := chart.Location{Latitude: city.Latitude, Longitude: city.Longitude}
	sr, err := BuildChart(ctx, prov, birth, loc, year, opts)
	if err != nil {
		return nil, err
	}
	snap := sr.snapshot

	b := Breakdown{
		Dignities:        scoreDignities(snap, opts.Tradition),
		Angularity:       scoreAngularity(snap),
		SolarConditions:  scoreSolarConditions(snap),
		AspectsReception: scoreAspectsReception(snap, opts.Tradition),
		Sect:             scoreSect(snap),
	}
	total := round2(b.Dignities + b.Angularity + b.SolarConditions + b.AspectsReception + b.Sect)

	summary := ChartSummary{SolarReturnDatetime: sr.SolarReturnDatetime}
	if snap.Houses != nil {
		summary.AscSign = zodiac.SignOf(snap.Houses.Asc).String()
		summary.MCSign = zodiac.SignOf(snap.Houses.MC).String()
	}

	return &CityScore{
		City:         city.Name,
		Coordinates:  loc,
		Region:       city.Region,
		TotalScore:   total,
		Breakdown:    b,
		ChartSummary: summary,
	}, nil
}

// scoreDignities weighs the Ascendant ruler double, the Midheaven
// ruler one and a half, and every placed planet at half weight.
// Without houses the ruler bonuses are unavailable and only the
// all-planets term contributes.
func scoreDignities(snap *chart.Chart, trad dignity.Tradition) float64 {
	var score float64

	if snap.Houses != nil {
		ascRuler := dignity.Ruler(zodiac.SignOf(snap.Houses.Asc), trad)
		mcRuler := dignity.Ruler(zodiac.SignOf(snap.Houses.MC), trad)
		if p, ok := snap.Planet(ascRuler); ok {
			score += float64(p.Dignity.Score) * 2
		}
		if p, ok := snap.Planet(mcRuler); ok {
			score += float64(p.Dignity.Score) * 1.5
		}
	}

	for _, p := range snap.Planets {
		score += float64(p.Dignity.Score) * 0.5
	}
	return math.Min(round2(score), capDignities)
}

// scoreAngularity rewards benefics and luminaries on the angles and
// penalizes malefics there unless they are well dignified. Without
// houses a dignity proxy stands in.
func scoreAngularity(snap *chart.Chart) float64 {
	var score float64

	if snap.Houses == nil {
		for _, p := range snap.Planets {
			switch {
			case benefics[p.Name]:
				score += 3
			case malefics[p.Name] && (p.Dignity.Domicile || p.Dignity.Exaltation):
				score += 1
			}
		}
		return math.Min(score, capAngularity)
	}

	for _, p := range snap.Planets {
		if !isAngular(p.House) {
			continue
		}
		switch {
		case benefics[p.Name]:
			score += 8
		case p.Name == "Sun":
			score += 6
		case p.Name == "Moon" || p.Name == "Mercury":
			score += 5
		case malefics[p.Name]:
			if p.Dignity.Domicile || p.Dignity.Exaltation {
				score += 3
			} else {
				score -= 2
			}
		}
	}
	return math.Min(score, capAngularity)
}

// scoreSolarConditions sums cazimi +10, combust -10, under-beams -5
// across the chart, clamped to [-10, 15].
func scoreSolarConditions(snap *chart.Chart) float64 {
	sun, ok := snap.Planet("Sun")
	if !ok {
		return 0
	}

	var score float64
	for _, p := range snap.Planets {
		switch almanac.Condition(p.Longitude, sun.Longitude, p.Name).State {
		case almanac.StateCazimi:
			score += 10
		case almanac.StateCombust:
			score -= 10
		case almanac.StateUnderBeams:
			score -= 5
		}
	}
	return math.Max(math.Min(score, capSolar), floorSolar)
}

// scoreAspectsReception scores the chart's own aspects: soft aspects
// gain, hard aspects cost, and mutual reception upgrades both.
func scoreAspectsReception(snap *chart.Chart, trad dignity.Tradition) float64 {
	var score float64
	for _, a := range snap.Aspects {
		pa, okA := snap.Planet(a.A)
		pb, okB := snap.Planet(a.B)
		if !okA || !okB {
			continue
		}
		received := aspect.MutualReception(pa.Name, pa.Longitude, pb.Name, pb.Longitude, trad)
		switch {
		case a.Kind.Harmonious():
			if received {
				score += 5
			} else {
				score += 3
			}
		case a.Kind.Hard():
			if received {
				score += 1
			} else {
				score -= 3
			}
		}
	}
	return math.Min(score, capReception)
}

// scoreSect favors the sect benefic placed angular or succedent and
// the sect malefic kept off the angles. Without houses only a
// dignity proxy for the benefic applies.
func scoreSect(snap *chart.Chart) float64 {
	benefic, malefic := "Jupiter", "Saturn"
	if snap.Sect == timelord.Nocturnal {
		benefic, malefic = "Venus", "Mars"
	}

	var score float64
	if snap.Houses == nil {
		if p, ok := snap.Planet(benefic); ok && (p.Dignity.Domicile || p.Dignity.Exaltation) {
			score += 5
		}
		return math.Min(score, capSect)
	}

	if p, ok := snap.Planet(benefic); ok && (isAngular(p.House) || isSuccedent(p.House)) {
		score += 5
	}
	if p, ok := snap.Planet(malefic); ok && !isAngular(p.House) {
		score += 3
	}
	return math.Min(score, capSect)
}

func isAngular(house int) bool {
	return house == 1 || house == 4 || house == 7 || house == 10
}

func isSuccedent(house int) bool {
	return house == 2 || house == 5 || house == 8 || house == 11
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
