// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

// Package houses divides the ecliptic into twelve houses for an
// instant and place. Placidus is the primary system, computed by the
// classical iterative semi-arc method; whole-sign and equal houses are
// available as simpler alternates and as fallbacks where Placidus is
// undefined.
package houses

import (
	"fmt"
	"math"
	"time"

	"github.com/solmundi/astrolabe/internal/zodiac"
)

// System is a closed enumeration of supported house systems.
type System int

const (
	Placidus System = iota
	WholeSign
	Equal
)

// String returns the request-level system name.
func (s System) String() string {
	switch s {
	case WholeSign:
		return "whole_sign"
	case Equal:
		return "equal"
	default:
		return "placidus"
	}
}

// SystemByName parses a request-level system name.
func SystemByName(name string) (System, bool) {
	switch name {
	case "placidus", "":
		return Placidus, true
	case "whole_sign":
		return WholeSign, true
	case "equal":
		return Equal, true
	default:
		return 0, false
	}
}

// MaxPlacidusLatitude bounds where the Placidus division is defined.
// Beyond the polar circles parts of the ecliptic never rise or set and
// the semi-arc equations have no solution.
const MaxPlacidusLatitude = 66.0

// UndefinedError reports a latitude where the requested house system
// has no solution.
type UndefinedError struct {
	Latitude float64
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("houses: placidus undefined at latitude %.4f (supported range is -%.0f..+%.0f)",
		e.Latitude, MaxPlacidusLatitude, MaxPlacidusLatitude)
}

// Cusp is one house interval. Start is the cusp itself; End is the
// next house's cusp. Intervals are half-open: a body exactly on a cusp
// belongs to the house it begins.
type Cusp struct {
	House int     `json:"house"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Block is a complete house division with its two primary angles.
type Block struct {
	Houses []Cusp  `json:"houses"`
	Asc    float64 `json:"asc"`
	MC     float64 `json:"mc"`
}

// placidusIterations caps the semi-arc fixed-point loop. Convergence
// is geometric below the polar guard; ten passes reach well under the
// 0.01-degree reference precision, the rest are slack.
const placidusIterations = 30

// Compute returns the house division for an instant and geographic
// location (latitude north-positive, longitude east-positive).
// Placidus fails with *UndefinedError beyond MaxPlacidusLatitude; the
// whole-sign and equal systems are defined everywhere an Ascendant is.
func Compute(t time.Time, lat, geoLon float64, system System) (*Block, error) {
	ramc := armc(t, geoLon)
	eps := obliquity(t)

	asc := ascendant(ramc, lat, eps)
	mc := eclipticOfRA(ramc, eps)

	var cusps [12]float64
	switch system {
	case WholeSign:
		first := float64(zodiac.SignOf(asc)) * zodiac.SignSpan
		for i := range cusps {
			cusps[i] = normalize(first + float64(i)*zodiac.SignSpan)
		}
	case Equal:
		for i := range cusps {
			cusps[i] = normalize(asc + float64(i)*zodiac.SignSpan)
		}
	default:
		if math.Abs(lat) > MaxPlacidusLatitude {
			return nil, &UndefinedError{Latitude: lat}
		}
		c11, err := placidusCusp(ramc, lat, eps, 30, 1.0/3.0, 0)
		if err != nil {
			return nil, err
		}
		c12, err := placidusCusp(ramc, lat, eps, 60, 2.0/3.0, 0)
		if err != nil {
			return nil, err
		}
		c2, err := placidusCusp(ramc, lat, eps, 120, 2.0/3.0, 60)
		if err != nil {
			return nil, err
		}
		c3, err := placidusCusp(ramc, lat, eps, 150, 1.0/3.0, 120)
		if err != nil {
			return nil, err
		}

		cusps[0] = asc
		cusps[1] = c2
		cusps[2] = c3
		cusps[3] = normalize(mc + 180)
		cusps[4] = normalize(c11 + 180)
		cusps[5] = normalize(c12 + 180)
		cusps[6] = normalize(asc + 180)
		cusps[7] = normalize(c2 + 180)
		cusps[8] = normalize(c3 + 180)
		cusps[9] = mc
		cusps[10] = c11
		cusps[11] = c12
	}

	block := &Block{Asc: asc, MC: mc, Houses: make([]Cusp, 12)}
	for i := range cusps {
		block.Houses[i] = Cusp{
			House: i + 1,
			Start: cusps[i],
			End:   cusps[(i+1)%12],
		}
	}
	return block, nil
}

// ascendant returns the rising ecliptic degree for a local meridian RA,
// latitude, and obliquity, all in degrees.
func ascendant(ramc, lat, eps float64) float64 {
	r := ramc * degToRad
	e := eps * degToRad
	phi := lat * degToRad

	asc := math.Atan2(math.Cos(r), -(math.Sin(r)*math.Cos(e)+math.Tan(phi)*math.Sin(e))) / degToRad
	return normalize(asc)
}

// placidusCusp solves one intermediate cusp by fixed-point iteration
// on the semi-arc condition: the cusp's right ascension sits at
// base + frac of its own diurnal semi-arc past the meridian. seed is
// the equatorial starting offset from the meridian.
func placidusCusp(ramc, lat, eps, seed, frac, base float64) (float64, error) {
	tanPhi := math.Tan(lat * degToRad)

	ra := normalize(ramc + seed)
	for i := 0; i < placidusIterations; i++ {
		lon := eclipticOfRA(ra, eps)
		dec := declinationOf(lon, eps)

		x := tanPhi * math.Tan(dec*degToRad)
		if x < -1 || x > 1 {
			// Circumpolar declination: the point never crosses the
			// horizon and the semi-arc is undefined.
			return 0, &UndefinedError{Latitude: lat}
		}

		// Diurnal semi-arc in degrees.
		semi := 90 + math.Asin(x)/degToRad

		next := normalize(ramc + base + frac*semi)
		done := math.Abs(math.Mod(next-ra+540, 360)-180) < 1e-9
		ra = next
		if done {
			break
		}
	}
	return eclipticOfRA(ra, eps), nil
}

// Assign places a longitude into its house. Boundaries are half-open
// circular intervals: a body exactly on a cusp belongs to the house
// that cusp begins.
func Assign(lon float64, block *Block) int {
	lon = normalize(lon)
	for _, c := range block.Houses {
		start, end := normalize(c.Start), normalize(c.End)
		if start <= end {
			if lon >= start && lon < end {
				return c.House
			}
		} else { // interval wraps through 0 Aries
			if lon >= start || lon < end {
				return c.House
			}
		}
	}
	// Unreachable for a well-formed block; the intervals partition the
	// circle.
	return 1
}
