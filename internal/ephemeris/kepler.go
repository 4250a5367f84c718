// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package ephemeris

import "math"

const degToRad = math.Pi / 180.0

// orbitalElements holds Keplerian elements at J2000.0 plus their
// per-Julian-century rates: semi-major axis a (au), eccentricity e,
// inclination i, mean longitude l, longitude of perihelion lp, and
// longitude of the ascending node node (all angles in degrees).
type orbitalElements struct {
	a, aDot       float64
	e, eDot       float64
	i, iDot       float64
	l, lDot       float64
	lp, lpDot     float64
	node, nodeDot float64
}

// planetElements are the JPL approximate elements fitted to the
// 1800 AD - 2050 AD interval. Earth is the Earth-Moon barycenter; it is
// used internally for the heliocentric-to-geocentric translation and
// for the Sun's apparent longitude.
var planetElements = map[Body]orbitalElements{
	Mercury: {
		a: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		i: 7.00497902, iDot: -0.00594749,
		l: 252.25032350, lDot: 149472.67411175,
		lp: 77.45779628, lpDot: 0.16047689,
		node: 48.33076593, nodeDot: -0.12534081,
	},
	Venus: {
		a: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		i: 3.39467605, iDot: -0.00078890,
		l: 181.97909950, lDot: 58517.81538729,
		lp: 131.60246718, lpDot: 0.00268329,
		node: 76.67984255, nodeDot: -0.27769418,
	},
	Mars: {
		a: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		i: 1.84969142, iDot: -0.00813131,
		l: -4.55343205, lDot: 19140.30268499,
		lp: -23.94362959, lpDot: 0.44441088,
		node: 49.55953891, nodeDot: -0.29257343,
	},
	Jupiter: {
		a: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		i: 1.30439695, iDot: -0.00183714,
		l: 34.39644051, lDot: 3034.74612775,
		lp: 14.72847983, lpDot: 0.21252668,
		node: 100.47390909, nodeDot: 0.20469106,
	},
	Saturn: {
		a: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		i: 2.48599187, iDot: 0.00193609,
		l: 49.95424423, lDot: 1222.49362201,
		lp: 92.59887831, lpDot: -0.41897216,
		node: 113.66242448, nodeDot: -0.28867794,
	},
	Uranus: {
		a: 19.18916464, aDot: -0.00196176,
		e: 0.04725744, eDot: -0.00004397,
		i: 0.77263783, iDot: -0.00242939,
		l: 313.23810451, lDot: 428.48202785,
		lp: 170.95427630, lpDot: 0.40805281,
		node: 74.01692503, nodeDot: 0.04240589,
	},
	Neptune: {
		a: 30.06992276, aDot: 0.00026291,
		e: 0.00859048, eDot: 0.00005105,
		i: 1.77004347, iDot: 0.00035372,
		l: -55.12002969, lDot: 218.45945325,
		lp: 44.96476227, lpDot: -0.32241464,
		node: 131.78422574, nodeDot: -0.00508664,
	},
	Pluto: {
		a: 39.48211675, aDot: -0.00031596,
		e: 0.24882730, eDot: 0.00005170,
		i: 17.14001206, iDot: 0.00004818,
		l: 238.92903833, lDot: 145.20780515,
		lp: 224.06891629, lpDot: -0.04062942,
		node: 110.30393684, nodeDot: -0.01183482,
	},
}

// earthElements is the Earth-Moon barycenter orbit, kept out of the
// Body enum because it is never reported directly.
var earthElements = orbitalElements{
	a: 1.00000261, aDot: 0.00000562,
	e: 0.01671123, eDot: -0.00004392,
	i: -0.00001531, iDot: -0.01294668,
	l: 100.46457166, lDot: 35999.37244981,
	lp: 102.93768193, lpDot: 0.32327364,
	node: 0.0, nodeDot: 0.0,
}

// at evaluates the elements at T Julian centuries past J2000.0.
func (el orbitalElements) at(t float64) orbitalElements {
	return orbitalElements{
		a:    el.a + el.aDot*t,
		e:    el.e + el.eDot*t,
		i:    el.i + el.iDot*t,
		l:    el.l + el.lDot*t,
		lp:   el.lp + el.lpDot*t,
		node: el.node + el.nodeDot*t,
	}
}

// solveKepler finds the eccentric anomaly E (degrees) satisfying
// M = E - e*sin(E) by Newton-Raphson. Convergence is quadratic; the
// loop bound is a safety net, not an expected path.
func solveKepler(meanAnomalyDeg, e float64) float64 {
	m := math.Mod(meanAnomalyDeg, 360.0)
	if m < 0 {
		m += 360.0
	}
	eDeg := e / degToRad

	est := m + eDeg*math.Sin(m*degToRad)
	for iter := 0; iter < 100; iter++ {
		dm := m - (est - eDeg*math.Sin(est*degToRad))
		dE := dm / (1 - e*math.Cos(est*degToRad))
		est += dE
		if math.Abs(dE) < 1e-8 {
			break
		}
	}
	return est
}

// heliocentric returns the J2000 ecliptic rectangular coordinates (au)
// of a body described by el at T Julian centuries past J2000.0.
func heliocentric(el orbitalElements, t float64) (x, y, z float64) {
	cur := el.at(t)

	// Argument of perihelion and mean anomaly from the compound angles.
	omega := cur.lp - cur.node
	m := cur.l - cur.lp

	eccAnom := solveKepler(m, cur.e)

	// Position in the orbital plane, x' toward perihelion.
	xp := cur.a * (math.Cos(eccAnom*degToRad) - cur.e)
	yp := cur.a * math.Sqrt(1-cur.e*cur.e) * math.Sin(eccAnom*degToRad)

	cw, sw := math.Cos(omega*degToRad), math.Sin(omega*degToRad)
	co, so := math.Cos(cur.node*degToRad), math.Sin(cur.node*degToRad)
	ci, si := math.Cos(cur.i*degToRad), math.Sin(cur.i*degToRad)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// planetLongitude returns the geocentric ecliptic longitude of a planet
// (Mercury..Pluto) in [0,360).
func planetLongitude(b Body, t float64) float64 {
	px, py, _ := heliocentric(planetElements[b], t)
	ex, ey, _ := heliocentric(earthElements, t)

	lon := math.Atan2(py-ey, px-ex) / degToRad
	return normalize(lon)
}

// sunLongitude returns the geocentric apparent longitude of the Sun:
// the anti-direction of Earth's heliocentric position.
func sunLongitude(t float64) float64 {
	ex, ey, _ := heliocentric(earthElements, t)
	lon := math.Atan2(-ey, -ex) / degToRad
	return normalize(lon)
}

func normalize(lon float64) float64 {
	lon = math.Mod(lon, 360.0)
	if lon < 0 {
		lon += 360.0
	}
	return lon
}
