// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package ephemeris

// Body identifies one of the ten chart bodies. The zero value is Sun.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto

	numBodies
)

var bodyNames = [numBodies]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

// String returns the canonical English name used in all JSON output.
func (b Body) String() string {
	if b < 0 || b >= numBodies {
		return "Unknown"
	}
	return bodyNames[b]
}

// Valid reports whether b names one of the ten supported bodies.
func (b Body) Valid() bool {
	return b >= 0 && b < numBodies
}

// AllBodies returns the ten bodies in canonical chart order:
// Sun, Moon, then Mercury outward to Pluto.
func AllBodies() []Body {
	out := make([]Body, numBodies)
	for i := range out {
		out[i] = Body(i)
	}
	return out
}

// BodyByName resolves a canonical body name. The second return is false
// for any name outside the supported set.
func BodyByName(name string) (Body, bool) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), true
		}
	}
	return 0, false
}
