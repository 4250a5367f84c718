// Astrolabe - Classical Astrology Calculation Engine
// Copyright 2026 Sol M. (solmundi)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solmundi/astrolabe

package zodiac

// Sign is one of the twelve 30-degree segments of the ecliptic.
// The zero value is Aries; values increase in zodiacal order.
type Sign int

// The twelve zodiacal signs in order, starting at 0 degrees Aries.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignSpan is the angular width of one zodiacal sign in degrees.
const SignSpan = 30.0

// Element is the classical element assigned to a sign.
type Element string

// Classical elements.
const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// Modality is the classical quality (mode) assigned to a sign.
type Modality string

// Classical modalities.
const (
	Cardinal Modality = "cardinal"
	Fixed    Modality = "fixed"
	Mutable  Modality = "mutable"
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signElements = [12]Element{
	Fire, Earth, Air, Water, Fire, Earth,
	Air, Water, Fire, Earth, Air, Water,
}

var signModalities = [12]Modality{
	Cardinal, Fixed, Mutable, Cardinal, Fixed, Mutable,
	Cardinal, Fixed, Mutable, Cardinal, Fixed, Mutable,
}

// traditionalRulers maps each sign to its classical domicile ruler.
// Scorpio, Aquarius and Pisces keep their pre-modern rulers here;
// see ModernRuler for the outer-planet attributions.
var traditionalRulers = [12]string{
	"Mars", "Venus", "Mercury", "Moon", "Sun", "Mercury",
	"Venus", "Mars", "Jupiter", "Saturn", "Saturn", "Jupiter",
}

// modernRulers substitutes the outer planets for Scorpio, Aquarius
// and Pisces (and keeps the classical rulers everywhere else).
var modernRulers = [12]string{
	"Mars", "Venus", "Mercury", "Moon", "Sun", "Mercury",
	"Venus", "Pluto", "Jupiter", "Saturn", "Uranus", "Neptune",
}

// String returns the English sign name.
func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return "Unknown"
	}
	return signNames[s]
}

// Element returns the sign's classical element.
func (s Sign) Element() Element { return signElements[s] }

// Modality returns the sign's classical modality.
func (s Sign) Modality() Modality { return signModalities[s] }

// TraditionalRuler returns the classical domicile ruler of the sign.
func (s Sign) TraditionalRuler() string { return traditionalRulers[s] }

// ModernRuler returns the modern domicile ruler of the sign.
func (s Sign) ModernRuler() string { return modernRulers[s] }

// Opposite returns the sign 180 degrees away.
func (s Sign) Opposite() Sign { return (s + 6) % 12 }

// Offset returns the sign n places later in zodiacal order, wrapping
// past Pisces back to Aries. Negative offsets walk backwards.
func (s Sign) Offset(n int) Sign {
	i := (int(s) + n) % 12
	if i < 0 {
		i += 12
	}
	return Sign(i)
}

// SignByName resolves an English sign name. The second return value is
// false when the name does not match any sign.
func SignByName(name string) (Sign, bool) {
	for i, n := range signNames {
		if n == name {
			return Sign(i), true
		}
	}
	return Aries, false
}

// AllSigns returns the twelve signs in zodiacal order.
func AllSigns() []Sign {
	signs := make([]Sign, 12)
	for i := range signs {
		signs[i] = Sign(i)
	}
	return signs
}
