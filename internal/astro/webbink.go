package astro

import (
	"fmt"
	"math"
)

// ChandrasekharMass bounds the validity of the Webbink fit, in solar masses.
const ChandrasekharMass = 1.44

// Radius returns the radius in cm of a white dwarf of mass mwd (solar
// units) using Webbink's fit (Pringle & Webbink 1975, MN 172, 493).
// The fit is not the most recent mass-radius relation, and the true
// relation depends on composition and core temperature, but it is good
// enough for boundary layer estimates.
func Radius(mwd float64) (float64, error) {
	if mwd <= 0 || mwd >= ChandrasekharMass {
		return 0, fmt.Errorf("%w: %g", ErrMassRange, mwd)
	}
	x := ChandrasekharMass/mwd - 1.0
	return 7.7e8 * math.Pow(x, 0.3767-0.00605*math.Log10(x)), nil
}

// LogG returns log10 of the surface gravity (cgs) implied by the
// Webbink radius.
func LogG(mwd float64) (float64, error) {
	rwd, err := Radius(mwd)
	if err != nil {
		return 0, err
	}
	c := Defaults()
	return math.Log10(c.G * mwd * c.Msol / (rwd * rwd)), nil
}
