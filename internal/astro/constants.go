package astro

// Constants bundles the CGS physical constants the formulas depend on.
// Calculations capture a Constants value at construction rather than
// reading package globals, so tests can run against alternate sets.
type Constants struct {
	Msol     float64 // solar mass, g
	Mu       float64 // mean molecular weight
	MH       float64 // hydrogen mass, g
	G        float64 // gravitational constant
	Kb       float64 // Boltzmann constant, erg/K
	KToKeV   float64 // Kelvin to keV
	C        float64 // speed of light, cm/s
	MdotToGS float64 // solar masses/yr to g/s
	SigmaSB  float64 // Stefan-Boltzmann constant, erg/cm^2/s/K^4
}

// Defaults returns the constant set the historical runs were computed
// with. C is 2e10 cm/s there rather than the physical 2.998e10; it is
// kept verbatim so results stay comparable with the documented runs.
// Use [Physical] for the corrected value.
func Defaults() Constants {
	return Constants{
		Msol:     2e33,
		Mu:       0.63,
		MH:       1.67e-24,
		G:        6.67e-8,
		Kb:       1.38e-16,
		KToKeV:   8.6173e-8,
		C:        2e10,
		MdotToGS: 6.34e25,
		SigmaSB:  5.67e-5,
	}
}

// Physical is Defaults with the true speed of light.
func Physical() Constants {
	c := Defaults()
	c.C = 2.998e10
	return c
}
