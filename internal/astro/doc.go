// Package astro provides the closed-form boundary layer physics for
// accreting white dwarfs.
//
// All formulas are pure scalar evaluations in CGS units, exposed as
// methods on [Calc]:
//
//   - [Calc.ShockTemperature]: post-shock gas temperature
//   - [Calc.KeplerVelocity]: innermost Keplerian orbital velocity
//   - [Calc.RadiationEnergyDensity]: seed photon energy density
//   - [Calc.AccretionFraction]: accretion footprint from the disk scale height
//   - [Calc.ElectronDensity]: boundary layer electron number density
//   - [Calc.CoolingRatio]: bremsstrahlung-to-Compton timescale ratio
//
// A Calc captures one [Constants] set and one mass-radius relation, so
// alternate constants (for example the corrected speed of light from
// [Physical]) can be injected without touching package state:
//
//	calc := astro.New()
//	calc.Const = astro.Physical()
//	t, err := calc.ShockTemperature(1.0, astro.Kelvin)
package astro
