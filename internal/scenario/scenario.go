// Package scenario chains the boundary layer formulas into a single
// cooling-regime evaluation: footprint, electron density, seed photon
// field, shock temperature, cooling ratio.
package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avparker/wdcool/internal/astro"
)

// ErrUnknownSource indicates a seed photon source other than blackbody
// or accretion.
var ErrUnknownSource = errors.New("scenario: photon source must be blackbody or accretion")

// Source names the photon field the boundary layer electrons cool
// against.
type Source string

const (
	// Blackbody treats the white dwarf photosphere, radiating at Teff
	// over the whole surface, as the seed photon source.
	Blackbody Source = "blackbody"
	// Accretion treats the optically thick boundary layer itself,
	// powered by MdotThick, as the seed photon source.
	Accretion Source = "accretion"
)

// ParseSource maps a user-supplied source string to a Source, case-insensitively.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(s) {
	case "blackbody", "bb":
		return Blackbody, nil
	case "accretion", "acc":
		return Accretion, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
}

// Scenario is one evaluation of the cooling pipeline: a white dwarf, an
// accretion flow through the boundary layer, and a candidate seed
// photon source.
type Scenario struct {
	Name      string
	MWD       float64 // white dwarf mass, solar units
	Mdot      float64 // boundary layer accretion rate, Msol/yr
	MdotThick float64 // rate feeding the optically thick layer, Msol/yr
	Vacc      float64 // radial infall speed through the layer, km/s
	Regime    astro.Regime
	Source    Source
	Teff      float64 // photosphere temperature for the blackbody source, K

	// Frad is the covering fraction of the photon source. Zero means
	// pick the source's natural default: the whole surface for a
	// blackbody photosphere, the thick-regime footprint at MdotThick
	// for an accretion-powered layer.
	Frad float64

	// DensityScale multiplies the electron density, for exploring
	// shielding or clumping factors. Zero means 1.
	DensityScale float64
}

// Result carries every intermediate of the pipeline so callers can
// report or export them without re-deriving.
type Result struct {
	RWD         float64 // white dwarf radius, cm
	TShockK     float64 // post-shock temperature, K
	TShockKeV   float64 // post-shock temperature, keV
	VKep        float64 // innermost Keplerian velocity, cm/s
	Facc        float64 // accretion footprint fraction
	ScaleHeight float64 // disk scale height, cm
	Lrad        float64 // seed photon luminosity, erg/s
	Frad        float64 // covering fraction actually used
	Urad        float64 // radiation energy density, erg/cm^3
	Nebl        float64 // electron density, cm^-3
	Ratio       float64 // bremsstrahlung/Compton timescale ratio
}

// Dominant names the winning cooling channel.
func (r Result) Dominant() string {
	if r.Ratio > 1 {
		return "compton"
	}
	return "bremsstrahlung"
}

// Evaluate runs the cooling pipeline for one scenario. Intermediate
// diagnostics go to the logger at debug level; any input-validation
// failure aborts the whole evaluation.
func Evaluate(calc *astro.Calc, sc Scenario, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.Default()
	}

	fp, err := calc.AccretionFraction(sc.MWD, sc.Mdot, sc.Regime)
	if err != nil {
		return Result{}, err
	}
	log.Debug("accretion footprint",
		"scenario", sc.Name, "regime", string(sc.Regime),
		"scale_height_cm", fp.ScaleHeight, "facc", fp.Fraction)

	nebl, err := calc.ElectronDensity(sc.MWD, sc.Mdot, fp.Fraction, sc.Vacc)
	if err != nil {
		return Result{}, err
	}
	if sc.DensityScale != 0 {
		nebl *= sc.DensityScale
	}
	log.Debug("boundary layer electron density",
		"scenario", sc.Name, "nebl_cm3", nebl)

	lrad, frad, err := seedPhotons(calc, sc)
	if err != nil {
		return Result{}, err
	}

	urad, err := calc.RadiationEnergyDensity(lrad, sc.MWD, frad)
	if err != nil {
		return Result{}, err
	}

	tsK, err := calc.ShockTemperature(sc.MWD, astro.Kelvin)
	if err != nil {
		return Result{}, err
	}
	tsKeV, err := calc.ShockTemperature(sc.MWD, astro.KeV)
	if err != nil {
		return Result{}, err
	}
	vkep, err := calc.KeplerVelocity(sc.MWD)
	if err != nil {
		return Result{}, err
	}
	rwd, err := calc.Radius(sc.MWD)
	if err != nil {
		return Result{}, err
	}

	return Result{
		RWD:         rwd,
		TShockK:     tsK,
		TShockKeV:   tsKeV,
		VKep:        vkep,
		Facc:        fp.Fraction,
		ScaleHeight: fp.ScaleHeight,
		Lrad:        lrad,
		Frad:        frad,
		Urad:        urad,
		Nebl:        nebl,
		Ratio:       calc.CoolingRatio(nebl, urad, tsK),
	}, nil
}

// seedPhotons resolves the scenario's photon source to a luminosity and
// a covering fraction.
func seedPhotons(calc *astro.Calc, sc Scenario) (lrad, frad float64, err error) {
	switch sc.Source {
	case Blackbody:
		lrad, err = calc.BlackbodyLuminosity(sc.MWD, sc.Teff)
		if err != nil {
			return 0, 0, err
		}
		frad = sc.Frad
		if frad == 0 {
			frad = 1.0
		}
	case Accretion:
		lrad, err = calc.AccretionLuminosity(sc.MWD, sc.MdotThick)
		if err != nil {
			return 0, 0, err
		}
		frad = sc.Frad
		if frad == 0 {
			// The layer radiates over its own footprint.
			fp, ferr := calc.AccretionFraction(sc.MWD, sc.MdotThick, astro.Thick)
			if ferr != nil {
				return 0, 0, ferr
			}
			frad = fp.Fraction
		}
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownSource, string(sc.Source))
	}
	return lrad, frad, nil
}
