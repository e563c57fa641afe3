package astro

import "errors"

// Domain errors for formula inputs.
var (
	// ErrMassRange indicates a white dwarf mass outside (0, 1.44) Msol.
	ErrMassRange = errors.New("astro: white dwarf mass must be in (0, 1.44) Msol")

	// ErrFractionRange indicates a surface fraction outside (0, 1].
	ErrFractionRange = errors.New("astro: surface fraction must be in (0, 1]")

	// ErrUnknownUnit indicates a temperature unit other than K or keV.
	ErrUnknownUnit = errors.New("astro: temperature unit must be K or keV")

	// ErrUnknownRegime indicates a boundary layer regime other than thick or thin.
	ErrUnknownRegime = errors.New("astro: boundary layer regime must be thick or thin")

	// ErrNonPositive indicates a rate, speed or temperature that must be positive.
	ErrNonPositive = errors.New("astro: value must be positive")
)
