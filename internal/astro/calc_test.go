package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShockTemperature(t *testing.T) {
	calc := New()

	tK, err := calc.ShockTemperature(1.35, Kelvin)
	require.NoError(t, err)
	assert.InEpsilon(t, 9.4532242392e8, tK, 1e-9)

	tKeV, err := calc.ShockTemperature(1.35, KeV)
	require.NoError(t, err)
	assert.InEpsilon(t, tK*calc.Const.KToKeV, tKeV, 1e-12)
}

func TestShockTemperatureUnknownUnit(t *testing.T) {
	calc := New()
	_, err := calc.ShockTemperature(1.0, Unit("bogus"))
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{"K": Kelvin, "k": Kelvin, "keV": KeV, "KEV": KeV} {
		got, err := ParseUnit(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseUnit("erg")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestKeplerVelocity(t *testing.T) {
	calc := New()
	for _, mwd := range []float64{0.5, 0.7, 1.0, 1.35} {
		rwd, err := calc.Radius(mwd)
		require.NoError(t, err)

		v, err := calc.KeplerVelocity(mwd)
		require.NoError(t, err)
		assert.InEpsilon(t, math.Sqrt(calc.Const.G*mwd*calc.Const.Msol/rwd), v, 1e-12)
	}
}

func TestRadiationEnergyDensity(t *testing.T) {
	calc := New()
	const lrad = 1e36

	for _, frad := range []float64{0, 1.5, -0.2} {
		_, err := calc.RadiationEnergyDensity(lrad, 1.0, frad)
		assert.ErrorIs(t, err, ErrFractionRange, "frad=%g", frad)
	}

	u, err := calc.RadiationEnergyDensity(lrad, 1.0, 0.5)
	require.NoError(t, err)
	assert.Positive(t, u)

	// doubling the covering fraction halves the density
	u2, err := calc.RadiationEnergyDensity(lrad, 1.0, 1.0)
	require.NoError(t, err)
	assert.InEpsilon(t, u/2, u2, 1e-12)
}

func TestAccretionFraction(t *testing.T) {
	calc := New()

	thick, err := calc.AccretionFraction(1.0, 1e-9, Thick)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0044181998e-3, thick.Fraction, 1e-9)
	assert.Positive(t, thick.ScaleHeight)

	thin, err := calc.AccretionFraction(1.0, 1e-9, Thin)
	require.NoError(t, err)
	assert.InEpsilon(t, 8.8816991951e-2, thin.Fraction, 1e-9)
	assert.InEpsilon(t, 5.0107910907e7, thin.ScaleHeight, 1e-9)

	_, err = calc.AccretionFraction(1.0, 1e-9, Regime("unknown"))
	assert.ErrorIs(t, err, ErrUnknownRegime)
}

func TestAccretionFractionHeightNorm(t *testing.T) {
	unit := New()
	quarter := New()
	quarter.HeightNorm = 4.0

	a, err := unit.AccretionFraction(1.0, 1e-9, Thin)
	require.NoError(t, err)
	b, err := quarter.AccretionFraction(1.0, 1e-9, Thin)
	require.NoError(t, err)

	assert.InEpsilon(t, a.Fraction/4, b.Fraction, 1e-12)
	assert.Equal(t, a.ScaleHeight, b.ScaleHeight)
}

func TestElectronDensityScaling(t *testing.T) {
	calc := New()

	n, err := calc.ElectronDensity(1.0, 1e-9, 0.1, 10)
	require.NoError(t, err)
	assert.Positive(t, n)

	nFacc, err := calc.ElectronDensity(1.0, 1e-9, 0.2, 10)
	require.NoError(t, err)
	assert.InEpsilon(t, n/2, nFacc, 1e-12)

	nVacc, err := calc.ElectronDensity(1.0, 1e-9, 0.1, 20)
	require.NoError(t, err)
	assert.InEpsilon(t, n/2, nVacc, 1e-12)

	for _, facc := range []float64{0, -0.5, 1.01} {
		_, err := calc.ElectronDensity(1.0, 1e-9, facc, 10)
		assert.ErrorIs(t, err, ErrFractionRange, "facc=%g", facc)
	}
	_, err = calc.ElectronDensity(1.0, 1e-9, 0.1, 0)
	assert.ErrorIs(t, err, ErrNonPositive)
}

func TestCoolingRatioScaling(t *testing.T) {
	calc := New()
	base := calc.CoolingRatio(1e17, 1e7, 1e8)

	assert.InEpsilon(t, 2*base, calc.CoolingRatio(2e17, 1e7, 1e8), 1e-12)
	assert.InEpsilon(t, base/2, calc.CoolingRatio(1e17, 2e7, 1e8), 1e-12)
	assert.InEpsilon(t, base/2, calc.CoolingRatio(1e17, 1e7, 4e8), 1e-12)
}

func TestLuminosities(t *testing.T) {
	calc := New()

	lbb, err := calc.BlackbodyLuminosity(1.35, 395000)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.2863495364e36, lbb, 1e-9)

	lacc, err := calc.AccretionLuminosity(1.2, 2e-9)
	require.NoError(t, err)
	assert.InEpsilon(t, 4.8665746213e34, lacc, 1e-9)

	_, err = calc.BlackbodyLuminosity(1.0, 0)
	assert.ErrorIs(t, err, ErrNonPositive)
	_, err = calc.AccretionLuminosity(1.0, 0)
	assert.ErrorIs(t, err, ErrNonPositive)
}

func TestConstantInjection(t *testing.T) {
	asCoded := New()
	corrected := New()
	corrected.Const = Physical()

	assert.Equal(t, 2e10, asCoded.Const.C)
	assert.Equal(t, 2.998e10, corrected.Const.C)

	// faster light spreads the same luminosity thinner
	u1, err := asCoded.RadiationEnergyDensity(1e36, 1.0, 1.0)
	require.NoError(t, err)
	u2, err := corrected.RadiationEnergyDensity(1e36, 1.0, 1.0)
	require.NoError(t, err)
	assert.Less(t, u2, u1)
	assert.InEpsilon(t, u1*2e10/2.998e10, u2, 1e-12)
}
