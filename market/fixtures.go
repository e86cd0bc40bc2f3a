/*
fixtures.go - Canonical EUR market data set

PURPOSE:
  A deterministic EUR data set for tests and demos: a discount curve, a
  EURIBOR-3M forward curve, and flat and shifted SABR parameter sets.
  The numbers are fixed so downstream tests can assert exact values.

USAGE:
  rp := market.EurRatesProvider(valuation)
  sabr := market.FlatSabrParameters()

SEE ALSO:
  - store/sqlite: Persists curve sets like these
  - api/scenarios: Loads this set as a demo scenario
*/
package market

import (
	"time"
)

// Fixture curve names.
const (
	EurDiscountCurveName CurveName = "EUR-DSCON"
	EurForward3MName     CurveName = "EUR-FWD3"
)

func mustCurve(c *Curve, err error) *Curve {
	if err != nil {
		panic(err)
	}
	return c
}

// EurDiscountCurve returns the fixture EUR discounting curve.
func EurDiscountCurve() *Curve {
	return mustCurve(NewCurve(
		ZeroRatesMetadata(EurDiscountCurveName),
		[]float64{0.0, 0.5, 1.0, 2.0, 5.0, 10.0},
		MustParseDecimals("0.0150", "0.0125", "0.0150", "0.0175", "0.0150", "0.0150"),
	))
}

// EurForward3MCurve returns the fixture EURIBOR-3M projection curve.
func EurForward3MCurve() *Curve {
	return mustCurve(NewCurve(
		ZeroRatesMetadata(EurForward3MName),
		[]float64{0.0, 0.5, 1.0, 2.0, 3.0, 4.0, 5.0, 10.0},
		MustParseDecimals("0.0150", "0.0125", "0.0150", "0.0175", "0.0175", "0.0190", "0.0200", "0.0210"),
	))
}

// EurRatesProvider returns the fixture rates provider for the given
// valuation date: EUR discounting plus EURIBOR-3M projection.
func EurRatesProvider(valuation time.Time) *RatesProvider {
	rp, err := NewRatesProvider(valuation,
		map[Currency]*Curve{EUR: EurDiscountCurve()},
		map[IborIndex]*Curve{EurEuribor3M: EurForward3MCurve()},
	)
	if err != nil {
		panic(err)
	}
	return rp
}

// FlatSabrParameters returns the fixture SABR set with flat parameter
// term structures and no shift.
func FlatSabrParameters() *SabrParameters {
	alpha := mustCurve(NewCurve(
		SabrParameterMetadata("Test-SABR-Alpha", ValueSabrAlpha),
		[]float64{0.0, 0.5, 1.0, 2.0, 5.0, 10.0},
		MustParseDecimals("0.05", "0.05", "0.05", "0.05", "0.05", "0.05"),
	))
	beta := mustCurve(NewCurve(
		SabrParameterMetadata("Test-SABR-Beta", ValueSabrBeta),
		[]float64{0.0, 0.5, 1.0, 2.0, 5.0, 10.0, 100.0},
		MustParseDecimals("0.5", "0.5", "0.5", "0.5", "0.5", "0.5", "0.5"),
	))
	rho := mustCurve(NewCurve(
		SabrParameterMetadata("Test-SABR-Rho", ValueSabrRho),
		[]float64{0.0, 0.5, 1.0, 2.0, 5.0, 10.0, 100.0},
		MustParseDecimals("-0.25", "-0.25", "-0.25", "-0.25", "-0.25", "-0.25", "-0.25"),
	))
	nu := mustCurve(NewCurve(
		SabrParameterMetadata("Test-SABR-Nu", ValueSabrNu),
		[]float64{0.0, 0.5, 1.0, 2.0, 5.0, 10.0, 100.0},
		MustParseDecimals("0.5", "0.5", "0.5", "0.5", "0.5", "0.5", "0.5"),
	))
	params, err := NewSabrParameters(alpha, beta, rho, nu)
	if err != nil {
		panic(err)
	}
	return params
}

// ShiftedSabrParameters returns the fixture SABR set with a shift term
// structure for the shifted-lognormal variant.
func ShiftedSabrParameters() *SabrParameters {
	flat := FlatSabrParameters()
	shift := mustCurve(NewCurve(
		CurveMetadata{Name: "Test-SABR-Shift", XValueType: ValueYearFraction, YValueType: ValueShift},
		[]float64{0.0, 5.0, 10.0, 100.0},
		MustParseDecimals("0.01", "0.02", "0.012", "0.01"),
	))
	params, err := NewShiftedSabrParameters(flat.alpha, flat.beta, flat.rho, flat.nu, shift)
	if err != nil {
		panic(err)
	}
	return params
}
