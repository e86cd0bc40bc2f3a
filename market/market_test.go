package market_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todatamining/strata/market"
	"github.com/todatamining/strata/schedule"
)

// =============================================================================
// MEASURE NAME VALIDATION
// =============================================================================

func TestMeasureOf_NamePattern(t *testing.T) {
	for _, bad := range []string{"", "Foo Bar", "Foo_Bar", "FooBar!"} {
		t.Run("invalid/"+bad, func(t *testing.T) {
			_, err := market.MeasureOf(bad)
			assert.ErrorIs(t, err, market.ErrInvalidMeasure)
		})
	}
	for _, good := range []string{"FooBar", "Foo-Bar", "123", "FooBar123"} {
		t.Run("valid/"+good, func(t *testing.T) {
			m, err := market.MeasureOf(good)
			require.NoError(t, err)
			assert.Equal(t, good, m.String())
		})
	}
}

// =============================================================================
// CURVES
// =============================================================================

func TestNewCurve_Validation(t *testing.T) {
	meta := market.ZeroRatesMetadata("Test")

	_, err := market.NewCurve(meta, []float64{0, 1}, market.MustParseDecimals("0.01"))
	assert.ErrorIs(t, err, market.ErrInvalidCurve, "mismatched lengths")

	_, err = market.NewCurve(meta, []float64{0}, market.MustParseDecimals("0.01"))
	assert.ErrorIs(t, err, market.ErrInvalidCurve, "single node")

	_, err = market.NewCurve(meta, []float64{0, 1, 1}, market.MustParseDecimals("0.01", "0.02", "0.03"))
	assert.ErrorIs(t, err, market.ErrInvalidCurve, "non-increasing x")
}

func TestCurve_YValue_Interpolation(t *testing.T) {
	curve, err := market.NewCurve(market.ZeroRatesMetadata("Test"),
		[]float64{0.0, 1.0, 2.0},
		market.MustParseDecimals("0.0100", "0.0200", "0.0300"))
	require.NoError(t, err)

	// on a node
	assert.Equal(t, "0.02", curve.YValue(1.0).String())
	// between nodes: linear
	assert.True(t, curve.YValue(1.5).Equal(market.MustParseDecimals("0.025")[0]))
	// flat extrapolation both sides
	assert.Equal(t, "0.01", curve.YValue(-5.0).String())
	assert.Equal(t, "0.03", curve.YValue(50.0).String())

	assert.Equal(t, 3, curve.ParameterCount())
	assert.Len(t, curve.Nodes(), 3)
}

// =============================================================================
// RATES PROVIDER
// =============================================================================

func TestRatesProvider_FixtureLookups(t *testing.T) {
	valuation := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	rp := market.EurRatesProvider(valuation)

	assert.Equal(t, valuation, rp.ValuationDate())

	// Discount lookups hit the fixture numbers
	r, err := rp.ZeroRate(market.EUR, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "0.0125", r.String())

	// Forward projection for EURIBOR-3M
	f, err := rp.ForwardRate(market.EurEuribor3M, 10.0)
	require.NoError(t, err)
	assert.Equal(t, "0.021", f.String())

	// Missing keys are explicit failures
	_, err = rp.ZeroRate(market.USD, 1.0)
	assert.ErrorIs(t, err, market.ErrCurveNotFound)
	_, err = rp.ForwardRate(market.UsdLibor3M, 1.0)
	assert.ErrorIs(t, err, market.ErrCurveNotFound)
}

func TestIborIndex_TenorIsAFrequency(t *testing.T) {
	// The index tenor participates in frequency logic directly
	n, err := market.EurEuribor3M.Tenor.EventsPerYear()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.True(t, market.EurEuribor6M.Tenor.Equal(schedule.P6M))
}

// =============================================================================
// SABR PARAMETERS
// =============================================================================

func TestSabrParameters_Fixtures(t *testing.T) {
	flat := market.FlatSabrParameters()

	assert.Equal(t, "0.05", flat.Alpha(2.0).String())
	assert.Equal(t, "0.5", flat.Beta(50.0).String())
	assert.Equal(t, "-0.25", flat.Rho(0.0).String())
	assert.Equal(t, "0.5", flat.Nu(7.5).String())
	assert.True(t, flat.Shift(1.0).IsZero(), "no shift curve on the flat set")
	assert.Equal(t, 27, flat.ParameterCount())

	shifted := market.ShiftedSabrParameters()
	assert.Equal(t, "0.02", shifted.Shift(5.0).String())
	assert.Equal(t, 31, shifted.ParameterCount())
}

func TestNewSabrParameters_RequiresAllCurves(t *testing.T) {
	alpha, err := market.NewCurve(
		market.SabrParameterMetadata("A", market.ValueSabrAlpha),
		[]float64{0, 1}, market.MustParseDecimals("0.05", "0.05"))
	require.NoError(t, err)

	_, err = market.NewSabrParameters(alpha, nil, nil, nil)
	assert.ErrorIs(t, err, market.ErrInvalidCurve)
}
