/*
sabr.go - SABR parameter curve sets

PURPOSE:
  Holds the four SABR model parameters (alpha, beta, rho, nu) as curves
  keyed by expiry, plus an optional shift curve for the shifted-lognormal
  variant. This package carries the DATA shapes only; no pricing or
  calibration algorithm lives here.

SEE ALSO:
  - curve.go: The underlying nodal curve type
  - fixtures.go: Canonical EUR parameter sets
*/
package market

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SabrParameters groups the SABR model parameter curves.
// The shift curve is nil for the plain lognormal variant.
type SabrParameters struct {
	alpha *Curve
	beta  *Curve
	rho   *Curve
	nu    *Curve
	shift *Curve
}

// NewSabrParameters builds a parameter set without a shift curve.
func NewSabrParameters(alpha, beta, rho, nu *Curve) (*SabrParameters, error) {
	return NewShiftedSabrParameters(alpha, beta, rho, nu, nil)
}

// NewShiftedSabrParameters builds a parameter set with an optional
// shift curve. All four parameter curves are required.
func NewShiftedSabrParameters(alpha, beta, rho, nu, shift *Curve) (*SabrParameters, error) {
	for name, c := range map[string]*Curve{"alpha": alpha, "beta": beta, "rho": rho, "nu": nu} {
		if c == nil {
			return nil, fmt.Errorf("%w: missing SABR %s curve", ErrInvalidCurve, name)
		}
	}
	return &SabrParameters{alpha: alpha, beta: beta, rho: rho, nu: nu, shift: shift}, nil
}

// Alpha returns the alpha parameter at the given expiry.
func (s *SabrParameters) Alpha(expiry float64) decimal.Decimal { return s.alpha.YValue(expiry) }

// Beta returns the beta parameter at the given expiry.
func (s *SabrParameters) Beta(expiry float64) decimal.Decimal { return s.beta.YValue(expiry) }

// Rho returns the rho parameter at the given expiry.
func (s *SabrParameters) Rho(expiry float64) decimal.Decimal { return s.rho.YValue(expiry) }

// Nu returns the nu parameter at the given expiry.
func (s *SabrParameters) Nu(expiry float64) decimal.Decimal { return s.nu.YValue(expiry) }

// Shift returns the shift at the given expiry, zero when no shift
// curve is present.
func (s *SabrParameters) Shift(expiry float64) decimal.Decimal {
	if s.shift == nil {
		return decimal.Zero
	}
	return s.shift.YValue(expiry)
}

// ParameterCount returns the total node count across all curves.
func (s *SabrParameters) ParameterCount() int {
	n := s.alpha.ParameterCount() + s.beta.ParameterCount() + s.rho.ParameterCount() + s.nu.ParameterCount()
	if s.shift != nil {
		n += s.shift.ParameterCount()
	}
	return n
}

// RawOptionData is a grid of observed option values by expiry and strike,
// the input to volatility calibration.
type RawOptionData struct {
	Expiries []float64
	Strikes  []decimal.Decimal
	// Data is indexed [expiry][strike].
	Data [][]decimal.Decimal
}

// VolatilityCalibrator turns raw option data into a SABR parameter set.
// Implementations live outside this module.
type VolatilityCalibrator interface {
	Calibrate(ctx context.Context, valuation time.Time, data RawOptionData, rates *RatesProvider) (*SabrParameters, error)
}
