/*
rates.go - Rates provider and index definitions

PURPOSE:
  Groups zero-rate curves by currency (discounting) and by ibor index
  (forward projection) for a single valuation date. An ibor index ties a
  currency to a tenor, and the tenor is a schedule.Frequency, so index
  periods participate in the same events-per-year and date arithmetic as
  everything else.

USAGE:
  rp, err := market.NewRatesProvider(valuation,
      map[market.Currency]*market.Curve{market.EUR: dsc},
      map[market.IborIndex]*market.Curve{market.EurEuribor3M: fwd})
  rate, err := rp.ZeroRate(market.EUR, 2.5)

SEE ALSO:
  - curve.go: The curve type
  - fixtures.go: Canonical EUR provider
*/
package market

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/todatamining/strata/schedule"
)

// Currency is a 3-letter ISO 4217 currency code.
type Currency string

// Common currencies used by the standard fixtures.
const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
)

func (c Currency) String() string { return string(c) }

// IborIndex identifies an interbank offered rate by currency and tenor.
// The tenor is a periodic frequency, typically P1M, P3M or P6M.
type IborIndex struct {
	Name     string
	Currency Currency
	Tenor    schedule.Frequency
}

// Common indices used by the standard fixtures.
var (
	EurEuribor3M = IborIndex{Name: "EUR-EURIBOR-3M", Currency: EUR, Tenor: schedule.P3M}
	EurEuribor6M = IborIndex{Name: "EUR-EURIBOR-6M", Currency: EUR, Tenor: schedule.P6M}
	UsdLibor3M   = IborIndex{Name: "USD-LIBOR-3M", Currency: USD, Tenor: schedule.P3M}
)

func (ix IborIndex) String() string { return ix.Name }

// RatesProvider is an immutable set of curves for one valuation date.
type RatesProvider struct {
	valuation time.Time
	discount  map[Currency]*Curve
	forward   map[IborIndex]*Curve
}

// NewRatesProvider builds a provider from discount curves by currency
// and forward curves by index. The maps are copied.
func NewRatesProvider(valuation time.Time, discount map[Currency]*Curve, forward map[IborIndex]*Curve) (*RatesProvider, error) {
	if valuation.IsZero() {
		return nil, fmt.Errorf("%w: valuation date required", ErrInvalidCurve)
	}
	rp := &RatesProvider{
		valuation: valuation,
		discount:  make(map[Currency]*Curve, len(discount)),
		forward:   make(map[IborIndex]*Curve, len(forward)),
	}
	for ccy, c := range discount {
		if c == nil {
			return nil, fmt.Errorf("%w: nil discount curve for %s", ErrInvalidCurve, ccy)
		}
		rp.discount[ccy] = c
	}
	for ix, c := range forward {
		if c == nil {
			return nil, fmt.Errorf("%w: nil forward curve for %s", ErrInvalidCurve, ix)
		}
		rp.forward[ix] = c
	}
	return rp, nil
}

// ValuationDate returns the provider's valuation date.
func (rp *RatesProvider) ValuationDate() time.Time { return rp.valuation }

// DiscountCurve returns the discount curve for a currency.
func (rp *RatesProvider) DiscountCurve(ccy Currency) (*Curve, error) {
	c, ok := rp.discount[ccy]
	if !ok {
		return nil, fmt.Errorf("%w: no discount curve for %s", ErrCurveNotFound, ccy)
	}
	return c, nil
}

// ForwardCurve returns the forward curve for an ibor index.
func (rp *RatesProvider) ForwardCurve(ix IborIndex) (*Curve, error) {
	c, ok := rp.forward[ix]
	if !ok {
		return nil, fmt.Errorf("%w: no forward curve for %s", ErrCurveNotFound, ix)
	}
	return c, nil
}

// ZeroRate returns the discount zero rate for a currency at the given
// year fraction from the valuation date.
func (rp *RatesProvider) ZeroRate(ccy Currency, yearFraction float64) (decimal.Decimal, error) {
	c, err := rp.DiscountCurve(ccy)
	if err != nil {
		return decimal.Zero, err
	}
	return c.YValue(yearFraction), nil
}

// ForwardRate returns the projected rate for an ibor index at the given
// year fraction from the valuation date.
func (rp *RatesProvider) ForwardRate(ix IborIndex, yearFraction float64) (decimal.Decimal, error) {
	c, err := rp.ForwardCurve(ix)
	if err != nil {
		return decimal.Zero, err
	}
	return c.YValue(yearFraction), nil
}
