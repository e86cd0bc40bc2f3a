/*
curve.go - Interpolated nodal curves

PURPOSE:
  Market data fixtures are expressed as nodal curves: a set of
  (year fraction, value) nodes with linear interpolation between nodes
  and flat extrapolation beyond them. The same shape carries zero rates,
  SABR parameters and shifts; the metadata says which.

DESIGN PRINCIPLES:
  1. Precision: node values are decimal.Decimal, never float64
  2. Immutability: a built curve is never modified
  3. Fail fast: node arrays are validated at construction

USAGE:
  curve, err := market.NewCurve(meta,
      []float64{0.0, 0.5, 1.0},
      decimals("0.0150", "0.0125", "0.0150"))
  rate := curve.YValue(0.75)

SEE ALSO:
  - sabr.go: SABR parameter curve sets
  - rates.go: Curves grouped by currency and index
*/
package market

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurveName identifies a curve, such as "EUR-DSCON".
type CurveName string

func (n CurveName) String() string { return string(n) }

// ValueType describes what a curve axis holds.
type ValueType string

const (
	ValueYearFraction ValueType = "YearFraction"
	ValueZeroRate     ValueType = "ZeroRate"
	ValueSabrAlpha    ValueType = "SabrAlpha"
	ValueSabrBeta     ValueType = "SabrBeta"
	ValueSabrRho      ValueType = "SabrRho"
	ValueSabrNu       ValueType = "SabrNu"
	ValueShift        ValueType = "Shift"
)

// DayCountActActISDA is the day count used by the standard fixtures.
const DayCountActActISDA = "Act/Act ISDA"

// CurveMetadata describes a curve's name, axes and day count.
type CurveMetadata struct {
	Name       CurveName `json:"name"`
	XValueType ValueType `json:"xValueType"`
	YValueType ValueType `json:"yValueType"`
	DayCount   string    `json:"dayCount,omitempty"`
}

// ZeroRatesMetadata returns metadata for a zero-rate curve in the
// standard fixture convention.
func ZeroRatesMetadata(name CurveName) CurveMetadata {
	return CurveMetadata{
		Name:       name,
		XValueType: ValueYearFraction,
		YValueType: ValueZeroRate,
		DayCount:   DayCountActActISDA,
	}
}

// SabrParameterMetadata returns metadata for a SABR parameter curve
// keyed by expiry.
func SabrParameterMetadata(name CurveName, param ValueType) CurveMetadata {
	return CurveMetadata{
		Name:       name,
		XValueType: ValueYearFraction,
		YValueType: param,
		DayCount:   DayCountActActISDA,
	}
}

// CurveNode is a single (x, y) point of a curve.
type CurveNode struct {
	X float64         `json:"x"`
	Y decimal.Decimal `json:"y"`
}

// Curve is an immutable nodal curve with linear interpolation between
// nodes and flat extrapolation before the first and after the last node.
type Curve struct {
	meta CurveMetadata
	xs   []float64
	ys   []decimal.Decimal
}

// NewCurve builds a curve from parallel node arrays.
// At least two nodes are required and x values must strictly increase.
func NewCurve(meta CurveMetadata, xs []float64, ys []decimal.Decimal) (*Curve, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w %q: %d x values but %d y values", ErrInvalidCurve, meta.Name, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w %q: at least two nodes required", ErrInvalidCurve, meta.Name)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w %q: x values must be strictly increasing at index %d", ErrInvalidCurve, meta.Name, i)
		}
	}
	c := &Curve{
		meta: meta,
		xs:   append([]float64(nil), xs...),
		ys:   append([]decimal.Decimal(nil), ys...),
	}
	return c, nil
}

// Metadata returns the curve metadata.
func (c *Curve) Metadata() CurveMetadata { return c.meta }

// Name returns the curve name.
func (c *Curve) Name() CurveName { return c.meta.Name }

// ParameterCount returns the number of nodes.
func (c *Curve) ParameterCount() int { return len(c.xs) }

// Nodes returns a copy of the curve nodes in x order.
func (c *Curve) Nodes() []CurveNode {
	nodes := make([]CurveNode, len(c.xs))
	for i := range c.xs {
		nodes[i] = CurveNode{X: c.xs[i], Y: c.ys[i]}
	}
	return nodes
}

// YValue returns the curve value at x: linear between nodes, flat
// beyond the outermost nodes.
func (c *Curve) YValue(x float64) decimal.Decimal {
	if x <= c.xs[0] {
		return c.ys[0]
	}
	last := len(c.xs) - 1
	if x >= c.xs[last] {
		return c.ys[last]
	}
	// find the bracketing segment
	hi := 1
	for c.xs[hi] < x {
		hi++
	}
	lo := hi - 1
	weight := decimal.NewFromFloat((x - c.xs[lo]) / (c.xs[hi] - c.xs[lo]))
	return c.ys[lo].Add(c.ys[hi].Sub(c.ys[lo]).Mul(weight))
}

// MustParseDecimals converts decimal strings into values for curve
// construction. It panics on malformed input and is intended for
// fixtures and tests.
func MustParseDecimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			panic(fmt.Sprintf("bad decimal %q: %v", v, err))
		}
		out[i] = d
	}
	return out
}
