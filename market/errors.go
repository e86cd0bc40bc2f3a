package market

import "errors"

// Sentinel errors for market data handling. Match with errors.Is().
var (
	// ErrInvalidMeasure is returned for measure names that are empty or
	// contain characters outside letters, digits and hyphen.
	ErrInvalidMeasure = errors.New("invalid measure name")

	// ErrInvalidCurve is returned when curve construction fails: mismatched
	// node arrays, too few nodes, or non-increasing x values.
	ErrInvalidCurve = errors.New("invalid curve")

	// ErrCurveNotFound is returned when a rates provider has no curve for
	// the requested currency or index.
	ErrCurveNotFound = errors.New("curve not found")
)
