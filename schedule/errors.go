/*
errors.go - Error types for the schedule package

PURPOSE:
  All error types for frequency and period handling in one place.
  Callers match with errors.Is(); structured errors carry the offending
  input for diagnostics.

ERROR CATEGORIES:
  1. Invalid frequency - construction, parsing, events-per-year failures
  2. Date range - calendar arithmetic pushed a date outside the supported range

USAGE:
  f, err := schedule.Parse("P5M")
  _, err = f.EventsPerYear()
  if errors.Is(err, schedule.ErrInvalidFrequency) {
      // reject the input
  }

SEE ALSO:
  - frequency.go: Raises invalid-frequency errors
  - period.go: Raises date-range errors
*/
package schedule

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidFrequency is returned for any frequency that cannot be
	// constructed, parsed, or evaluated: zero/negative periods, periods over
	// the 1,000 year bound, unparsable text, and unresolvable events-per-year.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrDateRange is returned when period arithmetic produces a date whose
	// year falls outside the supported +/-999,999,999 range.
	ErrDateRange = errors.New("date outside supported range")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidFrequencyError reports why a frequency was rejected.
type InvalidFrequencyError struct {
	Input  string // the textual or formatted input, when available
	Reason string // e.g. "period must not be zero"
	Cause  error  // underlying parse failure, if any
}

func (e *InvalidFrequencyError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid frequency %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid frequency: %s", e.Reason)
}

func (e *InvalidFrequencyError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrInvalidFrequency
}

// Is lets the structured error match the sentinel even when it wraps an
// underlying cause.
func (e *InvalidFrequencyError) Is(target error) bool {
	return target == ErrInvalidFrequency
}

func invalidf(input, format string, args ...interface{}) error {
	return &InvalidFrequencyError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
