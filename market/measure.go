/*
measure.go - Validated measure names

PURPOSE:
  A measure identifies a calculated value, such as "PresentValue" or
  "ParRate". Names are restricted so they stay usable as column headers
  and report keys across every output format.

NAMING RULE:
  Letters, digits and hyphen only, non-empty. "ParRate", "Par-Rate" and
  "123" are valid; "Par Rate", "Par_Rate" and "ParRate!" are not.
*/
package market

import (
	"fmt"
	"regexp"
)

// Measure identifies a calculation result by a validated name.
type Measure string

var measurePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// MeasureOf validates a measure name. Names must be non-empty and
// contain only letters, digits and hyphens.
func MeasureOf(name string) (Measure, error) {
	if !measurePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q (names must contain only letters, digits and '-')", ErrInvalidMeasure, name)
	}
	return Measure(name), nil
}

func (m Measure) String() string { return string(m) }
