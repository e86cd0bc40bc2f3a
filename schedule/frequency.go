/*
frequency.go - Periodic frequency value type

PURPOSE:
  A periodic frequency describes how often a dated event recurs: every 3
  months, every 2 weeks, or "Term" for no subdivision of the entire term
  (zero-coupon). Schedule and curve builders consume it; this type only
  represents HOW OFTEN, never on which exact dates.

KEY RULES:
  - A frequency is any positive period of days, weeks, months or years.
  - Day counts divisible by 7 are always held as whole weeks.
  - Months and years are not auto-normalized: 12 months and 1 year are
    distinct representations until Normalized() is called. Standard date
    addition makes them behave identically.
  - Ordinary frequencies are capped at 1,000 years (12,000 months).
  - Term is represented as 10,000 years so that date addition still
    works, producing a date after the end of the term.

DESIGN PRINCIPLES:
  1. Immutability: instances are built by constructors and never change
  2. Fail fast: every invalid input is rejected at construction time
  3. Explicit results: constructors return (Frequency, error), never panic

USAGE:
  f, err := schedule.OfMonths(3)
  n, err := f.EventsPerYear()        // 4
  later, err := f.AddTo(settleDate)

  Common frequencies are provided as package-level values:
  schedule.P3M, schedule.P2W, schedule.Term, ...

SEE ALSO:
  - period.go: The underlying calendar triple
  - errors.go: Invalid-frequency error types
*/
package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	// maxYears is the artificial maximum length of an ordinary frequency.
	maxYears = 1_000
	// maxMonths is the same bound expressed in months.
	maxMonths = maxYears * 12
	// termYears is the artificial length of the 'Term' frequency.
	termYears = 10_000
)

// Frequency is a periodic frequency used by financial products that have
// a specific event every so often.
//
// The zero value is not a valid frequency; obtain instances from the
// constructors, Parse, or the package-level values. Equality follows
// the period only, so compare with Equal rather than ==.
type Frequency struct {
	period Period
	name   string
}

// =============================================================================
// COMMON FREQUENCIES
// =============================================================================

var (
	// P1D occurs every day. 364 events per year.
	P1D = must(OfDays(1))
	// P1W occurs every week. 52 events per year.
	P1W = must(OfWeeks(1))
	// P2W occurs every 2 weeks. 26 events per year.
	P2W = must(OfWeeks(2))
	// P4W occurs every 4 weeks (lunar). 13 events per year.
	P4W = must(OfWeeks(4))
	// P13W occurs every 13 weeks. 4 events per year.
	P13W = must(OfWeeks(13))
	// P26W occurs every 26 weeks. 2 events per year.
	P26W = must(OfWeeks(26))
	// P52W occurs every 52 weeks. 1 event per year.
	P52W = must(OfWeeks(52))
	// P1M occurs every month. 12 events per year.
	P1M = must(OfMonths(1))
	// P2M occurs every 2 months. 6 events per year.
	P2M = must(OfMonths(2))
	// P3M occurs every 3 months (quarterly). 4 events per year.
	P3M = must(OfMonths(3))
	// P4M occurs every 4 months. 3 events per year.
	P4M = must(OfMonths(4))
	// P6M occurs every 6 months (semi-annual). 2 events per year.
	P6M = must(OfMonths(6))
	// P12M occurs every 12 months. 1 event per year.
	P12M = must(OfMonths(12))

	// Term is the frequency matching the entire term, also known as
	// zero-coupon. It is represented as 10,000 years and reports zero
	// events per year. Reconstruction via Parse or UnmarshalText always
	// resolves back to this value.
	Term = Frequency{period: Period{Years: termYears}, name: "Term"}
)

func must(f Frequency, err error) Frequency {
	if err != nil {
		panic(err)
	}
	return f
}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// New obtains a frequency from a period.
//
// The period normally consists of either days and weeks, or months and
// years. It must be positive and non-zero. If the total months are zero
// and days are present the result is day-based, with day counts that are
// exact multiples of 7 converted to weeks. Months are not normalized
// into years. The maximum length is 1,000 years (12,000 months).
func New(p Period) (Frequency, error) {
	if p.TotalMonths() == 0 && p.Days != 0 {
		return OfDays(p.Days)
	}
	if p.TotalMonths() > maxMonths {
		return Frequency{}, invalidf(p.String(), "period must not exceed %d years", maxYears)
	}
	return newFrequency(p, p.String())
}

// OfDays returns a day-based frequency. Day counts that are exact
// multiples of 7 are converted to weeks, so OfDays(14) equals OfWeeks(2)
// and formats as P2W.
func OfDays(days int) (Frequency, error) {
	if days <= 0 {
		return Frequency{}, invalidf(fmt.Sprintf("P%dD", days), "days must be positive")
	}
	if days%7 == 0 {
		return OfWeeks(days / 7)
	}
	return newFrequency(PeriodOfDays(days), fmt.Sprintf("P%dD", days))
}

// OfWeeks returns a week-based frequency, stored as 7n days.
func OfWeeks(weeks int) (Frequency, error) {
	if weeks <= 0 {
		return Frequency{}, invalidf(fmt.Sprintf("P%dW", weeks), "weeks must be positive")
	}
	return newFrequency(PeriodOfWeeks(weeks), fmt.Sprintf("P%dW", weeks))
}

// OfMonths returns a month-based frequency.
// Months are not normalized into years.
func OfMonths(months int) (Frequency, error) {
	if months <= 0 {
		return Frequency{}, invalidf(fmt.Sprintf("P%dM", months), "months must be positive")
	}
	if months > maxMonths {
		return Frequency{}, invalidf(fmt.Sprintf("P%dM", months), "months must not exceed %d", maxMonths)
	}
	return newFrequency(PeriodOfMonths(months), fmt.Sprintf("P%dM", months))
}

// OfYears returns a year-based frequency, stored as years rather than
// converted to months.
func OfYears(years int) (Frequency, error) {
	if years <= 0 {
		return Frequency{}, invalidf(fmt.Sprintf("P%dY", years), "years must be positive")
	}
	if years > maxYears {
		return Frequency{}, invalidf(fmt.Sprintf("P%dY", years), "years must not exceed %d", maxYears)
	}
	return newFrequency(PeriodOfYears(years), fmt.Sprintf("P%dY", years))
}

func newFrequency(p Period, name string) (Frequency, error) {
	if p.IsZero() {
		return Frequency{}, invalidf(name, "period must not be zero")
	}
	if p.IsNegative() {
		return Frequency{}, invalidf(name, "period must not be negative")
	}
	return Frequency{period: p, name: name}, nil
}

// =============================================================================
// PARSING
// =============================================================================

// Parse obtains a frequency from formatted text.
//
// The format is based on ISO-8601, such as "P3M", with the "P" prefix
// optional, so "3M" also parses. The literal "Term" is matched case
// insensitively and yields the canonical Term value.
func Parse(text string) (Frequency, error) {
	if strings.EqualFold(text, "Term") {
		return Term, nil
	}
	if text == "" {
		return Frequency{}, invalidf(text, "empty input")
	}
	prefixed := text
	if text[0] != 'P' && text[0] != 'p' {
		prefixed = "P" + text
	}
	p, err := ParsePeriod(prefixed)
	if err != nil {
		return Frequency{}, &InvalidFrequencyError{Input: text, Reason: "unparsable period", Cause: err}
	}
	return New(p)
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// IsTerm reports whether this is the Term frequency. The check is by
// period value, so a reconstructed instance with the Term period still
// counts.
func (f Frequency) IsTerm() bool {
	return f.period == Term.period
}

// IsWeekBased reports whether the frequency is an integral number of
// weeks: no month or year element, and days divisible by 7.
func (f Frequency) IsWeekBased() bool {
	return f.period.TotalMonths() == 0 && f.period.Days%7 == 0 && f.period.Days != 0
}

// IsMonthBased reports whether the frequency is an integral number of
// months. Year-based frequencies count as month-based. Term does not.
func (f Frequency) IsMonthBased() bool {
	return f.period.TotalMonths() > 0 && f.period.Days == 0 && !f.IsTerm()
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// Normalized returns an equivalent frequency with any month count of 12
// or more folded into years. Already-normal frequencies are returned
// unchanged.
func (f Frequency) Normalized() Frequency {
	norm := f.period.Normalized()
	if norm == f.period {
		return f
	}
	return Frequency{period: norm, name: norm.String()}
}

// EventsPerYear calculates the number of events that occur in a year.
//
// Month-based frequencies divide 12 by the month count, so only P1M,
// P2M, P3M, P4M, P6M and P1Y resolve. Day- and week-based frequencies
// divide 364 by the day count, so P1D, P2D, P4D, P1W, P2W, P4W, P13W,
// P26W and P52W resolve. Term returns zero. Everything else is an
// invalid-frequency error.
func (f Frequency) EventsPerYear() (int, error) {
	if f.IsTerm() {
		return 0, nil
	}
	months := f.period.TotalMonths()
	days := f.period.Days
	if f.IsMonthBased() {
		if 12%months == 0 {
			return 12 / months, nil
		}
	} else if months == 0 && days > 0 && 364%days == 0 {
		return 364 / days, nil
	}
	return 0, invalidf(f.name, "unable to calculate events per year")
}

// =============================================================================
// TEMPORAL ARITHMETIC
// =============================================================================

// Period returns the underlying period of the frequency. Week-based
// frequencies report their length in days; weeks are never a distinct
// unit.
func (f Frequency) Period() Period {
	return f.period
}

// AddTo adds the period of this frequency to the given date.
// Calendar range failures from the period arithmetic pass through
// unchanged.
func (f Frequency) AddTo(t time.Time) (time.Time, error) {
	return f.period.AddTo(t)
}

// SubtractFrom subtracts the period of this frequency from the given date.
func (f Frequency) SubtractFrom(t time.Time) (time.Time, error) {
	return f.period.SubtractFrom(t)
}

// =============================================================================
// EQUALITY AND FORMATTING
// =============================================================================

// Equal reports whether two frequencies have the same period.
// The display name is ignored, so a frequency parsed from "P14D" equals
// OfWeeks(2).
func (f Frequency) Equal(other Frequency) bool {
	return f.period == other.period
}

// String returns the canonical name, such as P1D, P2W, P3M, P4Y or Term.
func (f Frequency) String() string {
	return f.name
}

// MarshalText implements encoding.TextMarshaler using the canonical name.
func (f Frequency) MarshalText() ([]byte, error) {
	return []byte(f.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse, so a
// round-tripped Term resolves back to the canonical Term value.
func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
