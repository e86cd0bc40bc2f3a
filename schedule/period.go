/*
period.go - Minimal calendar period primitive

PURPOSE:
  A (years, months, days) triple added to or subtracted from a calendar
  date using standard calendar rules. This is deliberately NOT a general
  purpose period library: it carries exactly what the frequency type
  needs, so its invariants stay auditable.

KEY PROPERTIES:
  - Months and years are NOT auto-normalized: 12 months and 1 year are
    distinct representations until Normalized() is called.
  - Weeks are a parse/format convenience only; internally a week is
    always 7 days.
  - Date arithmetic uses calendar (not fixed-duration) rules and fails
    once the resulting year leaves the +/-999,999,999 range.

USAGE:
  p, err := schedule.ParsePeriod("P1Y6M")
  later, err := p.AddTo(start)

SEE ALSO:
  - frequency.go: Validates periods into frequencies
*/
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxDateYear bounds the result of period arithmetic. Matches the year
// range used by the ISO calendar systems this module interoperates with.
const maxDateYear = 999_999_999

// Period is a calendar-based duration of years, months and days.
// The zero value is the zero period, which is not a valid frequency.
type Period struct {
	Years  int
	Months int
	Days   int
}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// NewPeriod returns a period of the given years, months and days.
func NewPeriod(years, months, days int) Period {
	return Period{Years: years, Months: months, Days: days}
}

// PeriodOfYears returns a period of n years.
func PeriodOfYears(n int) Period { return Period{Years: n} }

// PeriodOfMonths returns a period of n months.
func PeriodOfMonths(n int) Period { return Period{Months: n} }

// PeriodOfWeeks returns a period of n weeks, stored as 7n days.
func PeriodOfWeeks(n int) Period { return Period{Days: n * 7} }

// PeriodOfDays returns a period of n days.
func PeriodOfDays(n int) Period { return Period{Days: n} }

// =============================================================================
// QUERIES
// =============================================================================

// IsZero reports whether all three components are zero.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// IsNegative reports whether any component is negative.
func (p Period) IsNegative() bool {
	return p.Years < 0 || p.Months < 0 || p.Days < 0
}

// TotalMonths returns the years and months components folded into a
// single month count. The days component is ignored.
func (p Period) TotalMonths() int {
	return p.Years*12 + p.Months
}

// Normalized folds any month count of 12 or more into additional years,
// leaving the days component untouched.
func (p Period) Normalized() Period {
	if p.Months < 12 && p.Months > -12 {
		return p
	}
	total := p.TotalMonths()
	return Period{Years: total / 12, Months: total % 12, Days: p.Days}
}

// =============================================================================
// DATE ARITHMETIC
// =============================================================================

// AddTo adds this period to the given date using calendar rules.
// End-of-month dates resolve the way time.AddDate resolves them.
func (p Period) AddTo(t time.Time) (time.Time, error) {
	result := t.AddDate(p.Years, p.Months, p.Days)
	if y := result.Year(); y > maxDateYear || y < -maxDateYear {
		return time.Time{}, fmt.Errorf("%w: year %d", ErrDateRange, y)
	}
	return result, nil
}

// SubtractFrom subtracts this period from the given date using calendar rules.
func (p Period) SubtractFrom(t time.Time) (time.Time, error) {
	result := t.AddDate(-p.Years, -p.Months, -p.Days)
	if y := result.Year(); y > maxDateYear || y < -maxDateYear {
		return time.Time{}, fmt.Errorf("%w: year %d", ErrDateRange, y)
	}
	return result, nil
}

// =============================================================================
// TEXT FORM - ISO-8601 designators
// =============================================================================

// periodPattern accepts P1Y, P3M, P2W, P14D and combinations such as
// P1Y6M or P1M21D. Units are case-insensitive. Weeks fold into days.
var periodPattern = regexp.MustCompile(`^[Pp](?:(\d+)[Yy])?(?:(\d+)[Mm])?(?:(\d+)[Ww])?(?:(\d+)[Dd])?$`)

// ParsePeriod parses an ISO-8601 style period such as "P3M" or "P1Y6M".
// At least one component must be present. Weeks are folded into days.
func ParsePeriod(text string) (Period, error) {
	m := periodPattern.FindStringSubmatch(text)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "" && m[4] == "") {
		return Period{}, fmt.Errorf("cannot parse period %q", text)
	}
	var p Period
	var err error
	if p.Years, err = parseComponent(m[1], text); err != nil {
		return Period{}, err
	}
	if p.Months, err = parseComponent(m[2], text); err != nil {
		return Period{}, err
	}
	weeks, err := parseComponent(m[3], text)
	if err != nil {
		return Period{}, err
	}
	if p.Days, err = parseComponent(m[4], text); err != nil {
		return Period{}, err
	}
	p.Days += weeks * 7
	return p, nil
}

func parseComponent(digits, text string) (int, error) {
	if digits == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("cannot parse period %q: %v", text, err)
	}
	return n, nil
}

// String renders the period in ISO-8601 form, such as P1Y6M or P14D.
// The zero period renders as P0D. Weeks never appear; a 14 day period
// is P14D at this level (the frequency layer owns week naming).
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	if p.Years != 0 {
		fmt.Fprintf(&b, "%dY", p.Years)
	}
	if p.Months != 0 {
		fmt.Fprintf(&b, "%dM", p.Months)
	}
	if p.Days != 0 {
		fmt.Fprintf(&b, "%dD", p.Days)
	}
	return b.String()
}
