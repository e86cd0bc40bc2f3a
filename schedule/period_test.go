package schedule_test

import (
	"errors"
	"testing"
	"time"

	"github.com/todatamining/strata/schedule"
)

// =============================================================================
// PARSING AND FORMATTING
// =============================================================================

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		text string
		want schedule.Period
	}{
		{"P1D", schedule.PeriodOfDays(1)},
		{"P2W", schedule.PeriodOfDays(14)},
		{"P3M", schedule.PeriodOfMonths(3)},
		{"P5Y", schedule.PeriodOfYears(5)},
		{"P1Y6M", schedule.NewPeriod(1, 6, 0)},
		{"P1M21D", schedule.NewPeriod(0, 1, 21)},
		{"P1Y2M3D", schedule.NewPeriod(1, 2, 3)},
		{"P1W2D", schedule.PeriodOfDays(9)}, // weeks fold into days
		{"p3m", schedule.PeriodOfMonths(3)}, // units are case-insensitive
		{"P10000Y", schedule.PeriodOfYears(10000)},
	}
	for _, tc := range cases {
		got, err := schedule.ParsePeriod(tc.text)
		if err != nil {
			t.Fatalf("ParsePeriod(%q): %v", tc.text, err)
		}
		if got != tc.want {
			t.Errorf("ParsePeriod(%q) = %+v, want %+v", tc.text, got, tc.want)
		}
	}
}

func TestParsePeriod_Malformed(t *testing.T) {
	for _, text := range []string{"", "P", "3M", "P3", "PXD", "P3M1Y", "P 3M", "P+3M"} {
		if _, err := schedule.ParsePeriod(text); err == nil {
			t.Errorf("ParsePeriod(%q): expected error", text)
		}
	}
}

func TestPeriod_String(t *testing.T) {
	cases := []struct {
		p    schedule.Period
		want string
	}{
		{schedule.Period{}, "P0D"},
		{schedule.PeriodOfDays(14), "P14D"},
		{schedule.PeriodOfMonths(3), "P3M"},
		{schedule.NewPeriod(1, 6, 0), "P1Y6M"},
		{schedule.NewPeriod(2, 0, 5), "P2Y5D"},
	}
	for _, tc := range cases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("String(%+v) = %q, want %q", tc.p, got, tc.want)
		}
	}
}

// =============================================================================
// QUERIES
// =============================================================================

func TestPeriod_TotalMonths(t *testing.T) {
	if got := schedule.NewPeriod(2, 3, 10).TotalMonths(); got != 27 {
		t.Errorf("TotalMonths = %d, want 27", got)
	}
	if got := schedule.PeriodOfDays(14).TotalMonths(); got != 0 {
		t.Errorf("TotalMonths = %d, want 0", got)
	}
}

func TestPeriod_Normalized(t *testing.T) {
	cases := []struct {
		p, want schedule.Period
	}{
		{schedule.PeriodOfMonths(18), schedule.NewPeriod(1, 6, 0)},
		{schedule.PeriodOfMonths(24), schedule.NewPeriod(2, 0, 0)},
		{schedule.NewPeriod(1, 13, 5), schedule.NewPeriod(2, 1, 5)},
		{schedule.NewPeriod(1, 6, 0), schedule.NewPeriod(1, 6, 0)},
		{schedule.PeriodOfDays(30), schedule.PeriodOfDays(30)},
	}
	for _, tc := range cases {
		if got := tc.p.Normalized(); got != tc.want {
			t.Errorf("Normalized(%+v) = %+v, want %+v", tc.p, got, tc.want)
		}
	}
}

// =============================================================================
// DATE ARITHMETIC
// =============================================================================

func TestPeriod_AddTo_CalendarRules(t *testing.T) {
	base := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	// Jan 31 + 1 month rolls through the short February
	got, err := schedule.PeriodOfMonths(1).AddTo(base)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddTo = %v, want %v", got, want)
	}
}

func TestPeriod_SubtractFrom(t *testing.T) {
	base := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	got, err := schedule.NewPeriod(1, 1, 1).SubtractFrom(base)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SubtractFrom = %v, want %v", got, want)
	}
}

func TestPeriod_AddTo_RangeGuard(t *testing.T) {
	base := time.Date(999_999_998, time.June, 1, 0, 0, 0, 0, time.UTC)
	if _, err := schedule.PeriodOfYears(5).AddTo(base); !errors.Is(err, schedule.ErrDateRange) {
		t.Errorf("expected ErrDateRange, got %v", err)
	}
	if _, err := schedule.PeriodOfYears(1).AddTo(base); err != nil {
		t.Errorf("unexpected error inside range: %v", err)
	}
}
