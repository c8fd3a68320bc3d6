package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFiscalYearOf(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"mid fiscal year", date(2025, time.July, 1), date(2025, time.April, 1), date(2026, time.March, 31)},
		{"january belongs to prior start year", date(2025, time.January, 15), date(2024, time.April, 1), date(2025, time.March, 31)},
		{"february belongs to prior start year", date(2025, time.February, 28), date(2024, time.April, 1), date(2025, time.March, 31)},
		{"march 31 ends the fiscal year that day", date(2025, time.March, 31), date(2024, time.April, 1), date(2025, time.March, 31)},
		{"april 1 starts a new fiscal year", date(2025, time.April, 1), date(2025, time.April, 1), date(2026, time.March, 31)},
		{"december stays in same start year", date(2025, time.December, 25), date(2025, time.April, 1), date(2026, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fy := FiscalYearOf(tt.date)
			if !fy.Start.Equal(tt.wantStart) {
				t.Errorf("FiscalYearOf(%v).Start = %v, want %v", tt.date, fy.Start, tt.wantStart)
			}
			if !fy.End.Equal(tt.wantEnd) {
				t.Errorf("FiscalYearOf(%v).End = %v, want %v", tt.date, fy.End, tt.wantEnd)
			}
		})
	}
}

func TestFiscalYearOf_JanThroughMarchStartPreviousYear(t *testing.T) {
	for _, m := range []time.Month{time.January, time.February, time.March} {
		d := date(2025, m, 10)
		if got := FiscalYearOf(d).Start.Year(); got != d.Year()-1 {
			t.Errorf("FiscalYearOf(%v).Start.Year() = %d, want %d", d, got, d.Year()-1)
		}
	}
	for m := time.April; m <= time.December; m++ {
		d := date(2025, m, 10)
		if got := FiscalYearOf(d).Start.Year(); got != d.Year() {
			t.Errorf("FiscalYearOf(%v).Start.Year() = %d, want %d", d, got, d.Year())
		}
	}
}

func TestFiscalHalvesOf(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		wantH1 bool
	}{
		{"april 1 is in H1", date(2025, time.April, 1), true},
		{"september 30 is in H1", date(2025, time.September, 30), true},
		{"october 1 is in H2", date(2025, time.October, 1), false},
		{"january is in H2", date(2026, time.January, 15), false},
		{"march 31 is in H2", date(2026, time.March, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := FiscalHalvesOf(tt.date)
			if h.InH1 != tt.wantH1 {
				t.Errorf("FiscalHalvesOf(%v).InH1 = %v, want %v", tt.date, h.InH1, tt.wantH1)
			}
			if !h.H1Start.Equal(FiscalYearOf(tt.date).Start) {
				t.Errorf("H1Start = %v, want fiscal year start", h.H1Start)
			}
			if h.H1End.Month() != time.September || h.H1End.Day() != 30 {
				t.Errorf("H1End = %v, want Sep 30", h.H1End)
			}
			if h.H2Start.Month() != time.October || h.H2Start.Day() != 1 {
				t.Errorf("H2Start = %v, want Oct 1", h.H2Start)
			}
			if !h.H2End.Equal(FiscalYearOf(tt.date).End) {
				t.Errorf("H2End = %v, want fiscal year end", h.H2End)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	h := FiscalHalvesOf(date(2025, time.July, 1))
	// Apr 1 - Sep 30 is 183 days inclusive
	if got := DaysBetween(h.H1Start, h.H1End); got != 183 {
		t.Errorf("days in H1 = %d, want 183", got)
	}
	// Oct 1 2025 - Mar 31 2026 is 182 days inclusive (2026 not a leap year)
	if got := DaysBetween(h.H2Start, h.H2End); got != 182 {
		t.Errorf("days in H2 = %d, want 182", got)
	}
	if got := DaysBetween(h.H1Start, h.H1Start); got != 1 {
		t.Errorf("same-day count = %d, want 1", got)
	}
	// Jul 1 is day 92 of H1
	if got := DaysBetween(h.H1Start, date(2025, time.July, 1)); got != 92 {
		t.Errorf("days to Jul 1 = %d, want 92", got)
	}
}

func TestParseFiscalMonth(t *testing.T) {
	for _, label := range FiscalYearMonths {
		got, err := ParseFiscalMonth(string(label))
		if err != nil {
			t.Fatalf("ParseFiscalMonth(%q) returned error: %v", label, err)
		}
		if got != label {
			t.Errorf("ParseFiscalMonth(%q) = %q", label, got)
		}
	}

	for _, bad := range []string{"April", "apr", "Foo", ""} {
		if _, err := ParseFiscalMonth(bad); err == nil {
			t.Errorf("ParseFiscalMonth(%q) should fail", bad)
		}
	}
}

func TestFiscalMonthOf(t *testing.T) {
	if got := FiscalMonthOf(date(2025, time.April, 10)); got != "Apr" {
		t.Errorf("FiscalMonthOf(Apr 10) = %q", got)
	}
	if got := FiscalMonthOf(date(2026, time.January, 2)); got != "Jan" {
		t.Errorf("FiscalMonthOf(Jan 2) = %q", got)
	}
}

func TestWholeMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2025, time.July, 1), date(2025, time.July, 1), 0},
		{"jul 15 to fiscal year end", date(2025, time.July, 15), date(2026, time.March, 31), 8},
		{"partial month rounds down", date(2025, time.July, 20), date(2025, time.August, 10), 0},
		{"exactly one month", date(2025, time.July, 10), date(2025, time.August, 10), 1},
		{"just past end is zero whole months", date(2026, time.April, 10), date(2026, time.March, 31), 0},
		{"well past end is negative", date(2026, time.May, 31), date(2026, time.March, 31), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeMonthsBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("WholeMonthsBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStartOfMonthAndDaysInMonth(t *testing.T) {
	d := date(2025, time.February, 14)
	if got := StartOfMonth(d); !got.Equal(date(2025, time.February, 1)) {
		t.Errorf("StartOfMonth = %v", got)
	}
	if got := DaysInMonth(d); got != 28 {
		t.Errorf("DaysInMonth(Feb 2025) = %d, want 28", got)
	}
	if got := DaysInMonth(date(2024, time.February, 1)); got != 29 {
		t.Errorf("DaysInMonth(Feb 2024) = %d, want 29", got)
	}
}
