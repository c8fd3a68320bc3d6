package domain

import (
	"time"
)

// The fiscal year runs April 1 through March 31.
const (
	FiscalYearStartMonth = time.April
	fiscalH2StartMonth   = time.October
)

// FiscalMonth is one of the twelve fixed fiscal-year month labels (Apr..Mar).
// Monthly booking targets are keyed by these labels and nothing else.
type FiscalMonth string

// FiscalYearMonths lists the labels in fiscal order, April first.
var FiscalYearMonths = [12]FiscalMonth{
	"Apr", "May", "Jun", "Jul", "Aug", "Sep",
	"Oct", "Nov", "Dec", "Jan", "Feb", "Mar",
}

// ParseFiscalMonth validates a month label. Anything outside the twelve fixed
// labels is rejected at construction time, not at lookup time.
func ParseFiscalMonth(label string) (FiscalMonth, error) {
	for _, m := range FiscalYearMonths {
		if string(m) == label {
			return m, nil
		}
	}
	return "", ErrInvalidFiscalMonth
}

// FiscalMonthOf returns the label for the calendar month of date.
func FiscalMonthOf(date time.Time) FiscalMonth {
	return FiscalMonth(date.Format("Jan"))
}

// FiscalYear holds the inclusive boundaries of one April–March fiscal year.
type FiscalYear struct {
	Start time.Time // Apr 1
	End   time.Time // Mar 31 of the following calendar year
}

// FiscalHalves splits a fiscal year into its two halves relative to a
// reference date. H1 is Apr 1–Sep 30, H2 is Oct 1–Mar 31.
type FiscalHalves struct {
	H1Start time.Time
	H1End   time.Time
	H2Start time.Time
	H2End   time.Time
	InH1    bool
}

// FiscalYearOf derives the fiscal year containing date. Jan–Mar dates belong
// to the fiscal year that started the previous calendar year; Mar 31 belongs
// to the year ending that day.
func FiscalYearOf(date time.Time) FiscalYear {
	startYear := date.Year()
	if date.Month() < FiscalYearStartMonth {
		startYear--
	}
	loc := date.Location()
	return FiscalYear{
		Start: time.Date(startYear, FiscalYearStartMonth, 1, 0, 0, 0, 0, loc),
		End:   time.Date(startYear+1, time.March, 31, 0, 0, 0, 0, loc),
	}
}

// FiscalHalvesOf derives the half-year boundaries for the fiscal year
// containing date and reports which half date falls in.
func FiscalHalvesOf(date time.Time) FiscalHalves {
	fy := FiscalYearOf(date)
	loc := date.Location()
	h1End := time.Date(fy.Start.Year(), time.September, 30, 0, 0, 0, 0, loc)
	h2Start := time.Date(fy.Start.Year(), fiscalH2StartMonth, 1, 0, 0, 0, 0, loc)

	day := truncateToDay(date)
	return FiscalHalves{
		H1Start: fy.Start,
		H1End:   h1End,
		H2Start: h2Start,
		H2End:   fy.End,
		InH1:    !day.Before(fy.Start) && !day.After(h1End),
	}
}

// InH1Month reports whether the calendar month of date is an H1 month
// (April through September), independent of the day within it.
func InH1Month(date time.Time) bool {
	return date.Month() >= FiscalYearStartMonth && date.Month() <= time.September
}

// DaysBetween counts whole days from a to b, inclusive of both endpoints.
func DaysBetween(a, b time.Time) int {
	a = truncateToDay(a)
	b = truncateToDay(b)
	return int(b.Sub(a).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight on the first day of date's calendar month.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// DaysInMonth returns the number of days in date's calendar month.
func DaysInMonth(date time.Time) int {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
}

// WholeMonthsBetween returns the number of whole months from a to b,
// matching calendar month arithmetic (Jul 15 to Mar 31 next year is 8).
func WholeMonthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return -WholeMonthsBetween(b, a)
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
