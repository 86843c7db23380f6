package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for calendar rounding.
var (
	// ErrInvalidAmount indicates a non-positive amount or tick budget.
	ErrInvalidAmount = errors.New("calendar: amount must be a positive integer")
	// ErrUnknownUnit indicates a unit outside the supported set.
	ErrUnknownUnit = errors.New("calendar: unknown calendar unit")
	// ErrInvalidRange indicates a range whose end precedes its start.
	ErrInvalidRange = errors.New("calendar: range end precedes start")
)

// Unit is a calendar granularity.
type Unit int

const (
	// Milliseconds are indexed within the second.
	Milliseconds Unit = iota
	// Seconds are indexed within the minute.
	Seconds
	// Minutes are indexed within the hour.
	Minutes
	// Hours are indexed within the day.
	Hours
	// Days are indexed within the month, day 1 first.
	Days
	// Months are indexed within the year, January first.
	Months
	// Years are indexed from year 0.
	Years
)

var unitNames = [...]string{
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
	Days:         "days",
	Months:       "months",
	Years:        "years",
}

// String returns the plural unit name, e.g. "months".
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}

	return unitNames[u]
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	return u >= Milliseconds && u <= Years
}

// ParseUnit accepts a unit name in singular or plural form, any case
// ("day", "Days", "months").
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for u, n := range unitNames {
		if name == n || name == strings.TrimSuffix(n, "s") {
			return Unit(u), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// parent returns the unit a grid of u is indexed within. Years have none.
func (u Unit) parent() (Unit, bool) {
	if u == Years {
		return 0, false
	}

	return u + 1, true
}

// base is the calendar field value of the first unit in its parent.
func (u Unit) base() int {
	if u == Days || u == Months {
		return 1
	}

	return 0
}

// Zoned is a date-time carrying an explicit UTC offset with calendar
// arithmetic. Implementations must be immutable: every method returns a new
// value in the receiver's offset.
type Zoned interface {
	// StartOf returns the first instant of the unit containing the date.
	StartOf(u Unit) Zoned
	// Add moves the date by n calendar units (n may be negative).
	Add(n int, u Unit) Zoned
	// Get returns the calendar field for u: millisecond, second, minute,
	// hour, day of month (1-31), month (1-12) or year.
	Get(u Unit) int
	// Offset returns the UTC offset in minutes east of UTC.
	Offset() int
	// Compare returns -1, 0 or +1 as the date is before, at or after other.
	Compare(other Zoned) int
	// Time returns the instant as a time.Time in the date's offset.
	Time() time.Time
}

// Step is an amount of calendar units, e.g. {2, Months}.
type Step struct {
	Amount int
	Unit   Unit
}

// String renders the step as "2 months" or "1 day".
func (s Step) String() string {
	if s.Amount == 1 {
		return "1 " + strings.TrimSuffix(s.Unit.String(), "s")
	}

	return fmt.Sprintf("%d %s", s.Amount, s.Unit)
}
