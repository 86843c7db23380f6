package calendar

import (
	"fmt"
	"time"

	"github.com/tebeka/strftime"
)

// Date is a Zoned backed by time.Time in a fixed UTC offset.
// The zero Date is 0001-01-01 00:00:00 UTC.
type Date struct {
	t time.Time
}

var _ Zoned = Date{}

// NewDate pins t to the UTC offset it has at that instant. Later
// arithmetic never follows daylight-saving transitions of t's location.
func NewDate(t time.Time) Date {
	_, off := t.Zone()

	return Date{t: t.In(time.FixedZone("", off))}
}

// NewDateInOffset returns the instant t viewed at offsetMinutes east of UTC.
func NewDateInOffset(t time.Time, offsetMinutes int) Date {
	return Date{t: t.In(time.FixedZone("", offsetMinutes*60))}
}

// ParseDate reads an RFC 3339 timestamp and keeps its offset
// ("2020-01-16T11:59:00+02:00"). A missing offset means UTC, and seconds
// may be omitted ("2020-01-16T11:59Z").
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04Z07:00", "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t), nil
		}
	}

	return Date{}, fmt.Errorf("calendar: cannot parse date %q", s)
}

// Time returns the instant in the date's fixed offset.
func (d Date) Time() time.Time { return d.t }

// Offset returns minutes east of UTC.
func (d Date) Offset() int {
	_, off := d.t.Zone()

	return off / 60
}

// Compare orders dates by instant, ignoring offsets.
func (d Date) Compare(other Zoned) int {
	o := other.Time()
	switch {
	case d.t.Before(o):
		return -1
	case d.t.After(o):
		return 1
	default:
		return 0
	}
}

// Get returns the calendar field for u in the date's offset.
func (d Date) Get(u Unit) int {
	switch u {
	case Milliseconds:
		return d.t.Nanosecond() / int(time.Millisecond)
	case Seconds:
		return d.t.Second()
	case Minutes:
		return d.t.Minute()
	case Hours:
		return d.t.Hour()
	case Days:
		return d.t.Day()
	case Months:
		return int(d.t.Month())
	case Years:
		return d.t.Year()
	}

	return 0
}

// StartOf truncates the date to the first instant of its unit.
func (d Date) StartOf(u Unit) Zoned {
	y, mo, day := d.t.Date()
	h, mi, s := d.t.Clock()
	ns := d.t.Nanosecond()
	loc := d.t.Location()
	switch u {
	case Milliseconds:
		return Date{t: time.Date(y, mo, day, h, mi, s, ns-ns%int(time.Millisecond), loc)}
	case Seconds:
		return Date{t: time.Date(y, mo, day, h, mi, s, 0, loc)}
	case Minutes:
		return Date{t: time.Date(y, mo, day, h, mi, 0, 0, loc)}
	case Hours:
		return Date{t: time.Date(y, mo, day, h, 0, 0, 0, loc)}
	case Days:
		return Date{t: time.Date(y, mo, day, 0, 0, 0, 0, loc)}
	case Months:
		return Date{t: time.Date(y, mo, 1, 0, 0, 0, 0, loc)}
	case Years:
		return Date{t: time.Date(y, time.January, 1, 0, 0, 0, 0, loc)}
	}

	return d
}

// Add moves the date by n units. Month and year steps keep the time of day
// and clamp the day to the target month's length.
func (d Date) Add(n int, u Unit) Zoned {
	switch u {
	case Milliseconds:
		return Date{t: d.t.Add(time.Duration(n) * time.Millisecond)}
	case Seconds:
		return Date{t: d.t.Add(time.Duration(n) * time.Second)}
	case Minutes:
		return Date{t: d.t.Add(time.Duration(n) * time.Minute)}
	case Hours:
		return Date{t: d.t.Add(time.Duration(n) * time.Hour)}
	case Days:
		return Date{t: d.t.AddDate(0, 0, n)}
	case Months:
		return d.addMonths(n)
	case Years:
		return d.addMonths(12 * n)
	}

	return d
}

func (d Date) addMonths(n int) Date {
	y, mo, day := d.t.Date()
	h, mi, s := d.t.Clock()
	// Day 1 of the target month never overflows; clamp the day afterwards.
	first := time.Date(y, mo+time.Month(n), 1, h, mi, s, d.t.Nanosecond(), d.t.Location())
	if last := daysIn(first); day > last {
		day = last
	}

	return Date{t: first.AddDate(0, 0, day-1)}
}

// daysIn returns the number of days in t's month.
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Format renders the date with strftime directives, e.g. "%Y-%m-%d %H:%M".
func (d Date) Format(layout string) (string, error) {
	return strftime.Format(layout, d.t)
}

// String renders the date as "2006-01-02 15:04:05 -07:00".
func (d Date) String() string {
	return d.t.Format("2006-01-02 15:04:05 -07:00")
}
