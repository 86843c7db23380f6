// Package calendar rounds zoned date-times to calendar boundaries for time
// axes.
//
// What:
//
//   - Floor, Ceil and Round snap a date to a grid of N calendar units
//     ("every 2 months", "every 6 hours").
//   - Ticks lists every boundary inside a date range.
//   - ChooseStep picks a step from a fixed ladder so a span fits a tick budget.
//
// Boundaries are calendar-relative, not fixed durations: a month boundary is
// the first instant of a month whatever its length, and a day boundary is
// local midnight in the date's own UTC offset. Every result keeps the input's
// offset.
//
// Grid alignment:
//
//	Each unit is indexed within its parent unit: milliseconds in the second,
//	seconds in the minute, minutes in the hour, hours in the day, days in the
//	month (day 1 is index 0), months in the year (January is index 0). Years
//	are indexed from year 0. An amount of N places boundaries at indexes
//	divisible by N, so "2 months" falls on January, March, May, ... and a
//	grid cell never crosses into the next parent unit.
//
// Rounding:
//
//	Round measures closeness as the position inside the grid cell in calendar
//	units, counting the partial unit by elapsed fraction. For fixed-length
//	units this is plain duration; for months it means 16 Jan 12:00 is the
//	midpoint of January. Midpoints round up.
//
// Dates:
//
//	The algorithms work on the Zoned interface. Date implements it over
//	time.Time pinned to a fixed offset, with month arithmetic that clamps the
//	day of month (31 Jan + 1 month = 29 Feb 2020).
//
// Errors:
//
//   - ErrInvalidAmount: amount (or tick budget) is not positive.
//   - ErrUnknownUnit: unit outside the supported enumeration.
//   - ErrInvalidRange: Ticks called with end before start.
package calendar
