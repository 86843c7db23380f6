// Package axisgrid computes the values an axis or grid is drawn from.
//
// What is inside?
//
//	A small set of pure, allocation-light packages:
//		• ticks    – decimal-exact, evenly spaced tick values for a numeric range
//		• factors  – divisors of an integer and common divisors of two integers
//		• calendar – floor/ceil/round of dates to a calendar grid, keeping the offset
//		• clip     – Cohen–Sutherland clipping of segments and polylines to a viewport
//		• label    – plain, SI and thousands-grouped number labels, strftime date labels
//
// Ticks are computed on exact decimals (github.com/govalues/decimal), so
// 0.1 + 0.2 lands on 0.3 and a tick sequence never drifts.
//
// Quick example:
//
//	vs, _ := ticks.Generate(decimal.MustParse("0"), decimal.MustParse("10"), ticks.WithMaxCount(5))
//	// vs: 0 5 10
//
// The cmd/axisgrid command exposes every package from the shell:
//
//	axisgrid ticks 0 10 --max-count 5
//	axisgrid date floor 2020-01-16T11:59:00+02:00 --amount 15 --unit minutes
//	axisgrid clip 1 1 3 5 --rect 2,2,4,4
package axisgrid
