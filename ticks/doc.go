// Package ticks computes axis tick positions over a linear interval using
// exact decimal arithmetic.
//
// What:
//
//	Generate picks a tick spacing for [start, end] that honors a minimum
//	spacing (WithMinInterval) or a maximum tick count (WithMaxCount), and
//	returns the ascending tick positions. Spacings are "clean" multiples of a
//	power of the radix: 1, 2 or 5 times 10^k for the default radix, or common
//	divisors of the radix and the scaled span for other radixes.
//
// Why decimals:
//
//	Binary floats turn 0.1+0.2 into 0.30000000000000004, which shows up as
//	wrong labels and missing boundary ticks. Every comparison here is made on
//	github.com/govalues/decimal values, so boundary checks are exact.
//
// Algorithm outline:
//  1. effective minimum = max(minInterval, (end-start)/maxCount).
//  2. exponent = radix^⌊log_radix(minimum)⌋.
//  3. aScaled = ⌊start/exponent⌋, bScaled = ⌈end/exponent⌉.
//  4. mantissas: {1,5,10}, {1,2,10} or {1,10} depending on whether the scaled
//     span divides by 5 or 2; common divisors of radix and span for other
//     radixes; every divisor of the radix in expand mode.
//  5. per mantissa, align the scaled bounds to it and coarsen the step until
//     it reaches the scaled minimum (mantissas 1 and radix cannot coarsen and
//     are rejected instead).
//  6. keep the densest accepted layout, rescale it and emit the ticks that fall
//     inside the (possibly expanded) interval.
//
// Options:
//
//   - WithMinInterval / WithMinIntervalFloat64: minimum tick spacing (default 0).
//   - WithMaxCount: maximum number of intervals; 0 yields no ticks.
//   - WithRadix: numeric base of the spacing magnitude (default 10).
//   - WithExpand: grow the interval to the enclosing clean boundaries.
//
// Errors:
//
//   - ErrInvalidInterval, ErrInvalidMinInterval, ErrInvalidMaxCount,
//     ErrInvalidRadix, ErrNoConstraint: invalid arguments.
//   - ErrArithmetic: the decimal library could not represent a result.
//
// An infeasible layout is not an error: Generate returns an empty slice.
package ticks
