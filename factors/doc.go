// Package factors enumerates the integer divisors of decimal integers.
//
// What:
//
//   - Find returns every divisor of n in ascending order.
//   - FindCommon returns the divisors shared by a and b in ascending order.
//
// Why:
//
//   - The ticks package uses common divisors of the radix and a scaled axis
//     length as candidate tick subdivisions when the radix is not 10.
//
// Sign handling:
//
//   - Positive n yields positive divisors: 12 → [1 2 3 4 6 12].
//   - Negative n mirrors the positive set: -10 → [-10 -5 -2 -1].
//   - Zero and non-integers yield an empty result.
//   - FindCommon of operands with opposite signs is empty.
//
// Complexity:
//
//   - Find:       O(√|n|) time, O(d(n)) memory (d = number of divisors).
//   - FindCommon: O(√|a| + √|b|) time.
//
// Inputs are github.com/govalues/decimal values, so any integer with up to
// 19 significant digits is accepted.
package factors
