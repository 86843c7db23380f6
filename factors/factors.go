package factors

import (
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// Find returns the divisors of n in ascending order.
//
// Contract:
//   - n == 0 or n not an integer → empty (nil) result.
//   - n > 0 → positive divisors, 1 and n included.
//   - n < 0 → divisors of -n negated, most negative first.
//
// Complexity: O(√|n|) trial divisions.
func Find(n decimal.Decimal) []decimal.Decimal {
	mag, ok := magnitude(n)
	if !ok {
		return nil
	}
	divs := divisors(mag)

	return toDecimals(divs, n.IsNeg())
}

// FindCommon returns the numbers dividing both a and b in ascending order.
//
// Contract:
//   - a and b of opposite signs → empty result.
//   - both negative → negative common divisors, most negative first.
//   - otherwise the intersection of Find(a) and Find(b).
//
// Complexity: O(√|a| + √|b|).
func FindCommon(a, b decimal.Decimal) []decimal.Decimal {
	if a.IsNeg() != b.IsNeg() {
		return nil
	}
	ma, ok := magnitude(a)
	if !ok {
		return nil
	}
	mb, ok := magnitude(b)
	if !ok {
		return nil
	}

	// Divisors of gcd(a,b) are exactly the common divisors.
	divs := divisors(gcd(ma, mb))

	return toDecimals(divs, a.IsNeg())
}

// magnitude returns |n| as an unsigned integer; ok is false for zero and
// for values with a fractional part.
func magnitude(n decimal.Decimal) (uint64, bool) {
	if n.IsZero() || !n.IsInt() {
		return 0, false
	}
	// Trunc(0) drops trailing fractional zeros (12.00 → 12), so the
	// coefficient is the integer magnitude.
	return n.Trunc(0).Coef(), true
}

// divisors returns the ascending divisors of n > 0.
func divisors(n uint64) []uint64 {
	var small, large []uint64
	for i := uint64(1); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}
	// large was collected in descending order.
	for l, r := 0, len(large)-1; l < r; l, r = l+1, r-1 {
		large[l], large[r] = large[r], large[l]
	}

	return append(small, large...)
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// toDecimals converts ascending magnitudes to decimals. With neg set the
// values are negated and the order reversed to stay ascending.
func toDecimals(divs []uint64, neg bool) []decimal.Decimal {
	out := make([]decimal.Decimal, len(divs))
	for i, v := range divs {
		d := fromUint64(v)
		if neg {
			out[len(divs)-1-i] = d.Neg()
		} else {
			out[i] = d
		}
	}

	return out
}

func fromUint64(v uint64) decimal.Decimal {
	if v <= math.MaxInt64 {
		return decimal.MustNew(int64(v), 0)
	}

	return decimal.MustParse(strconv.FormatUint(v, 10))
}
