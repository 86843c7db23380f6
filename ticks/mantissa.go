package ticks

import (
	"github.com/govalues/decimal"

	"github.com/katalvlaran/axisgrid/factors"
)

var (
	five = decimal.MustNew(5, 0)

	mantissasBy5 = []decimal.Decimal{one, five, ten}
	mantissasBy2 = []decimal.Decimal{one, two, ten}
	mantissasOdd = []decimal.Decimal{one, ten}
)

// mantissas returns the candidate subdivisions of one magnitude step.
//
// For radix 10 a span divisible by 5 only divides by 5, an even span only by
// 2 and an odd span not at all, which keeps steps at 1/2/5 and avoids
// spurious subdivision. Other radixes use the common divisors of the radix
// and the span, with the radix itself always last. Expand mode may grow the
// interval, so every divisor of the radix ({1,2,5,10} for radix 10) is tried.
func mantissas(c *calc, radix, scaledLen decimal.Decimal, expand bool) []decimal.Decimal {
	if expand {
		return factors.Find(radix)
	}
	if radix.Cmp(ten) == 0 {
		switch {
		case c.divisible(scaledLen, five):
			return mantissasBy5
		case c.divisible(scaledLen, two):
			return mantissasBy2
		default:
			return mantissasOdd
		}
	}

	ms := factors.FindCommon(radix, scaledLen)
	if len(ms) == 0 {
		return []decimal.Decimal{one, radix}
	}
	if ms[len(ms)-1].Cmp(radix) != 0 {
		ms = append(ms, radix)
	}

	return ms
}

// candidateState tracks one mantissa through the search.
type candidateState int

const (
	evaluating candidateState = iota
	coarsening
	rejected
	accepted
)

// bestCandidate evaluates every mantissa and keeps the layout with the
// smallest accepted interval. Ties keep the earlier mantissa.
func bestCandidate(c *calc, aScaled, bScaled, minScaled, radix decimal.Decimal, ms []decimal.Decimal) (candidate, bool) {
	var (
		best  candidate
		found bool
	)
	for _, m := range ms {
		cand, state := evaluate(c, aScaled, bScaled, minScaled, radix, m)
		if c.err != nil {
			return candidate{}, false
		}
		if state != accepted {
			continue
		}
		if !found || cand.interval.Cmp(best.interval) < 0 {
			best, found = cand, true
		}
	}

	return best, found
}

// evaluate aligns [aScaled, bScaled] to mantissa m and coarsens the step by
// factors of m until it is at least minScaled. Mantissas 1 and radix cannot
// coarsen, so they are rejected when too dense.
func evaluate(c *calc, aScaled, bScaled, minScaled, radix, m decimal.Decimal) (candidate, candidateState) {
	var cand candidate
	state := evaluating
	for {
		switch state {
		case evaluating:
			cand.start = c.mul(c.quo(aScaled, m).Floor(0), m)
			cand.end = c.mul(c.quo(bScaled, m).Ceil(0), m)
			length := c.sub(cand.end, cand.start)
			cand.count = c.quo(length, m)
			cand.interval = c.quo(length, cand.count)
			state = coarsening
		case coarsening:
			if c.err != nil {
				return candidate{}, rejected
			}
			if cand.interval.Cmp(minScaled) >= 0 {
				state = accepted
				continue
			}
			if m.Cmp(one) == 0 || m.Cmp(radix) == 0 {
				state = rejected
				continue
			}
			cand.count = c.quo(cand.count, m)
			cand.interval = c.quo(c.sub(cand.end, cand.start), cand.count)
		default:
			return cand, state
		}
	}
}
