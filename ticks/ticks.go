package ticks

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

var (
	one = decimal.MustNew(1, 0)
	two = decimal.MustNew(2, 0)
	ten = decimal.MustNew(10, 0)
)

// Generate returns ascending tick positions over [start, end].
//
// Contract:
//   - end must be greater than start, otherwise ErrInvalidInterval.
//   - the minimum interval must be ≥ 0, otherwise ErrInvalidMinInterval.
//   - the max count must be ≥ 0, otherwise ErrInvalidMaxCount; 0 returns
//     an empty slice.
//   - after resolving both constraints the minimum spacing must be positive,
//     otherwise ErrNoConstraint.
//   - the radix must be ≥ 2, otherwise ErrInvalidRadix.
//
// Without WithExpand every tick t satisfies start ≤ t ≤ end. When only one
// tick would be shown although the span is at least the minimum spacing,
// the interval endpoints are used instead (see singleTickFallback).
//
// Complexity: O(k) in the number of emitted ticks; the candidate search is
// O(log) in the ratio between the span and the minimum spacing.
func Generate(start, end decimal.Decimal, opts ...Option) ([]decimal.Decimal, error) {
	cfg := newConfig(opts)
	a, b := start, end
	if b.Cmp(a) <= 0 {
		return nil, fmt.Errorf("%w: [%s, %s]", ErrInvalidInterval, a, b)
	}

	var c calc
	length := c.sub(b, a)

	minInterval, done, err := cfg.effectiveMinInterval(&c, length)
	if err != nil {
		return nil, err
	}
	if done {
		return []decimal.Decimal{}, nil
	}
	if cfg.radix < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadix, cfg.radix)
	}
	radix := decimal.MustNew(int64(cfg.radix), 0)

	exponent := magnitude(minInterval, radix)
	if exponent.IsZero() {
		return nil, fmt.Errorf("%w: magnitude of %s underflows", ErrArithmetic, minInterval)
	}
	aScaled := c.quo(a, exponent).Floor(0)
	bScaled := c.quo(b, exponent).Ceil(0)
	minScaled := c.quo(minInterval, exponent)
	ms := mantissas(&c, radix, c.sub(bScaled, aScaled), cfg.expand)

	best, found := bestCandidate(&c, aScaled, bScaled, minScaled, radix, ms)
	if c.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArithmetic, c.err)
	}
	if !found {
		return []decimal.Decimal{}, nil
	}
	best = candidate{
		start:    c.mul(best.start, exponent),
		end:      c.mul(best.end, exponent),
		interval: c.mul(best.interval, exponent),
		count:    best.count,
	}
	if cfg.expand {
		a, b = best.start, best.end
	}

	ticks := emit(&c, best, a, b)
	if c.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArithmetic, c.err)
	}
	if !cfg.expand {
		ticks = singleTickFallback(ticks, best, a, b, length, minInterval)
	}

	return ticks, nil
}

// GenerateFloat64 is Generate for float bounds. NaN or infinite bounds are
// rejected with ErrInvalidInterval; finite values are converted to their
// shortest decimal representation first.
func GenerateFloat64(start, end float64, opts ...Option) ([]decimal.Decimal, error) {
	a, err := fromFloat64(start)
	if err != nil {
		return nil, err
	}
	b, err := fromFloat64(end)
	if err != nil {
		return nil, err
	}

	return Generate(a, b, opts...)
}

func fromFloat64(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: bound %v", ErrInvalidInterval, f)
	}
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: bound %v: %v", ErrInvalidInterval, f, err)
	}

	return d, nil
}

// effectiveMinInterval validates the spacing constraints and returns
// max(minInterval, length/maxCount). done is set when maxCount is 0, in
// which case no ticks are produced.
func (cfg config) effectiveMinInterval(c *calc, length decimal.Decimal) (decimal.Decimal, bool, error) {
	if cfg.minIntervalErr != nil {
		return decimal.Decimal{}, false, fmt.Errorf("%w: %v", ErrInvalidMinInterval, cfg.minIntervalErr)
	}
	minInterval := cfg.minInterval
	if minInterval.IsNeg() {
		return decimal.Decimal{}, false, fmt.Errorf("%w: %s", ErrInvalidMinInterval, minInterval)
	}

	if cfg.hasMaxCount {
		if cfg.maxCount == 0 {
			return decimal.Decimal{}, true, nil
		}
		if cfg.maxCount < 0 {
			return decimal.Decimal{}, false, fmt.Errorf("%w: %d", ErrInvalidMaxCount, cfg.maxCount)
		}
		byCount := c.quo(length, decimal.MustNew(int64(cfg.maxCount), 0))
		if c.err != nil {
			return decimal.Decimal{}, false, fmt.Errorf("%w: %v", ErrArithmetic, c.err)
		}
		minInterval = minInterval.Max(byCount)
	}

	if !minInterval.IsPos() {
		return decimal.Decimal{}, false, ErrNoConstraint
	}

	return minInterval, false, nil
}

// magnitude returns the largest power of radix not exceeding x (x > 0).
// An upward step that overflows the decimal range stops the search, since
// the result is then bounded by x anyway.
func magnitude(x, radix decimal.Decimal) decimal.Decimal {
	exp := one
	if x.Cmp(one) >= 0 {
		for {
			next, err := exp.Mul(radix)
			if err != nil || next.Cmp(x) > 0 {
				return exp
			}
			exp = next
		}
	}
	for exp.Cmp(x) > 0 && !exp.IsZero() {
		next, err := exp.Quo(radix)
		if err != nil {
			return decimal.Decimal{}
		}
		exp = next
	}

	return exp
}

// emit returns start + i·interval for i = 0..count that lie in [lo, hi].
func emit(c *calc, best candidate, lo, hi decimal.Decimal) []decimal.Decimal {
	ticks := make([]decimal.Decimal, 0)
	for i := int64(0); ; i++ {
		idx := decimal.MustNew(i, 0)
		if idx.Cmp(best.count) > 0 {
			break
		}
		tick := c.add(best.start, c.mul(best.interval, idx))
		if c.err != nil {
			return nil
		}
		if tick.Cmp(hi) > 0 {
			break
		}
		if tick.Cmp(lo) >= 0 {
			ticks = append(ticks, tick)
		}
	}

	return ticks
}

// singleTickFallback guarantees two ticks when the span is wide enough for
// them but the chosen spacing only left one inside [a, b]. If the lone
// layout starts at a, the far endpoint is appended; otherwise both interval
// endpoints replace the tick.
func singleTickFallback(ticks []decimal.Decimal, best candidate, a, b, length, minInterval decimal.Decimal) []decimal.Decimal {
	if len(ticks) != 1 || length.Cmp(minInterval) < 0 {
		return ticks
	}
	if a.Cmp(best.start) == 0 {
		return append(ticks, b)
	}

	return []decimal.Decimal{a, b}
}
