package ticks

import "github.com/govalues/decimal"

// calc chains decimal operations and keeps the first failure, so the search
// code reads as arithmetic. Once err is set every method returns its first
// operand unchanged.
type calc struct {
	err error
}

func (c *calc) add(a, b decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return a
	}
	r, err := a.Add(b)
	if err != nil {
		c.err = err
		return a
	}

	return r
}

func (c *calc) sub(a, b decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return a
	}
	r, err := a.Sub(b)
	if err != nil {
		c.err = err
		return a
	}

	return r
}

func (c *calc) mul(a, b decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return a
	}
	r, err := a.Mul(b)
	if err != nil {
		c.err = err
		return a
	}

	return r
}

func (c *calc) quo(a, b decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return a
	}
	r, err := a.Quo(b)
	if err != nil {
		c.err = err
		return a
	}

	return r
}

// divisible reports whether a is an exact multiple of b.
func (c *calc) divisible(a, b decimal.Decimal) bool {
	if c.err != nil {
		return false
	}
	_, r, err := a.QuoRem(b)
	if err != nil {
		c.err = err
		return false
	}

	return r.IsZero()
}
