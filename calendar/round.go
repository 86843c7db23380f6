package calendar

import "fmt"

// Floor returns the latest boundary of the amount×unit grid at or before d.
// A date on a boundary is returned unchanged.
//
// Complexity: O(1).
func Floor(d Zoned, amount int, u Unit) (Zoned, error) {
	if err := validate(amount, u); err != nil {
		return nil, err
	}

	return floor(d, amount, u), nil
}

// Ceil returns the earliest boundary of the amount×unit grid at or after d.
// A date on a boundary is returned unchanged. The boundary following the
// last grid point of a parent unit is the start of the next parent unit
// (with a 2-day grid, 31 Jan is followed by 1 Feb).
//
// Complexity: O(1).
func Ceil(d Zoned, amount int, u Unit) (Zoned, error) {
	if err := validate(amount, u); err != nil {
		return nil, err
	}
	f := floor(d, amount, u)
	if f.Compare(d) == 0 {
		return f, nil
	}

	return next(f, amount, u), nil
}

// Round returns whichever enclosing boundary is closer to d, measured in
// calendar units; the midpoint rounds up.
//
// Complexity: O(1).
func Round(d Zoned, amount int, u Unit) (Zoned, error) {
	if err := validate(amount, u); err != nil {
		return nil, err
	}
	f := floor(d, amount, u)
	if f.Compare(d) == 0 {
		return f, nil
	}

	// Position of d inside the cell: whole units since f plus the elapsed
	// fraction of the current unit.
	unitStart := d.StartOf(u)
	unitLen := unitStart.Add(1, u).Time().Sub(unitStart.Time())
	elapsed := d.Time().Sub(unitStart.Time())
	pos := float64(index(unitStart, u)-index(f, u)) + float64(elapsed)/float64(unitLen)

	if 2*pos < float64(cellUnits(f, amount, u)) {
		return f, nil
	}

	return next(f, amount, u), nil
}

func validate(amount int, u Unit) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if !u.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}

	return nil
}

func floor(d Zoned, amount int, u Unit) Zoned {
	f := d.StartOf(u)
	if amount == 1 {
		return f
	}
	if rem := mod(index(f, u), amount); rem != 0 {
		f = f.Add(-rem, u)
	}

	return f
}

// next returns the boundary following the boundary b: b+amount units, or
// the start of the next parent unit if that comes first.
func next(b Zoned, amount int, u Unit) Zoned {
	n := b.Add(amount, u)
	if p, ok := u.parent(); ok {
		if pn := b.StartOf(p).Add(1, p); pn.Compare(n) < 0 {
			return pn
		}
	}

	return n
}

// cellUnits is the length in units of the grid cell starting at boundary b.
// Cells are cut short at the end of the parent unit.
func cellUnits(b Zoned, amount int, u Unit) int {
	p, ok := u.parent()
	if !ok {
		return amount
	}
	last := b.StartOf(p).Add(1, p).Add(-1, u)
	if rest := index(last, u) - index(b, u) + 1; rest < amount {
		return rest
	}

	return amount
}

// index is the position of d's unit inside its parent, starting at 0.
func index(d Zoned, u Unit) int {
	return d.Get(u) - u.base()
}

// mod is the non-negative remainder of a/b (b > 0), so years before 0 align
// on the same grid.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}

	return r
}
