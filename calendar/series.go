package calendar

import (
	"fmt"
	"math"
	"time"
)

// Ticks returns every boundary of the amount×unit grid in [start, end], in
// ascending order. An empty slice means no boundary falls in the range.
//
// Complexity: O(k) for k returned boundaries.
func Ticks(start, end Zoned, amount int, u Unit) ([]Zoned, error) {
	if end.Compare(start) < 0 {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidRange, start.Time(), end.Time())
	}
	b, err := Ceil(start, amount, u)
	if err != nil {
		return nil, err
	}

	out := make([]Zoned, 0)
	for ; b.Compare(end) <= 0; b = next(b, amount, u) {
		out = append(out, b)
	}

	return out, nil
}

// approxUnit is the nominal length of one unit, used only to size steps.
var approxUnit = [...]time.Duration{
	Milliseconds: time.Millisecond,
	Seconds:      time.Second,
	Minutes:      time.Minute,
	Hours:        time.Hour,
	Days:         24 * time.Hour,
	Months:       time.Duration(30.436875 * float64(24*time.Hour)),
	Years:        time.Duration(365.2425 * float64(24*time.Hour)),
}

// stepLadder lists the steps ChooseStep considers, finest first. Amounts
// divide their parent unit so grids stay even within it.
var stepLadder = []Step{
	{1, Milliseconds}, {2, Milliseconds}, {5, Milliseconds}, {10, Milliseconds},
	{20, Milliseconds}, {50, Milliseconds}, {100, Milliseconds}, {200, Milliseconds}, {500, Milliseconds},
	{1, Seconds}, {2, Seconds}, {5, Seconds}, {10, Seconds}, {15, Seconds}, {30, Seconds},
	{1, Minutes}, {2, Minutes}, {5, Minutes}, {10, Minutes}, {15, Minutes}, {30, Minutes},
	{1, Hours}, {2, Hours}, {3, Hours}, {6, Hours}, {12, Hours},
	{1, Days}, {2, Days}, {5, Days}, {10, Days},
	{1, Months}, {2, Months}, {3, Months}, {6, Months},
	{1, Years}, {2, Years}, {5, Years}, {10, Years}, {20, Years}, {50, Years}, {100, Years},
}

// Duration is the nominal length of the step (months as 30.44 days, years
// as 365.24 days).
func (s Step) Duration() time.Duration {
	return time.Duration(s.Amount) * approxUnit[s.Unit]
}

// ChooseStep returns the finest ladder step that splits span into at most
// maxCount intervals. Spans too long for the ladder get a step in years.
func ChooseStep(span time.Duration, maxCount int) (Step, error) {
	if maxCount <= 0 {
		return Step{}, fmt.Errorf("%w: max count %d", ErrInvalidAmount, maxCount)
	}
	if span < 0 {
		return Step{}, fmt.Errorf("%w: span %v", ErrInvalidRange, span)
	}
	// Compare per-interval lengths; span*maxCount would overflow Duration.
	per := float64(span) / float64(maxCount)
	for _, s := range stepLadder {
		if per <= float64(s.Duration()) {
			return s, nil
		}
	}
	years := math.Ceil(per / float64(approxUnit[Years]))

	return Step{Amount: int(years), Unit: Years}, nil
}
