package label

import (
	"fmt"
	"time"

	"github.com/tebeka/strftime"

	"github.com/katalvlaran/axisgrid/calendar"
)

// directives lists the strftime conversions Date accepts.
var directives = map[byte]bool{
	'a': true, 'A': true, 'b': true, 'B': true, 'd': true, 'H': true, 'I': true,
	'm': true, 'M': true, 'p': true, 'S': true, 'y': true, 'Y': true, 'Z': true,
	'%': true,
}

// Date renders t with strftime directives, e.g. "%Y-%m-%d %H:%M".
func Date(t time.Time, layout string) (string, error) {
	if err := checkLayout(layout); err != nil {
		return "", err
	}
	s, err := strftime.Format(layout, t)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadLayout, err)
	}

	return s, nil
}

// Dates renders a calendar series, each date in its own offset.
func Dates(ds []calendar.Zoned, layout string) ([]string, error) {
	if err := checkLayout(layout); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		s, err := Date(d.Time(), layout)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func checkLayout(layout string) error {
	if layout == "" {
		return fmt.Errorf("%w: empty", ErrBadLayout)
	}
	for i := 0; i < len(layout); i++ {
		if layout[i] != '%' {
			continue
		}
		i++
		if i == len(layout) {
			return fmt.Errorf("%w: trailing %%", ErrBadLayout)
		}
		if !directives[layout[i]] {
			return fmt.Errorf("%w: unsupported directive %%%c", ErrBadLayout, layout[i])
		}
	}

	return nil
}
