package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/axisgrid/calendar"
	"github.com/katalvlaran/axisgrid/clip"
	"github.com/katalvlaran/axisgrid/label"
)

var (
	_ pflag.Value = (*unitValue)(nil)
	_ pflag.Value = (*systemValue)(nil)
	_ pflag.Value = (*rectValue)(nil)
)

// unitValue is a calendar.Unit flag checked at parse time.
type unitValue calendar.Unit

func (u *unitValue) String() string { return calendar.Unit(*u).String() }

func (u *unitValue) Set(s string) error {
	p, err := calendar.ParseUnit(s)
	if err != nil {
		return err
	}
	*u = unitValue(p)

	return nil
}

func (u *unitValue) Type() string { return "unit" }

// systemValue is a label.UnitSystem flag.
type systemValue label.UnitSystem

func (s *systemValue) String() string { return label.UnitSystem(*s).String() }

func (s *systemValue) Set(v string) error {
	p, err := label.ParseUnitSystem(v)
	if err != nil {
		return err
	}
	*s = systemValue(p)

	return nil
}

func (s *systemValue) Type() string { return "labels" }

// rectValue reads "XMIN,YMIN,XMAX,YMAX" into a clip.Rect.
type rectValue struct {
	r   clip.Rect
	set bool
}

func (r *rectValue) String() string {
	if !r.set {
		return ""
	}

	return strings.Join([]string{
		formatFloat(r.r.Min.X), formatFloat(r.r.Min.Y),
		formatFloat(r.r.Max.X), formatFloat(r.r.Max.Y),
	}, ",")
}

func (r *rectValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("rect %q: want XMIN,YMIN,XMAX,YMAX", s)
	}
	var c [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("rect %q: %w", s, err)
		}
		c[i] = f
	}
	r.r = clip.NewRect(c[0], c[1], c[2], c[3])
	r.set = true

	return nil
}

func (r *rectValue) Type() string { return "rect" }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
