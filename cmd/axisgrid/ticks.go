package main

import (
	"fmt"

	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/axisgrid/label"
	"github.com/katalvlaran/axisgrid/ticks"
)

func newTicksCmd(a *app) *cobra.Command {
	system := systemValue(label.Plain)
	cmd := &cobra.Command{
		Use:   "ticks START END",
		Short: "Print evenly spaced tick values within [START, END]",
		Long: `Print evenly spaced, decimal-exact tick values within [START, END].
Negative bounds go after "--": axisgrid ticks --max-count 5 -- -7 23`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := decimal.Parse(args[0])
			if err != nil {
				return fmt.Errorf("start %q: %w", args[0], err)
			}
			end, err := decimal.Parse(args[1])
			if err != nil {
				return fmt.Errorf("end %q: %w", args[1], err)
			}
			opts, err := a.tickOptions()
			if err != nil {
				return err
			}
			sys, err := label.ParseUnitSystem(a.cfg.GetString("ticks.labels"))
			if err != nil {
				return err
			}

			vs, err := ticks.Generate(start, end, opts...)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"start": start,
				"end":   end,
				"ticks": len(vs),
			}).Debug("Generated ticks")

			lines, err := label.Numbers(vs, sys)
			if err != nil {
				return err
			}

			return printLines(cmd.OutOrStdout(), lines)
		},
	}

	f := cmd.Flags()
	f.String("min-interval", "", "Minimum distance between two ticks")
	f.Int("max-count", -1, "Maximum number of intervals between ticks (negative: no limit)")
	f.Int("radix", ticks.DefaultRadix, "Numeric base of the tick grid")
	f.Bool("expand", false, "Widen the range outward to the nearest enclosing ticks")
	f.Var(&system, "labels", "Label style: plain, si or grouped")
	bindFlags(a.cfg, "ticks", f)

	return cmd
}

func (a *app) tickOptions() ([]ticks.Option, error) {
	opts := []ticks.Option{ticks.WithRadix(a.cfg.GetInt("ticks.radix"))}
	if s := a.cfg.GetString("ticks.min-interval"); s != "" {
		d, err := decimal.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("min-interval %q: %w", s, err)
		}
		opts = append(opts, ticks.WithMinInterval(d))
	}
	if n := a.cfg.GetInt("ticks.max-count"); n >= 0 {
		opts = append(opts, ticks.WithMaxCount(n))
	}
	if a.cfg.GetBool("ticks.expand") {
		opts = append(opts, ticks.WithExpand())
	}

	return opts, nil
}
