package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/axisgrid/calendar"
	"github.com/katalvlaran/axisgrid/label"
)

// roundFunc is the shape shared by calendar.Floor, Ceil and Round.
type roundFunc func(calendar.Zoned, int, calendar.Unit) (calendar.Zoned, error)

func newDateCmd(a *app) *cobra.Command {
	unit := unitValue(calendar.Days)
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Snap dates to a calendar grid and list its boundaries",
		Long: `Snap dates to an amount×unit calendar grid. Dates are RFC 3339 and keep
their UTC offset: axisgrid date floor 2020-01-16T11:59:00+02:00 --amount 15 --unit minutes`,
	}
	pf := cmd.PersistentFlags()
	pf.Int("amount", 1, "Grid step in units")
	pf.Var(&unit, "unit", "Grid unit: milliseconds, seconds, minutes, hours, days, months or years")
	bindFlags(a.cfg, "date", pf)

	cmd.AddCommand(
		newRoundCmd(a, "floor", "Round DATE down to the grid", calendar.Floor),
		newRoundCmd(a, "ceil", "Round DATE up to the grid", calendar.Ceil),
		newRoundCmd(a, "round", "Round DATE to the nearest grid boundary", calendar.Round),
		newSeriesCmd(a),
		newStepCmd(a),
	)

	return cmd
}

// grid reads the configured amount and unit.
func (a *app) grid() (int, calendar.Unit, error) {
	u, err := calendar.ParseUnit(a.cfg.GetString("date.unit"))
	if err != nil {
		return 0, 0, err
	}

	return a.cfg.GetInt("date.amount"), u, nil
}

func newRoundCmd(a *app, use, short string, fn roundFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " DATE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.ParseDate(args[0])
			if err != nil {
				return err
			}
			amount, u, err := a.grid()
			if err != nil {
				return err
			}
			got, err := fn(d, amount, u)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"op":   use,
				"step": calendar.Step{Amount: amount, Unit: u},
			}).Debug("Rounded date")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), got.Time().Format(time.RFC3339Nano))

			return err
		},
	}
}

func newSeriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series START END",
		Short: "Print every grid boundary within [START, END]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := calendar.ParseDate(args[0])
			if err != nil {
				return err
			}
			end, err := calendar.ParseDate(args[1])
			if err != nil {
				return err
			}
			amount, u, err := a.grid()
			if err != nil {
				return err
			}
			ds, err := calendar.Ticks(start, end, amount, u)
			if err != nil {
				return err
			}
			lines, err := label.Dates(ds, a.cfg.GetString("series.format"))
			if err != nil {
				return err
			}

			return printLines(cmd.OutOrStdout(), lines)
		},
	}
	cmd.Flags().String("format", "%Y-%m-%d %H:%M:%S", "strftime layout of each line")
	bindFlags(a.cfg, "series", cmd.Flags())

	return cmd
}

func newStepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step SPAN",
		Short: "Print the finest calendar step giving at most --max-count ticks over SPAN",
		Long: `Print the finest calendar step giving at most --max-count ticks over SPAN,
a Go duration such as 90m or 720h.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("span %q: %w", args[0], err)
			}
			s, err := calendar.ChooseStep(span, a.cfg.GetInt("step.max-count"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)

			return err
		},
	}
	cmd.Flags().Int("max-count", 10, "Maximum number of ticks")
	bindFlags(a.cfg, "step", cmd.Flags())

	return cmd
}
