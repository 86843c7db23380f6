package main

import (
	"fmt"

	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/axisgrid/factors"
)

func newFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors N",
		Short: "Print the positive divisors of N, ascending (descending and negated for N < 0)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseDecimal(args[0])
			if err != nil {
				return err
			}

			return printDecimals(cmd, factors.Find(n))
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "common A B",
		Short: "Print the factors A and B have in common",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseDecimal(args[0])
			if err != nil {
				return err
			}
			y, err := parseDecimal(args[1])
			if err != nil {
				return err
			}

			return printDecimals(cmd, factors.FindCommon(x, y))
		},
	})

	return cmd
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("number %q: %w", s, err)
	}

	return d, nil
}

func printDecimals(cmd *cobra.Command, ds []decimal.Decimal) error {
	if len(ds) == 0 {
		log.Debug("No factors")
	}
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.String()
	}

	return printLines(cmd.OutOrStdout(), lines)
}
