package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/axisgrid/clip"
)

func newClipCmd() *cobra.Command {
	var rect rectValue
	cmd := &cobra.Command{
		Use:   "clip X0 Y0 X1 Y1",
		Short: "Clip the segment (X0,Y0)-(X1,Y1) to a rectangle",
		Long: `Clip the segment (X0,Y0)-(X1,Y1) to the rectangle given by --rect.
Prints the visible part as "X0 Y0 X1 Y1", or "outside" when nothing is visible.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var c [4]float64
			for i, s := range args {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("coordinate %q: %w", s, err)
				}
				c[i] = f
			}
			s := clip.Segment{P0: clip.Point{X: c[0], Y: c[1]}, P1: clip.Point{X: c[2], Y: c[3]}}

			got, ok := clip.Line(s, rect.r)
			if !ok {
				log.WithField("rect", rect.String()).Debug("Segment misses rectangle")
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "outside")
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(),
				formatFloat(got.P0.X), formatFloat(got.P0.Y), formatFloat(got.P1.X), formatFloat(got.P1.Y))

			return err
		},
	}
	cmd.Flags().Var(&rect, "rect", "Clip rectangle as XMIN,YMIN,XMAX,YMAX")
	_ = cmd.MarkFlagRequired("rect")

	return cmd
}
