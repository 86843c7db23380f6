// Command axisgrid prints axis ticks, factors, calendar grids and clipped
// segments from the command line.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is the semantic version number, set at link time.
	Version = "dev"
	// Build is the build date, set at link time.
	Build string
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg     *viper.Viper
	cfgFile string
	verbose bool
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: newConfig()}

	rootCmd := &cobra.Command{
		Use:   "axisgrid",
		Short: "Axis tick and grid helper",
		Long: `axisgrid computes the values an axis or grid is drawn from: decimal-exact
linear ticks, factors, calendar boundaries, and segments clipped to a viewport.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(log.InfoLevel)
			if a.verbose {
				log.SetLevel(log.DebugLevel)
			}

			return a.readConfig()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Usage()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Configuration file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Print detailed execution info")

	rootCmd.AddCommand(
		newVersionCmd(),
		newTicksCmd(a),
		newFactorsCmd(),
		newDateCmd(a),
		newClipCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the axisgrid version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "axisgrid "+Version)
			if Build != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Build Time: ", Build)
			}
		},
	}
}
