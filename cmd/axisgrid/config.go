package main

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. AXISGRID_TICKS_RADIX.
const envPrefix = "AXISGRID"

// newConfig returns a viper instance resolving keys as flag, then
// environment, then config file, then flag default.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// readConfig loads the --config file when one was given.
func (a *app) readConfig() error {
	if a.cfgFile == "" {
		return nil
	}
	a.cfg.SetConfigFile(a.cfgFile)
	if err := a.cfg.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
	}
	log.WithFields(log.Fields{
		"file": a.cfg.ConfigFileUsed(),
	}).Debug("Using config file")

	return nil
}

// bindFlags exposes every flag of fs under "section.flag-name".
func bindFlags(v *viper.Viper, section string, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(section+"."+f.Name, f)
	})
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
