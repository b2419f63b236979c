// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/katalvlaran/spintools/atom"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SPINTOOLS"

// Shared flag names.
const (
	flagConfig    = "config"
	flagVerbosity = "verbosity"
	flagLevel     = "level"
	flagTable     = "table"
	flagF         = "f"
	flagPoints    = "points"
	flagCorrect   = "correct"
	flagPlot      = "plot"
)

// app holds what the subcommands share after settings has run.
type app struct {
	log logr.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard()}

	root := &cobra.Command{
		Use:          "spintools",
		Short:        "Hyperfine structure, adiabatic passage and antenna matching tools",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "YAML file with flag values")
	pf.Int(flagVerbosity, 0, "log verbosity (1 adds per-run details)")

	root.AddCommand(
		newLevelsCmd(a),
		newBreitRabiCmd(a),
		newPassageCmd(a),
		newMatchCmd(a),
	)

	return root
}

// settings merges flags, environment and the optional config file for cmd
// and sets up the logger.
func (a *app) settings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	stdr.SetVerbosity(v.GetInt(flagVerbosity))
	a.log = stdr.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags)).WithName(cmd.Name())

	return v, nil
}

// addTraceFlags registers the flags shared by the commands that print
// eigenvalue traces.
func addTraceFlags(fs *pflag.FlagSet) {
	fs.String(flagLevel, atom.LevelRb87S12, "level name, see `spintools levels`")
	fs.String(flagTable, "", "YAML level table with extra levels")
	fs.Bool(flagCorrect, false, "repair level crossings swapped by sorting")
	fs.String(flagPlot, "", "write an animated level diagram as JSON to this path")
}
