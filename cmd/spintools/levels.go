// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/spintools/atom"
	"github.com/spf13/cobra"
)

func newLevelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the built-in levels and those of an optional YAML table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.settings(cmd)
			if err != nil {
				return err
			}
			levels, err := allLevels(v.GetString(flagTable))
			if err != nil {
				return err
			}

			names := make([]string, 0, len(levels))
			for name := range levels {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				l := levels[name]
				rows = append(rows, []string{
					name, fmtFloat(l.I), fmtFloat(l.J), fmtFloat(l.GJ), fmtFloat(l.GI),
					fmtFloat(l.AHF), fmtFloat(l.BHF), fmtFloat(l.DeltaEHF),
				})
			}

			return writeRows(cmd.OutOrStdout(),
				[]string{"name", "I", "J", "g_J", "g_I", "a_hz", "b_hz", "delta_nu_hz"}, rows)
		},
	}
	cmd.Flags().String(flagTable, "", "YAML level table merged over the built-in levels")

	return cmd
}

// allLevels returns the built-in levels plus those of table, if given.
func allLevels(table string) (map[string]atom.Level, error) {
	out := make(map[string]atom.Level)
	for _, name := range atom.Names() {
		l, err := atom.ByName(name)
		if err != nil {
			return nil, err
		}
		out[name] = l
	}
	if table == "" {
		return out, nil
	}

	f, err := os.Open(table)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	extra, err := atom.LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", table, err)
	}
	for name, l := range extra {
		out[name] = l
	}

	return out, nil
}

// resolveLevel finds name among the built-in levels and table.
func resolveLevel(name, table string) (atom.Level, error) {
	levels, err := allLevels(table)
	if err != nil {
		return atom.Level{}, err
	}
	l, ok := levels[name]
	if !ok {
		return atom.Level{}, fmt.Errorf("%q: %w", name, atom.ErrUnknownLevel)
	}

	return l, nil
}
