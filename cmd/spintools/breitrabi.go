// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/spintools/breitrabi"
	"github.com/katalvlaran/spintools/constants"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	flagMethod = "method"
	flagBMin   = "bmin"
	flagBMax   = "bmax"

	// bothManifolds selects ManifoldEnergies; F=0 is a real manifold when I=1/2.
	bothManifolds = -1

	methodClosed    = "closed"
	methodNumerical = "numerical"
)

func newBreitRabiCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breit-rabi",
		Short: "Hyperfine energies E/h (Hz) over a field grid (gauss), as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.settings(cmd)
			if err != nil {
				return err
			}
			lvl, err := resolveLevel(v.GetString(flagLevel), v.GetString(flagTable))
			if err != nil {
				return err
			}
			points := v.GetInt(flagPoints)
			if points < 2 {
				return fmt.Errorf("--%s=%d: need at least 2", flagPoints, points)
			}
			fields := floats.Span(make([]float64, points), v.GetFloat64(flagBMin), v.GetFloat64(flagBMax))

			method, F := v.GetString(flagMethod), v.GetFloat64(flagF)
			a.log.Info("computing hyperfine energies", "level", lvl.ID(), "method", method, "F", F, "points", points)

			var e *mat.Dense
			switch {
			case method == methodNumerical:
				e, err = breitrabi.Numerical(fields, lvl)
			case method == methodClosed && F < 0:
				e, err = breitrabi.ManifoldEnergies(fields, lvl)
			case method == methodClosed:
				e, err = breitrabi.Energies(fields, lvl, F)
			default:
				err = fmt.Errorf("--%s=%q: want %s or %s", flagMethod, method, methodClosed, methodNumerical)
			}
			if err != nil {
				return err
			}

			return finishTraces(a, cmd.OutOrStdout(), "field_gauss", "B (G)", fields, e,
				1/constants.H, v.GetBool(flagCorrect), v.GetString(flagPlot))
		},
	}

	fs := cmd.Flags()
	addTraceFlags(fs)
	fs.String(flagMethod, methodClosed, "closed (J=1/2 only) or numerical")
	fs.Float64(flagF, bothManifolds, "hyperfine manifold F for the closed form; negative gives both manifolds")
	fs.Float64(flagBMin, 0, "first field (G)")
	fs.Float64(flagBMax, 1000, "last field (G)")
	fs.Int(flagPoints, 201, "number of field points")

	return cmd
}
