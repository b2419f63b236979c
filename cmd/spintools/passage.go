// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/spintools/constants"
	"github.com/katalvlaran/spintools/passage"
	"github.com/spf13/cobra"
)

const (
	flagMode        = "mode"
	flagSpan        = "span"
	flagFieldGauss  = "field-gauss"
	flagFrequencyHz = "frequency-hz"
	flagRFGauss     = "rf-gauss"

	modeFrequency = "frequency"
	modeField     = "field"
)

func newPassageCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passage",
		Short: "Dressed-state energies E/h (Hz) of one manifold over an RF frequency or field sweep, as CSV",
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

			var (
				F      = v.GetFloat64(flagF)
				mode   = v.GetString(flagMode)
				span   = v.GetFloat64(flagSpan)
				sweep  passage.Sweep
				axis   string
				xTitle string
			)
			a.log.Info("simulating adiabatic passage", "level", lvl.ID(), "F", F, "mode", mode)

			switch mode {
			case modeFrequency:
				o := passage.DefaultFrequencySweepOptions()
				o.Points = v.GetInt(flagPoints)
				o.FieldGauss = v.GetFloat64(flagFieldGauss)
				o.RFGauss = v.GetFloat64(flagRFGauss)
				if span != 0 {
					o.SpanHz = span
				}
				sweep, err = passage.FrequencySweep(lvl, F, o)
				axis, xTitle = "rf_hz", "f (Hz)"
			case modeField:
				o := passage.DefaultFieldSweepOptions()
				o.Points = v.GetInt(flagPoints)
				o.FrequencyHz = v.GetFloat64(flagFrequencyHz)
				o.RFGauss = v.GetFloat64(flagRFGauss)
				if span != 0 {
					o.SpanGauss = span
				}
				sweep, err = passage.FieldSweep(lvl, F, o)
				axis, xTitle = "field_gauss", "B (G)"
			default:
				err = fmt.Errorf("--%s=%q: want %s or %s", flagMode, mode, modeFrequency, modeField)
			}
			if err != nil {
				return err
			}

			return finishTraces(a, cmd.OutOrStdout(), axis, xTitle, sweep.Axis, sweep.Eigenvalues,
				1/constants.H, v.GetBool(flagCorrect), v.GetString(flagPlot))
		},
	}

	fs := cmd.Flags()
	addTraceFlags(fs)
	fs.Float64(flagF, 2, "hyperfine manifold F")
	fs.String(flagMode, modeFrequency, "frequency or field sweep")
	fs.Int(flagPoints, passage.DefaultPoints, "number of sweep points")
	fs.Float64(flagSpan, 0, "full sweep span, Hz or G by mode; 0 uses the default")
	fs.Float64(flagFieldGauss, passage.DefaultFieldGauss, "static field of a frequency sweep (G)")
	fs.Float64(flagFrequencyHz, passage.DefaultFrequencyHz, "RF frequency of a field sweep (Hz)")
	fs.Float64(flagRFGauss, passage.DefaultRFGauss, "RF amplitude (G)")

	return cmd
}
