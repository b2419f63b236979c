// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/spintools/antenna"
	"github.com/katalvlaran/spintools/evolution"
	"github.com/katalvlaran/spintools/network"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	flagTouchstone   = "touchstone"
	flagBandLow      = "band-low"
	flagBandHigh     = "band-high"
	flagCropLow      = "crop-low"
	flagCropHigh     = "crop-high"
	flagTopology     = "topology"
	flagZ0           = "z0"
	flagFloor        = "floor"
	flagSearchConfig = "search-config"
)

func newMatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Optimize matching networks for a measured antenna, results as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.settings(cmd)
			if err != nil {
				return err
			}

			path := v.GetString(flagTouchstone)
			if path == "" {
				return fmt.Errorf("--%s is required", flagTouchstone)
			}
			raw, err := network.LoadTouchstone(path)
			if err != nil {
				return err
			}
			if lo, hi := v.GetFloat64(flagCropLow), v.GetFloat64(flagCropHigh); hi > 0 {
				if raw, err = raw.Crop(lo, hi); err != nil {
					return err
				}
			}

			topos, err := pickTopologies(v.GetStringSlice(flagTopology))
			if err != nil {
				return err
			}
			search, err := loadSearch(v.GetString(flagSearchConfig))
			if err != nil {
				return err
			}

			z0, floor := v.GetFloat64(flagZ0), v.GetFloat64(flagFloor)
			if !(z0 > 0) || math.IsInf(z0, 0) {
				return fmt.Errorf("--%s=%g: must be finite and > 0", flagZ0, z0)
			}
			if math.IsNaN(floor) {
				return fmt.Errorf("--%s is NaN", flagFloor)
			}

			band := antenna.Band{Low: v.GetFloat64(flagBandLow), High: v.GetFloat64(flagBandHigh)}
			results, err := antenna.Optimize(raw, topos, band,
				antenna.WithZ0(z0),
				antenna.WithDepthFloor(floor),
				antenna.WithSearch(search),
				antenna.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()

			return enc.Encode(results)
		},
	}

	fs := cmd.Flags()
	fs.String(flagTouchstone, "", "antenna measurement (.s1p or .s2p)")
	fs.Float64(flagBandLow, 0, "lower band edge (Hz, exclusive)")
	fs.Float64(flagBandHigh, 0, "upper band edge (Hz, exclusive)")
	fs.Float64(flagCropLow, 0, "crop the measurement to [crop-low, crop-high] Hz first")
	fs.Float64(flagCropHigh, 0, "upper crop edge (Hz); 0 disables cropping")
	fs.StringSlice(flagTopology, nil, "topologies to try (default: all built-in)")
	fs.Float64(flagZ0, antenna.DefaultZ0, "reference impedance (Ω)")
	fs.Float64(flagFloor, antenna.DefaultDepthFloorDB, "depth floor (dB)")
	fs.String(flagSearchConfig, "", "YAML differential-evolution settings")

	return cmd
}

func pickTopologies(names []string) ([]antenna.Topology, error) {
	if len(names) == 0 {
		return antenna.DefaultTopologies(), nil
	}
	out := make([]antenna.Topology, 0, len(names))
	for _, name := range names {
		t, ok := antenna.TopologyByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown topology %q", name)
		}
		out = append(out, t)
	}

	return out, nil
}

func loadSearch(path string) (evolution.Config, error) {
	if path == "" {
		return evolution.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return evolution.Config{}, err
	}
	defer f.Close()

	return evolution.LoadConfig(f)
}
