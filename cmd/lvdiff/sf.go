// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdiff/flux"
	"github.com/katalvlaran/lvdiff/internal/logging"
)

var sfCmd = &cobra.Command{
	Use:   "sf PROFILE.csv",
	Short: "Diffusion coefficients by the Sauer-Fraise method",
	Long:  "Compute D at every sample of a profile and write distance,composition,diffusivity rows.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSF,
}

func init() {
	sfCmd.Flags().String("time", "", "diffusion time, seconds or duration like 50h (required)")
	sfCmd.Flags().String("limits", "", "composition limits XL,XR (default first/last sample)")
	sfCmd.Flags().StringP("out", "o", "", "output CSV (default stdout)")
	_ = sfCmd.MarkFlagRequired("time")
}

func runSF(cmd *cobra.Command, args []string) error {
	p, err := readProfile(args[0])
	if err != nil {
		return err
	}
	t, err := timeFlag(cmd)
	if err != nil {
		return err
	}
	opts, err := limitsFlag(cmd)
	if err != nil {
		return err
	}

	dc, err := flux.SauerFraise(p, t, opts...)
	if err != nil {
		return err
	}
	log.Info("sauer-fraise done", logging.String("profile", p.Name), logging.Float64("time_s", t))

	outPath, _ := cmd.Flags().GetString("out")
	w, err := output(outPath)
	if err != nil {
		return err
	}
	if err = writeColumns(w, []string{"distance", "composition", "diffusivity"}, p.Distance, p.X, dc); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}

func timeFlag(cmd *cobra.Command) (float64, error) {
	s, _ := cmd.Flags().GetString("time")

	return parseTime(s)
}

func limitsFlag(cmd *cobra.Command) ([]flux.Option, error) {
	s, _ := cmd.Flags().GetString("limits")
	if s == "" {
		return nil, nil
	}
	lim, err := parsePair(s)
	if err != nil {
		return nil, err
	}

	return []flux.Option{flux.WithLimits(lim[0], lim[1])}, nil
}
