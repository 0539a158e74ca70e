// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdiff/adjust"
	"github.com/katalvlaran/lvdiff/internal/logging"
	"github.com/katalvlaran/lvdiff/system"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust REFERENCE.csv SIMULATED.csv SYSTEM.toml",
	Short: "Adjust one phase model so a re-simulation tracks the reference",
	Long: `Compare a simulated profile with the measured one, rescale the diffusivity
of one phase and write the updated system.`,
	Args: cobra.ExactArgs(3),
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().Int("phase", 0, "phase index to adjust")
	adjustCmd.Flags().String("mode", "", "point or phase (default from config)")
	adjustCmd.Flags().Float64("magnitude", 0, "scale by 10^magnitude in phase mode and for consumed phases")
	adjustCmd.Flags().Float64("radius", 0, "point-mode half-width (default from config)")
	adjustCmd.Flags().Int("window", 0, "Sakoe-Chiba band of the mismatch report, 0 for none")
	adjustCmd.Flags().StringP("out", "o", "", "output TOML (default: overwrite SYSTEM)")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	ref, err := readProfile(args[0])
	if err != nil {
		return err
	}
	sim, err := readProfile(args[1])
	if err != nil {
		return err
	}
	sys, err := system.Load(args[2])
	if err != nil {
		return err
	}

	modeName, _ := cmd.Flags().GetString("mode")
	if modeName == "" {
		modeName = cfg.Adjust.Mode
	}
	mode, err := adjust.ParseMode(modeName)
	if err != nil {
		return err
	}
	radius := cfg.Adjust.Radius
	if cmd.Flags().Changed("radius") {
		radius, _ = cmd.Flags().GetFloat64("radius")
	}
	opts := []adjust.Option{adjust.WithMode(mode), adjust.WithRadius(radius), adjust.WithLogger(log)}
	if cmd.Flags().Changed("magnitude") {
		mag, _ := cmd.Flags().GetFloat64("magnitude")
		opts = append(opts, adjust.WithMagnitude(mag))
	}

	window, _ := cmd.Flags().GetInt("window")
	before, err := adjust.Mismatch(ref, sim, &adjust.MismatchOptions{Window: window})
	if err != nil {
		return err
	}

	ph, _ := cmd.Flags().GetInt("phase")
	res, err := adjust.Adjust(ref, sim, sys, ph, opts...)
	if err != nil {
		return err
	}
	if err = sys.Replace(ph, res.Model); err != nil {
		return err
	}
	log.Info("phase adjusted",
		logging.Int("phase", ph),
		logging.String("branch", string(res.Branch)),
		logging.Int("rate", res.Rate),
		logging.Float64("mismatch", before))

	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(os.Stderr, "mismatch before adjustment: %.6g\n", before)
	_, _ = fmt.Fprintf(os.Stderr, "phase %d: %s branch, rate %d\n", ph, res.Branch, res.Rate)
	for i, x := range res.Nodes {
		_, _ = fmt.Fprintf(os.Stderr, "  X=%.4f  x%.4g\n", x, res.Multipliers[i])
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		outPath = args[2]
	}

	return system.Save(outPath, sys)
}
