// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdiff/dmodel"
	"github.com/katalvlaran/lvdiff/flux"
	"github.com/katalvlaran/lvdiff/internal/logging"
)

var hallCmd = &cobra.Command{
	Use:   "hall PROFILE.csv",
	Short: "Diffusion coefficients near the composition limits by Hall's method",
	Long: `Fit u = h*lambda + k on a window at each end of the profile and write the
left and right Hall estimates for every sample. Windows not given with
--left/--right are picked on rendered charts.`,
	Args: cobra.ExactArgs(1),
	RunE: runHall,
}

func init() {
	hallCmd.Flags().String("time", "", "diffusion time, seconds or duration like 50h (required)")
	hallCmd.Flags().String("limits", "", "composition limits XL,XR (default first/last sample)")
	hallCmd.Flags().String("left", "", "left lambda window LO,HI")
	hallCmd.Flags().String("right", "", "right lambda window LO,HI")
	hallCmd.Flags().Float64("portion", flux.DefaultPortion, "share of the solubility range offered for picking at each end")
	hallCmd.Flags().StringP("out", "o", "", "output CSV (default stdout)")
	_ = hallCmd.MarkFlagRequired("time")
}

func runHall(cmd *cobra.Command, args []string) error {
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

	win, err := hallWindow(cmd, p.Name, func(a float64) (flux.Window, error) {
		_, pl := interactive()
		return dmodel.PickHallWindow(p, t, a, pl, opts...)
	})
	if err != nil {
		return err
	}
	left, right, err := flux.Hall(p, t, win, opts...)
	if err != nil {
		return err
	}
	log.Info("hall done",
		logging.String("profile", p.Name),
		logging.Floats("left_window", win.Left[:]),
		logging.Floats("right_window", win.Right[:]))

	outPath, _ := cmd.Flags().GetString("out")
	w, err := output(outPath)
	if err != nil {
		return err
	}
	if err = writeColumns(w, []string{"distance", "composition", "d_left", "d_right"}, p.Distance, p.X, left, right); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}

// hallWindow takes both windows from the flags, or falls back to pick.
func hallWindow(cmd *cobra.Command, name string, pick func(a float64) (flux.Window, error)) (flux.Window, error) {
	ls, _ := cmd.Flags().GetString("left")
	rs, _ := cmd.Flags().GetString("right")
	if ls == "" || rs == "" {
		a, _ := cmd.Flags().GetFloat64("portion")
		log.Debug("picking hall windows", logging.String("profile", name), logging.Float64("portion", a))
		return pick(a)
	}

	var win flux.Window
	var err error
	if win.Left, err = parsePair(ls); err != nil {
		return win, err
	}
	win.Right, err = parsePair(rs)

	return win, err
}
