// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdiff/dmodel"
	"github.com/katalvlaran/lvdiff/internal/logging"
	"github.com/katalvlaran/lvdiff/system"
)

var modelCmd = &cobra.Command{
	Use:   "model PROFILE.csv",
	Short: "Model the diffusivity of every phase as a spline",
	Long: `Build a diffusion system from a profile: Sauer-Fraise diffusivities are
fitted per phase, either on nodes given with --nodes or interactively.
The system is written as TOML.`,
	Args: cobra.ExactArgs(1),
	RunE: runModel,
}

func init() {
	modelCmd.Flags().String("time", "", "diffusion time, seconds or duration like 50h (required)")
	modelCmd.Flags().String("limits", "", "composition limits XL,XR (default first/last sample)")
	modelCmd.Flags().String("family", "", "spline, smoothing or ask (default from config)")
	modelCmd.Flags().String("nodes", "", "per-phase node lists, phases separated by ';'")
	modelCmd.Flags().String("name", "", "system name (default <profile>_<hours>h_modeled)")
	modelCmd.Flags().StringP("out", "o", "", "output TOML (default stdout)")
	_ = modelCmd.MarkFlagRequired("time")
}

func runModel(cmd *cobra.Command, args []string) error {
	p, err := readProfile(args[0])
	if err != nil {
		return err
	}
	t, err := timeFlag(cmd)
	if err != nil {
		return err
	}

	famName, _ := cmd.Flags().GetString("family")
	if famName == "" {
		famName = cfg.Model.Family
	}
	family, err := dmodel.ParseFamily(famName)
	if err != nil {
		return err
	}
	nodeSpec, _ := cmd.Flags().GetString("nodes")
	nodes, err := parseNodeLists(nodeSpec)
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")

	pr, pl := interactive()
	opts := []dmodel.Option{
		dmodel.WithFamily(family),
		dmodel.WithNodes(nodes),
		dmodel.WithName(name),
		dmodel.WithPrompter(pr),
		dmodel.WithPlotter(pl),
		dmodel.WithLogger(log),
	}
	if s, _ := cmd.Flags().GetString("limits"); s != "" {
		lim, err := parsePair(s)
		if err != nil {
			return err
		}
		opts = append(opts, dmodel.WithLimits(lim[0], lim[1]))
	}

	sys, err := dmodel.Model(p, t, opts...)
	if err != nil {
		return err
	}
	log.Info("system modeled", logging.String("name", sys.Name), logging.Int("phases", sys.Np()))
	pr.Notef("modeled %s: %d phase(s), chart %s", sys.Name, sys.Np(), pl.Last())

	outPath, _ := cmd.Flags().GetString("out")
	w, err := output(outPath)
	if err != nil {
		return err
	}
	if err = system.Encode(w, sys); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}
