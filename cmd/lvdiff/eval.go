// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdiff/system"
)

var evalCmd = &cobra.Command{
	Use:   "eval SYSTEM.toml X...",
	Short: "Evaluate a diffusion system at compositions",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEval,
}

func runEval(_ *cobra.Command, args []string) error {
	sys, err := system.Load(args[0])
	if err != nil {
		return err
	}

	miss := color.New(color.FgYellow)
	for _, arg := range args[1:] {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad composition %q", arg)
		}
		d, err := sys.D(x)
		if err != nil {
			_, _ = miss.Fprintf(os.Stdout, "%g\t%v\n", x, err)
			continue
		}
		ph, _ := sys.Phase(x)
		_, _ = fmt.Fprintf(os.Stdout, "%g\t%d\t%.6e\n", x, ph, d)
	}

	return nil
}
