// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdiff/internal/config"
	"github.com/katalvlaran/lvdiff/internal/logging"
)

// version is overridden at link time.
var version = "dev"

var (
	cfg *config.Config
	log logging.Logger = logging.NewNopLogger()
)

var rootCmd = &cobra.Command{
	Use:               "lvdiff",
	Short:             "Diffusion coefficient modeling for diffusion-couple profiles",
	Long:              `lvdiff extracts diffusivities from measured profiles, models them per phase and adjusts the models against simulations.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { _ = log.Sync() },
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(sfCmd)
	rootCmd.AddCommand(hallCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(evalCmd)

	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error), overrides the config")
}

// main runs the root command, exiting with status 1 on error.
func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and installs the process logger.
func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.Log.Level = lvl
	}
	l, err := logging.NewLogger(c.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	cfg = c
	log = l
	logging.SetDefault(l)
	log.Debug("config loaded", logging.String("file", path), logging.String("plot_dir", c.Plot.Dir))

	return nil
}
