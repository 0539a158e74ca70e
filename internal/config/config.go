// SPDX-License-Identifier: MIT

// Package config loads lvdiff settings from an optional YAML file and
// LVDIFF_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvdiff/internal/logging"
	"github.com/spf13/viper"
)

// envPrefix maps nested keys like "adjust.radius" to LVDIFF_ADJUST_RADIUS.
const envPrefix = "LVDIFF"

// Defaults.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultAdjustRadius = 0.02
	DefaultAdjustMode   = "point"
	DefaultModelFamily  = "ask"
	DefaultPlotDir      = "."
	DefaultPlotWidth    = 1024
	DefaultPlotHeight   = 640
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full settings tree.
type Config struct {
	Log    logging.Config `mapstructure:"log"`
	Adjust AdjustConfig   `mapstructure:"adjust"`
	Model  ModelConfig    `mapstructure:"model"`
	Plot   PlotConfig     `mapstructure:"plot"`
}

// AdjustConfig holds model adjustment defaults.
type AdjustConfig struct {
	// Radius is the composition half-width of point-mode gradient windows.
	Radius float64 `mapstructure:"radius"`
	// Mode is "point" or "phase".
	Mode string `mapstructure:"mode"`
}

// ModelConfig holds modeling defaults.
type ModelConfig struct {
	// Family is "spline", "smoothing" or "ask" (prompt the user).
	Family string `mapstructure:"family"`
}

// PlotConfig controls chart rendering.
type PlotConfig struct {
	Dir    string `mapstructure:"dir"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("adjust.radius", DefaultAdjustRadius)
	v.SetDefault("adjust.mode", DefaultAdjustMode)
	v.SetDefault("model.family", DefaultModelFamily)
	v.SetDefault("plot.dir", DefaultPlotDir)
	v.SetDefault("plot.width", DefaultPlotWidth)
	v.SetDefault("plot.height", DefaultPlotHeight)

	return v
}

// Load starts from Default, applies the YAML file at path (skipped when
// path is empty) and LVDIFF_* overrides, and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log:    logging.Config{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Adjust: AdjustConfig{Radius: DefaultAdjustRadius, Mode: DefaultAdjustMode},
		Model:  ModelConfig{Family: DefaultModelFamily},
		Plot:   PlotConfig{Dir: DefaultPlotDir, Width: DefaultPlotWidth, Height: DefaultPlotHeight},
	}
}

// Validate checks every field against its accepted values.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if !(c.Adjust.Radius > 0 && c.Adjust.Radius < 1) {
		return fmt.Errorf("%w: adjust.radius %g not in (0, 1)", ErrInvalid, c.Adjust.Radius)
	}
	switch c.Adjust.Mode {
	case "point", "phase":
	default:
		return fmt.Errorf("%w: adjust.mode %q", ErrInvalid, c.Adjust.Mode)
	}
	switch c.Model.Family {
	case "spline", "smoothing", "ask":
	default:
		return fmt.Errorf("%w: model.family %q", ErrInvalid, c.Model.Family)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalid, c.Plot.Width, c.Plot.Height)
	}

	return nil
}
