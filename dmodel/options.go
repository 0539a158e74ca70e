// SPDX-License-Identifier: MIT

package dmodel

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvdiff/internal/logging"
)

// Family selects how phase models are fitted.
type Family int

const (
	// FamilyAsk asks the Prompter, falling back to FamilySpline.
	FamilyAsk Family = iota
	// FamilySpline interpolates diffusivities sampled at nodes.
	FamilySpline
	// FamilySmoothing fits a smoothing spline to the raw curve.
	FamilySmoothing
)

// String returns "ask", "spline" or "smoothing".
func (f Family) String() string {
	switch f {
	case FamilySpline:
		return "spline"
	case FamilySmoothing:
		return "smoothing"
	default:
		return "ask"
	}
}

// ParseFamily maps a family name to its Family.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ask":
		return FamilyAsk, nil
	case "spline":
		return FamilySpline, nil
	case "smoothing":
		return FamilySmoothing, nil
	default:
		return FamilyAsk, fmt.Errorf("dmodel: unknown family %q", s)
	}
}

// Option customizes Model.
type Option func(*options)

type options struct {
	limits   []float64
	nodes    [][]float64
	family   Family
	name     string
	prompter Prompter
	plotter  Plotter
	logger   logging.Logger
}

func defaultOptions() options {
	return options{logger: logging.NewNopLogger()}
}

// WithLimits sets the composition limits (XL, XR). Anything but zero or two
// values is rejected by Model.
func WithLimits(xs ...float64) Option {
	return func(o *options) { o.limits = append([]float64(nil), xs...) }
}

// WithNodes supplies one node list per phase and skips node picking. With
// FamilySmoothing each list gives the fit range by its first and last value.
func WithNodes(nodes [][]float64) Option {
	return func(o *options) { o.nodes = nodes }
}

// WithFamily fixes the model family instead of asking.
func WithFamily(f Family) Option { return func(o *options) { o.family = f } }

// WithName names the resulting system.
func WithName(name string) Option { return func(o *options) { o.name = name } }

// WithPrompter sets the question-answer collaborator.
func WithPrompter(p Prompter) Option { return func(o *options) { o.prompter = p } }

// WithPlotter sets the chart collaborator.
func WithPlotter(p Plotter) Option { return func(o *options) { o.plotter = p } }

// WithLogger routes progress messages to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
