// SPDX-License-Identifier: MIT

package adjust

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvdiff/internal/logging"
)

// DefaultRadius is the composition half-width of point-mode windows.
const DefaultRadius = 0.02

// Mode selects how multipliers are derived.
type Mode int

const (
	// PointMode scales each node by its own gradient ratio.
	PointMode Mode = iota

	// PhaseMode scales every node of the phase by one factor, keeping the
	// shape of the diffusivity curve.
	PhaseMode
)

// String returns "point" or "phase".
func (m Mode) String() string {
	if m == PhaseMode {
		return "phase"
	}

	return "point"
}

// ParseMode maps "point" or "phase" to its Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point":
		return PointMode, nil
	case "phase":
		return PhaseMode, nil
	default:
		return PointMode, fmt.Errorf("adjust: unknown mode %q", s)
	}
}

// Option customizes Adjust.
type Option func(*options)

type options struct {
	mode      Mode
	magnitude *float64
	radius    float64
	logger    logging.Logger
}

func defaultOptions() options {
	return options{mode: PointMode, radius: DefaultRadius, logger: logging.NewNopLogger()}
}

// WithMode selects point or phase mode (default point).
func WithMode(m Mode) Option { return func(o *options) { o.mode = m } }

// WithMagnitude scales by 10^d in phase mode and in the consumed branch.
func WithMagnitude(d float64) Option {
	return func(o *options) { o.magnitude = &d }
}

// WithRadius sets the point-mode half-width (default 0.02).
func WithRadius(r float64) Option { return func(o *options) { o.radius = r } }

// WithLogger routes branch decisions to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
