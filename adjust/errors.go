// SPDX-License-Identifier: MIT

package adjust

import (
	"errors"
	"fmt"
)

var (
	// ErrPhaseIndex indicates a phase index outside [0, Np).
	ErrPhaseIndex = errors.New("adjust: phase index out of range")

	// ErrMissingNodes indicates point mode on a phase without a node list.
	ErrMissingNodes = errors.New("adjust: point mode needs the phase node list")

	// ErrNilInput indicates a nil profile or system.
	ErrNilInput = errors.New("adjust: nil profile or system")

	// ErrInvalidRadius indicates a non-positive point-mode radius.
	ErrInvalidRadius = errors.New("adjust: radius must be positive")

	// ErrDegenerate indicates a multiplier that is not finite and positive,
	// e.g. a zero simulated width.
	ErrDegenerate = errors.New("adjust: degenerate multiplier")

	// ErrEmptySequence indicates a profile without samples passed to Mismatch.
	ErrEmptySequence = errors.New("adjust: empty profile")

	// ErrBadWindow indicates a negative Mismatch band width.
	ErrBadWindow = errors.New("adjust: band width must be ≥ 0")
)

// adjustErrorf wraps err with an operation tag, preserving the sentinel via %w.
func adjustErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
