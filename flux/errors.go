// SPDX-License-Identifier: MIT

package flux

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTime indicates a diffusion time that is not finite and positive.
	ErrInvalidTime = errors.New("flux: time must be finite and positive")

	// ErrInvalidLimits indicates XL == XR or non-finite composition limits.
	ErrInvalidLimits = errors.New("flux: invalid composition limits")

	// ErrShortProfile indicates fewer than three samples.
	ErrShortProfile = errors.New("flux: profile needs at least three samples")

	// ErrInvalidWindow indicates a fitting interval with non-finite bounds
	// or fewer than two samples strictly inside it.
	ErrInvalidWindow = errors.New("flux: invalid fitting window")

	// ErrInvalidPortion indicates a display portion outside (0, 1).
	ErrInvalidPortion = errors.New("flux: portion must lie in (0, 1)")
)

// fluxErrorf wraps err with an operation tag, preserving the sentinel via %w.
func fluxErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
