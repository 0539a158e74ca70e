// SPDX-License-Identifier: MIT

package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates distance and composition slices differ in length.
	ErrLengthMismatch = errors.New("profile: distance and composition lengths differ")

	// ErrShortProfile indicates fewer samples than an operation requires.
	ErrShortProfile = errors.New("profile: too few samples")

	// ErrNonMonotonic indicates a decreasing distance, or more than two samples
	// sharing one distance.
	ErrNonMonotonic = errors.New("profile: distance must be non-decreasing with isolated repeats")

	// ErrNaNInf indicates a non-finite distance or composition sample.
	ErrNaNInf = errors.New("profile: NaN or Inf sample")

	// ErrInvalidTime indicates a diffusion time that cannot be coerced to a
	// positive finite number of seconds.
	ErrInvalidTime = errors.New("profile: time must be a positive finite number of seconds")

	// ErrInvalidLimits indicates composition limits that are equal or non-finite.
	ErrInvalidLimits = errors.New("profile: invalid composition limits")
)

// profileErrorf wraps err with an operation tag, preserving the sentinel via %w.
func profileErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
