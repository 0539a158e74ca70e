// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoNodes indicates an empty node list.
	ErrNoNodes = errors.New("spline: at least one node is required")

	// ErrLengthMismatch indicates nodes and values (or x and d) differ in length.
	ErrLengthMismatch = errors.New("spline: length mismatch")

	// ErrUnsortedNodes indicates nodes that are not strictly ascending.
	ErrUnsortedNodes = errors.New("spline: nodes must be strictly ascending")

	// ErrNonPositive indicates a diffusivity ≤ 0, which has no logarithm.
	ErrNonPositive = errors.New("spline: diffusivity must be positive")

	// ErrNaNInf indicates a non-finite node or value.
	ErrNaNInf = errors.New("spline: NaN or Inf input")

	// ErrTooFewSamples indicates fewer than three usable samples for a smoothing fit.
	ErrTooFewSamples = errors.New("spline: too few samples for a quadratic fit")

	// ErrInvalidDomain indicates a domain or fit range with lo ≥ hi or non-finite bounds.
	ErrInvalidDomain = errors.New("spline: invalid domain")

	// ErrBadKnots indicates an inconsistent knot/coefficient/degree triple.
	ErrBadKnots = errors.New("spline: inconsistent knots, coefficients and degree")

	// ErrUnknownKind indicates an unrecognized model kind tag.
	ErrUnknownKind = errors.New("spline: unknown model kind")
)

// splineErrorf wraps err with an operation tag, preserving the sentinel via %w.
func splineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
