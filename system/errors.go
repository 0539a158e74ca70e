// SPDX-License-Identifier: MIT

package system

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySystem indicates a system without phases.
	ErrEmptySystem = errors.New("system: no phases")

	// ErrLengthMismatch indicates ranges, models and node lists of differing counts.
	ErrLengthMismatch = errors.New("system: per-phase length mismatch")

	// ErrInvalidRange indicates a range with Lo > Hi or non-finite bounds.
	ErrInvalidRange = errors.New("system: invalid phase range")

	// ErrOverlap indicates ranges that are unordered or overlapping.
	ErrOverlap = errors.New("system: phase ranges overlap or are unordered")

	// ErrNilModel indicates a missing model for a phase.
	ErrNilModel = errors.New("system: nil model")

	// ErrBadNodes indicates a node list that is unsorted or leaves its range.
	ErrBadNodes = errors.New("system: node list unsorted or outside its range")

	// ErrPhaseIndex indicates a phase index outside [0, Np).
	ErrPhaseIndex = errors.New("system: phase index out of range")

	// ErrOutOfRange indicates a composition covered by no phase.
	ErrOutOfRange = errors.New("system: composition outside every phase")

	// ErrMalformed indicates an exchange document that cannot describe a system.
	ErrMalformed = errors.New("system: malformed document")
)

// systemErrorf wraps err with an operation tag, preserving the sentinel via %w.
func systemErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
