// SPDX-License-Identifier: MIT

package dmodel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLimits indicates composition limits that are neither empty
	// nor a pair.
	ErrInvalidLimits = errors.New("dmodel: limits must be empty or a pair")

	// ErrNodesLength indicates a supplied node list whose length is not Np.
	ErrNodesLength = errors.New("dmodel: one node list per phase is required")

	// ErrNoCollaborator indicates interactive work without a prompter or plotter.
	ErrNoCollaborator = errors.New("dmodel: interactive modeling needs a prompter and a plotter")

	// ErrInvalidAnswer indicates a prompt answer that cannot be parsed.
	ErrInvalidAnswer = errors.New("dmodel: invalid answer")
)

// dmodelErrorf wraps err with an operation tag, preserving the sentinel via %w.
func dmodelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
