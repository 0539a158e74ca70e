// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvdiff/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used by numeric assertions in this package.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based copy path in kernels.
type hide struct{ matrix.Matrix }

// MustDense builds an r×c *Dense from row-major data or fails the test.
func MustDense(t *testing.T, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}
