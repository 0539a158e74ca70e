// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel the diffusivity
// pipeline is built on.
//
// The matrix package provides:
//
//   - Dense: row-major storage with safe At/Set accessors (errors, never panics).
//   - LU: Doolittle factorization without pivoting, and Solve for square systems.
//     B-spline collocation matrices are totally positive, so the pivot-free
//     elimination used here is stable for them.
//   - LeastSquares: Householder QR for tall (m ≥ n) systems with column scaling.
//   - Polyfit / Polyval: polynomial least squares on plain slices.
//
// All kernels validate their inputs up front and return package sentinels
// (ErrDimensionMismatch, ErrSingular, ...) wrapped with the operation name, so
// callers match them with errors.Is.
package matrix
