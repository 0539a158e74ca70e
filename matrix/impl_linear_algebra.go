// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the fitting
// code: matrix-vector product, Doolittle LU, square solve and Householder
// least squares. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - Inputs are never mutated; kernels work on private *Dense copies.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU routines.
const ZeroPivot = 0.0

// RankTol is the relative threshold below which a Householder diagonal entry
// of R is treated as zero (rank deficiency) in LeastSquares.
const RankTol = 1e-12

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec       = "MatVec"
	opLU           = "LU"
	opSolve        = "Solve"
	opLeastSquares = "LeastSquares"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns a private *Dense copy of m.
// *Dense inputs are cloned with a single copy; other implementations are read
// through At in fixed i→j order.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Behavior highlights:
//   - Deterministic loops; zero-pivot guard enforced.
//
// Inputs:
//   - m: square Matrix (n×n).
//
// Returns:
//   - *Dense: L (unit lower triangular).
//   - *Dense: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (if U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Pivot-free elimination is stable for totally positive matrices such as
//     B-spline collocation matrices; general inputs may need pivoting upstream.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U
	n := a.r
	L, _ := NewDense(n, n)
	U, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		baseI = i * n
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection)
		pivot = U.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Solve returns x such that A·x = b for square A, via LU and two triangular sweeps.
// Implementation:
//   - Stage 1: Validate A square and len(b) == n.
//   - Stage 2: Factor A = L*U (no pivoting).
//   - Stage 3: Forward-substitute L·y = b (unit diagonal), back-substitute U·x = y.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	L, U, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Forward: L·y = b
	y := make([]float64, n)
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = b[i]
		for k = 0; k < i; k++ {
			sum -= L.data[i*n+k] * y[k]
		}
		y[i] = sum
	}

	// Backward: U·x = y
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= U.data[i*n+k] * x[k]
		}
		x[i] = sum / U.data[i*n+i]
	}

	return x, nil
}

// LeastSquares returns x minimizing ‖A·x − b‖₂ for a tall A (m ≥ n).
// Implementation:
//   - Stage 1: Validate A, len(b) == m, m ≥ n.
//   - Stage 2: Scale every column to unit norm (conditioning for Vandermonde-like designs).
//   - Stage 3: Householder reflections k=0..n-1 applied to A (forming R) and to b (forming Qᵀb).
//   - Stage 4: Rank guard on diag(R), back-substitute R·z = (Qᵀb)[:n], unscale z.
//
// Behavior highlights:
//   - Inputs are not mutated; a single working copy is reflected in place.
//   - Deterministic column order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnderdetermined (m < n),
//     ErrSingular (zero column or |R[k,k]| ≤ RankTol·max|R[i,i]|).
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
func LeastSquares(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	m, n := a.Rows(), a.Cols()
	if err := ValidateVecLen(b, m); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if m < n {
		return nil, matrixErrorf(opLeastSquares, ErrUnderdetermined)
	}
	w, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	rhs := make([]float64, m)
	copy(rhs, b)

	// Stage 2: column scaling.
	var i, j, k int
	var s, v float64
	scale := make([]float64, n)
	for j = 0; j < n; j++ {
		s = ZeroSum
		for i = 0; i < m; i++ {
			v = w.data[i*n+j]
			s += v * v
		}
		if s == 0 {
			return nil, matrixErrorf(opLeastSquares, ErrSingular)
		}
		scale[j] = math.Sqrt(s)
		for i = 0; i < m; i++ {
			w.data[i*n+j] /= scale[j]
		}
	}

	// Stage 3: Householder reflections.
	hv := make([]float64, m)
	var norm, alpha, beta, tau, dot float64
	for k = 0; k < n; k++ {
		norm = ZeroSum
		for i = k; i < m; i++ {
			v = w.data[i*n+k]
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		alpha = -math.Copysign(norm, w.data[k*n+k])
		for i = k; i < m; i++ {
			hv[i] = w.data[i*n+k]
		}
		hv[k] -= alpha
		beta = ZeroSum
		for i = k; i < m; i++ {
			beta += hv[i] * hv[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		// reflect the remaining columns
		for j = k; j < n; j++ {
			dot = ZeroSum
			for i = k; i < m; i++ {
				dot += hv[i] * w.data[i*n+j]
			}
			for i = k; i < m; i++ {
				w.data[i*n+j] -= tau * hv[i] * dot
			}
		}
		// reflect the right-hand side
		dot = ZeroSum
		for i = k; i < m; i++ {
			dot += hv[i] * rhs[i]
		}
		for i = k; i < m; i++ {
			rhs[i] -= tau * hv[i] * dot
		}
	}

	// Stage 4: rank guard + back substitution.
	var rmax float64
	for k = 0; k < n; k++ {
		rmax = math.Max(rmax, math.Abs(w.data[k*n+k]))
	}
	for k = 0; k < n; k++ {
		if math.Abs(w.data[k*n+k]) <= RankTol*rmax {
			return nil, matrixErrorf(opLeastSquares, ErrSingular)
		}
	}
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		s = rhs[i]
		for k = i + 1; k < n; k++ {
			s -= w.data[i*n+k] * x[k]
		}
		x[i] = s / w.data[i*n+i]
	}
	for j = 0; j < n; j++ {
		x[j] /= scale[j]
	}

	return x, nil
}
