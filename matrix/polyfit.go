// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Polynomial least squares on plain slices, built on LeastSquares.
//   - Coefficients are ordered by ascending power: p(x) = c[0] + c[1]·x + ... + c[deg]·x^deg.

package matrix

import "fmt"

const opPolyfit = "Polyfit"

// Polyfit fits a polynomial of degree deg to the points (x[i], y[i]) in the
// least-squares sense and returns its coefficients in ascending power order.
// Implementation:
//   - Stage 1: Validate deg ≥ 0, equal lengths, finite inputs.
//   - Stage 2: Build the m×(deg+1) Vandermonde design matrix.
//   - Stage 3: Solve with LeastSquares (column-scaled Householder QR).
//
// Errors:
//   - ErrBadDegree, ErrDimensionMismatch, ErrNaNInf,
//     ErrUnderdetermined (fewer points than coefficients), ErrSingular.
//
// Complexity:
//   - Time O(m·deg²), Space O(m·deg).
func Polyfit(x, y []float64, deg int) ([]float64, error) {
	if deg < 0 {
		return nil, matrixErrorf(opPolyfit, ErrBadDegree)
	}
	if len(x) != len(y) {
		return nil, matrixErrorf(opPolyfit, ErrDimensionMismatch)
	}
	if err := ValidateFinite(x); err != nil {
		return nil, matrixErrorf(opPolyfit, err)
	}
	if err := ValidateFinite(y); err != nil {
		return nil, matrixErrorf(opPolyfit, err)
	}
	m, n := len(x), deg+1
	if m < n {
		return nil, matrixErrorf(opPolyfit, fmt.Errorf("%d points for degree %d: %w", m, deg, ErrUnderdetermined))
	}

	data := make([]float64, m*n)
	var p float64
	for i := 0; i < m; i++ {
		p = 1.0
		for j := 0; j < n; j++ {
			data[i*n+j] = p
			p *= x[i]
		}
	}
	v, err := NewDenseFrom(m, n, data)
	if err != nil {
		return nil, matrixErrorf(opPolyfit, err)
	}

	c, err := LeastSquares(v, y)
	if err != nil {
		return nil, matrixErrorf(opPolyfit, err)
	}

	return c, nil
}

// Polyval evaluates the ascending-order polynomial c at x (Horner scheme).
func Polyval(c []float64, x float64) float64 {
	var s float64
	for i := len(c) - 1; i >= 0; i-- {
		s = s*x + c[i]
	}

	return s
}
