// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdiff/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPolyfit_Quadratic recovers an exact parabola on composition-like abscissae.
func TestPolyfit_Quadratic(t *testing.T) {
	x := []float64{0.30, 0.32, 0.35, 0.37, 0.40, 0.44}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = -30 + 4*v - 2*v*v
	}

	c, err := matrix.Polyfit(x, y, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-30, 4, -2}, c, 1e-7)
	assert.InDelta(t, -30+4*0.5-2*0.25, matrix.Polyval(c, 0.5), 1e-9)
}

// TestPolyfit_Errors covers degree, length, finiteness and sample-count guards.
func TestPolyfit_Errors(t *testing.T) {
	_, err := matrix.Polyfit([]float64{1, 2}, []float64{1, 2}, -1)
	assert.ErrorIs(t, err, matrix.ErrBadDegree)

	_, err = matrix.Polyfit([]float64{1, 2}, []float64{1}, 1)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Polyfit([]float64{1, math.NaN()}, []float64{1, 2}, 1)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Polyfit([]float64{1, 2}, []float64{1, 2}, 2)
	assert.ErrorIs(t, err, matrix.ErrUnderdetermined)

	// three points sharing one abscissa cannot determine a parabola
	_, err = matrix.Polyfit([]float64{1, 1, 1}, []float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestPolyval_Horner checks ascending-order evaluation and the empty polynomial.
func TestPolyval_Horner(t *testing.T) {
	assert.Equal(t, 0.0, matrix.Polyval(nil, 3))
	assert.Equal(t, 1.0+2*3+3*9, matrix.Polyval([]float64{1, 2, 3}, 3))
}
