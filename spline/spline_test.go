// SPDX-License-Identifier: MIT

package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdiff/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromNodes_Constant checks a single node gives a flat model everywhere.
func TestFromNodes_Constant(t *testing.T) {
	m, err := spline.FromNodes([]float64{0.3}, []float64{2e-14})
	require.NoError(t, err)
	assert.Equal(t, spline.Constant, m.Kind)
	for _, x := range []float64{-1, 0.1, 0.3, 0.9, 5, 50} {
		assert.InEpsilon(t, 2e-14, m.D(x), 1e-12, "x=%v", x)
	}

	// a node at zero still gets a distinct companion
	z, err := spline.FromNodes([]float64{0}, []float64{1e-15})
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-15, z.D(0.5), 1e-12)
}

// TestFromNodes_Linear checks log-linear interpolation and extension.
func TestFromNodes_Linear(t *testing.T) {
	m, err := spline.FromNodes([]float64{0.1, 0.3}, []float64{1e-14, 1e-12})
	require.NoError(t, err)
	assert.Equal(t, spline.Linear, m.Kind)
	assert.InEpsilon(t, 1e-14, m.D(0.1), 1e-9)
	assert.InEpsilon(t, 1e-13, m.D(0.2), 1e-9, "geometric midpoint")
	assert.InEpsilon(t, 1e-11, m.D(0.4), 1e-9, "extension past the last node")
}

// TestFromNodes_QuadraticReproducesParabola checks the interpolant passes
// through every node and reproduces a quadratic ln D exactly.
func TestFromNodes_QuadraticReproducesParabola(t *testing.T) {
	lnD := func(x float64) float64 { return -32 + 5*x - 3*x*x }
	nodes := []float64{0.05, 0.2, 0.35, 0.5, 0.7}
	values := make([]float64, len(nodes))
	for i, x := range nodes {
		values[i] = math.Exp(lnD(x))
	}

	m, err := spline.FromNodes(nodes, values)
	require.NoError(t, err)
	assert.Equal(t, spline.InterpolatingQuadratic, m.Kind)
	assert.Equal(t, 2, m.Degree)
	require.NoError(t, m.Validate())

	for i, x := range nodes {
		assert.InEpsilon(t, values[i], m.D(x), 1e-9)
	}
	for _, x := range []float64{0, 0.12, 0.42, 0.6, 0.8} {
		assert.InDelta(t, lnD(x), m.Eval(x), 1e-8, "x=%v", x)
	}
}

// TestFromNodes_Errors covers each input guard.
func TestFromNodes_Errors(t *testing.T) {
	_, err := spline.FromNodes(nil, nil)
	assert.ErrorIs(t, err, spline.ErrNoNodes)

	_, err = spline.FromNodes([]float64{0.1, 0.2}, []float64{1})
	assert.ErrorIs(t, err, spline.ErrLengthMismatch)

	_, err = spline.FromNodes([]float64{0.1, 0.2}, []float64{1, 0})
	assert.ErrorIs(t, err, spline.ErrNonPositive)

	_, err = spline.FromNodes([]float64{0.2, 0.1}, []float64{1, 1})
	assert.ErrorIs(t, err, spline.ErrUnsortedNodes)

	_, err = spline.FromNodes([]float64{math.NaN()}, []float64{1})
	assert.ErrorIs(t, err, spline.ErrNaNInf)

	_, err = spline.FromNodes([]float64{0.1}, []float64{1}, spline.WithDomain(1, 0))
	assert.ErrorIs(t, err, spline.ErrInvalidDomain)
}

// TestFromNodes_WithDomain checks the domain override.
func TestFromNodes_WithDomain(t *testing.T) {
	m, err := spline.FromNodes([]float64{0.2, 0.4}, []float64{1, 2}, spline.WithDomain(0, 0.5))
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, 0.5}, m.Domain)
	assert.True(t, m.Contains(0.05))
	assert.False(t, m.Contains(0.6))
}

// TestFromSamples_NoisyParabola checks a smoothing fit tracks a noisy
// log-quadratic, and that unusable samples are ignored.
func TestFromSamples_NoisyParabola(t *testing.T) {
	lnD := func(x float64) float64 { return -30 + 2*x - 4*x*x }
	var x, d []float64
	for i := 0; i <= 60; i++ {
		v := float64(i) / 60
		noise := 0.02 * math.Sin(float64(i)*1.7)
		x = append(x, v)
		d = append(d, math.Exp(lnD(v)+noise))
	}
	x = append(x, 0.5, 0.5)
	d = append(d, math.NaN(), -1)

	m, err := spline.FromSamples(x, d, [2]float64{0.1, 0.9}, [2]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, spline.SmoothingQuadratic, m.Kind)
	assert.Equal(t, [2]float64{0, 1}, m.Domain)
	assert.Empty(t, m.Nodes)

	for _, v := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		assert.InDelta(t, lnD(v), m.Eval(v), 0.05, "x=%v", v)
	}
}

// TestFromSamples_Errors covers sample-count and range guards.
func TestFromSamples_Errors(t *testing.T) {
	_, err := spline.FromSamples([]float64{0.1, 0.2}, []float64{1, 1}, [2]float64{0, 1}, [2]float64{0, 1})
	assert.ErrorIs(t, err, spline.ErrTooFewSamples)

	_, err = spline.FromSamples([]float64{0.1}, nil, [2]float64{0, 1}, [2]float64{0, 1})
	assert.ErrorIs(t, err, spline.ErrLengthMismatch)

	_, err = spline.FromSamples(nil, nil, [2]float64{0, 1}, [2]float64{1, 1})
	assert.ErrorIs(t, err, spline.ErrInvalidDomain)
}

// TestResample spans the domain evenly.
func TestResample(t *testing.T) {
	m, err := spline.FromNodes([]float64{0, 1}, []float64{1, math.E})
	require.NoError(t, err)

	xs, ds, err := spline.Resample(m, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs, 1e-15)
	assert.InEpsilon(t, math.Exp(0.5), ds[2], 1e-12)

	_, _, err = spline.Resample(m, 1)
	assert.ErrorIs(t, err, spline.ErrTooFewSamples)
}

// TestKind_ParseAndString round-trips exchange tags.
func TestKind_ParseAndString(t *testing.T) {
	for _, k := range []spline.Kind{spline.Constant, spline.Linear, spline.InterpolatingQuadratic, spline.SmoothingQuadratic} {
		got, err := spline.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := spline.ParseKind("cubic")
	assert.ErrorIs(t, err, spline.ErrUnknownKind)
	assert.False(t, spline.SmoothingQuadratic.Interpolating())
}

// TestNew_Validate rebuilds a model from its exchanged parts.
func TestNew_Validate(t *testing.T) {
	src, err := spline.FromNodes([]float64{0.1, 0.2, 0.4}, []float64{1, 2, 3})
	require.NoError(t, err)

	m, err := spline.New(src.Kind, src.Degree, src.Knots, src.Coeffs, src.Domain, src.Nodes, src.Values)
	require.NoError(t, err)
	assert.InDelta(t, src.Eval(0.3), m.Eval(0.3), 1e-15)

	_, err = spline.New(spline.Linear, 1, []float64{0, 1}, []float64{1, 2}, [2]float64{0, 1}, nil, nil)
	assert.ErrorIs(t, err, spline.ErrBadKnots)

	_, err = spline.New(spline.Kind(9), 1, src.Knots, src.Coeffs, src.Domain, nil, nil)
	assert.ErrorIs(t, err, spline.ErrUnknownKind)

	c := src.Clone()
	c.Coeffs[0] = 100
	assert.NotEqual(t, 100.0, src.Coeffs[0])
}
