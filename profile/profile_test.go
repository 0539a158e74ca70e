// SPDX-License-Identifier: MIT

package profile_test

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/lvdiff/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoPhase returns a small profile with one interface at distance 2.
func twoPhase(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.New(
		[]float64{0, 1, 2, 2, 3, 4},
		[]float64{0, 0.1, 0.2, 0.6, 0.8, 1},
		"couple",
	)
	require.NoError(t, err)

	return p
}

// TestNew_Validation covers every construction guard.
func TestNew_Validation(t *testing.T) {
	_, err := profile.New([]float64{0, 1}, []float64{0}, "")
	assert.ErrorIs(t, err, profile.ErrLengthMismatch)

	_, err = profile.New([]float64{0}, []float64{0}, "")
	assert.ErrorIs(t, err, profile.ErrShortProfile)

	_, err = profile.New([]float64{0, math.NaN()}, []float64{0, 1}, "")
	assert.ErrorIs(t, err, profile.ErrNaNInf)

	_, err = profile.New([]float64{0, 2, 1}, []float64{0, 1, 2}, "")
	assert.ErrorIs(t, err, profile.ErrNonMonotonic)

	_, err = profile.New([]float64{0, 1, 1, 1}, []float64{0, 1, 2, 3}, "")
	assert.ErrorIs(t, err, profile.ErrNonMonotonic, "three samples on one distance")
}

// TestNew_CopiesInputs ensures later mutation of the caller's slices is not observed.
func TestNew_CopiesInputs(t *testing.T) {
	dis := []float64{0, 1, 2}
	x := []float64{0, 0.5, 1}
	p, err := profile.New(dis, x, "copy")
	require.NoError(t, err)

	dis[0], x[0] = 99, 99
	assert.Equal(t, 0.0, p.Distance[0])
	assert.Equal(t, 0.0, p.X[0])
}

// TestProfile_Interfaces checks interface detection and phase counting.
func TestProfile_Interfaces(t *testing.T) {
	p := twoPhase(t)
	assert.Equal(t, []int{2}, p.InterfaceIndices())
	assert.Equal(t, []float64{2}, p.Interfaces())
	assert.Equal(t, 2, p.PhaseCount())

	xl, xr := p.Limits()
	assert.Equal(t, 0.0, xl)
	assert.Equal(t, 1.0, xr)

	idx := p.Indices(0.15, 0.7)
	assert.Equal(t, []int{2, 3}, idx)
	dis, x := p.Select(idx)
	assert.Equal(t, []float64{2, 2}, dis)
	assert.Equal(t, []float64{0.2, 0.6}, x)
}

// TestProfile_MatanoPlane checks the plane of a symmetric linear profile sits
// in the middle, and that degenerate limits are rejected.
func TestProfile_MatanoPlane(t *testing.T) {
	p, err := profile.New([]float64{-2, -1, 0, 1, 2}, []float64{0, 0.25, 0.5, 0.75, 1}, "lin")
	require.NoError(t, err)

	m, err := p.MatanoPlane(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m, 1e-12)

	_, err = p.MatanoPlane(0.5, 0.5)
	assert.ErrorIs(t, err, profile.ErrInvalidLimits)
}

// TestDistanceFunc_InterpolateAndExtrapolate covers interior interpolation,
// linear extension beyond the span and duplicate averaging.
func TestDistanceFunc_InterpolateAndExtrapolate(t *testing.T) {
	// decreasing composition with distance, one duplicated composition
	f, err := profile.NewDistanceFunc(
		[]float64{0, 1, 2, 3, 4},
		[]float64{1, 0.75, 0.5, 0.5, 0},
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, f.At(1), 1e-12)
	assert.InDelta(t, 1.0, f.At(0.75), 1e-12)
	assert.InDelta(t, 2.5, f.At(0.5), 1e-12, "duplicate composition averages distances")
	assert.InDelta(t, -4.0, f.At(2), 1e-12, "linear extension past the high end")

	_, err = profile.NewDistanceFunc([]float64{0, 1}, []float64{0.3, 0.3})
	assert.ErrorIs(t, err, profile.ErrShortProfile)
}

// TestSortUnique drops non-finite pairs and averages repeats.
func TestSortUnique(t *testing.T) {
	xs, ys := profile.SortUnique(
		[]float64{3, 1, 2, 1, math.NaN()},
		[]float64{30, 10, 20, 14, 5},
	)
	assert.Equal(t, []float64{1, 2, 3}, xs)
	assert.Equal(t, []float64{12, 20, 30}, ys)
}

// TestCoerceTime covers accepted types and every rejection path.
func TestCoerceTime(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{3600.0, 3600},
		{float32(2), 2},
		{7200, 7200},
		{int64(5), 5},
		{uint(9), 9},
		{" 1e5 ", 1e5},
		{2 * time.Hour, 7200},
	}
	for _, c := range cases {
		got, err := profile.CoerceTime(c.in)
		require.NoError(t, err, "%v", c.in)
		assert.Equal(t, c.want, got)
	}

	for _, bad := range []any{"abc", -1.0, 0, math.Inf(1), []int{1}, nil} {
		_, err := profile.CoerceTime(bad)
		assert.ErrorIs(t, err, profile.ErrInvalidTime, "%v", bad)
	}
}

// TestCSV_RoundTrip reads a commented, headed table and writes it back.
func TestCSV_RoundTrip(t *testing.T) {
	src := "# couple A-B\ndistance,composition\n0,0\n1, 0.5\n2,1\n"
	p, err := profile.ReadCSV(strings.NewReader(src), "ab")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, p.Distance)
	assert.Equal(t, []float64{0, 0.5, 1}, p.X)

	var buf bytes.Buffer
	require.NoError(t, profile.WriteCSV(&buf, p))
	assert.Equal(t, "distance,composition\n0,0\n1,0.5\n2,1\n", buf.String())

	_, err = profile.ReadCSV(strings.NewReader("0,0\n1,x\n"), "bad")
	assert.Error(t, err)
}

// TestCurve_Phase pairs a profile with diffusivities and slices a phase.
func TestCurve_Phase(t *testing.T) {
	p := twoPhase(t)
	_, err := profile.NewCurve(p, []float64{1})
	assert.ErrorIs(t, err, profile.ErrLengthMismatch)

	c, err := profile.NewCurve(p, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	x, d := c.Phase(0.6, 1)
	assert.Equal(t, []float64{0.6, 0.8, 1}, x)
	assert.Equal(t, []float64{4, 5, 6}, d)
}
