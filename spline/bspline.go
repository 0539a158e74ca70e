// SPDX-License-Identifier: MIT

package spline

import (
	"sort"

	"github.com/katalvlaran/lvdiff/matrix"
)

// span returns the knot interval index l with t[l] ≤ x < t[l+1], clamped to
// [k, n−1] so compositions outside the knot span use the end pieces.
func span(t []float64, n, k int, x float64) int {
	l := sort.Search(len(t), func(i int) bool { return t[i] > x }) - 1
	if l < k {
		l = k
	}
	if l > n-1 {
		l = n - 1
	}

	return l
}

// deBoor evaluates the spline (t, c, k) at x.
func deBoor(t, c []float64, k int, x float64) float64 {
	n := len(c)
	l := span(t, n, k, x)

	d := make([]float64, k+1)
	copy(d, c[l-k:l+1])
	for r := 1; r <= k; r++ {
		for j := k; j >= r; j-- {
			lo := t[j+l-k]
			den := t[j+1+l-r] - lo
			if den == 0 {
				continue
			}
			alpha := (x - lo) / den
			d[j] = d[j-1] + alpha*(d[j]-d[j-1])
		}
	}

	return d[k]
}

// basis returns the span l of x and the k+1 B-spline values
// B_{l−k..l}(x), built with the Cox–de Boor triangle.
func basis(t []float64, n, k int, x float64) (int, []float64) {
	l := span(t, n, k, x)
	N := make([]float64, k+1)
	left := make([]float64, k+1)
	right := make([]float64, k+1)

	N[0] = 1
	for j := 1; j <= k; j++ {
		left[j] = x - t[l+1-j]
		right[j] = t[l+j] - x
		var saved float64
		for r := 0; r < j; r++ {
			den := right[r+1] + left[j-r]
			var tmp float64
			if den != 0 {
				tmp = N[r] / den
			}
			N[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		N[j] = saved
	}

	return l, N
}

// designMatrix builds the m×n collocation matrix of the basis (t, k) at xs.
func designMatrix(t []float64, n, k int, xs []float64) (*matrix.Dense, error) {
	a, err := matrix.NewDense(len(xs), n)
	if err != nil {
		return nil, err
	}
	for i, x := range xs {
		l, N := basis(t, n, k, x)
		for r, v := range N {
			if err = a.Set(i, l-k+r, v); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

// clampedKnots returns [lo×(k+1), interior..., hi×(k+1)].
func clampedKnots(lo, hi float64, k int, interior []float64) []float64 {
	t := make([]float64, 0, 2*(k+1)+len(interior))
	for i := 0; i <= k; i++ {
		t = append(t, lo)
	}
	t = append(t, interior...)
	for i := 0; i <= k; i++ {
		t = append(t, hi)
	}

	return t
}

// interpolationKnots places quadratic interior knots at the midpoints of
// consecutive inner nodes, giving a square, totally positive collocation
// system for nodes x.
func interpolationKnots(x []float64) []float64 {
	n := len(x)
	interior := make([]float64, 0, n-3)
	for j := 1; j <= n-3; j++ {
		interior = append(interior, (x[j]+x[j+1])/2)
	}

	return clampedKnots(x[0], x[n-1], 2, interior)
}
