// SPDX-License-Identifier: MIT

package profile

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

const opDistanceFunc = "NewDistanceFunc"

// DistanceFunc maps a composition to a distance by piecewise-linear
// interpolation over the samples it was built from. Outside the sampled
// composition span the first/last segment is extended linearly, so the
// function is defined for every finite composition.
type DistanceFunc struct {
	pl               interp.PiecewiseLinear
	x                []float64 // strictly increasing compositions
	d                []float64 // distances at x
	slopeLo, slopeHi float64   // end-segment slopes for extrapolation
}

// NewDistanceFunc builds the distance-vs-composition function of (dis, x).
// Implementation:
//   - Stage 1: SortUnique on (x, dis): order by composition, average duplicates.
//   - Stage 2: Fit gonum's PiecewiseLinear on the cleaned knots.
//   - Stage 3: Cache the end slopes used for extrapolation.
//
// Errors:
//   - ErrLengthMismatch; ErrShortProfile when fewer than two distinct
//     compositions remain.
func NewDistanceFunc(dis, x []float64) (*DistanceFunc, error) {
	if len(dis) != len(x) {
		return nil, profileErrorf(opDistanceFunc, ErrLengthMismatch)
	}
	xs, ds := SortUnique(x, dis)
	if len(xs) < 2 {
		return nil, profileErrorf(opDistanceFunc, ErrShortProfile)
	}

	f := &DistanceFunc{x: xs, d: ds}
	if err := f.pl.Fit(xs, ds); err != nil {
		return nil, profileErrorf(opDistanceFunc, err)
	}
	n := len(xs)
	f.slopeLo = (ds[1] - ds[0]) / (xs[1] - xs[0])
	f.slopeHi = (ds[n-1] - ds[n-2]) / (xs[n-1] - xs[n-2])

	return f, nil
}

// At returns the distance at composition v.
func (f *DistanceFunc) At(v float64) float64 {
	n := len(f.x)
	switch {
	case v < f.x[0]:
		return f.d[0] + f.slopeLo*(v-f.x[0])
	case v > f.x[n-1]:
		return f.d[n-1] + f.slopeHi*(v-f.x[n-1])
	default:
		return f.pl.Predict(v)
	}
}

// SortUnique returns (x, y) ordered by ascending x with non-finite pairs
// dropped and y averaged over repeated x. The inputs are not modified.
func SortUnique(x, y []float64) ([]float64, []float64) {
	idx := make([]int, 0, len(x))
	for i := range x {
		if finite(x[i]) && finite(y[i]) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	xs := make([]float64, 0, len(idx))
	ys := make([]float64, 0, len(idx))
	var count int
	for _, i := range idx {
		n := len(xs)
		if n > 0 && xs[n-1] == x[i] {
			count++
			ys[n-1] += (y[i] - ys[n-1]) / float64(count)
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
		count = 1
	}

	return xs, ys
}
