// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvdiff/matrix"
	"github.com/katalvlaran/lvdiff/profile"
	"gonum.org/v1/gonum/floats"
)

const (
	opFromNodes   = "FromNodes"
	opFromSamples = "FromSamples"
	opResample    = "Resample"
)

// constantStep is the relative offset of the companion node a Constant
// model is built with.
const constantStep = 0.01

// FromNodes builds an interpolating model through (nodes, values).
// Implementation:
//   - one node: Constant, a flat degree-1 line through a companion node;
//   - two nodes: Linear;
//   - three or more: InterpolatingQuadratic.
//
// Values are diffusivities; the fit happens on ln(values).
//
// Errors:
//   - ErrNoNodes, ErrLengthMismatch, ErrNaNInf, ErrUnsortedNodes,
//     ErrNonPositive, ErrInvalidDomain.
func FromNodes(nodes, values []float64, opts ...Option) (*Model, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(nodes)
	if n == 0 {
		return nil, splineErrorf(opFromNodes, ErrNoNodes)
	}
	if len(values) != n {
		return nil, splineErrorf(opFromNodes, ErrLengthMismatch)
	}
	logs := make([]float64, n)
	for i := range nodes {
		if !finite(nodes[i]) || !finite(values[i]) {
			return nil, splineErrorf(opFromNodes, ErrNaNInf)
		}
		if values[i] <= 0 {
			return nil, splineErrorf(opFromNodes, fmt.Errorf("node %d: %w", i, ErrNonPositive))
		}
		if i > 0 && nodes[i] <= nodes[i-1] {
			return nil, splineErrorf(opFromNodes, ErrUnsortedNodes)
		}
		logs[i] = math.Log(values[i])
	}

	m := &Model{
		Nodes:  append([]float64(nil), nodes...),
		Values: append([]float64(nil), values...),
	}
	switch {
	case n == 1:
		step := constantStep * math.Abs(nodes[0])
		if step == 0 {
			step = constantStep
		}
		m.Kind = Constant
		m.Degree = 1
		m.Knots = []float64{nodes[0], nodes[0], nodes[0] + step, nodes[0] + step}
		m.Coeffs = []float64{logs[0], logs[0]}
		m.Domain = [2]float64{nodes[0], nodes[0] + step}
	case n == 2:
		m.Kind = Linear
		m.Degree = 1
		m.Knots = []float64{nodes[0], nodes[0], nodes[1], nodes[1]}
		m.Coeffs = logs
		m.Domain = [2]float64{nodes[0], nodes[1]}
	default:
		t, c, err := interpolateQuadratic(nodes, logs)
		if err != nil {
			return nil, splineErrorf(opFromNodes, err)
		}
		m.Kind = InterpolatingQuadratic
		m.Degree = 2
		m.Knots, m.Coeffs = t, c
		m.Domain = [2]float64{nodes[0], nodes[n-1]}
	}

	if o.domain != nil {
		if err := validateDomain(*o.domain); err != nil {
			return nil, splineErrorf(opFromNodes, err)
		}
		m.Domain = *o.domain
	}

	return m, nil
}

// FromSamples builds a SmoothingQuadratic model from raw (x, d) samples.
// Implementation:
//   - Stage 1: keep samples inside fitRange with finite, positive d.
//   - Stage 2: least-squares quadratic B-spline of ln d on domain, adding
//     interior knots where residuals concentrate until the residual sum
//     drops to the smoothing budget.
//   - Stage 3: resample the fit on evenly spaced points across domain and
//     re-interpolate them, so the stored model has well-spread nodes.
//
// Errors:
//   - ErrLengthMismatch, ErrInvalidDomain, ErrTooFewSamples.
func FromSamples(x, d []float64, fitRange, domain [2]float64, opts ...Option) (*Model, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(x) != len(d) {
		return nil, splineErrorf(opFromSamples, ErrLengthMismatch)
	}
	if err := validateDomain(domain); err != nil {
		return nil, splineErrorf(opFromSamples, err)
	}
	if err := validateDomain(fitRange); err != nil {
		return nil, splineErrorf(opFromSamples, err)
	}

	var xs, ys []float64
	for i := range x {
		if x[i] < fitRange[0] || x[i] > fitRange[1] || !finite(d[i]) || d[i] <= 0 {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, math.Log(d[i]))
	}
	xs, ys = profile.SortUnique(xs, ys)
	if len(xs) < 3 {
		return nil, splineErrorf(opFromSamples, ErrTooFewSamples)
	}

	s := o.smoothing
	if s < 0 {
		s = float64(len(xs))
	}
	t, c, err := smoothQuadratic(xs, ys, domain, s)
	if err != nil {
		return nil, splineErrorf(opFromSamples, err)
	}

	nodes := floats.Span(make([]float64, o.resample), domain[0], domain[1])
	logs := make([]float64, len(nodes))
	for i, v := range nodes {
		logs[i] = deBoor(t, c, 2, v)
	}
	rt, rc, err := interpolateQuadratic(nodes, logs)
	if err != nil {
		return nil, splineErrorf(opFromSamples, err)
	}

	return &Model{
		Kind:   SmoothingQuadratic,
		Degree: 2,
		Knots:  rt,
		Coeffs: rc,
		Domain: domain,
	}, nil
}

// Resample evaluates m on n evenly spaced compositions across its domain.
func Resample(m *Model, n int) (xs, ds []float64, err error) {
	if n < 2 {
		return nil, nil, splineErrorf(opResample, ErrTooFewSamples)
	}
	xs = floats.Span(make([]float64, n), m.Domain[0], m.Domain[1])
	ds = make([]float64, n)
	for i, v := range xs {
		ds[i] = m.D(v)
	}

	return xs, ds, nil
}

// interpolateQuadratic solves the collocation system for a degree-2 spline
// through (x, y). x must be strictly ascending with len ≥ 3.
func interpolateQuadratic(x, y []float64) (t, c []float64, err error) {
	const k = 2
	t = interpolationKnots(x)
	a, err := designMatrix(t, len(x), k, x)
	if err != nil {
		return nil, nil, err
	}
	c, err = matrix.Solve(a, y)
	if err != nil {
		return nil, nil, err
	}

	return t, c, nil
}

// smoothQuadratic fits a least-squares degree-2 spline to sorted (x, y) on
// domain, inserting knots until the residual sum is within s.
func smoothQuadratic(x, y []float64, domain [2]float64, s float64) (t, c []float64, err error) {
	const k = 2
	maxInterior := (len(x) - k - 1) / 2

	var interior []float64
	t, c, res, err := leastSquaresFit(x, y, domain, interior)
	if err != nil {
		return nil, nil, err
	}
	for sumSquares(res) > s && len(interior) < maxInterior {
		knot, ok := nextKnot(x, res, domain, interior)
		if !ok {
			break
		}
		cand := append(append([]float64(nil), interior...), knot)
		sort.Float64s(cand)
		ct, cc, cres, cerr := leastSquaresFit(x, y, domain, cand)
		if cerr != nil {
			break // keep the last solvable fit
		}
		interior, t, c, res = cand, ct, cc, cres
	}

	return t, c, nil
}

// leastSquaresFit returns the fitted spline and its residuals.
func leastSquaresFit(x, y []float64, domain [2]float64, interior []float64) (t, c, res []float64, err error) {
	const k = 2
	t = clampedKnots(domain[0], domain[1], k, interior)
	n := len(interior) + k + 1
	a, err := designMatrix(t, n, k, x)
	if err != nil {
		return nil, nil, nil, err
	}
	c, err = matrix.LeastSquares(a, y)
	if err != nil {
		return nil, nil, nil, err
	}
	fitted, err := matrix.MatVec(a, c)
	if err != nil {
		return nil, nil, nil, err
	}
	res = make([]float64, len(x))
	for i := range x {
		res[i] = y[i] - fitted[i]
	}

	return t, c, res, nil
}

// nextKnot picks the knot interval carrying the largest squared residual
// among those holding at least two samples, and returns the median sample
// abscissa inside it.
func nextKnot(x, res []float64, domain [2]float64, interior []float64) (float64, bool) {
	bounds := make([]float64, 0, len(interior)+2)
	bounds = append(bounds, domain[0])
	bounds = append(bounds, interior...)
	bounds = append(bounds, domain[1])

	best, bestSum := -1, -1.0
	var bestIdx []int
	for j := 0; j+1 < len(bounds); j++ {
		lo, hi := bounds[j], bounds[j+1]
		var idx []int
		var sum float64
		for i, v := range x {
			if v > lo && v < hi {
				idx = append(idx, i)
				sum += res[i] * res[i]
			}
		}
		if len(idx) >= 2 && sum > bestSum {
			best, bestSum, bestIdx = j, sum, idx
		}
	}
	if best < 0 {
		return 0, false
	}

	knot := x[bestIdx[len(bestIdx)/2]]
	if knot <= bounds[best] || knot >= bounds[best+1] {
		return 0, false
	}

	return knot, true
}

func sumSquares(v []float64) float64 {
	var s float64
	for _, r := range v {
		s += r * r
	}

	return s
}
