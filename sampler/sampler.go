// SPDX-License-Identifier: MIT

// Package sampler estimates diffusivity at chosen compositions from a noisy
// Sauer–Fraise curve.
//
// A single node is read off a piecewise-linear interpolation of ln D.
// Several nodes each get a local quadratic fit of ln D over the samples
// between their neighbours, which smooths the scatter typical of
// Sauer–Fraise results.
package sampler

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvdiff/matrix"
	"github.com/katalvlaran/lvdiff/profile"
	"gonum.org/v1/gonum/interp"
)

var (
	// ErrNoNodes indicates an empty node list.
	ErrNoNodes = errors.New("sampler: no nodes")

	// ErrUnsortedNodes indicates nodes that are not strictly ascending.
	ErrUnsortedNodes = errors.New("sampler: nodes must be strictly ascending")

	// ErrLengthMismatch indicates x and d differ in length.
	ErrLengthMismatch = errors.New("sampler: x and d length mismatch")

	// ErrShortCurve indicates fewer than two usable samples for interpolation.
	ErrShortCurve = errors.New("sampler: too few usable samples")
)

const opSample = "Sample"

// localDegree is the degree of the per-node log-diffusivity fit.
const localDegree = 2

// Sample returns the estimated diffusivity at each node.
// Implementation:
//   - one node: piecewise-linear ln D vs X over the whole curve, extended
//     linearly past the end samples.
//   - several nodes: for node i, a degree-2 least-squares fit of ln D over
//     samples strictly inside (nodes[i−1], nodes[i+1]); the first window is
//     unbounded below and the last unbounded above.
//
// Samples with non-finite or non-positive D are ignored.
//
// Errors:
//   - ErrNoNodes, ErrUnsortedNodes, ErrLengthMismatch, ErrShortCurve;
//     an under-sampled window surfaces matrix.ErrSingular or
//     matrix.ErrUnderdetermined.
func Sample(x, d, nodes []float64) ([]float64, error) {
	if len(x) != len(d) {
		return nil, fmt.Errorf("%s: %w", opSample, ErrLengthMismatch)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%s: %w", opSample, ErrNoNodes)
	}
	for i := 1; i < len(nodes); i++ {
		if !(nodes[i] > nodes[i-1]) {
			return nil, fmt.Errorf("%s: %w", opSample, ErrUnsortedNodes)
		}
	}

	xs, logs := usable(x, d)
	if len(nodes) == 1 {
		v, err := interpolate(xs, logs, nodes[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opSample, err)
		}

		return []float64{math.Exp(v)}, nil
	}

	out := make([]float64, len(nodes))
	for i, node := range nodes {
		lo, hi := math.Inf(-1), math.Inf(1)
		if i > 0 {
			lo = nodes[i-1]
		}
		if i < len(nodes)-1 {
			hi = nodes[i+1]
		}
		var wx, wy []float64
		for j, v := range xs {
			if v > lo && v < hi {
				wx = append(wx, v)
				wy = append(wy, logs[j])
			}
		}
		c, err := matrix.Polyfit(wx, wy, localDegree)
		if err != nil {
			return nil, fmt.Errorf("%s: node %d (%g): %w", opSample, i, node, err)
		}
		out[i] = math.Exp(matrix.Polyval(c, node))
	}

	return out, nil
}

// usable returns (x, ln d) sorted by x with unusable samples dropped and
// repeated compositions averaged.
func usable(x, d []float64) ([]float64, []float64) {
	var xs, ys []float64
	for i := range x {
		if d[i] > 0 && !math.IsInf(d[i], 0) && !math.IsNaN(x[i]) && !math.IsInf(x[i], 0) {
			xs = append(xs, x[i])
			ys = append(ys, math.Log(d[i]))
		}
	}

	return profile.SortUnique(xs, ys)
}

// interpolate evaluates the piecewise-linear interpolant of (xs, ys) at v,
// extending the end segments beyond the sampled span.
func interpolate(xs, ys []float64, v float64) (float64, error) {
	n := len(xs)
	if n < 2 {
		return 0, ErrShortCurve
	}
	switch {
	case v < xs[0]:
		return ys[0] + (ys[1]-ys[0])/(xs[1]-xs[0])*(v-xs[0]), nil
	case v > xs[n-1]:
		return ys[n-1] + (ys[n-1]-ys[n-2])/(xs[n-1]-xs[n-2])*(v-xs[n-1]), nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return 0, err
	}

	return pl.Predict(v), nil
}
