// SPDX-License-Identifier: MIT

package adjust

import (
	"math"

	"github.com/katalvlaran/lvdiff/profile"
)

const opMismatch = "Mismatch"

// MismatchOptions configures Mismatch.
//
// Fields:
//   - Window       — Sakoe–Chiba band |i−j| ≤ Window; 0 means unconstrained.
//   - SlopePenalty — extra cost of non-diagonal steps.
type MismatchOptions struct {
	Window       int
	SlopePenalty float64
}

// Mismatch measures how far sim is from ref by dynamic time warping over
// their samples.
//
// Each sample is the point (distance/L, X), L being the distance span of
// ref, so both axes are of order one. The cost of matching two samples is
// their Euclidean distance; the result is the optimal warping cost divided
// by the total sample count, so identical profiles score 0.
// Implementation:
//   - Stage 1: D[0][0] = 0, first row and column +∞.
//   - Stage 2: D[i][j] = cost(i, j) + min(D[i−1][j]+p, D[i][j−1]+p, D[i−1][j−1]),
//     keeping only two rows.
//
// Complexity:
//   - Time O(n·m), Space O(m).
//
// Errors:
//   - ErrNilInput, ErrEmptySequence, ErrBadWindow.
func Mismatch(ref, sim *profile.Profile, opts *MismatchOptions) (float64, error) {
	if ref == nil || sim == nil {
		return 0, adjustErrorf(opMismatch, ErrNilInput)
	}
	n, m := ref.Len(), sim.Len()
	if n == 0 || m == 0 {
		return 0, adjustErrorf(opMismatch, ErrEmptySequence)
	}

	window, penalty := 0, 0.0
	if opts != nil {
		if opts.Window < 0 {
			return 0, adjustErrorf(opMismatch, ErrBadWindow)
		}
		window, penalty = opts.Window, opts.SlopePenalty
	}

	scale := ref.Distance[n-1] - ref.Distance[0]
	if scale == 0 {
		scale = 1
	}
	cost := func(i, j int) float64 {
		dd := (ref.Distance[i] - sim.Distance[j]) / scale
		dx := ref.X[i] - sim.X[j]

		return math.Hypot(dd, dx)
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if window > 0 && abs(i-j) > window {
				curr[j] = inf
				continue
			}
			curr[j] = cost(i-1, j-1) + min(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m] / float64(n+m), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
