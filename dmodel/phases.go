// SPDX-License-Identifier: MIT

package dmodel

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvdiff/profile"
	"github.com/katalvlaran/lvdiff/system"
)

// outlierDecades is how far from the phase mean a diffusivity may stray
// before it is reset.
const outlierDecades = 5

// PhaseRanges splits [xl, xr] at the interfaces of p. Each interface
// contributes the compositions on both of its sides; all bounds are sorted
// and paired into ascending ranges.
func PhaseRanges(p *profile.Profile, xl, xr float64) []system.PhaseRange {
	bounds := []float64{xl, xr}
	for _, i := range p.InterfaceIndices() {
		bounds = append(bounds, p.X[i], p.X[i+1])
	}
	sort.Float64s(bounds)

	ranges := make([]system.PhaseRange, len(bounds)/2)
	for i := range ranges {
		ranges[i] = system.PhaseRange{Lo: bounds[2*i], Hi: bounds[2*i+1]}
	}

	return ranges
}

// ClampOutliers resets d[i] for i in idx to the mean of the usable values
// when it is NaN, Inf, non-positive, or more than five decades from that
// mean. Usable values are finite and positive. It returns how many values
// were reset; nothing changes when no value is usable.
func ClampOutliers(d []float64, idx []int) int {
	var sum float64
	var n int
	for _, i := range idx {
		if usable(d[i]) {
			sum += d[i]
			n++
		}
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)

	var reset int
	for _, i := range idx {
		if !usable(d[i]) || math.Abs(math.Log10(d[i]/mean)) > outlierDecades {
			d[i] = mean
			reset++
		}
	}

	return reset
}

func usable(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
