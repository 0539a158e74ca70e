// SPDX-License-Identifier: MIT

package flux

import (
	"github.com/katalvlaran/lvdiff/profile"
	"gonum.org/v1/gonum/integrate"
)

const opSauerFraise = "SauerFraise"

// micron2 converts µm²/s to m²/s.
const micron2 = 1e-12

// SauerFraise returns the diffusion coefficient at every sample of p after
// diffusing for t seconds.
// Implementation:
//   - Stage 1: Y1 = (X−XL)/(XR−XL), Y2 = 1−Y1.
//   - Stage 2: dY1/dx by central differences; the end values repeat their
//     neighbours.
//   - Stage 3: D(i) = [Y2(i)·∫₀ⁱ Y1 dx + Y1(i)·∫ᵢᴺ Y2 dx] / (2·t·dY1/dx(i)),
//     trapezoidal integrals, scaled from µm² to m².
//   - Stage 4: D[0] and D[n−1] repeat their neighbours.
//
// The result has one entry per sample and may contain NaN or Inf where the
// profile is flat.
//
// Errors:
//   - ErrShortProfile, ErrInvalidTime, ErrInvalidLimits.
func SauerFraise(p *profile.Profile, t float64, opts ...Option) ([]float64, error) {
	n := p.Len()
	if n < 3 {
		return nil, fluxErrorf(opSauerFraise, ErrShortProfile)
	}
	if err := profile.ValidateTime(t); err != nil {
		return nil, fluxErrorf(opSauerFraise, ErrInvalidTime)
	}
	xl, xr, err := resolve(p, opts)
	if err != nil {
		return nil, fluxErrorf(opSauerFraise, err)
	}

	dis := p.Distance
	y1 := normalized(p, xl, xr)
	y2 := make([]float64, n)
	for i, v := range y1 {
		y2[i] = 1 - v
	}

	grad := make([]float64, n)
	for i := 1; i < n-1; i++ {
		grad[i] = (y1[i+1] - y1[i-1]) / (dis[i+1] - dis[i-1])
	}
	grad[0], grad[n-1] = grad[1], grad[n-2]

	dc := make([]float64, n)
	for i := 0; i < n; i++ {
		var left, right float64
		if i > 0 {
			left = integrate.Trapezoidal(dis[:i+1], y1[:i+1])
		}
		if i < n-1 {
			right = integrate.Trapezoidal(dis[i:], y2[i:])
		}
		dc[i] = (y2[i]*left + y1[i]*right) / grad[i] / 2 / t * micron2
	}
	dc[0], dc[n-1] = dc[1], dc[n-2]

	return dc, nil
}
