// SPDX-License-Identifier: MIT

package flux

import (
	"math"

	"github.com/katalvlaran/lvdiff/profile"
	"gonum.org/v1/gonum/stat"
)

const (
	opHall            = "Hall"
	opHallCoordinates = "HallCoordinates"
	opHallRange       = "HallRange"
)

// DefaultPortion is the share of the solubility range shown at each end
// when picking Hall fitting windows.
const DefaultPortion = 0.25

// micron converts µm to m.
const micron = 1e6

// Window holds the λ intervals a Hall fit uses at each end of the profile.
type Window struct {
	Left  [2]float64
	Right [2]float64
}

// HallCoordinates returns λ = (x − x_M)/√t, u = erfinv(2Y − 1) and Y for
// every sample, x_M being the Matano plane of the limits.
//
// Errors:
//   - ErrShortProfile, ErrInvalidTime, ErrInvalidLimits.
func HallCoordinates(p *profile.Profile, t float64, opts ...Option) (lambda, u, y []float64, err error) {
	if p.Len() < 3 {
		return nil, nil, nil, fluxErrorf(opHallCoordinates, ErrShortProfile)
	}
	if err = profile.ValidateTime(t); err != nil {
		return nil, nil, nil, fluxErrorf(opHallCoordinates, ErrInvalidTime)
	}
	xl, xr, err := resolve(p, opts)
	if err != nil {
		return nil, nil, nil, fluxErrorf(opHallCoordinates, err)
	}
	matano, err := p.MatanoPlane(xl, xr)
	if err != nil {
		return nil, nil, nil, fluxErrorf(opHallCoordinates, ErrInvalidLimits)
	}

	y = normalized(p, xl, xr)
	lambda = make([]float64, p.Len())
	u = make([]float64, p.Len())
	st := math.Sqrt(t)
	for i := range y {
		lambda[i] = (p.Distance[i] - matano) / st / micron
		u[i] = math.Erfinv(2*y[i] - 1)
	}

	return lambda, u, y, nil
}

// Hall estimates diffusion coefficients near both composition limits.
// Implementation:
//   - Stage 1: HallCoordinates.
//   - Stage 2: least-squares line u = h·λ + k on samples strictly inside
//     win.Left and win.Right.
//   - Stage 3: D_left  = 1/(4h₁²)·(1 + 2k₁/√π·exp(u²)·Y),
//     D_right = 1/(4h₂²)·(1 − 2k₂/√π·exp(u²)·(1−Y)).
//
// Both results span every sample; only the part of left below the left
// window and the part of right above the right window are meaningful.
//
// Errors:
//   - as HallCoordinates, plus ErrInvalidWindow.
func Hall(p *profile.Profile, t float64, win Window, opts ...Option) (left, right []float64, err error) {
	lambda, u, y, err := HallCoordinates(p, t, opts...)
	if err != nil {
		return nil, nil, fluxErrorf(opHall, err)
	}
	h1, k1, err := fitLine(lambda, u, win.Left)
	if err != nil {
		return nil, nil, fluxErrorf(opHall, err)
	}
	h2, k2, err := fitLine(lambda, u, win.Right)
	if err != nil {
		return nil, nil, fluxErrorf(opHall, err)
	}

	left = make([]float64, len(y))
	right = make([]float64, len(y))
	for i := range y {
		e := math.Exp(u[i] * u[i])
		left[i] = 0.25 / (h1 * h1) * (1 + 2*k1/math.SqrtPi*e*y[i])
		right[i] = 0.25 / (h2 * h2) * (1 - 2*k2/math.SqrtPi*e*(1-y[i]))
	}

	return left, right, nil
}

// HallRange returns the sample indices bounding the portion a of the
// solubility range at each end: id1 is the sample closest to
// XL(1−a)+XR·a and id2 the one closest to XL·a+XR(1−a). Samples before id1
// and after id2 are the ones offered for window picking.
//
// Errors:
//   - ErrInvalidPortion, ErrInvalidLimits.
func HallRange(p *profile.Profile, a float64, opts ...Option) (id1, id2 int, err error) {
	if !(a > 0 && a < 1) {
		return 0, 0, fluxErrorf(opHallRange, ErrInvalidPortion)
	}
	xl, xr, err := resolve(p, opts)
	if err != nil {
		return 0, 0, fluxErrorf(opHallRange, err)
	}
	x1 := xl*(1-a) + xr*a
	x2 := xl*a + xr*(1-a)

	return argClosest(p.X, x1), argClosest(p.X, x2), nil
}

// fitLine regresses u on λ over samples with λ strictly inside w and
// returns slope h and intercept k.
func fitLine(lambda, u []float64, w [2]float64) (h, k float64, err error) {
	lo, hi := math.Min(w[0], w[1]), math.Max(w[0], w[1])
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 0, ErrInvalidWindow
	}
	var xs, ys []float64
	for i, l := range lambda {
		if l > lo && l < hi && !math.IsInf(u[i], 0) && !math.IsNaN(u[i]) {
			xs = append(xs, l)
			ys = append(ys, u[i])
		}
	}
	if len(xs) < 2 {
		return 0, 0, ErrInvalidWindow
	}
	k, h = stat.LinearRegression(xs, ys, nil, false)

	return h, k, nil
}

// argClosest returns the first index of the value closest to v.
func argClosest(xs []float64, v float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, x := range xs {
		if d := math.Abs(x - v); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
