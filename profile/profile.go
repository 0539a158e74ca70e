// SPDX-License-Identifier: MIT

package profile

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// MinSamples is the smallest profile New accepts.
const MinSamples = 2

const (
	opNew    = "New"
	opMatano = "MatanoPlane"
)

// Profile is an immutable concentration-vs-distance profile.
//
// Fields are exported for read access by the estimators; they must not be
// modified after New returns. New copies its inputs.
type Profile struct {
	Distance []float64 // µm, non-decreasing; a repeated value marks an interface
	X        []float64 // composition (mole fraction)
	Name     string
}

// New validates and copies (dis, x) into a Profile.
// Implementation:
//   - Stage 1: equal lengths, at least MinSamples, finite values.
//   - Stage 2: distance non-decreasing; a repeat may join only two samples.
//   - Stage 3: defensive copies.
//
// Errors:
//   - ErrLengthMismatch, ErrShortProfile, ErrNaNInf, ErrNonMonotonic.
func New(dis, x []float64, name string) (*Profile, error) {
	if len(dis) != len(x) {
		return nil, profileErrorf(opNew, ErrLengthMismatch)
	}
	if len(dis) < MinSamples {
		return nil, profileErrorf(opNew, ErrShortProfile)
	}
	for i := range dis {
		if !finite(dis[i]) || !finite(x[i]) {
			return nil, profileErrorf(opNew, ErrNaNInf)
		}
	}
	for i := 1; i < len(dis); i++ {
		if dis[i] < dis[i-1] {
			return nil, profileErrorf(opNew, ErrNonMonotonic)
		}
		if i >= 2 && dis[i] == dis[i-1] && dis[i-1] == dis[i-2] {
			return nil, profileErrorf(opNew, ErrNonMonotonic)
		}
	}

	p := &Profile{
		Distance: make([]float64, len(dis)),
		X:        make([]float64, len(x)),
		Name:     name,
	}
	copy(p.Distance, dis)
	copy(p.X, x)

	return p, nil
}

// Len returns the number of samples.
func (p *Profile) Len() int { return len(p.Distance) }

// Limits returns the first and last composition of the profile.
func (p *Profile) Limits() (xl, xr float64) { return p.X[0], p.X[len(p.X)-1] }

// InterfaceIndices returns every i with Distance[i] == Distance[i+1].
func (p *Profile) InterfaceIndices() []int {
	var idx []int
	for i := 0; i+1 < len(p.Distance); i++ {
		if p.Distance[i] == p.Distance[i+1] {
			idx = append(idx, i)
		}
	}

	return idx
}

// Interfaces returns the distances at which phase interfaces sit.
func (p *Profile) Interfaces() []float64 {
	idx := p.InterfaceIndices()
	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = p.Distance[i]
	}

	return out
}

// PhaseCount returns the number of phases present in the profile.
func (p *Profile) PhaseCount() int { return len(p.InterfaceIndices()) + 1 }

// Indices returns the sample indices whose composition lies in [lo, hi].
func (p *Profile) Indices(lo, hi float64) []int {
	var idx []int
	for i, v := range p.X {
		if v >= lo && v <= hi {
			idx = append(idx, i)
		}
	}

	return idx
}

// Select returns the samples at idx as parallel (distance, composition) slices.
func (p *Profile) Select(idx []int) (dis, x []float64) {
	dis = make([]float64, len(idx))
	x = make([]float64, len(idx))
	for k, i := range idx {
		dis[k], x[k] = p.Distance[i], p.X[i]
	}

	return dis, x
}

// MatanoPlane returns the Matano plane position for limits (xl, xr):
//
//	(∫ X d(dis) − dis_end·xr + dis_0·xl) / (xl − xr)
//
// Errors:
//   - ErrInvalidLimits when xl == xr or either is non-finite.
func (p *Profile) MatanoPlane(xl, xr float64) (float64, error) {
	if !finite(xl) || !finite(xr) || xl == xr {
		return 0, profileErrorf(opMatano, ErrInvalidLimits)
	}
	n := p.Len()
	area := integrate.Trapezoidal(p.Distance, p.X)

	return (area - p.Distance[n-1]*xr + p.Distance[0]*xl) / (xl - xr), nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
