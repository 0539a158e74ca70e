// SPDX-License-Identifier: MIT

package flux

import (
	"math"

	"github.com/katalvlaran/lvdiff/profile"
)

// Option customizes an estimator call.
type Option func(*options)

type options struct {
	limits *[2]float64
}

// WithLimits sets the left and right composition limits (XL, XR).
// By default they are the first and last composition of the profile.
func WithLimits(xl, xr float64) Option {
	return func(o *options) { o.limits = &[2]float64{xl, xr} }
}

// resolve applies opts and returns validated limits.
func resolve(p *profile.Profile, opts []Option) (xl, xr float64, err error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.limits != nil {
		xl, xr = o.limits[0], o.limits[1]
	} else {
		xl, xr = p.Limits()
	}
	if math.IsNaN(xl) || math.IsNaN(xr) || math.IsInf(xl, 0) || math.IsInf(xr, 0) || xl == xr {
		return 0, 0, ErrInvalidLimits
	}

	return xl, xr, nil
}

// normalized returns Y = (X − xl)/(xr − xl) for every sample.
func normalized(p *profile.Profile, xl, xr float64) []float64 {
	y := make([]float64, p.Len())
	for i, v := range p.X {
		y[i] = (v - xl) / (xr - xl)
	}

	return y
}
