// SPDX-License-Identifier: MIT

package spline

// DefaultResample is the number of points a smoothing fit is resampled on
// before it is re-interpolated.
const DefaultResample = 30

// Option customizes model construction.
type Option func(*options)

type options struct {
	domain    *[2]float64
	smoothing float64 // < 0 means "number of samples"
	resample  int
}

func defaultOptions() options {
	return options{smoothing: -1, resample: DefaultResample}
}

// WithDomain overrides the model domain (defaults to the node span for
// FromNodes).
func WithDomain(lo, hi float64) Option {
	return func(o *options) { o.domain = &[2]float64{lo, hi} }
}

// WithSmoothing sets the residual budget of a smoothing fit: the fit stops
// refining once Σ (ln D − model)² ≤ s. Negative s restores the default,
// which is the number of samples.
func WithSmoothing(s float64) Option {
	return func(o *options) { o.smoothing = s }
}

// WithResample sets how many points a smoothing fit is resampled on.
// Values below three are ignored.
func WithResample(n int) Option {
	return func(o *options) {
		if n >= 3 {
			o.resample = n
		}
	}
}
