// SPDX-License-Identifier: MIT

package profile

// Curve is a raw diffusivity curve: parallel distance, composition and
// diffusivity (m²/s) arrays of the profile it was computed from. D may hold
// NaN or Inf on plateaus, where the composition gradient vanishes.
type Curve struct {
	Distance []float64
	X        []float64
	D        []float64
}

// NewCurve pairs a profile with a diffusivity array of the same length.
func NewCurve(p *Profile, d []float64) (*Curve, error) {
	if len(d) != p.Len() {
		return nil, profileErrorf("NewCurve", ErrLengthMismatch)
	}

	return &Curve{Distance: p.Distance, X: p.X, D: d}, nil
}

// Phase returns the (composition, diffusivity) samples with lo ≤ X ≤ hi.
func (c *Curve) Phase(lo, hi float64) (x, d []float64) {
	for i, v := range c.X {
		if v >= lo && v <= hi {
			x = append(x, v)
			d = append(d, c.D[i])
		}
	}

	return x, d
}
