// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"
	"strings"
)

// Kind tags the family a Model was built as.
type Kind int

const (
	// Constant is a flat model through a single node.
	Constant Kind = iota

	// Linear is a degree-1 interpolation through two nodes.
	Linear

	// InterpolatingQuadratic is a degree-2 interpolation through ≥3 nodes.
	InterpolatingQuadratic

	// SmoothingQuadratic is a degree-2 least-squares fit to raw samples.
	SmoothingQuadratic
)

var kindNames = [...]string{
	Constant:               "constant",
	Linear:                 "linear",
	InterpolatingQuadratic: "interpolating-quadratic",
	SmoothingQuadratic:     "smoothing-quadratic",
}

// String returns the exchange tag of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Interpolating reports whether models of kind k are defined by nodes.
func (k Kind) Interpolating() bool { return k != SmoothingQuadratic }

// ParseKind maps an exchange tag back to its Kind (case-insensitive).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}

	return 0, splineErrorf("ParseKind", fmt.Errorf("%q: %w", s, ErrUnknownKind))
}

// Model is ln D(X) for one phase, stored as a B-spline.
//
// Fields:
//   - Kind   — construction family.
//   - Degree — spline degree k (1 or 2).
//   - Knots  — non-decreasing knot vector, len = len(Coeffs)+Degree+1.
//   - Coeffs — B-spline coefficients in log space.
//   - Domain — composition interval the model is valid on.
//   - Nodes, Values — defining nodes and their diffusivities (interpolating kinds only).
type Model struct {
	Kind   Kind
	Degree int
	Knots  []float64
	Coeffs []float64
	Domain [2]float64
	Nodes  []float64
	Values []float64
}

// New assembles a Model from an exchanged representation and validates it.
//
// Errors:
//   - ErrUnknownKind, ErrBadKnots, ErrInvalidDomain, ErrLengthMismatch.
func New(kind Kind, degree int, knots, coeffs []float64, domain [2]float64, nodes, values []float64) (*Model, error) {
	m := &Model{
		Kind:   kind,
		Degree: degree,
		Knots:  append([]float64(nil), knots...),
		Coeffs: append([]float64(nil), coeffs...),
		Domain: domain,
		Nodes:  append([]float64(nil), nodes...),
		Values: append([]float64(nil), values...),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks the structural invariants of m.
func (m *Model) Validate() error {
	const op = "Model.Validate"
	if m.Kind < Constant || m.Kind > SmoothingQuadratic {
		return splineErrorf(op, ErrUnknownKind)
	}
	if m.Degree < 1 || len(m.Coeffs) < m.Degree+1 || len(m.Knots) != len(m.Coeffs)+m.Degree+1 {
		return splineErrorf(op, ErrBadKnots)
	}
	for i := 1; i < len(m.Knots); i++ {
		if m.Knots[i] < m.Knots[i-1] {
			return splineErrorf(op, ErrBadKnots)
		}
	}
	if m.Knots[m.Degree+1] == m.Knots[m.Degree] && m.Knots[len(m.Knots)-m.Degree-1] == m.Knots[m.Degree] {
		return splineErrorf(op, ErrBadKnots) // empty span
	}
	if err := validateDomain(m.Domain); err != nil {
		return splineErrorf(op, err)
	}
	if len(m.Nodes) != len(m.Values) {
		return splineErrorf(op, ErrLengthMismatch)
	}

	return nil
}

// Eval returns ln D at composition x.
func (m *Model) Eval(x float64) float64 { return deBoor(m.Knots, m.Coeffs, m.Degree, x) }

// D returns the diffusivity at composition x.
func (m *Model) D(x float64) float64 { return math.Exp(m.Eval(x)) }

// Contains reports whether x lies inside the model domain.
func (m *Model) Contains(x float64) bool { return x >= m.Domain[0] && x <= m.Domain[1] }

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	return &Model{
		Kind:   m.Kind,
		Degree: m.Degree,
		Knots:  append([]float64(nil), m.Knots...),
		Coeffs: append([]float64(nil), m.Coeffs...),
		Domain: m.Domain,
		Nodes:  append([]float64(nil), m.Nodes...),
		Values: append([]float64(nil), m.Values...),
	}
}

func validateDomain(d [2]float64) error {
	if !finite(d[0]) || !finite(d[1]) || d[0] >= d[1] {
		return ErrInvalidDomain
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
