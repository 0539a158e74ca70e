// SPDX-License-Identifier: MIT

package system

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvdiff/spline"
)

const (
	opNew      = "New"
	opValidate = "Validate"
	opD        = "D"
	opReplace  = "Replace"
)

// PhaseRange is the composition interval [Lo, Hi] of one phase.
type PhaseRange struct {
	Lo, Hi float64
}

// Contains reports whether x lies in [Lo, Hi].
func (r PhaseRange) Contains(x float64) bool { return x >= r.Lo && x <= r.Hi }

// Width returns Hi − Lo.
func (r PhaseRange) Width() float64 { return r.Hi - r.Lo }

// DiffusionSystem pairs each phase range with its diffusivity model.
//
// Nodes is nil when the system carries no node lists; otherwise it has one
// entry per phase, and an entry may itself be nil.
type DiffusionSystem struct {
	Ranges []PhaseRange
	Models []*spline.Model
	Nodes  [][]float64
	Name   string
}

// New assembles and validates a system.
func New(ranges []PhaseRange, models []*spline.Model, nodes [][]float64, name string) (*DiffusionSystem, error) {
	s := &DiffusionSystem{
		Ranges: append([]PhaseRange(nil), ranges...),
		Models: append([]*spline.Model(nil), models...),
		Name:   name,
	}
	if nodes != nil {
		s.Nodes = make([][]float64, len(nodes))
		for i, n := range nodes {
			if n != nil {
				s.Nodes[i] = append([]float64(nil), n...)
			}
		}
	}
	if err := s.Validate(); err != nil {
		return nil, systemErrorf(opNew, err)
	}

	return s, nil
}

// Np returns the number of phases.
func (s *DiffusionSystem) Np() int { return len(s.Ranges) }

// HasNodes reports whether phase ph carries a node list.
func (s *DiffusionSystem) HasNodes(ph int) bool {
	return ph >= 0 && ph < len(s.Nodes) && len(s.Nodes[ph]) > 0
}

// Validate checks the structural invariants of s.
// Implementation:
//   - Stage 1: at least one phase; models (and node lists, when present)
//     match the range count.
//   - Stage 2: every range finite with Lo ≤ Hi; ranges ascending and
//     non-overlapping (touching ends are allowed).
//   - Stage 3: models present and structurally valid.
//   - Stage 4: node lists strictly ascending and inside their range.
func (s *DiffusionSystem) Validate() error {
	np := len(s.Ranges)
	if np == 0 {
		return systemErrorf(opValidate, ErrEmptySystem)
	}
	if len(s.Models) != np || (s.Nodes != nil && len(s.Nodes) != np) {
		return systemErrorf(opValidate, ErrLengthMismatch)
	}
	for i, r := range s.Ranges {
		if math.IsNaN(r.Lo) || math.IsNaN(r.Hi) || math.IsInf(r.Lo, 0) || math.IsInf(r.Hi, 0) || r.Lo > r.Hi {
			return systemErrorf(opValidate, fmt.Errorf("phase %d: %w", i, ErrInvalidRange))
		}
		if i > 0 && r.Lo < s.Ranges[i-1].Hi {
			return systemErrorf(opValidate, fmt.Errorf("phase %d: %w", i, ErrOverlap))
		}
	}
	for i, m := range s.Models {
		if m == nil {
			return systemErrorf(opValidate, fmt.Errorf("phase %d: %w", i, ErrNilModel))
		}
		if err := m.Validate(); err != nil {
			return systemErrorf(opValidate, fmt.Errorf("phase %d: %w", i, err))
		}
	}
	for i, nodes := range s.Nodes {
		r := s.Ranges[i]
		for j, x := range nodes {
			if !r.Contains(x) || (j > 0 && x <= nodes[j-1]) {
				return systemErrorf(opValidate, fmt.Errorf("phase %d: %w", i, ErrBadNodes))
			}
		}
	}

	return nil
}

// Phase returns the index of the first phase whose range contains x.
func (s *DiffusionSystem) Phase(x float64) (int, bool) {
	for i, r := range s.Ranges {
		if r.Contains(x) {
			return i, true
		}
	}

	return -1, false
}

// D returns the diffusivity at composition x, using the model of the phase
// that contains it.
//
// Errors:
//   - ErrOutOfRange when x lies between or outside every phase.
func (s *DiffusionSystem) D(x float64) (float64, error) {
	ph, ok := s.Phase(x)
	if !ok {
		return 0, systemErrorf(opD, fmt.Errorf("x=%g: %w", x, ErrOutOfRange))
	}

	return s.Models[ph].D(x), nil
}

// Replace swaps the model of phase ph for m.
//
// Errors:
//   - ErrPhaseIndex, ErrNilModel, or m's validation error.
func (s *DiffusionSystem) Replace(ph int, m *spline.Model) error {
	if ph < 0 || ph >= s.Np() {
		return systemErrorf(opReplace, ErrPhaseIndex)
	}
	if m == nil {
		return systemErrorf(opReplace, ErrNilModel)
	}
	if err := m.Validate(); err != nil {
		return systemErrorf(opReplace, err)
	}
	s.Models[ph] = m

	return nil
}

// Clone returns a deep copy of s.
func (s *DiffusionSystem) Clone() *DiffusionSystem {
	c := &DiffusionSystem{
		Ranges: append([]PhaseRange(nil), s.Ranges...),
		Models: make([]*spline.Model, len(s.Models)),
		Name:   s.Name,
	}
	for i, m := range s.Models {
		if m != nil {
			c.Models[i] = m.Clone()
		}
	}
	if s.Nodes != nil {
		c.Nodes = make([][]float64, len(s.Nodes))
		for i, n := range s.Nodes {
			if n != nil {
				c.Nodes[i] = append([]float64(nil), n...)
			}
		}
	}

	return c
}
