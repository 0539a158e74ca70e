// SPDX-License-Identifier: MIT

package system

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/lvdiff/spline"
)

const (
	opEncode = "Encode"
	opDecode = "Decode"
)

// document is the TOML layout of a DiffusionSystem.
type document struct {
	Name  string     `toml:"name,omitempty"`
	Phase []phaseDoc `toml:"phase"`
}

type phaseDoc struct {
	Range  []float64 `toml:"range"`
	Kind   string    `toml:"kind"`
	Nodes  []float64 `toml:"nodes,omitempty"`
	Degree int       `toml:"degree"`
	Knots  []float64 `toml:"knots"`
	Coeffs []float64 `toml:"coeffs"`
	Domain []float64 `toml:"domain"`

	// defining nodes of interpolating models
	SplineNodes  []float64 `toml:"spline-nodes,omitempty"`
	SplineValues []float64 `toml:"spline-values,omitempty"`
}

// Encode writes s to w as a TOML document.
func Encode(w io.Writer, s *DiffusionSystem) error {
	if err := s.Validate(); err != nil {
		return systemErrorf(opEncode, err)
	}
	doc := document{Name: s.Name, Phase: make([]phaseDoc, s.Np())}
	for i, r := range s.Ranges {
		m := s.Models[i]
		pd := phaseDoc{
			Range:        []float64{r.Lo, r.Hi},
			Kind:         m.Kind.String(),
			Degree:       m.Degree,
			Knots:        m.Knots,
			Coeffs:       m.Coeffs,
			Domain:       []float64{m.Domain[0], m.Domain[1]},
			SplineNodes:  m.Nodes,
			SplineValues: m.Values,
		}
		if s.HasNodes(i) {
			pd.Nodes = s.Nodes[i]
		}
		doc.Phase[i] = pd
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return systemErrorf(opEncode, err)
	}

	return nil
}

// Decode reads a TOML document from r and rebuilds the system.
// Implementation:
//   - Stage 1: decode, rejecting keys the layout does not know.
//   - Stage 2: rebuild every model through spline.New.
//   - Stage 3: node lists become the nullable Nodes field: it stays nil
//     unless at least one phase lists nodes.
//
// Errors:
//   - ErrMalformed for syntax, unknown keys or bad pairs; validation errors
//     of the rebuilt system otherwise.
func Decode(r io.Reader) (*DiffusionSystem, error) {
	var doc document
	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, systemErrorf(opDecode, fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, systemErrorf(opDecode, fmt.Errorf("%w: unknown keys %s", ErrMalformed, strings.Join(keys, ", ")))
	}
	if len(doc.Phase) == 0 {
		return nil, systemErrorf(opDecode, ErrEmptySystem)
	}

	ranges := make([]PhaseRange, len(doc.Phase))
	models := make([]*spline.Model, len(doc.Phase))
	nodes := make([][]float64, len(doc.Phase))
	withNodes := false
	for i, pd := range doc.Phase {
		if len(pd.Range) != 2 || len(pd.Domain) != 2 {
			return nil, systemErrorf(opDecode, fmt.Errorf("phase %d: %w: range and domain need two bounds", i, ErrMalformed))
		}
		kind, err := spline.ParseKind(pd.Kind)
		if err != nil {
			return nil, systemErrorf(opDecode, fmt.Errorf("phase %d: %w", i, err))
		}
		m, err := spline.New(kind, pd.Degree, pd.Knots, pd.Coeffs,
			[2]float64{pd.Domain[0], pd.Domain[1]}, pd.SplineNodes, pd.SplineValues)
		if err != nil {
			return nil, systemErrorf(opDecode, fmt.Errorf("phase %d: %w", i, err))
		}
		ranges[i] = PhaseRange{Lo: pd.Range[0], Hi: pd.Range[1]}
		models[i] = m
		if len(pd.Nodes) > 0 {
			nodes[i] = pd.Nodes
			withNodes = true
		}
	}
	if !withNodes {
		nodes = nil
	}

	s, err := New(ranges, models, nodes, doc.Name)
	if err != nil {
		return nil, systemErrorf(opDecode, err)
	}

	return s, nil
}

// Save writes s to the file at path.
func Save(path string, s *DiffusionSystem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err = Encode(f, s); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Load reads the system stored at path.
func Load(path string) (*DiffusionSystem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}
