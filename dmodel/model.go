// SPDX-License-Identifier: MIT

package dmodel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdiff/flux"
	"github.com/katalvlaran/lvdiff/internal/logging"
	"github.com/katalvlaran/lvdiff/profile"
	"github.com/katalvlaran/lvdiff/sampler"
	"github.com/katalvlaran/lvdiff/spline"
	"github.com/katalvlaran/lvdiff/system"
)

const opModel = "Model"

// Prompts shown to the user.
const (
	PromptFamily     = "Use Spline (y) or UnivariateSpline (n) to model diffusion coefficients? [y]"
	PromptNodeCount  = "# of spline points: 1 (constant), 2 (linear), >2 (spline)\ninput # of spline points"
	PromptBoundaries = "input 2 boundaries for UnivariateSpline"
	PromptContinue   = "Continue to next phase? [y]"
)

// curvePoints is the number of points model curves are drawn with.
const curvePoints = 30

// modeler carries the state of one Model call.
type modeler struct {
	o      options
	p      *profile.Profile
	dc     *profile.Curve
	ranges []system.PhaseRange
	log    logging.Logger
}

// Model builds the diffusion system of p after t seconds of diffusion.
// Implementation:
//   - Stage 1: limits (default first/last composition), phase ranges from
//     the limits and the interfaces, node list count.
//   - Stage 2: Sauer–Fraise curve.
//   - Stage 3: model family, fixed by WithFamily or asked.
//   - Stage 4: per phase, nodes from WithNodes or picked interactively
//     (outliers clamped first), then the fit.
//   - Stage 5: the result chart, the system and its name.
//
// Errors:
//   - ErrInvalidLimits, ErrNodesLength, ErrNoCollaborator, ErrInvalidAnswer,
//     and wrapped flux/sampler/spline/system errors.
func Model(p *profile.Profile, t float64, opts ...Option) (*system.DiffusionSystem, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var xl, xr float64
	switch len(o.limits) {
	case 0:
		xl, xr = p.Limits()
	case 2:
		xl, xr = o.limits[0], o.limits[1]
	default:
		return nil, dmodelErrorf(opModel, ErrInvalidLimits)
	}
	ranges := PhaseRanges(p, xl, xr)
	if o.nodes != nil && len(o.nodes) != len(ranges) {
		return nil, dmodelErrorf(opModel, fmt.Errorf("%d lists for %d phases: %w", len(o.nodes), len(ranges), ErrNodesLength))
	}

	dc, err := flux.SauerFraise(p, t, flux.WithLimits(xl, xr))
	if err != nil {
		return nil, dmodelErrorf(opModel, err)
	}
	c, err := profile.NewCurve(p, dc)
	if err != nil {
		return nil, dmodelErrorf(opModel, err)
	}

	m := &modeler{o: o, p: p, dc: c, ranges: ranges, log: o.logger.Named("dmodel")}

	var models []*spline.Model
	var nodes [][]float64
	run := func() error {
		family, err := m.family()
		if err != nil {
			return err
		}
		m.log.Info("modeling diffusivity",
			logging.Int("phases", len(m.ranges)), logging.String("family", family.String()))

		if o.nodes != nil {
			models, nodes, err = m.fromSupplied(family)
		} else {
			models, nodes, err = m.interactive(family)
		}
		if err != nil {
			return err
		}

		return m.showResult(models)
	}
	if o.plotter != nil {
		err = withSession(o.plotter, run)
	} else {
		err = run()
	}
	if err != nil {
		return nil, dmodelErrorf(opModel, err)
	}

	name := o.name
	if name == "" {
		name = fmt.Sprintf("%s_%.1fh_modeled", p.Name, t/profile.Hour)
	}
	sys, err := system.New(m.ranges, models, nodes, name)
	if err != nil {
		return nil, dmodelErrorf(opModel, err)
	}
	m.log.Info("modeling finished", logging.String("name", name), logging.Any("nodes", nodes))

	return sys, nil
}

// family resolves the model family; an unanswered question means spline.
func (m *modeler) family() (Family, error) {
	if m.o.family != FamilyAsk {
		return m.o.family, nil
	}
	if m.o.prompter == nil {
		return FamilySpline, nil
	}
	ans, err := m.o.prompter.Ask(PromptFamily)
	if err != nil {
		return FamilyAsk, err
	}
	if no(ans) {
		return FamilySmoothing, nil
	}

	return FamilySpline, nil
}

// fromSupplied fits every phase on the node lists given by WithNodes.
func (m *modeler) fromSupplied(family Family) ([]*spline.Model, [][]float64, error) {
	models := make([]*spline.Model, len(m.ranges))
	for i := range m.ranges {
		var err error
		models[i], err = m.fit(family, i, m.dc, m.o.nodes[i])
		if err != nil {
			return nil, nil, fmt.Errorf("phase %d: %w", i, err)
		}
	}
	if family == FamilySmoothing {
		return models, nil, nil
	}

	return models, m.o.nodes, nil
}

// interactive picks nodes (or fit ranges) phase by phase until the user
// accepts each fit.
func (m *modeler) interactive(family Family) ([]*spline.Model, [][]float64, error) {
	if m.o.prompter == nil || m.o.plotter == nil {
		return nil, nil, ErrNoCollaborator
	}
	clamped := append([]float64(nil), m.dc.D...)
	c, err := profile.NewCurve(m.p, clamped)
	if err != nil {
		return nil, nil, err
	}
	models := make([]*spline.Model, len(m.ranges))
	var nodes [][]float64
	if family == FamilySpline {
		nodes = make([][]float64, len(m.ranges))
	}

	for i, rng := range m.ranges {
		idx := m.p.Indices(rng.Lo, rng.Hi)
		if n := ClampOutliers(clamped, idx); n > 0 {
			m.log.Debug("outliers reset to phase mean", logging.Int("phase", i), logging.Int("count", n))
		}
		x, d := c.Phase(rng.Lo, rng.Hi)

		for {
			if err := m.o.plotter.Display(fmt.Sprintf("Phase %d", i),
				Series{Name: "Sauer-Fraise", X: x, Y: d, Style: Scatter, LogY: true}); err != nil {
				return nil, nil, err
			}
			sel, err := m.selection(family)
			if err != nil {
				return nil, nil, fmt.Errorf("phase %d: %w", i, err)
			}
			model, err := m.fit(family, i, c, sel)
			if err != nil {
				return nil, nil, fmt.Errorf("phase %d: %w", i, err)
			}
			if err = m.o.plotter.Display(fmt.Sprintf("Phase %d", i),
				Series{Name: "Sauer-Fraise", X: x, Y: d, Style: Scatter, LogY: true},
				curve("model", model, rng)); err != nil {
				return nil, nil, err
			}

			ans, err := m.o.prompter.Ask(PromptContinue)
			if err != nil {
				return nil, nil, err
			}
			models[i] = model
			if family == FamilySpline {
				nodes[i] = sel
			}
			if !no(ans) {
				break
			}
		}
	}

	return models, nodes, nil
}

// selection asks for nodes (spline) or a fit range (smoothing).
func (m *modeler) selection(family Family) ([]float64, error) {
	if family == FamilySmoothing {
		ans, err := m.o.prompter.Ask(PromptBoundaries)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(ans)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: want 2 boundaries, got %q", ErrInvalidAnswer, ans)
		}
		b := make([]float64, 2)
		for k, f := range fields {
			if b[k], err = strconv.ParseFloat(f, 64); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
			}
		}
		sort.Float64s(b)

		return b, nil
	}

	ans, err := m.o.prompter.Ask(PromptNodeCount)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(ans))
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: node count %q", ErrInvalidAnswer, ans)
	}
	pts, err := m.o.plotter.PickPoints(n)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(pts))
	for k, pt := range pts {
		xs[k] = pt.X
	}
	sort.Float64s(xs)

	return xs, nil
}

// fit builds the model of phase i from sel: nodes for spline, a fit range
// (first and last value) for smoothing. Only samples of c inside the phase
// range are used.
func (m *modeler) fit(family Family, i int, c *profile.Curve, sel []float64) (*spline.Model, error) {
	rng := m.ranges[i]
	x, d := c.Phase(rng.Lo, rng.Hi)
	if family == FamilySmoothing {
		if len(sel) < 2 {
			return nil, fmt.Errorf("%w: smoothing needs 2 boundaries", ErrInvalidAnswer)
		}

		return spline.FromSamples(x, d, [2]float64{sel[0], sel[len(sel)-1]}, [2]float64{rng.Lo, rng.Hi})
	}

	dp, err := sampler.Sample(x, d, sel)
	if err != nil {
		return nil, err
	}
	var opts []spline.Option
	if rng.Lo < rng.Hi {
		opts = append(opts, spline.WithDomain(rng.Lo, rng.Hi))
	}
	m.log.Debug("phase nodes sampled", logging.Int("phase", i), logging.Floats("nodes", sel), logging.Floats("d", dp))

	return spline.FromNodes(sel, dp, opts...)
}

// showResult draws the full curve with every phase model on top.
func (m *modeler) showResult(models []*spline.Model) error {
	if m.o.plotter == nil {
		return nil
	}
	series := []Series{{Name: "Sauer-Fraise", X: m.dc.X, Y: m.dc.D, Style: Scatter, LogY: true}}
	for i, model := range models {
		series = append(series, curve(fmt.Sprintf("phase %d", i), model, m.ranges[i]))
	}

	return m.o.plotter.Display("DC Modeling Result", series...)
}

// curve samples model across rng for drawing.
func curve(name string, model *spline.Model, rng system.PhaseRange) Series {
	xs := make([]float64, curvePoints)
	ys := make([]float64, curvePoints)
	for k := range xs {
		xs[k] = rng.Lo + rng.Width()*float64(k)/float64(curvePoints-1)
		ys[k] = model.D(xs[k])
	}

	return Series{Name: name, X: xs, Y: ys, Style: Line, LogY: true}
}

// no reports whether an answer declines.
func no(ans string) bool { return strings.ContainsAny(ans, "nN") }
