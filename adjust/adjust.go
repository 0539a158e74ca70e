// SPDX-License-Identifier: MIT

package adjust

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvdiff/internal/logging"
	"github.com/katalvlaran/lvdiff/matrix"
	"github.com/katalvlaran/lvdiff/profile"
	"github.com/katalvlaran/lvdiff/spline"
	"github.com/katalvlaran/lvdiff/system"
	"gonum.org/v1/gonum/floats"
)

const opAdjust = "Adjust"

const (
	// defaultNodeCount is the node count used when the phase has no node list.
	defaultNodeCount = 30

	// gradientSamples is the number of compositions a point-mode gradient
	// is regressed over.
	gradientSamples = 10

	// edgeMargin is the share of the outermost phases left out of the width.
	edgeMargin = 0.1
)

// Branch names the rule that produced the multipliers.
type Branch string

// Branches, in the order Adjust tries them.
const (
	BranchConsumed  Branch = "consumed"
	BranchMagnitude Branch = "magnitude"
	BranchWidth     Branch = "width"
	BranchPoint     Branch = "point"
)

// Result is the outcome of one adjustment.
type Result struct {
	// Model is the replacement model for the phase.
	Model *spline.Model
	// Nodes are the compositions the model was rebuilt on.
	Nodes []float64
	// Multipliers[i] is the factor applied to the diffusivity at Nodes[i].
	Multipliers []float64
	Branch      Branch
	Rate        int
}

// Adjust rebuilds the model of phase ph so a re-simulation of sys tracks
// ref more closely than sim did.
// Implementation:
//   - Stage 1: preconditions (phase index, node list in point mode).
//   - Stage 2: nodes are the phase node list, else 30 evenly spaced
//     compositions over the range; their diffusivities come from the
//     current model.
//   - Stage 3: multipliers from the first matching branch.
//   - Stage 4: spline.FromNodes over the scaled values, keeping the
//     current model's domain.
//
// Errors:
//   - ErrNilInput, ErrPhaseIndex, ErrMissingNodes, ErrInvalidRadius,
//     ErrDegenerate, and wrapped profile/matrix/spline errors.
func Adjust(ref, sim *profile.Profile, sys *system.DiffusionSystem, ph int, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if ref == nil || sim == nil || sys == nil {
		return nil, adjustErrorf(opAdjust, ErrNilInput)
	}
	if ph < 0 || ph >= sys.Np() {
		return nil, adjustErrorf(opAdjust, fmt.Errorf("phase %d of %d: %w", ph, sys.Np(), ErrPhaseIndex))
	}
	if o.mode == PointMode && !sys.HasNodes(ph) {
		return nil, adjustErrorf(opAdjust, fmt.Errorf("phase %d: %w", ph, ErrMissingNodes))
	}
	if o.mode == PointMode && !(o.radius > 0) {
		return nil, adjustErrorf(opAdjust, ErrInvalidRadius)
	}

	log := o.logger.With(logging.Int("phase", ph))
	rng, model := sys.Ranges[ph], sys.Models[ph]

	res := &Result{Rate: 1}
	if ref.PhaseCount() != sim.PhaseCount() {
		res.Rate = 2
		log.Warn("phase count differs between profiles, doubling adjustment rate",
			logging.Int("ref_phases", ref.PhaseCount()), logging.Int("sim_phases", sim.PhaseCount()))
	}

	if sys.HasNodes(ph) {
		res.Nodes = append([]float64(nil), sys.Nodes[ph]...)
	} else {
		res.Nodes = floats.Span(make([]float64, defaultNodeCount), rng.Lo, rng.Hi)
	}
	values := make([]float64, len(res.Nodes))
	for i, x := range res.Nodes {
		values[i] = model.D(x)
	}

	var err error
	idSim := sim.Indices(rng.Lo, rng.Hi)
	switch {
	case len(idSim) == 0:
		res.Branch = BranchConsumed
		factor := 2.0
		if o.magnitude != nil {
			factor = math.Pow(10, *o.magnitude)
		}
		res.Multipliers = uniform(len(res.Nodes), factor)
	case o.mode == PhaseMode && o.magnitude != nil:
		res.Branch = BranchMagnitude
		res.Multipliers = uniform(len(res.Nodes), math.Pow(10, *o.magnitude))
	case o.mode == PhaseMode:
		res.Branch = BranchWidth
		var factor float64
		factor, err = widthRatio(ref, sim, rng, ph, sys.Np())
		res.Multipliers = uniform(len(res.Nodes), factor)
	default:
		res.Branch = BranchPoint
		res.Multipliers, err = gradientRatios(ref, sim, rng, res.Nodes, o.radius, res.Rate)
	}
	if err != nil {
		return nil, adjustErrorf(opAdjust, fmt.Errorf("phase %d, %s branch: %w", ph, res.Branch, err))
	}

	for i, f := range res.Multipliers {
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			return nil, adjustErrorf(opAdjust, fmt.Errorf("phase %d node %d: %w", ph, i, ErrDegenerate))
		}
		values[i] *= f
	}

	res.Model, err = spline.FromNodes(res.Nodes, values, spline.WithDomain(model.Domain[0], model.Domain[1]))
	if err != nil {
		return nil, adjustErrorf(opAdjust, err)
	}
	log.Info("phase adjusted",
		logging.String("branch", string(res.Branch)),
		logging.Int("rate", res.Rate),
		logging.Floats("multipliers", res.Multipliers),
	)

	return res, nil
}

// widthRatio returns √(wRef/wSim), the widths being the distance spanned by
// each profile's phase samples between X1 and X2.
func widthRatio(ref, sim *profile.Profile, rng system.PhaseRange, ph, np int) (float64, error) {
	fRef, err := phaseDistance(ref, rng)
	if err != nil {
		return 0, fmt.Errorf("reference: %w", err)
	}
	fSim, err := phaseDistance(sim, rng)
	if err != nil {
		return 0, fmt.Errorf("simulation: %w", err)
	}

	x1, x2 := rng.Lo, rng.Hi
	if ph == 0 {
		x1 = rng.Lo*(1-edgeMargin) + rng.Hi*edgeMargin
	}
	if ph == np-1 {
		x2 = rng.Lo*edgeMargin + rng.Hi*(1-edgeMargin)
	}
	wRef := fRef.At(x2) - fRef.At(x1)
	wSim := fSim.At(x2) - fSim.At(x1)

	return math.Sqrt(wRef / wSim), nil
}

// gradientRatios returns (gSim/gRef)^rate for every node, g being the slope
// of composition regressed on distance over [node−r, node+r] clipped to rng.
func gradientRatios(ref, sim *profile.Profile, rng system.PhaseRange, nodes []float64, r float64, rate int) ([]float64, error) {
	fRef, err := phaseDistance(ref, rng)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	fSim, err := phaseDistance(sim, rng)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	out := make([]float64, len(nodes))
	xf := make([]float64, gradientSamples)
	for i, x := range nodes {
		floats.Span(xf, math.Max(x-r, rng.Lo), math.Min(x+r, rng.Hi))
		gRef, err := slope(fRef, xf)
		if err != nil {
			return nil, fmt.Errorf("node %g, reference: %w", x, err)
		}
		gSim, err := slope(fSim, xf)
		if err != nil {
			return nil, fmt.Errorf("node %g, simulation: %w", x, err)
		}
		out[i] = math.Pow(gSim/gRef, float64(rate))
	}

	return out, nil
}

// phaseDistance builds the distance-vs-composition function of the samples
// of p inside rng.
func phaseDistance(p *profile.Profile, rng system.PhaseRange) (*profile.DistanceFunc, error) {
	dis, x := p.Select(p.Indices(rng.Lo, rng.Hi))

	return profile.NewDistanceFunc(dis, x)
}

// slope regresses xf on f(xf) and returns the first-order coefficient.
func slope(f *profile.DistanceFunc, xf []float64) (float64, error) {
	d := make([]float64, len(xf))
	for i, v := range xf {
		d[i] = f.At(v)
	}
	c, err := matrix.Polyfit(d, xf, 1)
	if err != nil {
		return 0, err
	}

	return c[1], nil
}

func uniform(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
