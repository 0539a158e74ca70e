// SPDX-License-Identifier: MIT

package dmodel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvdiff/dmodel"
	"github.com/katalvlaran/lvdiff/flux"
	"github.com/katalvlaran/lvdiff/profile"
	"github.com/katalvlaran/lvdiff/sampler"
	"github.com/katalvlaran/lvdiff/spline"
	"github.com/katalvlaran/lvdiff/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hour = 3600.0

// assertFinite checks every model evaluates to a finite positive D across
// its whole range.
func assertFinite(t *testing.T, sys *system.DiffusionSystem) {
	t.Helper()
	for ph, r := range sys.Ranges {
		for k := 0; k <= 40; k++ {
			x := r.Lo + r.Width()*float64(k)/40
			d := sys.Models[ph].D(x)
			assert.False(t, math.IsNaN(d) || math.IsInf(d, 0) || d <= 0, "phase %d x=%v d=%v", ph, x, d)
		}
	}
}

// TestPhaseRanges splits at the interface, with and without explicit limits.
func TestPhaseRanges(t *testing.T) {
	p := twoPhase(t)
	assert.Equal(t, []system.PhaseRange{{Lo: 0, Hi: 0.3}, {Lo: 0.6, Hi: 1}}, dmodel.PhaseRanges(p, 0, 1))
	assert.Equal(t, []system.PhaseRange{{Lo: 0.1, Hi: 0.3}, {Lo: 0.6, Hi: 0.9}}, dmodel.PhaseRanges(p, 0.1, 0.9))
}

// TestClampOutliers resets non-finite, non-positive and far-off values only
// at the given indices.
func TestClampOutliers(t *testing.T) {
	d := []float64{1e-14, 2e-14, 3e-14, math.NaN(), math.Inf(1), -1, math.NaN()}
	n := dmodel.ClampOutliers(d, []int{0, 1, 2, 3, 4, 5})
	assert.Equal(t, 3, n)
	assert.InDeltaSlice(t, []float64{1e-14, 2e-14, 3e-14, 2e-14, 2e-14, 2e-14}, d[:6], 1e-30)
	assert.True(t, math.IsNaN(d[6]), "index outside idx untouched")

	far := []float64{1e-14, 1e-14, 1e-14, 1e-14, 1e-14, 1e-14, 1e-14, 1e-14, 1e-14, 1e-20}
	idx := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, 1, dmodel.ClampOutliers(far, idx))
	assert.InEpsilon(t, 9e-15, far[9], 1e-5)

	none := []float64{math.NaN(), 0}
	assert.Equal(t, 0, dmodel.ClampOutliers(none, []int{0, 1}))
}

// TestModel_SuppliedNodes builds a two-phase system without any interaction.
func TestModel_SuppliedNodes(t *testing.T) {
	p := twoPhase(t)
	nodes := [][]float64{{0.1, 0.2}, {0.7, 0.8, 0.9}}

	sys, err := dmodel.Model(p, hour, dmodel.WithNodes(nodes), dmodel.WithFamily(dmodel.FamilySpline))
	require.NoError(t, err)
	assert.Equal(t, "couple_1.0h_modeled", sys.Name)
	require.Equal(t, 2, sys.Np())
	assert.Equal(t, spline.Linear, sys.Models[0].Kind)
	assert.Equal(t, spline.InterpolatingQuadratic, sys.Models[1].Kind)
	assert.Equal(t, nodes, sys.Nodes)
	assert.True(t, sys.HasNodes(1))
	assertFinite(t, sys)
}

// TestModel_NodesSampledWithinPhase checks each phase is sampled on its own
// samples only, even where its outer node windows are unbounded.
func TestModel_NodesSampledWithinPhase(t *testing.T) {
	// steep narrow phase 0, shallow wide phase 1
	var dis, x []float64
	for i := 0; i <= 40; i++ {
		dis = append(dis, 0.25*float64(i))
		x = append(x, 0.3*float64(i)/40)
	}
	for i := 0; i <= 50; i++ {
		dis = append(dis, 10+2*float64(i))
		x = append(x, 0.6+0.4*float64(i)/50)
	}
	p, err := profile.New(dis, x, "contrast")
	require.NoError(t, err)
	nodes := [][]float64{{0.1, 0.2}, {0.7, 0.8, 0.9}}

	sys, err := dmodel.Model(p, hour, dmodel.WithNodes(nodes), dmodel.WithFamily(dmodel.FamilySpline))
	require.NoError(t, err)

	dc, err := flux.SauerFraise(p, hour)
	require.NoError(t, err)
	c, err := profile.NewCurve(p, dc)
	require.NoError(t, err)
	px, pd := c.Phase(0.6, 1)
	want, err := sampler.Sample(px, pd, nodes[1])
	require.NoError(t, err)
	assert.InEpsilonSlice(t, want, sys.Models[1].Values, 1e-9)

	mixed, err := sampler.Sample(p.X, dc, nodes[1])
	require.NoError(t, err)
	assert.Greater(t, math.Abs(mixed[0]/want[0]-1), 0.01, "whole-curve sampling differs at the first node")
}

// TestModel_SuppliedSmoothing fits smoothing models; fit ranges are not
// kept as node lists.
func TestModel_SuppliedSmoothing(t *testing.T) {
	p := twoPhase(t)
	sys, err := dmodel.Model(p, 2*hour,
		dmodel.WithNodes([][]float64{{0.05, 0.25}, {0.65, 0.95}}),
		dmodel.WithFamily(dmodel.FamilySmoothing),
		dmodel.WithName("smooth"))
	require.NoError(t, err)
	assert.Equal(t, "smooth", sys.Name)
	assert.Nil(t, sys.Nodes)
	for _, m := range sys.Models {
		assert.Equal(t, spline.SmoothingQuadratic, m.Kind)
	}
	assertFinite(t, sys)
}

// TestModel_Validation covers limit shape and node count.
func TestModel_Validation(t *testing.T) {
	p := twoPhase(t)

	_, err := dmodel.Model(p, hour, dmodel.WithLimits(0.1))
	assert.ErrorIs(t, err, dmodel.ErrInvalidLimits)

	_, err = dmodel.Model(p, hour, dmodel.WithNodes([][]float64{{0.1}}))
	assert.ErrorIs(t, err, dmodel.ErrNodesLength)

	// the node count is checked before the curve is computed
	_, err = dmodel.Model(p, -1, dmodel.WithNodes([][]float64{{0.1}}))
	assert.ErrorIs(t, err, dmodel.ErrNodesLength)
	assert.NotErrorIs(t, err, flux.ErrInvalidTime)

	_, err = dmodel.Model(p, hour)
	assert.ErrorIs(t, err, dmodel.ErrNoCollaborator)
}

// TestModel_InteractiveSpline scripts a full session with one redo.
func TestModel_InteractiveSpline(t *testing.T) {
	p := twoPhase(t)
	pr := &fakePrompter{answers: []string{
		"y",      // family
		"2", "n", // phase 0: two points, then redo
		"1", "y", // phase 0: one point, accept
		"3", "", // phase 1: three points, accept by default
	}}
	pl := &fakePlotter{picks: [][]dmodel.Point{
		pts(0.2, 0.1),
		pts(0.15),
		pts(0.9, 0.7, 0.8),
	}}

	sys, err := dmodel.Model(p, hour, dmodel.WithPrompter(pr), dmodel.WithPlotter(pl))
	require.NoError(t, err)

	assert.Equal(t, dmodel.PromptFamily, pr.asked[0])
	assert.Equal(t, dmodel.PromptNodeCount, pr.asked[1])
	assert.Equal(t, dmodel.PromptContinue, pr.asked[2])
	assert.Equal(t, spline.Constant, sys.Models[0].Kind)
	assert.Equal(t, [][]float64{{0.15}, {0.7, 0.8, 0.9}}, sys.Nodes)

	assert.Equal(t, 1, pl.began)
	assert.Equal(t, 1, pl.ended)
	assert.Len(t, pl.titles, 7)
	assert.Equal(t, "DC Modeling Result", pl.titles[len(pl.titles)-1])
	assert.Len(t, pl.last, 3, "curve plus one model per phase")
	assertFinite(t, sys)
}

// TestModel_InteractiveSmoothing answers "n" to the family question.
func TestModel_InteractiveSmoothing(t *testing.T) {
	p := twoPhase(t)
	pr := &fakePrompter{answers: []string{"n", "0.25 0.05", "y", "0.65 0.95", "Y"}}
	pl := &fakePlotter{}

	sys, err := dmodel.Model(p, hour, dmodel.WithPrompter(pr), dmodel.WithPlotter(pl))
	require.NoError(t, err)
	assert.Contains(t, pr.asked, dmodel.PromptBoundaries)
	assert.Nil(t, sys.Nodes)
	assert.Equal(t, spline.SmoothingQuadratic, sys.Models[1].Kind)
	assertFinite(t, sys)
}

// TestModel_SessionReleasedOnError checks End runs when picking fails or an
// answer cannot be parsed.
func TestModel_SessionReleasedOnError(t *testing.T) {
	p := twoPhase(t)
	boom := errors.New("window closed")

	pl := &fakePlotter{pickErr: boom}
	_, err := dmodel.Model(p, hour,
		dmodel.WithFamily(dmodel.FamilySpline),
		dmodel.WithPrompter(&fakePrompter{answers: []string{"2"}}),
		dmodel.WithPlotter(pl))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, pl.ended)

	pl = &fakePlotter{}
	_, err = dmodel.Model(p, hour,
		dmodel.WithFamily(dmodel.FamilySpline),
		dmodel.WithPrompter(&fakePrompter{answers: []string{"many"}}),
		dmodel.WithPlotter(pl))
	assert.ErrorIs(t, err, dmodel.ErrInvalidAnswer)
	assert.Equal(t, 1, pl.ended)
}

// TestParseFamily maps names both ways.
func TestParseFamily(t *testing.T) {
	f, err := dmodel.ParseFamily("Smoothing")
	require.NoError(t, err)
	assert.Equal(t, dmodel.FamilySmoothing, f)
	assert.Equal(t, "spline", dmodel.FamilySpline.String())

	_, err = dmodel.ParseFamily("cubic")
	assert.Error(t, err)
}
