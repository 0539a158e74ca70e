// SPDX-License-Identifier: MIT

package dmodel_test

import (
	"testing"

	"github.com/katalvlaran/lvdiff/dmodel"
	"github.com/katalvlaran/lvdiff/flux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPickHallWindow orders each picked pair and shows both ends.
func TestPickHallWindow(t *testing.T) {
	p := twoPhase(t)
	pl := &fakePlotter{picks: [][]dmodel.Point{pts(-1e-7, -3e-7), pts(4e-7, 2e-7)}}

	win, err := dmodel.PickHallWindow(p, hour, flux.DefaultPortion, pl)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-3e-7, -1e-7}, win.Left)
	assert.Equal(t, [2]float64{2e-7, 4e-7}, win.Right)
	require.Len(t, pl.titles, 2)
	assert.Contains(t, pl.titles[0], "LEFT")
	assert.Contains(t, pl.titles[1], "RIGHT")
	assert.Equal(t, 1, pl.ended)
}

// TestPickHallWindow_Errors covers a missing plotter and a short pick.
func TestPickHallWindow_Errors(t *testing.T) {
	p := twoPhase(t)
	_, err := dmodel.PickHallWindow(p, hour, flux.DefaultPortion, nil)
	assert.ErrorIs(t, err, dmodel.ErrNoCollaborator)

	pl := &fakePlotter{picks: [][]dmodel.Point{pts(0.1)}}
	_, err = dmodel.PickHallWindow(p, hour, flux.DefaultPortion, pl)
	assert.ErrorIs(t, err, dmodel.ErrInvalidAnswer)
	assert.Equal(t, 1, pl.ended)
}
