// SPDX-License-Identifier: MIT

package dmodel_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvdiff/dmodel"
	"github.com/katalvlaran/lvdiff/profile"
	"github.com/stretchr/testify/require"
)

var errExhausted = errors.New("fake: no scripted answer left")

// fakePrompter replays scripted answers and records the questions.
type fakePrompter struct {
	answers []string
	asked   []string
}

func (f *fakePrompter) Ask(msg string) (string, error) {
	f.asked = append(f.asked, msg)
	if len(f.answers) == 0 {
		return "", errExhausted
	}
	ans := f.answers[0]
	f.answers = f.answers[1:]

	return ans, nil
}

// fakePlotter replays scripted picks and records session and chart calls.
type fakePlotter struct {
	picks   [][]dmodel.Point
	pickErr error

	began, ended int
	titles       []string
	last         []dmodel.Series
}

func (f *fakePlotter) Begin() error { f.began++; return nil }
func (f *fakePlotter) End() error   { f.ended++; return nil }

func (f *fakePlotter) Display(title string, series ...dmodel.Series) error {
	f.titles = append(f.titles, title)
	f.last = series

	return nil
}

func (f *fakePlotter) PickPoints(n int) ([]dmodel.Point, error) {
	if f.pickErr != nil {
		return nil, f.pickErr
	}
	if len(f.picks) == 0 {
		return nil, errExhausted
	}
	pts := f.picks[0]
	f.picks = f.picks[1:]

	return pts, nil
}

// twoPhase returns a piecewise-linear couple: X rises 0→0.3 over 0–50 µm,
// jumps to 0.6 at the interface, then rises to 1 over 50–100 µm.
func twoPhase(t *testing.T) *profile.Profile {
	t.Helper()
	var dis, x []float64
	for i := 0; i <= 50; i++ {
		dis = append(dis, float64(i))
		x = append(x, 0.3*float64(i)/50)
	}
	for i := 0; i <= 50; i++ {
		dis = append(dis, 50+float64(i))
		x = append(x, 0.6+0.4*float64(i)/50)
	}
	p, err := profile.New(dis, x, "couple")
	require.NoError(t, err)

	return p
}

func pts(xs ...float64) []dmodel.Point {
	out := make([]dmodel.Point, len(xs))
	for i, x := range xs {
		out[i] = dmodel.Point{X: x}
	}

	return out
}
