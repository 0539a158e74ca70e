// SPDX-License-Identifier: MIT

package dmodel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvdiff/flux"
	"github.com/katalvlaran/lvdiff/profile"
)

const opPickHallWindow = "PickHallWindow"

// PickHallWindow lets the user choose the λ intervals of a Hall fit. The
// u-vs-λ samples of the outer portion a of each end are displayed in turn,
// and two picked points bound each interval.
//
// Errors:
//   - ErrNoCollaborator when pl is nil; wrapped flux errors; ErrInvalidAnswer
//     when fewer than two points come back.
func PickHallWindow(p *profile.Profile, t, a float64, pl Plotter, opts ...flux.Option) (flux.Window, error) {
	var win flux.Window
	if pl == nil {
		return win, dmodelErrorf(opPickHallWindow, ErrNoCollaborator)
	}
	lambda, u, _, err := flux.HallCoordinates(p, t, opts...)
	if err != nil {
		return win, dmodelErrorf(opPickHallWindow, err)
	}
	id1, id2, err := flux.HallRange(p, a, opts...)
	if err != nil {
		return win, dmodelErrorf(opPickHallWindow, err)
	}

	err = withSession(pl, func() error {
		var err error
		win.Left, err = pickInterval(pl, "LEFT side, select 2 points for linear fitting.", lambda[:id1], u[:id1])
		if err != nil {
			return err
		}
		win.Right, err = pickInterval(pl, "RIGHT side, select 2 points for linear fitting.", lambda[id2:], u[id2:])

		return err
	})
	if err != nil {
		return flux.Window{}, dmodelErrorf(opPickHallWindow, err)
	}

	return win, nil
}

func pickInterval(pl Plotter, title string, lambda, u []float64) ([2]float64, error) {
	if err := pl.Display(title, Series{Name: "u", X: lambda, Y: u, Style: Scatter}); err != nil {
		return [2]float64{}, err
	}
	pts, err := pl.PickPoints(2)
	if err != nil {
		return [2]float64{}, err
	}
	if len(pts) < 2 {
		return [2]float64{}, fmt.Errorf("%w: %d points picked", ErrInvalidAnswer, len(pts))
	}

	return [2]float64{math.Min(pts[0].X, pts[1].X), math.Max(pts[0].X, pts[1].X)}, nil
}
