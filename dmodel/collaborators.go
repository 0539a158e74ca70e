// SPDX-License-Identifier: MIT

package dmodel

import "errors"

// Point is a picked chart coordinate.
type Point struct {
	X, Y float64
}

// Style selects how a series is drawn.
type Style int

const (
	// Scatter draws unconnected markers.
	Scatter Style = iota
	// Line draws a connected curve.
	Line
)

// Series is one named data set on a chart. LogY requests a logarithmic
// value axis, used for diffusivities.
type Series struct {
	Name  string
	X, Y  []float64
	Style Style
	LogY  bool
}

// Prompter asks the user a question and returns the raw answer.
type Prompter interface {
	Ask(msg string) (string, error)
}

// Plotter shows series and lets the user pick points on the last chart.
// Begin and End bracket an interactive session.
type Plotter interface {
	Begin() error
	End() error
	Display(title string, series ...Series) error
	PickPoints(n int) ([]Point, error)
}

// withSession runs fn between pl.Begin and pl.End. End always runs once
// Begin succeeded, and its error is joined to the one fn returned.
func withSession(pl Plotter, fn func() error) (err error) {
	if err = pl.Begin(); err != nil {
		return err
	}
	defer func() {
		if endErr := pl.End(); endErr != nil {
			err = errors.Join(err, endErr)
		}
	}()

	return fn()
}
