// SPDX-License-Identifier: MIT

// Package terminal implements the interactive collaborators dmodel needs
// on a plain terminal: a line Prompter, and a Plotter that renders each
// chart to a PNG file and takes picked points as typed x values.
package terminal
