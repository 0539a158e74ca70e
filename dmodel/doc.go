// SPDX-License-Identifier: MIT

// Package dmodel builds a multi-phase diffusion system from one measured
// profile.
//
// Model runs Sauer–Fraise over the profile, splits it into phases at the
// interfaces, and fits one log-diffusivity model per phase. Nodes can be
// supplied up front (batch mode) or picked through the Prompter and
// Plotter collaborators (interactive mode). Interactive work runs inside
// one plotting session that is always released, even on error.
//
//	sys, err := dmodel.Model(p, 100*3600,
//		dmodel.WithNodes([][]float64{{0.05, 0.2, 0.35}, {0.7}}),
//		dmodel.WithFamily(dmodel.FamilySpline),
//	)
package dmodel
