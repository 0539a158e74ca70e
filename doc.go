// SPDX-License-Identifier: MIT

// Package lvdiff models composition-dependent diffusion coefficients of
// multi-phase diffusion couples, from a measured profile to a reusable
// per-phase diffusivity model.
//
// 🚀 What is lvdiff?
//
//	A numeric toolkit plus CLI that brings together:
//		• Profiles: concentration vs distance, interfaces, Matano plane
//		• Flux integration: Sauer–Fraise diffusivities at every sample
//		• Boundary estimation: Hall's method near the composition limits
//		• Spline models: ln D(X) per phase as constant, linear or quadratic B-splines
//		• Modeling: interactive or node-driven construction of a diffusion system
//		• Adjustment: rescaling a phase model against a simulated profile
//
// Under the hood, everything is organized under these subpackages:
//
//	profile/  — Profile, DistanceFunc, time coercion, CSV I/O
//	flux/     — Sauer–Fraise and Hall estimators
//	matrix/   — dense LU, least squares, polynomial fits
//	spline/   — B-spline Model and its constructors
//	sampler/  — diffusivity sampling at chosen nodes
//	system/   — DiffusionSystem and its TOML exchange form
//	dmodel/   — modeling orchestration over Prompter/Plotter collaborators
//	adjust/   — model adjustment and profile mismatch
//	terminal/ — line prompter and PNG chart plotter
//	cmd/lvdiff — the command line front end
//
// Quick example:
//
//	p, _ := profile.ReadCSV(f, "NiAl")
//	sys, _ := dmodel.Model(p, 50*profile.Hour,
//		dmodel.WithFamily(dmodel.FamilySpline),
//		dmodel.WithNodes([][]float64{{0.05, 0.2, 0.3}, {0.55, 0.7}}))
//	d, _ := sys.D(0.2)
//
//	go install github.com/katalvlaran/lvdiff/cmd/lvdiff@latest
package lvdiff
