// SPDX-License-Identifier: MIT

// Package system holds a multi-phase diffusion system: an ordered list of
// composition ranges, one log-diffusivity model per range, and optionally
// the composition nodes each model was built from.
//
// A DiffusionSystem is what dmodel.Model produces and what adjust.Adjust
// consumes. Encode and Decode move it through a small TOML document:
//
//	name = "AB_100.0h_modeled"
//
//	[[phase]]
//	range  = [0.0, 0.42]
//	kind   = "interpolating-quadratic"
//	nodes  = [0.05, 0.2, 0.35]
//	degree = 2
//	knots  = [0.05, 0.05, 0.05, 0.35, 0.35, 0.35]
//	coeffs = [-32.1, -31.4, -30.9]
//	domain = [0.0, 0.42]
//
// `nodes` is omitted for phases that carry no node list.
package system
