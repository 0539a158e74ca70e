// SPDX-License-Identifier: MIT

// Package adjust performs one step of a simulate–compare–adjust loop.
//
// 🚀 What does Adjust do?
//
//	Given a measured (reference) profile, a profile simulated with the
//	current diffusion system, and a phase index, Adjust scales the
//	diffusivity nodes of that phase so that a re-simulation tracks the
//	reference more closely, and returns the rebuilt phase model.
//
// ✨ Branches (first match wins):
//   - consumed  — the simulation has no sample inside the phase: the phase
//     grew too slowly, D is doubled (or scaled by 10^Magnitude).
//   - magnitude — phase mode with an explicit Magnitude: every node is
//     scaled by 10^Magnitude.
//   - width     — phase mode: every node is scaled by √(wRef/wSim), the
//     ratio of phase widths in distance.
//   - point     — point mode: each node is scaled by (gSim/gRef)^rate,
//     gRef and gSim being the local composition gradients around it.
//
// The rate is 1, escalated to 2 when the two profiles disagree on the
// number of phases.
//
// ⚙️ Usage:
//
//	res, err := adjust.Adjust(ref, sim, sys, 1, adjust.WithMode(adjust.PhaseMode))
//	if err == nil {
//		_ = sys.Replace(1, res.Model)
//	}
//
// Mismatch reports how far a simulated profile is from the reference, so
// callers can decide when to stop iterating.
package adjust
