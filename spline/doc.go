// SPDX-License-Identifier: MIT

// Package spline models log-diffusivity as a function of composition.
//
// 🚀 What is a diffusivity model?
//
//	Inside one phase, ln D(X) is smooth. A Model stores it as a B-spline
//	(knots, coefficients, degree), so evaluation is a de Boor sweep and
//	D(X) = exp(Eval(X)). Fitting always happens in log space, so models
//	stay positive by construction.
//
// ✨ Model kinds (chosen once, at construction):
//   - Constant               — one node; a flat line through it.
//   - Linear                 — two nodes; degree-1 interpolation.
//   - InterpolatingQuadratic — three or more nodes; degree-2 interpolation
//     with knots at node midpoints.
//   - SmoothingQuadratic     — least-squares degree-2 fit to raw samples,
//     resampled and re-interpolated over the phase domain.
//
// ⚙️ Usage:
//
//	m, err := spline.FromNodes([]float64{0.1, 0.3, 0.5}, []float64{1e-14, 3e-14, 2e-14})
//	d := m.D(0.2)
//
//	s, err := spline.FromSamples(x, dc, [2]float64{0.15, 0.45}, [2]float64{0.1, 0.5})
//
// Evaluation outside the knot span extends the end polynomial piece, so a
// model never fails to evaluate at a finite composition.
package spline
