// SPDX-License-Identifier: MIT

// Package flux estimates diffusion coefficients directly from a
// concentration profile.
//
// 🚀 Estimators:
//   - SauerFraise — the Sauer–Fraise form of the Boltzmann–Matano analysis.
//     Every sample gets D from the flux integrals on both sides of it and
//     the local composition gradient.
//   - Hall — near the composition extremes the gradient vanishes and
//     Sauer–Fraise becomes noisy. Hall linearizes the profile as
//     u = erfinv(2Y−1) against λ = (x − x_M)/√t and derives D from the
//     fitted slope and intercept.
//
// ⚙️ Units:
//
//	Distance in µm, time in seconds, D in m²/s.
//
// Both estimators are pure functions of their inputs. NaN and Inf may
// appear in results where the profile is flat; callers clamp them
// (see dmodel.ClampOutliers).
package flux
