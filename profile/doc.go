// SPDX-License-Identifier: MIT

// Package profile holds the measured input of the diffusivity pipeline: a
// concentration-vs-distance profile from a diffusion couple, and the raw
// diffusivity curve derived from it.
//
// A Profile is an ordered sequence of (distance, composition) samples with
// non-decreasing distance (µm). Two consecutive samples sharing the same
// distance mark a phase interface; the composition jumps across it.
//
// Besides the container itself the package provides the profile-level
// helpers every estimator needs:
//
//   - Interfaces / PhaseCount: phase structure from repeated distances.
//   - MatanoPlane: the position balancing the diffusive fluxes.
//   - DistanceFunc: distance as a (linearly extrapolated) function of composition.
//   - CoerceTime: diffusion time from loosely typed input.
//   - ReadCSV / WriteCSV: plain two-column text exchange.
package profile
