// SPDX-License-Identifier: MIT

// Package imatrix implements dense matrices whose entries are rigorous
// intervals, the building block for bounding linear systems with uncertain
// coefficients.
//
// What & Why:
//   - IntervalMatrix stores interval.Interval entries in a flat row-major
//     buffer (offset = i*cols + j), mirroring matrix.Dense.
//   - Every kernel rounds outward, so results contain the exact set they
//     approximate.
//   - Affine and Affine1 describe A0 + Σ λₖ·Aₖ lazily over shared real basis
//     matrices; they satisfy the read-only Matrix interface and can be fed to
//     the same kernels.
//
// Kernels:
//   - Add, Sub, Neg, Scale, ScaleInterval, Transpose and in-place variants.
//   - Mul in two modes: ModeSlow (entrywise interval dot products) and
//     ModeFast (midpoint-radius enclosure), selected with WithMulMode.
//   - Square and QuadraticExpansion evaluate A² and αA + βA² with the
//     single-use expression form, which is tighter than the naive product.
//   - Projections (Inf, Sup, Mid, Diam, Radius, MidpointRadius), set
//     operations (Subset, ContainsMatrix, Intersect, Hull), norms, random
//     construction and point sampling.
//
// Errors:
//   - Sentinels live in errors.go; kernels wrap them with an operation tag,
//     so match with errors.Is. Nothing in this package panics on user input
//     except the Must* helpers.
package imatrix
