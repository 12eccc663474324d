// SPDX-License-Identifier: MIT

// Package expm encloses the matrix exponential exp(A·t) of an interval
// matrix A for a time t ≥ 0.
//
// Four methods are available, selected with a Method value:
//
//   - TaylorOverapproximation{P}: I + A·t + A²t²/2 (single-use form)
//     + Σ_{i=3}^{P} Aⁱtⁱ/i! plus a rigorous remainder. Always a superset.
//   - TaylorUnderapproximation{P}: an inner enclosure. Every entry is an
//     interval of values attained by some real M ∈ A, so the result is always
//     a subset of the true range; entries with no certified interior are empty.
//   - Horner{K}: the degree-K series evaluated as I + At(I + At/2(… )) plus the
//     same remainder.
//   - ScaleAndSquare{L, P}: the order-P Taylor enclosure of exp(A·t·2^-L)
//     squared L times with the exact interval square.
//
// CorrectionHull and InputCorrection bound the discretization error terms of
// reachability algorithms built on these enclosures.
//
// All entry points validate t ≥ 0 and positive orders unless called with
// WithoutValidation; violations return ErrDomain.
package expm
