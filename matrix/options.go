// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the iterative kernels.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
package matrix

import "math"

// Defaults of the spectral norm's Jacobi iteration.
const (
	// DefaultEpsilon is the off-diagonal stopping tolerance, relative to
	// max(1, ‖MᵀM‖∞).
	DefaultEpsilon = 1e-12

	// DefaultMaxIter caps the number of Jacobi rotations.
	DefaultMaxIter = 10_000
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite and positive"
	panicMaxIterInvalid = "matrix: WithMaxIter: n must be positive"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps     float64 // > 0; DefaultEpsilon
	maxIter int     // > 0; DefaultMaxIter
}

// WithEpsilon sets the relative Jacobi tolerance used by OpNorm(·, 2).
//
// Errors:
//   - Panics when eps is NaN, infinite, zero or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIter caps the Jacobi rotations used by OpNorm(·, 2).
// Panics when n is not positive.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies setters over the defaults; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, maxIter: DefaultMaxIter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
