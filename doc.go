// SPDX-License-Identifier: MIT

// Package intervalm computes with matrices whose entries are rigorous
// intervals, and bounds linear dynamical systems with uncertain parameters.
//
// Every result either contains the true value (an overapproximation) or is
// contained in it (an underapproximation). Outward rounding is applied at
// every floating-point step.
//
// The module is organized into small packages:
//
//	interval/ : scalar intervals with outward rounding
//	matrix/   : real dense matrices, kernels and operator norms
//	imatrix/  : interval matrices, affine forms, SUE squaring and quadratic expansion
//	power/    : incremental enclosures of Mᵏ with several algorithms
//	expm/     : enclosures of exp(A·t) and the discretization correction terms
//	config/   : YAML and TOML settings and problem files
//
// Quick example:
//
//	a := imatrix.MustFromRows([][]interval.Interval{
//		{interval.MustNew(-1, -0.9), interval.Point(0.5)},
//		{interval.Point(0.2), interval.MustNew(-0.8, -0.7)},
//	})
//	e, err := expm.Exp(a, 0.5, expm.ScaleAndSquare{L: 5, P: 4})
//
// The intervalm command (cmd/intervalm) drives the library from the shell:
//
//	go install github.com/katalvlaran/intervalm/cmd/intervalm@latest
package intervalm
