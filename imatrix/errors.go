// SPDX-License-Identifier: MIT

package imatrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
)

var (
	// ErrDimensionMismatch reports incompatible shapes (Add/Sub shapes,
	// Mul inner dimensions, a non-square operand where one is required).
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrOutOfRange reports an index outside the matrix bounds.
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrInvalidDimensions reports non-positive requested dimensions.
	ErrInvalidDimensions = matrix.ErrInvalidDimensions

	// ErrDomain reports invalid numeric input: negative radius, lo > hi,
	// an unsupported norm, sampling an unbounded entry.
	ErrDomain = interval.ErrDomain

	// ErrNilMatrix reports a nil operand.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrUnsupportedMode reports an unknown multiplication mode name.
	ErrUnsupportedMode = errors.New("imatrix: unsupported multiplication mode")

	// ErrSoundnessViolation reports that two enclosures of the same quantity
	// are disjoint, which can only happen when an invariant was broken.
	ErrSoundnessViolation = errors.New("imatrix: soundness violation")
)

// Operation tags used in wrapped errors.
const (
	opNew        = "New"
	opFromRows   = "FromRows"
	opFromBounds = "FromBounds"
	opFromMidRad = "FromMidRad"
	opAt         = "At"
	opSet        = "Set"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opSquare     = "Square"
	opQuadExp    = "QuadraticExpansion"
	opSubset     = "Subset"
	opContains   = "ContainsMatrix"
	opIntersect  = "Intersect"
	opHull       = "Hull"
	opNorm       = "OpNorm"
	opDiamNorm   = "DiamNorm"
	opRand       = "Rand"
	opSample     = "Sample"
	opAffine     = "NewAffine"
	opProject    = "Project"
	opTranspose  = "Transpose"
)

// imatrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func imatrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf tags err with an operation and the offending coordinates.
func indexErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}
