// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
)

// Rand returns a rows×cols matrix whose entries have a standard normal
// center and the absolute value of a standard normal as radius.
//
// Errors:
//   - ErrNilMatrix when rng is nil, ErrInvalidDimensions.
//
// Determinism:
//   - Draws center then radius per entry in row-major order, so a seeded rng
//     reproduces the matrix.
func Rand(rng *rand.Rand, rows, cols int) (*IntervalMatrix, error) {
	if rng == nil {
		return nil, imatrixErrorf(opRand, ErrNilMatrix)
	}
	m, err := New(rows, cols)
	if err != nil {
		return nil, imatrixErrorf(opRand, err)
	}
	var c, r float64
	for idx := range m.data {
		c = rng.NormFloat64()
		r = math.Abs(rng.NormFloat64())
		if m.data[idx], err = interval.MidRad(c, r); err != nil {
			return nil, imatrixErrorf(opRand, err)
		}
	}

	return m, nil
}

// Sample draws a real matrix M ∈ A with every entry uniform in its interval.
//
// Errors:
//   - ErrNilMatrix, ErrDomain for empty or unbounded entries.
func Sample(rng *rand.Rand, a Matrix) (*matrix.Dense, error) {
	if rng == nil {
		return nil, imatrixErrorf(opSample, ErrNilMatrix)
	}
	ma, err := materialize(opSample, a)
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(ma.r, ma.c)
	if err != nil {
		return nil, imatrixErrorf(opSample, err)
	}
	var i, j int
	var x interval.Interval
	var v float64
	for i = 0; i < ma.r; i++ {
		for j = 0; j < ma.c; j++ {
			x = ma.at(i, j)
			if !x.IsBounded() {
				return nil, indexErrorf(opSample, i, j, fmt.Errorf("entry %v: %w", x, ErrDomain))
			}
			u := rng.Float64()
			v = (1-u)*x.Inf() + u*x.Sup()
			// clamp rounding spill at either end
			v = math.Min(math.Max(v, x.Inf()), x.Sup())
			_ = out.Set(i, j, v)
		}
	}

	return out, nil
}
