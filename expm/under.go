// SPDX-License-Identifier: MIT

package expm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
)

// Underapproximation returns an inner enclosure of {exp(M·t) : M ∈ A}: every
// entry [u, l] is contained in the range of that entry over A.
//
// Implementation:
//   - Candidate real matrices: inf A, sup A, mid A and, for every nondegenerate
//     entry, mid A with that entry moved to either endpoint.
//   - Each candidate's exponential is enclosed with the order-p Taylor
//     overapproximation.
//   - Per entry, u is the smallest certified upper bound and l the largest
//     certified lower bound. When u ≤ l the entry is [u, l]: the entry map is
//     continuous on the convex set A, so it takes every value between its
//     values at the two witnessing candidates. Otherwise the entry is empty.
//
// Candidates with a non-finite entry are skipped.
//
// Errors: as Overapproximation.
//
// Complexity:
//   - Time O(n²·p·n³), Space O(n²).
func Underapproximation(a imatrix.Matrix, t float64, p int, opts ...Option) (*imatrix.IntervalMatrix, error) {
	o := gatherOptions(opts...)
	if err := o.checkTime(opUnder, t); err != nil {
		return nil, err
	}
	if err := o.checkOrder(opUnder, "p", p); err != nil {
		return nil, err
	}
	m, err := prepare(opUnder, a)
	if err != nil {
		return nil, err
	}

	return underapproximate(m, t, p, o)
}

func underapproximate(m *imatrix.IntervalMatrix, t float64, p int, o options) (*imatrix.IntervalMatrix, error) {
	n := m.Rows()
	cands, err := candidates(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUnder, err)
	}

	upper := make([]float64, n*n)
	lower := make([]float64, n*n)
	for idx := range upper {
		upper[idx] = math.Inf(1)
		lower[idx] = math.Inf(-1)
	}
	for _, c := range cands {
		e, err := overapproximate(c, t, p, o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opUnder, err)
		}
		e.Do(func(i, j int, v interval.Interval) bool {
			idx := i*n + j
			upper[idx] = math.Min(upper[idx], v.Sup())
			lower[idx] = math.Max(lower[idx], v.Inf())
			return true
		})
	}

	out, _ := imatrix.New(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err := interval.New(upper[i*n+j], lower[i*n+j])
			if err != nil {
				x = interval.Empty()
			}
			_ = out.Set(i, j, x)
		}
	}

	return out, nil
}

// candidates returns the finite real matrices probed by Underapproximation as
// point interval matrices.
func candidates(m *imatrix.IntervalMatrix) ([]*imatrix.IntervalMatrix, error) {
	lo, hi, err := imatrix.Split(m)
	if err != nil {
		return nil, err
	}
	mid, err := imatrix.Mid(m)
	if err != nil {
		return nil, err
	}

	pts := []*matrix.Dense{lo, hi, mid}
	m.Do(func(i, j int, v interval.Interval) bool {
		if v.IsPoint() {
			return true
		}
		for _, end := range [2]float64{v.Inf(), v.Sup()} {
			d := mid.CloneDense()
			_ = d.Set(i, j, end)
			pts = append(pts, d)
		}
		return true
	})

	out := make([]*imatrix.IntervalMatrix, 0, len(pts))
	for _, d := range pts {
		if !finite(d) {
			continue
		}
		pm, err := imatrix.FromDense(d)
		if err != nil {
			return nil, err
		}
		out = append(out, pm)
	}

	return out, nil
}

func finite(d *matrix.Dense) bool {
	ok := true
	d.Do(func(_, _ int, v float64) bool {
		ok = !math.IsInf(v, 0)
		return ok
	})

	return ok
}
