// SPDX-License-Identifier: MIT

// Package imatrix - IntervalMatrix storage (row-major), constructors and
// safe accessors.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package imatrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
)

// Matrix is the read-only view shared by IntervalMatrix, Affine1 and Affine.
// Kernels accept Matrix and take a flat fast path for *IntervalMatrix.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns entry (i, j) or ErrOutOfRange.
	At(i, j int) (interval.Interval, error)
}

// IntervalMatrix is a rows×cols matrix of intervals stored row-major.
// The shape is fixed at construction; entries change only through Set and
// the *InPlace methods.
type IntervalMatrix struct {
	r, c int                 // row and column counts (> 0)
	data []interval.Interval // len == r*c, offset = i*c + j
}

// Compile-time assertions.
var (
	_ Matrix       = (*IntervalMatrix)(nil)
	_ fmt.Stringer = (*IntervalMatrix)(nil)
)

// New returns a rows×cols matrix with every entry equal to [0, 0].
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*IntervalMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, imatrixErrorf(opNew, ErrInvalidDimensions)
	}

	return &IntervalMatrix{r: rows, c: cols, data: make([]interval.Interval, rows*cols)}, nil
}

// newUnchecked allocates without validation; callers guarantee a valid shape.
func newUnchecked(rows, cols int) *IntervalMatrix {
	return &IntervalMatrix{r: rows, c: cols, data: make([]interval.Interval, rows*cols)}
}

// FromRows copies a rectangular literal of intervals.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrDimensionMismatch (ragged rows).
func FromRows(rows [][]interval.Interval) (*IntervalMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, imatrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	m := newUnchecked(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.c {
			return nil, imatrixErrorf(opFromRows, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), m.c, ErrDimensionMismatch))
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// MustFromRows is FromRows that panics on error. Intended for literals.
func MustFromRows(rows [][]interval.Interval) *IntervalMatrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromBounds builds entry (i, j) = [lo[i][j], hi[i][j]].
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (lo/hi shapes differ or are
//     ragged), ErrDomain (invalid bounds such as lo > hi).
func FromBounds(lo, hi [][]float64) (*IntervalMatrix, error) {
	if len(lo) == 0 || len(lo[0]) == 0 {
		return nil, imatrixErrorf(opFromBounds, ErrInvalidDimensions)
	}
	if len(hi) != len(lo) {
		return nil, imatrixErrorf(opFromBounds, ErrDimensionMismatch)
	}
	m := newUnchecked(len(lo), len(lo[0]))
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(lo[i]) != m.c || len(hi[i]) != m.c {
			return nil, imatrixErrorf(opFromBounds, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch))
		}
		for j = 0; j < m.c; j++ {
			x, err := interval.New(lo[i][j], hi[i][j])
			if err != nil {
				return nil, indexErrorf(opFromBounds, i, j, err)
			}
			m.data[i*m.c+j] = x
		}
	}

	return m, nil
}

// FromDense returns the point matrix with entries [d[i,j], d[i,j]].
func FromDense(d *matrix.Dense) (*IntervalMatrix, error) {
	if d == nil {
		return nil, imatrixErrorf(opNew, ErrNilMatrix)
	}
	m := newUnchecked(d.Rows(), d.Cols())
	d.Do(func(i, j int, v float64) bool {
		m.data[i*m.c+j] = interval.Point(v)
		return true
	})

	return m, nil
}

// FromDiagonal returns the rows×cols matrix whose leading min(rows, cols)
// diagonal entries equal x and all other entries are [0, 0]. It is the
// interval multiple of the identity, x·I.
func FromDiagonal(x interval.Interval, rows, cols int) (*IntervalMatrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	n := min(rows, cols)
	for i := 0; i < n; i++ {
		m.data[i*cols+i] = x
	}

	return m, nil
}

// Identity returns the n×n point identity matrix.
func Identity(n int) (*IntervalMatrix, error) {
	return FromDiagonal(interval.Point(1), n, n)
}

// Rows returns the row count.
func (m *IntervalMatrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *IntervalMatrix) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *IntervalMatrix) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows == Cols.
func (m *IntervalMatrix) IsSquare() bool { return m.r == m.c }

// At returns entry (i, j).
// Errors: ErrOutOfRange.
func (m *IntervalMatrix) At(i, j int) (interval.Interval, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return interval.Interval{}, indexErrorf(opAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set replaces entry (i, j) with v. The empty interval is a legal entry.
// Errors: ErrOutOfRange.
func (m *IntervalMatrix) Set(i, j int, v interval.Interval) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return indexErrorf(opSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns an independent deep copy.
func (m *IntervalMatrix) Clone() *IntervalMatrix {
	cp := make([]interval.Interval, len(m.data))
	copy(cp, m.data)

	return &IntervalMatrix{r: m.r, c: m.c, data: cp}
}

// at is the unchecked accessor used by kernels after shape validation.
func (m *IntervalMatrix) at(i, j int) interval.Interval { return m.data[i*m.c+j] }

// Do visits entries in row-major order until f returns false.
func (m *IntervalMatrix) Do(f func(i, j int, v interval.Interval) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[i*m.c+j]) {
				return
			}
		}
	}
}

// HasEmpty reports whether any entry is the empty interval.
func (m *IntervalMatrix) HasEmpty() bool {
	for _, x := range m.data {
		if x.IsEmpty() {
			return true
		}
	}

	return false
}

// Equal reports whether both matrices have the same shape and identical
// entries (empty entries compare equal to each other).
func Equal(a, b *IntervalMatrix) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if !a.data[idx].Equal(b.data[idx]) {
			return false
		}
	}

	return true
}

// ToRows exports the entries as a fresh [][]interval.Interval.
func (m *IntervalMatrix) ToRows() [][]interval.Interval {
	out := make([][]interval.Interval, m.r)
	for i := range out {
		out[i] = make([]interval.Interval, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders one bracketed row per line:
//
//	[[0, 1], [1, 2]]
//	[[2, 3], [-4, -2]]
func (m *IntervalMatrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// materialize returns m itself when it is an *IntervalMatrix, otherwise a
// dense copy read through the interface.
func materialize(tag string, m Matrix) (*IntervalMatrix, error) {
	if m == nil {
		return nil, imatrixErrorf(tag, ErrNilMatrix)
	}
	if im, ok := m.(*IntervalMatrix); ok {
		if im == nil {
			return nil, imatrixErrorf(tag, ErrNilMatrix)
		}
		return im, nil
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return nil, imatrixErrorf(tag, ErrInvalidDimensions)
	}
	out := newUnchecked(m.Rows(), m.Cols())
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			x, err := m.At(i, j)
			if err != nil {
				return nil, imatrixErrorf(tag, err)
			}
			out.data[i*out.c+j] = x
		}
	}

	return out, nil
}

// Materialize returns a dense *IntervalMatrix copy of any Matrix.
func Materialize(m Matrix) (*IntervalMatrix, error) {
	im, err := materialize(opNew, m)
	if err != nil {
		return nil, err
	}
	if im == m {
		return im.Clone(), nil
	}

	return im, nil
}
