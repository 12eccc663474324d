// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
)

// Problem is an interval matrix given either as rows of [lo, hi] pairs
// (Bounds) or as center and radius rows (Center, Radius). Bounds wins when
// both are present.
//
// YAML:
//
//	name: doc
//	bounds:
//	  - [[0, 1], [1, 2]]
//	  - [[2, 3], [-4, -2]]
type Problem struct {
	Name   string        `yaml:"name" toml:"name"`
	Bounds [][][]float64 `yaml:"bounds,omitempty" toml:"bounds,omitempty"`
	Center [][]float64   `yaml:"center,omitempty" toml:"center,omitempty"`
	Radius [][]float64   `yaml:"radius,omitempty" toml:"radius,omitempty"`
}

// LoadProblem reads a problem document from path.
// Errors: ErrUnknownFormat, the read/decode error, ErrInvalid.
func LoadProblem(path string) (*Problem, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem load failed (%s): %w", path, err)
	}

	return ParseProblem(data, format)
}

// ParseProblem decodes and validates a problem document.
func ParseProblem(data []byte, format Format) (*Problem, error) {
	var p Problem
	if err := decode(data, format, &p); err != nil {
		return nil, fmt.Errorf("problem parse failed: %w", err)
	}
	if len(p.Bounds) == 0 && len(p.Center) == 0 {
		return nil, fmt.Errorf("%w: problem has neither bounds nor center", ErrInvalid)
	}

	return &p, nil
}

// SaveProblem writes p to path in the format given by its extension.
func SaveProblem(path string, p *Problem) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := encode(p, format)
	if err != nil {
		return fmt.Errorf("problem encode failed (%s): %w", path, err)
	}

	return os.WriteFile(path, data, 0o644)
}

// ProblemFrom captures m as a Bounds problem.
func ProblemFrom(name string, m *imatrix.IntervalMatrix) *Problem {
	p := &Problem{Name: name, Bounds: make([][][]float64, m.Rows())}
	for i, row := range m.ToRows() {
		p.Bounds[i] = make([][]float64, len(row))
		for j, x := range row {
			p.Bounds[i][j] = []float64{x.Inf(), x.Sup()}
		}
	}

	return p
}

// Matrix converts the problem to an interval matrix.
//
// Errors:
//   - ErrInvalid for a pair that does not have exactly two numbers, for
//     lo > hi, and for mismatched center/radius shapes or negative radii.
func (p *Problem) Matrix() (*imatrix.IntervalMatrix, error) {
	if len(p.Bounds) > 0 {
		return p.fromBounds()
	}
	if len(p.Center) == 0 {
		return nil, fmt.Errorf("%w: problem %q is empty", ErrInvalid, p.Name)
	}

	return p.fromMidRad()
}

func (p *Problem) fromBounds() (*imatrix.IntervalMatrix, error) {
	rows := make([][]interval.Interval, len(p.Bounds))
	for i, row := range p.Bounds {
		rows[i] = make([]interval.Interval, len(row))
		for j, pair := range row {
			if len(pair) != 2 {
				return nil, fmt.Errorf("%w: bounds[%d][%d] has %d numbers, want 2", ErrInvalid, i, j, len(pair))
			}
			x, err := interval.New(pair[0], pair[1])
			if err != nil {
				return nil, fmt.Errorf("%w: bounds[%d][%d]: %w", ErrInvalid, i, j, err)
			}
			rows[i][j] = x
		}
	}
	m, err := imatrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return m, nil
}

func (p *Problem) fromMidRad() (*imatrix.IntervalMatrix, error) {
	center, err := matrix.FromRows(p.Center)
	if err != nil {
		return nil, fmt.Errorf("%w: center: %w", ErrInvalid, err)
	}
	var radius *matrix.Dense
	if len(p.Radius) == 0 {
		radius, err = matrix.NewDense(center.Rows(), center.Cols())
	} else {
		radius, err = matrix.FromRows(p.Radius)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: radius: %w", ErrInvalid, err)
	}
	m, err := imatrix.FromMidRad(center, radius)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return m, nil
}
