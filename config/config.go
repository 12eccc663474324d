// SPDX-License-Identifier: MIT

// Package config loads and validates run settings and interval-matrix
// problems for the intervalm command. YAML and TOML are supported, selected
// by file extension.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/intervalm/expm"
	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/power"
)

var (
	// ErrUnknownFormat is returned for a path whose extension is not
	// .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid is returned when a decoded document fails validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Format is a supported document encoding.
type Format uint8

const (
	YAML Format = iota + 1
	TOML
)

// FormatOf maps a file extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Defaults.
const (
	DefaultMultiplication = "slow"
	DefaultPowerAlgorithm = "intersect"
	DefaultExpMethod      = expm.MethodScaleAndSquare
	DefaultT              = 1.0
)

// Settings selects the arithmetic and the exponential method of a run.
type Settings struct {
	Multiplication string      `yaml:"multiplication" toml:"multiplication"`
	PowerAlgorithm string      `yaml:"power_algorithm" toml:"power_algorithm"`
	Validation     bool        `yaml:"validate" toml:"validate"`
	Exp            ExpSettings `yaml:"exp" toml:"exp"`
}

// ExpSettings parameterizes expm.Exp.
type ExpSettings struct {
	Method string  `yaml:"method" toml:"method"`
	T      float64 `yaml:"t" toml:"t"`
	P      int     `yaml:"p" toml:"p"`
	K      int     `yaml:"k" toml:"k"`
	L      int     `yaml:"l" toml:"l"`
}

// DefaultSettings returns slow multiplication, the intersect power
// algorithm, validation on and ScaleAndSquare{L: 5, P: 4} at t = 1.
func DefaultSettings() *Settings {
	return &Settings{
		Multiplication: DefaultMultiplication,
		PowerAlgorithm: DefaultPowerAlgorithm,
		Validation:     true,
		Exp: ExpSettings{
			Method: DefaultExpMethod,
			T:      DefaultT,
			P:      expm.DefaultP,
			K:      expm.DefaultK,
			L:      expm.DefaultL,
		},
	}
}

// Load reads settings from path on top of DefaultSettings and validates them.
// Keys absent from the document keep their default values.
//
// Errors:
//   - ErrUnknownFormat, the read/decode error, or ErrInvalid from Validate.
func Load(path string) (*Settings, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	s := DefaultSettings()
	if err = decode(data, format, s); err != nil {
		return nil, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes s to path in the format given by its extension.
func Save(path string, s *Settings) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := encode(s, format)
	if err != nil {
		return fmt.Errorf("config encode failed (%s): %w", path, err)
	}

	return os.WriteFile(path, data, 0o644)
}

func decode(data []byte, format Format, out any) error {
	if format == TOML {
		_, err := toml.Decode(string(data), out)
		return err
	}

	return yaml.Unmarshal(data, out)
}

func encode(v any, format Format) ([]byte, error) {
	if format == TOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	return yaml.Marshal(v)
}

// Validate checks every name against its parser and the numeric parameters
// against the exponential engine's domain. All problems are reported.
func (s *Settings) Validate() error {
	var errs []error
	if _, err := imatrix.ParseMulMode(s.Multiplication); err != nil {
		errs = append(errs, fmt.Errorf("%w: multiplication: %w", ErrInvalid, err))
	}
	if _, err := power.ParseAlgorithm(s.PowerAlgorithm); err != nil {
		errs = append(errs, fmt.Errorf("%w: power_algorithm: %w", ErrInvalid, err))
	}
	if _, err := s.Method(); err != nil {
		errs = append(errs, fmt.Errorf("%w: exp.method: %w", ErrInvalid, err))
	}
	if t := s.Exp.T; math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		errs = append(errs, fmt.Errorf("%w: exp.t = %g must be finite and non-negative", ErrInvalid, t))
	}
	for _, f := range []struct {
		name string
		v    int
	}{{"exp.p", s.Exp.P}, {"exp.k", s.Exp.K}, {"exp.l", s.Exp.L}} {
		if f.v < 1 {
			errs = append(errs, fmt.Errorf("%w: %s = %d must be positive", ErrInvalid, f.name, f.v))
		}
	}

	return errors.Join(errs...)
}

// MulMode returns the parsed multiplication mode.
func (s *Settings) MulMode() (imatrix.MulMode, error) {
	return imatrix.ParseMulMode(s.Multiplication)
}

// Method returns the configured exponential method.
func (s *Settings) Method() (expm.Method, error) {
	return expm.ParseMethod(s.Exp.Method, s.Exp.K, s.Exp.P, s.Exp.L)
}

// MulOptions returns the imatrix options for the configured mode.
func (s *Settings) MulOptions() ([]imatrix.Option, error) {
	mode, err := s.MulMode()
	if err != nil {
		return nil, err
	}

	return []imatrix.Option{imatrix.WithMulMode(mode)}, nil
}

// PowerOptions returns the power wrapper options for the configured
// algorithm and mode.
func (s *Settings) PowerOptions() ([]power.Option, error) {
	alg, err := power.ParseAlgorithm(s.PowerAlgorithm)
	if err != nil {
		return nil, err
	}
	mode, err := s.MulMode()
	if err != nil {
		return nil, err
	}

	return []power.Option{power.WithAlgorithm(alg), power.WithMulMode(mode)}, nil
}

// ExpOptions returns the expm options for the configured mode, power
// algorithm and validation flag.
func (s *Settings) ExpOptions() ([]expm.Option, error) {
	alg, err := power.ParseAlgorithm(s.PowerAlgorithm)
	if err != nil {
		return nil, err
	}
	mode, err := s.MulMode()
	if err != nil {
		return nil, err
	}
	opts := []expm.Option{expm.WithMulMode(mode), expm.WithPowerAlgorithm(alg)}
	if !s.Validation {
		opts = append(opts, expm.WithoutValidation())
	}

	return opts, nil
}
