// SPDX-License-Identifier: MIT

// Package config holds the immutable configuration snapshot read by every
// function factory at creation time.
//
// What & Why:
//
//	Factories close over a Config when they are instantiated. A Config is a
//	plain value: copying it is the snapshot. Changing configuration means
//	building a new function graph (see factory.Namespace.Rebuild); functions
//	already built keep the snapshot they captured.
//
// Sources, in increasing priority:
//
//	Default() → file (Load: YAML or TOML) → functional options (New / Apply).
package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/value"
)

// MatrixOutput selects the container returned by functions that build collections.
type MatrixOutput string

const (
	// OutputMatrix wraps results in *value.Matrix.
	OutputMatrix MatrixOutput = "Matrix"

	// OutputArray returns plain value.Array results.
	OutputArray MatrixOutput = "Array"
)

// NumberKind selects the numeric kind used when text is parsed into numbers.
type NumberKind string

const (
	NumberPlain    NumberKind = "number"
	NumberBig      NumberKind = "BigNumber"
	NumberFraction NumberKind = "Fraction"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMatrix mirrors the library default: collection results are matrices.
	DefaultMatrix = OutputMatrix

	// DefaultNumber parses text into plain numbers.
	DefaultNumber = NumberPlain

	// DefaultPrecision is the number of significant digits of BigNumber values.
	DefaultPrecision = value.DefaultDigits

	// DefaultEpsilon is the tolerance used by near-integer checks.
	DefaultEpsilon = 1e-12
)

// Config is the process-wide settings snapshot.
type Config struct {
	Matrix    MatrixOutput `yaml:"matrix" toml:"matrix" json:"matrix"`
	Number    NumberKind   `yaml:"number" toml:"number" json:"number"`
	Precision int          `yaml:"precision" toml:"precision" json:"precision"`
	Epsilon   float64      `yaml:"epsilon" toml:"epsilon" json:"epsilon"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Matrix:    DefaultMatrix,
		Number:    DefaultNumber,
		Precision: DefaultPrecision,
		Epsilon:   DefaultEpsilon,
	}
}

// Validate checks every field against its domain.
//
// Errors (first failing field wins, in declaration order):
//   - ErrInvalidMatrix, ErrInvalidNumber, ErrInvalidPrecision, ErrInvalidEpsilon.
func (c Config) Validate() error {
	switch c.Matrix {
	case OutputMatrix, OutputArray:
	default:
		return configErrorf("Validate", fmt.Errorf("%w: %q", ErrInvalidMatrix, c.Matrix))
	}
	switch c.Number {
	case NumberPlain, NumberBig, NumberFraction:
	default:
		return configErrorf("Validate", fmt.Errorf("%w: %q", ErrInvalidNumber, c.Number))
	}
	if c.Precision <= 0 {
		return configErrorf("Validate", fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Precision))
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return configErrorf("Validate", fmt.Errorf("%w: %g", ErrInvalidEpsilon, c.Epsilon))
	}

	return nil
}

// NumberType maps the configured NumberKind onto a value.Type tag.
func (c Config) NumberType() value.Type {
	switch c.Number {
	case NumberBig:
		return value.TypeBigNumber
	case NumberFraction:
		return value.TypeFraction
	}

	return value.TypeNumber
}

// WantsArray reports whether collection results stay plain Arrays.
func (c Config) WantsArray() bool {
	return c.Matrix == OutputArray
}
