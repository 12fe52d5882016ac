// SPDX-License-Identifier: MIT

// Package config: functional options.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error);
//     data read from files is validated with errors instead (see Load).
package config

import "math"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMatrixInvalid    = "config: WithMatrix: output must be Matrix or Array"
	panicNumberInvalid    = "config: WithNumber: kind must be number, BigNumber or Fraction"
	panicPrecisionInvalid = "config: WithPrecision: digits must be > 0"
	panicEpsilonInvalid   = "config: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates a Config under construction.
type Option func(*Config)

// New returns Default() with opts applied in order.
func New(opts ...Option) Config {
	return Default().Apply(opts...)
}

// Apply returns a copy of c with opts applied; c itself is unchanged.
func (c Config) Apply(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithMatrix selects the collection output container.
func WithMatrix(out MatrixOutput) Option {
	if out != OutputMatrix && out != OutputArray {
		panic(panicMatrixInvalid)
	}

	return func(c *Config) { c.Matrix = out }
}

// WithNumber selects the numeric kind used when parsing text.
func WithNumber(kind NumberKind) Option {
	switch kind {
	case NumberPlain, NumberBig, NumberFraction:
	default:
		panic(panicNumberInvalid)
	}

	return func(c *Config) { c.Number = kind }
}

// WithPrecision sets BigNumber significant digits.
func WithPrecision(digits int) Option {
	if digits <= 0 {
		panic(panicPrecisionInvalid)
	}

	return func(c *Config) { c.Precision = digits }
}

// WithEpsilon sets the near-integer tolerance.
// Prefer small values (1e-12) for double-precision data.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(c *Config) { c.Epsilon = eps }
}
