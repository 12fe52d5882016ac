// SPDX-License-Identifier: MIT

// Package value defines the closed set of runtime values that flow through
// lvmath functions: booleans, the four numeric kinds (number, BigNumber,
// Fraction, Complex), strings, nested Arrays, Matrices, Indexes and callback
// Functions.
//
// The set is sealed: every implementation of Value lives in this package, so
// a Type tag can be derived with an explicit switch and dispatch tables can be
// keyed by tuples of tags without reflection.
//
// Numeric kinds:
//
//	number     float64, IEEE semantics (x/0 = ±Inf, 0/0 = NaN)
//	BigNumber  arbitrary precision decimal on *big.Float (x/0 = ±Inf, 0/0 → ErrUndefined)
//	Fraction   exact rational on *big.Rat (x/0 → ErrDivisionByZero)
//	Complex    complex128
//
// Mixed operands are promoted along number < Fraction < BigNumber < Complex
// before an arithmetic kernel runs. All values are immutable by convention:
// kernels never mutate their operands and always return fresh values.
//
// Containers:
//
//	Array   []Value, nested for N-d data
//	Matrix  wrapper with explicit shape and dense (row-major) or sparse (2-D CSC) storage
//
// Text and JSON helpers (Parse, EncodeJSON, DecodeJSON) follow the math.js
// reviver format so values can travel over the CLI and HTTP adapters.
package value
