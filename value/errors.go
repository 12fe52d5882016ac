// SPDX-License-Identifier: MIT
// Package value: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag
// (fmt.Errorf("%s: %w", tag, err)); callers match with errors.Is.

package value

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned when a type name cannot be resolved.
	ErrUnknownType = errors.New("value: unknown type")

	// ErrConversion signals that a value cannot be converted to the requested type.
	ErrConversion = errors.New("value: conversion failed")

	// ErrDivisionByZero is returned by exact kinds (Fraction) on division by zero.
	ErrDivisionByZero = errors.New("value: division by zero")

	// ErrUndefined is returned by BigNumber kernels for results that have no
	// representation (0/0, 0·Inf, Inf−Inf). big.Float has no NaN.
	ErrUndefined = errors.New("value: undefined result")

	// ErrNotComparable is returned when an ordering is requested on Complex or NaN.
	ErrNotComparable = errors.New("value: values are not comparable")

	// ErrNotNumeric signals that a numeric kernel received a non-numeric operand.
	ErrNotNumeric = errors.New("value: value is not numeric")

	// ErrNotInteger signals that an integer was required.
	ErrNotInteger = errors.New("value: value is not an integer")

	// ErrJagged is returned when nested arrays do not form a rectangular shape.
	ErrJagged = errors.New("value: array is not rectangular")

	// ErrNotTwoDim is returned when sparse storage is requested for non 2-D data.
	ErrNotTwoDim = errors.New("value: two-dimensional data required")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("value: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("value: dimension mismatch")

	// ErrEmpty is returned when a non-empty collection was required.
	ErrEmpty = errors.New("value: empty collection")
)

// valueErrorf wraps a sentinel with an operation tag.
func valueErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
