// SPDX-License-Identifier: MIT

package function

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/value"
)

var (
	// ErrInvalidCount is returned by linspace for a point count that is not
	// a non-negative integer.
	ErrInvalidCount = errors.New("function: point count must be a non-negative integer")

	// ErrBadRange is returned for malformed range strings and non-finite bounds.
	ErrBadRange = errors.New("function: invalid range")

	// ErrBadNormalization is returned for an unknown variance normalization.
	ErrBadNormalization = errors.New("function: unknown normalization")

	// ErrUnknownStorage is returned by matrix for a storage format other than dense or sparse.
	ErrUnknownStorage = errors.New("function: unknown storage format")

	// ErrNotOneDim is returned by filter for collections with more than one dimension.
	ErrNotOneDim = errors.New("function: one-dimensional collection required")

	// ErrBadDimension is returned when a dimension argument is outside the operand's dimensions.
	ErrBadDimension = errors.New("function: dimension out of range")

	// ErrTooLarge is returned when a result would hold more than MaxCells cells.
	ErrTooLarge = errors.New("function: result too large")

	// ErrBadArgument is returned for arguments no signature can describe
	// precisely (a scalar among concat's collections, say).
	ErrBadArgument = errors.New("function: invalid argument")
)

// IndexError reports a position outside a dimension. Base is added to the
// printed position and dimension, so one-based front ends report what the
// user typed.
type IndexError struct {
	Dim      int
	Position int
	Size     int
	Base     int
}

// Error renders "index P out of range for dimension D (size S)".
func (e *IndexError) Error() string {
	return fmt.Sprintf("function: index %d out of range for dimension %d (size %d)",
		e.Position+e.Base, e.Dim+e.Base, e.Size)
}

// Unwrap lets errors.Is match value.ErrOutOfRange.
func (e *IndexError) Unwrap() error { return value.ErrOutOfRange }

// fnErrorf wraps err with the function name.
func fnErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
