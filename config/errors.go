// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMatrix signals a matrix output other than "Matrix" or "Array".
	ErrInvalidMatrix = errors.New("config: invalid matrix output")

	// ErrInvalidNumber signals a number kind other than number, BigNumber, Fraction.
	ErrInvalidNumber = errors.New("config: invalid number kind")

	// ErrInvalidPrecision signals a non-positive BigNumber precision.
	ErrInvalidPrecision = errors.New("config: precision must be > 0")

	// ErrInvalidEpsilon signals a negative or non-finite epsilon.
	ErrInvalidEpsilon = errors.New("config: epsilon must be finite and >= 0")

	// ErrUnknownFormat is returned by Load/Parse for unsupported file formats.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

func configErrorf(tag string, err error) error {
	return fmt.Errorf("config.%s: %w", tag, err)
}
