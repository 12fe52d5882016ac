// SPDX-License-Identifier: MIT

package typed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/value"
)

var (
	// ErrBadSignature is returned for malformed signature strings.
	ErrBadSignature = errors.New("typed: malformed signature")

	// ErrDuplicateSignature is returned when two overloads normalise to the same signature.
	ErrDuplicateSignature = errors.New("typed: duplicate signature")

	// ErrNoSignatures is returned when a function is created without overloads.
	ErrNoSignatures = errors.New("typed: no signatures")

	// ErrNoMatchingSignature means no signature accepts the argument types,
	// even after implicit conversions.
	ErrNoMatchingSignature = errors.New("typed: no matching signature")

	// ErrTooFewArguments means every signature needs more arguments.
	ErrTooFewArguments = errors.New("typed: too few arguments")

	// ErrTooManyArguments means every signature accepts fewer arguments.
	ErrTooManyArguments = errors.New("typed: too many arguments")
)

// DispatchError reports a failed resolution with the received argument types.
type DispatchError struct {
	Name   string
	Types  []value.Type
	Reason error
}

// Error renders "name(type, type): reason".
func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Name, joinTypes(e.Types), e.Reason)
}

// Unwrap exposes the reason sentinel to errors.Is.
func (e *DispatchError) Unwrap() error { return e.Reason }

func joinTypes(ts []value.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}

	return strings.Join(parts, ", ")
}

func typedErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
