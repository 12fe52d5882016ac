// SPDX-License-Identifier: MIT

package factory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFactory is returned for a factory with an empty name or nil Create.
	ErrInvalidFactory = errors.New("factory: invalid factory")

	// ErrDuplicateFactory is returned when a name is registered twice.
	ErrDuplicateFactory = errors.New("factory: duplicate factory")

	// ErrUnresolvedDependency is returned when a requested or declared name
	// has no registered factory.
	ErrUnresolvedDependency = errors.New("factory: unresolved dependency")

	// ErrCircularDependency is returned when factories depend on each other in a cycle.
	ErrCircularDependency = errors.New("factory: circular dependency")

	// ErrUndeclaredDependency is returned when a factory loads a name it did
	// not list in Dependencies.
	ErrUndeclaredDependency = errors.New("factory: undeclared dependency")
)

// factoryErrorf wraps err with an operation tag and detail.
func factoryErrorf(op, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("factory.%s: %w", op, err)
	}

	return fmt.Errorf("factory.%s: %w: %s", op, err, detail)
}
