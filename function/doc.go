// SPDX-License-Identifier: MIT

// Package function is the lvmath function catalog: one factory per function,
// each producing a typed.Function over the value types.
//
// What:
//
//   - Construction: matrix, size, index, linspace, range.
//   - Reductions:   min, max, mean, var, std.
//   - Access:       subset, concat.
//   - Callbacks:    map, forEach, filter.
//
// Every collection-producing function is created through the matrix factory:
// when the configuration says Matrix, results are wrapped by calling matrix;
// when it says Array, they are returned as plain value.Array. The decision is
// taken once, in Create, so a function keeps the container kind of the
// configuration it was built with.
//
// Transforms:
//
//	Transforms() lists one-based variants of concat, filter, forEach, index,
//	map, max, mean, min, range, std, subset and var for expression front ends.
//
// Usage:
//
//	reg := factory.NewRegistry()
//	_ = function.Register(reg)
//	ns, _ := factory.Build(reg, config.Default())
//	v, _ := ns.Call("linspace", value.Number(0), value.Number(3), value.Number(4))
//	// v = Matrix [0, 1, 2, 3]
//
// Errors:
//
//   - ErrInvalidCount, ErrBadRange, ErrBadNormalization, ErrUnknownStorage,
//     ErrNotOneDim, ErrBadDimension, ErrBadArgument and *IndexError, plus the
//     value package sentinels (ErrEmpty, ErrNotComparable, ErrDimensionMismatch,
//     ErrDivisionByZero, ErrUndefined, ...) wrapped with the function name.
//   - *typed.DispatchError when no signature accepts the arguments.
package function
