// SPDX-License-Identifier: MIT

package function

import (
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Concat returns the factory of concat(a, b, ... [, dim]).
//
// Collections are joined along dim (default: the last dimension). All
// operands need the same number of dimensions and equal sizes outside dim
// (value.ErrDimensionMismatch otherwise). The result is a Matrix when any
// operand is a Matrix.
//
// Complexity: O(total cells).
func Concat() factory.Factory {
	return factory.Factory{
		Name: NameConcat,
		Create: func(env *factory.Env) (*typed.Function, error) {
			return create(env, NameConcat, typed.Overloads{
				{Signature: "..." + sigCollection + " | " + sigDim, Impl: func(args ...value.Value) (value.Value, error) {
					r, err := concat(args)
					if err != nil {
						return nil, fnErrorf(NameConcat, err)
					}
					return r, nil
				}},
			})
		},
	}
}

func concat(args []value.Value) (value.Value, error) {
	var dimArg value.Value
	if last := args[len(args)-1]; !value.TypeOf(last).IsCollection() {
		dimArg, args = last, args[:len(args)-1]
	}
	if len(args) == 0 {
		return nil, ErrBadArgument
	}
	grids := make([]grid, len(args))
	anyMatrix := false
	for i, a := range args {
		if !value.TypeOf(a).IsCollection() {
			return nil, ErrBadArgument
		}
		if _, ok := a.(*value.Matrix); ok {
			anyMatrix = true
		}
		g, err := gridOf(a)
		if err != nil {
			return nil, err
		}
		grids[i] = g
	}

	ndim := grids[0].ndim()
	dim := ndim - 1
	if dimArg != nil {
		d, err := toDim(dimArg, ndim)
		if err != nil {
			return nil, err
		}
		dim = d
	}
	shape := append([]int(nil), grids[0].shape...)
	for _, g := range grids[1:] {
		if g.ndim() != ndim {
			return nil, value.ErrDimensionMismatch
		}
		for d := range shape {
			if d != dim && g.shape[d] != shape[d] {
				return nil, value.ErrDimensionMismatch
			}
		}
		shape[dim] += g.shape[dim]
	}

	out := newGrid(shape, nil)
	offset := 0
	for _, g := range grids {
		if len(g.data) > 0 {
			idx := make([]int, ndim)
			dst := make([]int, ndim)
			for {
				copy(dst, idx)
				dst[dim] += offset
				out.set(dst, g.at(idx))
				if !advance(idx, g.shape) {
					break
				}
			}
		}
		offset += g.shape[dim]
	}

	a := out.toArray()
	if anyMatrix {
		return value.NewMatrix(a)
	}

	return a, nil
}
