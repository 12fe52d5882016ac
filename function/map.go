// SPDX-License-Identifier: MIT

package function

import (
	"fmt"

	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Map returns the factory of map(x, callback). The callback is offered
// (value, index, x) for every cell, where index is the Array of zero-based
// positions; it sees as many of these as its arity declares. The result
// keeps the container kind of x.
func Map() factory.Factory {
	return factory.Factory{
		Name: NameMap,
		Create: func(env *factory.Env) (*typed.Function, error) {
			return create(env, NameMap, typed.Overloads{
				{Signature: sigCollection + ", function", Impl: func(args ...value.Value) (value.Value, error) {
					r, err := mapCells(args[0], args[1].(*value.Function))
					if err != nil {
						return nil, fnErrorf(NameMap, err)
					}
					return r, nil
				}},
			})
		},
	}
}

// ForEach returns the factory of forEach(x, callback). The callback is
// offered the same arguments as in map; forEach returns no value.
func ForEach() factory.Factory {
	return factory.Factory{
		Name: NameForEach,
		Create: func(env *factory.Env) (*typed.Function, error) {
			return create(env, NameForEach, typed.Overloads{
				{Signature: sigCollection + ", function", Impl: func(args ...value.Value) (value.Value, error) {
					err := eachCell(args[0], func(v value.Value, idx []int) error {
						_, err := args[1].(*value.Function).Call(v, positions(idx, 0), args[0])
						return err
					})
					if err != nil {
						return nil, fnErrorf(NameForEach, err)
					}
					return nil, nil
				}},
			})
		},
	}
}

func mapCells(x value.Value, cb *value.Function) (value.Value, error) {
	var src value.Array
	switch c := x.(type) {
	case value.Array:
		src = c
	case *value.Matrix:
		src = c.ToArray()
	}
	out, err := mapArray(src, nil, func(v value.Value, idx []int) (value.Value, error) {
		r, err := cb.Call(v, positions(idx, 0), x)
		if err == nil && r == nil {
			return nil, fmt.Errorf("%w: callback %s returned no value", ErrBadArgument, cb.Name())
		}
		return r, err
	})
	if err != nil {
		return nil, err
	}

	return sameKind(x, out)
}

func mapArray(a value.Array, path []int, fn func(value.Value, []int) (value.Value, error)) (value.Array, error) {
	out := make(value.Array, len(a))
	for i, v := range a {
		idx := append(append([]int(nil), path...), i)
		if inner, ok := v.(value.Array); ok {
			r, err := mapArray(inner, idx, fn)
			if err != nil {
				return nil, err
			}
			out[i] = r
			continue
		}
		r, err := fn(v, idx)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// eachCell visits every cell of x with its multi-index in row-major order.
func eachCell(x value.Value, fn func(value.Value, []int) error) error {
	var src value.Array
	switch c := x.(type) {
	case value.Array:
		src = c
	case *value.Matrix:
		src = c.ToArray()
	}
	_, err := mapArray(src, nil, func(v value.Value, idx []int) (value.Value, error) {
		return nil, fn(v, idx)
	})

	return err
}
