// SPDX-License-Identifier: MIT

package function

import (
	"unicode/utf8"

	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Size returns the factory of size. size(Matrix) is always a Matrix; the
// other forms follow the configured output container. Scalars have no
// dimensions.
func Size() factory.Factory {
	return factory.Factory{
		Name:         NameSize,
		Dependencies: []string{NameMatrix},
		Create: func(env *factory.Env) (*typed.Function, error) {
			out, err := output(env)
			if err != nil {
				return nil, err
			}
			matrix, err := env.Load(NameMatrix)
			if err != nil {
				return nil, err
			}
			return create(env, NameSize, typed.Overloads{
				{Signature: "Array", Impl: func(args ...value.Value) (value.Value, error) {
					shape, err := args[0].(value.Array).Size()
					if err != nil {
						return nil, fnErrorf(NameSize, err)
					}
					return out(dims(shape))
				}},
				{Signature: "Matrix", Impl: func(args ...value.Value) (value.Value, error) {
					return matrix.Call(dims(args[0].(*value.Matrix).Size()))
				}},
				{Signature: "string", Impl: func(args ...value.Value) (value.Value, error) {
					return out(dims([]int{utf8.RuneCountInString(string(args[0].(value.String)))}))
				}},
				{Signature: sigScalar, Impl: func(...value.Value) (value.Value, error) {
					return out(value.Array{})
				}},
			})
		},
	}
}

func dims(shape []int) value.Array {
	out := make(value.Array, len(shape))
	for i, s := range shape {
		out[i] = value.Number(s)
	}

	return out
}
