// SPDX-License-Identifier: MIT

package function

import (
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Matrix returns the factory of matrix, the Matrix constructor.
//
//	matrix()                       empty dense matrix
//	matrix(Array | Matrix)         dense copy
//	matrix(Array | Matrix, format) "dense" or "sparse" (2-D only)
//
// The result is always a Matrix; other functions route through it to honour
// the configured output container.
func Matrix() factory.Factory {
	return factory.Factory{
		Name: NameMatrix,
		Create: func(env *factory.Env) (*typed.Function, error) {
			return create(env, NameMatrix, typed.Overloads{
				{Signature: "", Impl: func(...value.Value) (value.Value, error) {
					return value.NewMatrix(value.Array{})
				}},
				{Signature: "Array", Impl: func(args ...value.Value) (value.Value, error) {
					return value.NewMatrix(args[0].(value.Array))
				}},
				{Signature: "Matrix", Impl: func(args ...value.Value) (value.Value, error) {
					return args[0].(*value.Matrix).Clone(), nil
				}},
				{Signature: sigCollection + ", string", Impl: func(args ...value.Value) (value.Value, error) {
					return matrixWithFormat(args[0], string(args[1].(value.String)))
				}},
			})
		},
	}
}

func matrixWithFormat(data value.Value, format string) (value.Value, error) {
	storage, ok := value.ParseStorage(format)
	if !ok {
		return nil, fnErrorf(NameMatrix+"("+format+")", ErrUnknownStorage)
	}
	var a value.Array
	switch x := data.(type) {
	case value.Array:
		a = x
	case *value.Matrix:
		if x.Storage() == storage {
			return x.Clone(), nil
		}
		a = x.ToArray()
	}
	if storage == value.StorageSparse {
		return value.NewSparse(a)
	}

	return value.NewMatrix(a)
}
