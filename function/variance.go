// SPDX-License-Identifier: MIT

package function

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Normalization names accepted by var and std.
const (
	NormUnbiased    = "unbiased"    // divide by n−1 (default)
	NormUncorrected = "uncorrected" // divide by n
	NormBiased      = "biased"      // divide by n+1
)

// Var returns the factory of var.
//
//	var(a, b, ...)
//	var(Array | Matrix)
//	var(Array | Matrix, normalization)
//	var(Array | Matrix, dim)
//	var(Array | Matrix, dim, normalization)
//
// The unbiased variance of a single value is 0. Unknown normalizations fail
// with ErrBadNormalization.
//
// Complexity: two passes over the cells.
func Var() factory.Factory {
	return factory.Factory{
		Name: NameVar,
		Create: func(env *factory.Env) (*typed.Function, error) {
			all := func(coll value.Value, norm string) (value.Value, error) {
				vs, err := leaves(coll)
				if err != nil {
					return nil, fnErrorf(NameVar, err)
				}
				r, err := variance(vs, norm)
				if err != nil {
					return nil, fnErrorf(NameVar, err)
				}
				return r, nil
			}
			along := func(coll, dim value.Value, norm string) (value.Value, error) {
				r, err := reduceAlong(coll, dim, func(vs []value.Value) (value.Value, error) {
					return variance(vs, norm)
				})
				if err != nil {
					return nil, fnErrorf(NameVar, err)
				}
				return r, nil
			}
			return create(env, NameVar, typed.Overloads{
				{Signature: sigCollection, Impl: func(args ...value.Value) (value.Value, error) {
					return all(args[0], NormUnbiased)
				}},
				{Signature: sigCollection + ", string", Impl: func(args ...value.Value) (value.Value, error) {
					return all(args[0], string(args[1].(value.String)))
				}},
				{Signature: sigCollection + ", " + sigDim, Impl: func(args ...value.Value) (value.Value, error) {
					return along(args[0], args[1], NormUnbiased)
				}},
				{Signature: sigCollection + ", " + sigDim + ", string", Impl: func(args ...value.Value) (value.Value, error) {
					return along(args[0], args[1], string(args[2].(value.String)))
				}},
				{Signature: "..." + sigScalar, Impl: func(args ...value.Value) (value.Value, error) {
					r, err := variance(args, NormUnbiased)
					if err != nil {
						return nil, fnErrorf(NameVar, err)
					}
					return r, nil
				}},
			})
		},
	}
}

// variance computes the sum of squared deviations divided per norm.
func variance(vs []value.Value, norm string) (value.Value, error) {
	switch norm {
	case NormUnbiased, NormUncorrected, NormBiased:
	default:
		return nil, fnErrorf(norm, ErrBadNormalization)
	}
	n := len(vs)
	if n == 0 {
		return nil, value.ErrEmpty
	}
	if xs, ok := plainNumbers(vs); ok {
		return value.Number(floatVariance(xs, norm)), nil
	}

	m, err := mean(vs)
	if err != nil {
		return nil, err
	}
	var ss value.Value = value.Zero(m)
	for _, v := range vs {
		d, err := value.Subtract(v, m)
		if err != nil {
			return nil, err
		}
		sq, err := value.Multiply(d, d)
		if err != nil {
			return nil, err
		}
		if ss, err = value.Add(ss, sq); err != nil {
			return nil, err
		}
	}
	switch norm {
	case NormUncorrected:
		return value.Divide(ss, value.FromInt(n, ss))
	case NormBiased:
		return value.Divide(ss, value.FromInt(n+1, ss))
	}
	if n == 1 {
		return value.Zero(ss), nil
	}

	return value.Divide(ss, value.FromInt(n-1, ss))
}

// floatVariance is the plain-number path through gonum.
func floatVariance(xs []float64, norm string) float64 {
	n := float64(len(xs))
	switch norm {
	case NormUncorrected:
		return stat.PopVariance(xs, nil)
	case NormBiased:
		return stat.PopVariance(xs, nil) * n / (n + 1)
	}
	if len(xs) == 1 {
		return 0
	}

	return stat.Variance(xs, nil)
}
