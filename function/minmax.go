// SPDX-License-Identifier: MIT

package function

import (
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Min returns the factory of min.
//
//	min(a, b, ...)        smallest scalar
//	min(Array | Matrix)   smallest cell
//	min(Array | Matrix, dim)
//
// A NaN operand makes the result NaN. Complex operands fail with
// value.ErrNotComparable; empty collections with value.ErrEmpty.
func Min() factory.Factory { return extremum(NameMin, -1) }

// Max returns the factory of max; see Min for the forms.
func Max() factory.Factory { return extremum(NameMax, 1) }

// extremum builds min (want = -1) or max (want = 1).
func extremum(name string, want int) factory.Factory {
	pick := func(vs []value.Value) (value.Value, error) {
		if len(vs) == 0 {
			return nil, value.ErrEmpty
		}
		best := vs[0]
		if value.IsNaN(best) {
			return best, nil
		}
		for _, v := range vs[1:] {
			if value.IsNaN(v) {
				return v, nil
			}
			c, err := value.Compare(v, best)
			if err != nil {
				return nil, err
			}
			if c == want {
				best = v
			}
		}
		if len(vs) == 1 {
			// A lone operand still has to be orderable.
			if _, err := value.Compare(best, best); err != nil {
				return nil, err
			}
		}
		return best, nil
	}

	return factory.Factory{
		Name: name,
		Create: func(env *factory.Env) (*typed.Function, error) {
			return create(env, name, reducer(name, pick))
		},
	}
}

// reducer returns the three call forms shared by min, max and mean:
// (Array | Matrix), (Array | Matrix, dim) and (...scalars).
func reducer(name string, fold func([]value.Value) (value.Value, error)) typed.Overloads {
	return typed.Overloads{
		{Signature: sigCollection, Impl: func(args ...value.Value) (value.Value, error) {
			vs, err := leaves(args[0])
			if err != nil {
				return nil, fnErrorf(name, err)
			}
			r, err := fold(vs)
			if err != nil {
				return nil, fnErrorf(name, err)
			}
			return r, nil
		}},
		{Signature: sigCollection + ", " + sigDim, Impl: func(args ...value.Value) (value.Value, error) {
			r, err := reduceAlong(args[0], args[1], fold)
			if err != nil {
				return nil, fnErrorf(name, err)
			}
			return r, nil
		}},
		{Signature: "..." + sigScalar, Impl: func(args ...value.Value) (value.Value, error) {
			r, err := fold(args)
			if err != nil {
				return nil, fnErrorf(name, err)
			}
			return r, nil
		}},
	}
}

// reduceAlong folds dimension dim of coll, keeping coll's container kind.
func reduceAlong(coll, dim value.Value, fold func([]value.Value) (value.Value, error)) (value.Value, error) {
	g, err := gridOf(coll)
	if err != nil {
		return nil, err
	}
	d, err := toDim(dim, g.ndim())
	if err != nil {
		return nil, err
	}
	r, err := g.reduce(d, fold)
	if err != nil {
		return nil, err
	}

	return sameKind(coll, r)
}
