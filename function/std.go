// SPDX-License-Identifier: MIT

package function

import (
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Std returns the factory of std, the square root of var. It accepts exactly
// the signatures of var.
func Std() factory.Factory {
	return factory.Factory{
		Name:         NameStd,
		Dependencies: []string{NameVar},
		Create: func(env *factory.Env) (*typed.Function, error) {
			variance, err := env.Load(NameVar)
			if err != nil {
				return nil, err
			}
			impl := func(args ...value.Value) (value.Value, error) {
				v, err := variance.Call(args...)
				if err != nil {
					return nil, err
				}
				r, err := deepMap(v, value.Sqrt)
				if err != nil {
					return nil, fnErrorf(NameStd, err)
				}
				return r, nil
			}
			sigs := variance.Signatures()
			overloads := make(typed.Overloads, len(sigs))
			for i, s := range sigs {
				overloads[i] = typed.Overload{Signature: s, Impl: impl}
			}
			return create(env, NameStd, overloads)
		},
	}
}

// deepMap applies fn to every scalar of v, keeping the container kind.
func deepMap(v value.Value, fn func(value.Value) (value.Value, error)) (value.Value, error) {
	switch x := v.(type) {
	case value.Array:
		out := make(value.Array, len(x))
		for i, e := range x {
			r, err := deepMap(e, fn)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case *value.Matrix:
		a, err := deepMap(x.ToArray(), fn)
		if err != nil {
			return nil, err
		}
		return sameKind(x, a)
	}

	return fn(v)
}
