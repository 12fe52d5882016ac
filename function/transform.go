// SPDX-License-Identifier: MIT

// One-based variants of the catalog.
//
// Expression front ends count from one. Each transform wraps the plain
// function of the same name and only translates at the boundary:
//   - dim arguments (concat, max, mean, min, std, var) are decremented;
//   - callback indices (filter, forEach, map) are incremented;
//   - index positions are decremented;
//   - range includes its end unless told otherwise;
//   - *IndexError values are reported one-based.

package function

import (
	"errors"

	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// transform builds a transform factory over the plain function name.
// overloads receives the loaded plain function.
func transform(name string, overloads func(plain *typed.Function) typed.Overloads) factory.Factory {
	return factory.Factory{
		Name:         name,
		Dependencies: []string{name},
		Create: func(env *factory.Env) (*typed.Function, error) {
			plain, err := env.Load(name)
			if err != nil {
				return nil, err
			}
			return create(env, name, overloads(plain))
		},
	}
}

// passThrough forwards any arguments to plain.
func passThrough(plain *typed.Function) typed.Overload {
	return typed.Overload{Signature: "...any", Impl: func(args ...value.Value) (value.Value, error) {
		return oneBased(plain.Name())(plain.Call(args...))
	}}
}

// oneBased returns a result filter that rewrites an *IndexError to
// one-based numbering.
func oneBased(name string) func(value.Value, error) (value.Value, error) {
	return func(v value.Value, err error) (value.Value, error) {
		if err == nil {
			return v, nil
		}
		var ie *IndexError
		if errors.As(err, &ie) {
			return nil, fnErrorf(name, &IndexError{Dim: ie.Dim, Position: ie.Position, Size: ie.Size, Base: 1})
		}
		return nil, err
	}
}

// decrement returns v − 1 in the kind of v.
func decrement(v value.Value) (value.Value, error) {
	return value.Subtract(v, value.FromInt(1, v))
}

// dimTransform decrements the dim argument at position 1.
func dimTransform(name string, withNorm bool) factory.Factory {
	return transform(name, func(plain *typed.Function) typed.Overloads {
		call := func(args ...value.Value) (value.Value, error) {
			d, err := decrement(args[1])
			if err != nil {
				return nil, fnErrorf(name, err)
			}
			shifted := append([]value.Value{args[0], d}, args[2:]...)
			return oneBased(name)(plain.Call(shifted...))
		}
		os := typed.Overloads{{Signature: sigCollection + ", " + sigDim, Impl: call}}
		if withNorm {
			os = append(os, typed.Overload{Signature: sigCollection + ", " + sigDim + ", string", Impl: call})
		}
		return append(os, passThrough(plain))
	})
}

// MaxTransform is max with a one-based dim.
func MaxTransform() factory.Factory { return dimTransform(NameMax, false) }

// MinTransform is min with a one-based dim.
func MinTransform() factory.Factory { return dimTransform(NameMin, false) }

// MeanTransform is mean with a one-based dim.
func MeanTransform() factory.Factory { return dimTransform(NameMean, false) }

// VarTransform is var with a one-based dim.
func VarTransform() factory.Factory { return dimTransform(NameVar, true) }

// StdTransform is std with a one-based dim.
func StdTransform() factory.Factory { return dimTransform(NameStd, true) }

// ConcatTransform is concat with a one-based trailing dim.
func ConcatTransform() factory.Factory {
	return transform(NameConcat, func(plain *typed.Function) typed.Overloads {
		return typed.Overloads{{
			Signature: "..." + sigCollection + " | " + sigDim,
			Impl: func(args ...value.Value) (value.Value, error) {
				last := len(args) - 1
				if !value.TypeOf(args[last]).IsCollection() {
					d, err := decrement(args[last])
					if err != nil {
						return nil, fnErrorf(NameConcat, err)
					}
					args = append(append([]value.Value(nil), args[:last]...), d)
				}
				return oneBased(NameConcat)(plain.Call(args...))
			},
		}}
	})
}

// oneBasedCallback wraps cb so the index argument it sees counts from one.
func oneBasedCallback(cb *value.Function) *value.Function {
	return value.NewFunction(cb.Name(), cb.Arity(), func(args ...value.Value) (value.Value, error) {
		if len(args) > 1 {
			if idx, ok := args[1].(value.Array); ok {
				shifted := make(value.Array, len(idx))
				for i, p := range idx {
					shifted[i] = p.(value.Number) + 1
				}
				args = append([]value.Value{args[0], shifted}, args[2:]...)
			}
		}
		return cb.Call(args...)
	})
}

// callbackTransform passes one-based indices to the callback of name.
func callbackTransform(name string) factory.Factory {
	return transform(name, func(plain *typed.Function) typed.Overloads {
		return typed.Overloads{
			{Signature: sigCollection + ", function", Impl: func(args ...value.Value) (value.Value, error) {
				return oneBased(name)(plain.Call(args[0], oneBasedCallback(args[1].(*value.Function))))
			}},
			passThrough(plain),
		}
	})
}

// FilterTransform is filter with one-based callback indices.
func FilterTransform() factory.Factory { return callbackTransform(NameFilter) }

// ForEachTransform is forEach with one-based callback indices.
func ForEachTransform() factory.Factory { return callbackTransform(NameForEach) }

// MapTransform is map with one-based callback indices.
func MapTransform() factory.Factory { return callbackTransform(NameMap) }

// IndexTransform builds a zero-based Index from one-based positions.
func IndexTransform() factory.Factory {
	return transform(NameIndex, func(plain *typed.Function) typed.Overloads {
		return typed.Overloads{{Signature: "...any", Impl: func(args ...value.Value) (value.Value, error) {
			v, err := plain.Call(args...)
			if err != nil {
				return nil, err
			}
			x, err := v.(*value.Index).Shift(-1)
			if err != nil {
				return nil, fnErrorf(NameIndex, err)
			}
			return x, nil
		}}, {Signature: "", Impl: func(...value.Value) (value.Value, error) {
			return plain.Call()
		}}}
	})
}

// RangeTransform is range with the end included by default.
func RangeTransform() factory.Factory {
	return transform(NameRange, func(plain *typed.Function) typed.Overloads {
		return typed.Overloads{{Signature: "...any", Impl: func(args ...value.Value) (value.Value, error) {
			if len(args) == 0 {
				return plain.Call()
			}
			if _, ok := args[len(args)-1].(value.Boolean); !ok {
				args = append(append([]value.Value(nil), args...), value.Boolean(true))
			}
			return plain.Call(args...)
		}}}
	})
}

// SubsetTransform is subset with one-based error positions.
func SubsetTransform() factory.Factory {
	return transform(NameSubset, func(plain *typed.Function) typed.Overloads {
		return typed.Overloads{passThrough(plain)}
	})
}
