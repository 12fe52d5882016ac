// SPDX-License-Identifier: MIT

package function

import (
	"regexp"
	"strings"

	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Filter returns the factory of filter.
//
//	filter(x, callback)  keep cells for which callback returns a truthy value
//	filter(x, pattern)   keep cells whose text matches the regular expression
//
// x must be one-dimensional (ErrNotOneDim). The callback is offered
// (value, index, x) as in map. The result keeps the container kind of x.
func Filter() factory.Factory {
	return factory.Factory{
		Name: NameFilter,
		Create: func(env *factory.Env) (*typed.Function, error) {
			run := func(x value.Value, keep func(v value.Value, i int) (bool, error)) (value.Value, error) {
				r, err := filterCells(x, keep)
				if err != nil {
					return nil, fnErrorf(NameFilter, err)
				}
				return r, nil
			}
			return create(env, NameFilter, typed.Overloads{
				{Signature: sigCollection + ", function", Impl: func(args ...value.Value) (value.Value, error) {
					cb := args[1].(*value.Function)
					return run(args[0], func(v value.Value, i int) (bool, error) {
						r, err := cb.Call(v, positions([]int{i}, 0), args[0])
						return truthy(r), err
					})
				}},
				{Signature: sigCollection + ", string", Impl: func(args ...value.Value) (value.Value, error) {
					re, err := regexp.Compile(string(args[1].(value.String)))
					if err != nil {
						return nil, fnErrorf(NameFilter, err)
					}
					return run(args[0], func(v value.Value, _ int) (bool, error) {
						return re.MatchString(text(v)), nil
					})
				}},
			})
		},
	}
}

func filterCells(x value.Value, keep func(value.Value, int) (bool, error)) (value.Value, error) {
	g, err := gridOf(x)
	if err != nil {
		return nil, err
	}
	if g.ndim() != 1 {
		return nil, ErrNotOneDim
	}
	out := value.Array{}
	for i, v := range g.data {
		ok, err := keep(v, i)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}

	return sameKind(x, out)
}

// text is the unquoted rendering used for pattern matching.
func text(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return string(s)
	}

	return strings.TrimSpace(value.Format(v))
}
