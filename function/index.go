// SPDX-License-Identifier: MIT

package function

import (
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Index returns the factory of index(...), building a zero-based Index.
// Each argument describes one dimension: a number or BigNumber selects a
// single position (the dimension is dropped on reads), an Array or Matrix
// of integers selects a list of positions.
func Index() factory.Factory {
	return factory.Factory{
		Name: NameIndex,
		Create: func(env *factory.Env) (*typed.Function, error) {
			return create(env, NameIndex, typed.Overloads{
				{Signature: "", Impl: func(...value.Value) (value.Value, error) {
					return value.NewIndex()
				}},
				{Signature: "...number | BigNumber | Array | Matrix", Impl: func(args ...value.Value) (value.Value, error) {
					x, err := buildIndex(args)
					if err != nil {
						return nil, fnErrorf(NameIndex, err)
					}
					return x, nil
				}},
			})
		},
	}
}

func buildIndex(args []value.Value) (*value.Index, error) {
	dims := make([]value.Dim, len(args))
	for d, a := range args {
		switch x := a.(type) {
		case value.Number, value.BigNumber:
			p, err := value.ToInt(x)
			if err != nil {
				return nil, err
			}
			dims[d] = value.At(p)
		default:
			cells, err := leaves(x)
			if err != nil {
				return nil, err
			}
			ps := make([]int, len(cells))
			for i, c := range cells {
				if ps[i], err = value.ToInt(c); err != nil {
					return nil, err
				}
			}
			dims[d] = value.Positions(ps...)
		}
	}

	return value.NewIndex(dims...)
}
