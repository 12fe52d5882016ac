// SPDX-License-Identifier: MIT

package function

import (
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

const defaultPad = " "

// Subset returns the factory of subset.
//
//	subset(value, index)                         read
//	subset(value, index, replacement)            write, new value returned
//	subset(value, index, replacement, default)   write, growing with default
//
// value is an Array, a Matrix or a string. Scalar dimensions of the index
// are dropped on reads; a fully scalar index reads one cell. Writes past the
// current size grow the value, filling with default (0, or " " for strings).
// A scalar replacement is copied into every selected cell. Reads outside the
// value fail with *IndexError.
func Subset() factory.Factory {
	return factory.Factory{
		Name: NameSubset,
		Create: func(env *factory.Env) (*typed.Function, error) {
			wrap := func(v value.Value, err error) (value.Value, error) {
				if err != nil {
					return nil, fnErrorf(NameSubset, err)
				}
				return v, nil
			}
			return create(env, NameSubset, typed.Overloads{
				{Signature: sigCollection + ", Index", Impl: func(args ...value.Value) (value.Value, error) {
					return wrap(subsetGet(args[0], args[1].(*value.Index)))
				}},
				{Signature: "string, Index", Impl: func(args ...value.Value) (value.Value, error) {
					return wrap(stringGet(args[0].(value.String), args[1].(*value.Index)))
				}},
				{Signature: sigCollection + ", Index, any", Impl: func(args ...value.Value) (value.Value, error) {
					return wrap(subsetSet(args[0], args[1].(*value.Index), args[2], value.Number(0)))
				}},
				{Signature: sigCollection + ", Index, any, any", Impl: func(args ...value.Value) (value.Value, error) {
					return wrap(subsetSet(args[0], args[1].(*value.Index), args[2], args[3]))
				}},
				{Signature: "string, Index, string", Impl: func(args ...value.Value) (value.Value, error) {
					return wrap(stringSet(args[0].(value.String), args[1].(*value.Index), args[2].(value.String), defaultPad))
				}},
				{Signature: "string, Index, string, string", Impl: func(args ...value.Value) (value.Value, error) {
					return wrap(stringSet(args[0].(value.String), args[1].(*value.Index), args[2].(value.String), string(args[3].(value.String))))
				}},
			})
		},
	}
}

// selection walks the cells chosen by x in row-major order.
func selection(x *value.Index, visit func(src []int)) {
	sizes := x.Size()
	for _, s := range sizes {
		if s == 0 {
			return
		}
	}
	sel := make([]int, len(sizes))
	src := make([]int, len(sizes))
	for {
		for d := range sel {
			src[d] = x.Dim(d).Positions[sel[d]]
		}
		visit(src)
		if !advance(sel, sizes) {
			return
		}
	}
}

// squeezed returns the selection shape without scalar dimensions.
func squeezed(x *value.Index) []int {
	var shape []int
	for d := 0; d < x.Len(); d++ {
		dim := x.Dim(d)
		if !dim.Scalar {
			shape = append(shape, len(dim.Positions))
		}
	}

	return shape
}

func checkBounds(x *value.Index, shape []int) error {
	for d := 0; d < x.Len(); d++ {
		for _, p := range x.Dim(d).Positions {
			if p >= shape[d] {
				return &IndexError{Dim: d, Position: p, Size: shape[d]}
			}
		}
	}

	return nil
}

func subsetGet(coll value.Value, x *value.Index) (value.Value, error) {
	g, err := gridOf(coll)
	if err != nil {
		return nil, err
	}
	if x.Len() != g.ndim() {
		return nil, value.ErrDimensionMismatch
	}
	if err := checkBounds(x, g.shape); err != nil {
		return nil, err
	}
	var data []value.Value
	selection(x, func(src []int) { data = append(data, g.at(src)) })
	if x.Scalar() {
		return data[0], nil
	}
	a, err := value.Reshape(data, squeezed(x))
	if err != nil {
		return nil, err
	}

	return sameKind(coll, a)
}

func subsetSet(coll value.Value, x *value.Index, repl, fill value.Value) (value.Value, error) {
	g, err := gridOf(coll)
	if err != nil {
		return nil, err
	}
	if len(g.data) == 0 && g.ndim() == 1 && x.Len() > 1 {
		// Zero-size dimensions, grown below.
		g = newGrid(make([]int, x.Len()), fill)
	}
	if x.Len() != g.ndim() {
		return nil, value.ErrDimensionMismatch
	}

	grown, need := false, x.Max()
	shape := append([]int(nil), g.shape...)
	for d, m := range need {
		if m+1 > shape[d] {
			shape[d], grown = m+1, true
		}
	}
	if grown {
		if err := checkCells(shape...); err != nil {
			return nil, err
		}
		g = g.resize(shape, fill)
	} else {
		g = grid{shape: g.shape, data: append([]value.Value(nil), g.data...)}
	}

	var cells []value.Value
	if value.TypeOf(repl).IsCollection() {
		rg, err := gridOf(repl)
		if err != nil {
			return nil, err
		}
		if !sameShape(rg.shape, squeezed(x)) {
			return nil, value.ErrDimensionMismatch
		}
		cells = rg.data
	}
	k := 0
	selection(x, func(dst []int) {
		if cells != nil {
			g.set(dst, cells[k])
		} else {
			g.set(dst, repl)
		}
		k++
	})

	return sameKind(coll, g.toArray())
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func stringGet(s value.String, x *value.Index) (value.Value, error) {
	if x.Len() != 1 {
		return nil, value.ErrDimensionMismatch
	}
	runes := []rune(string(s))
	if err := checkBounds(x, []int{len(runes)}); err != nil {
		return nil, err
	}
	ps := x.Dim(0).Positions
	out := make([]rune, len(ps))
	for i, p := range ps {
		out[i] = runes[p]
	}

	return value.String(out), nil
}

func stringSet(s value.String, x *value.Index, repl value.String, pad string) (value.Value, error) {
	if x.Len() != 1 {
		return nil, value.ErrDimensionMismatch
	}
	padRunes := []rune(pad)
	if len(padRunes) != 1 {
		return nil, ErrBadArgument
	}
	runes := []rune(string(s))
	ps := x.Dim(0).Positions
	rs := []rune(string(repl))
	if len(rs) != len(ps) {
		return nil, value.ErrDimensionMismatch
	}
	if m := x.Max()[0]; m >= len(runes) {
		for len(runes) <= m {
			runes = append(runes, padRunes[0])
		}
	}
	for i, p := range ps {
		runes[p] = rs[i]
	}

	return value.String(runes), nil
}
