// SPDX-License-Identifier: MIT

package function

import "github.com/katalvlaran/lvmath/value"

// grid is a rectangular collection held as shape plus row-major leaves.
// Arrays and matrices are both lowered to a grid before indexing or reducing.
type grid struct {
	shape []int
	data  []value.Value
}

// gridOf lowers an Array or Matrix.
func gridOf(v value.Value) (grid, error) {
	switch x := v.(type) {
	case value.Array:
		shape, err := x.Size()
		if err != nil {
			return grid{}, err
		}
		return grid{shape: shape, data: x.Flatten()}, nil
	case *value.Matrix:
		return grid{shape: x.Size(), data: x.Data()}, nil
	}

	return grid{}, value.ErrNotNumeric
}

// newGrid returns a grid of shape filled with fill.
func newGrid(shape []int, fill value.Value) grid {
	n := 1
	for _, s := range shape {
		n *= s
	}
	data := make([]value.Value, n)
	for i := range data {
		data[i] = fill
	}

	return grid{shape: append([]int(nil), shape...), data: data}
}

func (g grid) ndim() int { return len(g.shape) }

func (g grid) offset(idx []int) int {
	off := 0
	for d, i := range idx {
		off = off*g.shape[d] + i
	}

	return off
}

func (g grid) at(idx []int) value.Value   { return g.data[g.offset(idx)] }
func (g grid) set(idx []int, v value.Value) { g.data[g.offset(idx)] = v }

// toArray returns the nested Array form.
func (g grid) toArray() value.Array {
	a, err := value.Reshape(g.data, g.shape)
	if err != nil {
		// shape and data are kept consistent by every grid constructor
		panic(err)
	}

	return a
}

// resize returns a copy grown to shape; new cells hold fill.
func (g grid) resize(shape []int, fill value.Value) grid {
	out := newGrid(shape, fill)
	if len(g.data) == 0 {
		return out
	}
	idx := make([]int, len(g.shape))
	for {
		out.set(idx, g.at(idx))
		if !advance(idx, g.shape) {
			break
		}
	}

	return out
}

// advance steps idx through shape in row-major order; false after the last cell.
func advance(idx, shape []int) bool {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < shape[d] {
			return true
		}
		idx[d] = 0
	}

	return false
}

// reduce folds dimension dim with fn. The result has shape with dim removed;
// reducing the only dimension returns fn's scalar directly.
//
// Complexity: O(n) calls into fn's input, one fn call per output cell.
func (g grid) reduce(dim int, fn func([]value.Value) (value.Value, error)) (value.Value, error) {
	if dim < 0 || dim >= g.ndim() {
		return nil, ErrBadDimension
	}
	if g.ndim() == 1 {
		return fn(g.data)
	}
	outShape := make([]int, 0, g.ndim()-1)
	outShape = append(outShape, g.shape[:dim]...)
	outShape = append(outShape, g.shape[dim+1:]...)
	out := newGrid(outShape, nil)
	if len(out.data) == 0 {
		return out.toArray(), nil
	}

	oidx := make([]int, len(outShape))
	full := make([]int, g.ndim())
	line := make([]value.Value, g.shape[dim])
	for {
		copy(full[:dim], oidx[:dim])
		copy(full[dim+1:], oidx[dim:])
		for k := range line {
			full[dim] = k
			line[k] = g.at(full)
		}
		r, err := fn(line)
		if err != nil {
			return nil, err
		}
		out.set(oidx, r)
		if !advance(oidx, outShape) {
			break
		}
	}

	return out.toArray(), nil
}
