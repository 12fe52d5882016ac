// SPDX-License-Identifier: MIT

package value

import "strings"

// Array is an ordered sequence of values; nested Arrays form N-d data.
// Functions never mutate an Array they receive.
type Array []Value

func (Array) Type() Type { return TypeArray }
func (Array) value()     {}

// String renders "[a, b, [c, d]]".
func (a Array) String() string {
	var sb strings.Builder
	writeArray(&sb, a)

	return sb.String()
}

func writeArray(sb *strings.Builder, a Array) {
	sb.WriteString(_fmtRowOpen)
	for i, v := range a {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		if inner, ok := v.(Array); ok {
			writeArray(sb, inner)
			continue
		}
		sb.WriteString(Format(v))
	}
	sb.WriteString(_fmtRowClose)
}

// Size returns the dimensions of a rectangular Array. An empty Array has size [0].
//
// Errors:
//   - ErrJagged when siblings differ in length or nesting depth.
//
// Complexity: O(total elements).
func (a Array) Size() ([]int, error) {
	size, err := arraySize(a)
	if err != nil {
		return nil, valueErrorf("Array.Size", err)
	}

	return size, nil
}

func arraySize(a Array) ([]int, error) {
	if len(a) == 0 {
		return []int{0}, nil
	}
	first, nested := a[0].(Array)
	if !nested {
		for _, v := range a[1:] {
			if _, ok := v.(Array); ok {
				return nil, ErrJagged
			}
		}
		return []int{len(a)}, nil
	}
	inner, err := arraySize(first)
	if err != nil {
		return nil, err
	}
	for _, v := range a[1:] {
		sub, ok := v.(Array)
		if !ok {
			return nil, ErrJagged
		}
		s, err := arraySize(sub)
		if err != nil {
			return nil, err
		}
		if !equalShape(s, inner) {
			return nil, ErrJagged
		}
	}

	return append([]int{len(a)}, inner...), nil
}

// Flatten returns the leaves of a in depth-first (row-major) order.
func (a Array) Flatten() []Value {
	out := make([]Value, 0, len(a))

	return flattenInto(out, a)
}

func flattenInto(out []Value, a Array) []Value {
	for _, v := range a {
		if inner, ok := v.(Array); ok {
			out = flattenInto(out, inner)
			continue
		}
		out = append(out, v)
	}

	return out
}

// Clone returns a deep copy of the nested structure (leaves are immutable and shared).
func (a Array) Clone() Array {
	if a == nil {
		return nil
	}
	out := make(Array, len(a))
	for i, v := range a {
		if inner, ok := v.(Array); ok {
			out[i] = inner.Clone()
			continue
		}
		out[i] = v
	}

	return out
}

// Reshape builds a nested Array with the given shape from row-major leaves.
// len(data) must equal the product of shape.
func Reshape(data []Value, shape []int) (Array, error) {
	if product(shape) != len(data) {
		return nil, valueErrorf("Reshape", ErrDimensionMismatch)
	}
	if len(shape) == 0 {
		return Array{}, nil
	}

	return reshape(data, shape), nil
}

func reshape(data []Value, shape []int) Array {
	n := shape[0]
	out := make(Array, n)
	if len(shape) == 1 {
		copy(out, data)
		return out
	}
	step := product(shape[1:])
	for i := 0; i < n; i++ {
		out[i] = reshape(data[i*step:(i+1)*step], shape[1:])
	}

	return out
}

func product(shape []int) int {
	p := 1
	for _, s := range shape {
		p *= s
	}

	return p
}

func equalShape(a, b []int) bool {
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
