// SPDX-License-Identifier: MIT

package value

import (
	"strconv"
	"strings"
)

// Dim is one dimension of an Index: a list of zero-based positions. A scalar
// Dim holds exactly one position and drops the dimension on subset reads.
type Dim struct {
	Positions []int
	Scalar    bool
}

// At returns a scalar Dim selecting position p.
func At(p int) Dim {
	return Dim{Positions: []int{p}, Scalar: true}
}

// Positions returns a non-scalar Dim over ps.
func Positions(ps ...int) Dim {
	return Dim{Positions: append([]int(nil), ps...)}
}

// Span returns the non-scalar Dim [from, to).
func Span(from, to int) Dim {
	ps := make([]int, 0, max(to-from, 0))
	for p := from; p < to; p++ {
		ps = append(ps, p)
	}

	return Dim{Positions: ps}
}

// Index selects a sub-region of an Array, Matrix or string, one Dim per dimension.
type Index struct {
	dims []Dim
}

// NewIndex validates and copies dims. Negative positions and scalar dims with
// other than one position are rejected with ErrOutOfRange.
func NewIndex(dims ...Dim) (*Index, error) {
	out := make([]Dim, len(dims))
	for d, dim := range dims {
		if dim.Scalar && len(dim.Positions) != 1 {
			return nil, valueErrorf("NewIndex", ErrOutOfRange)
		}
		for _, p := range dim.Positions {
			if p < 0 {
				return nil, valueErrorf("NewIndex(dim "+strconv.Itoa(d)+")", ErrOutOfRange)
			}
		}
		out[d] = Dim{Positions: append([]int(nil), dim.Positions...), Scalar: dim.Scalar}
	}

	return &Index{dims: out}, nil
}

func (*Index) Type() Type { return TypeIndex }
func (*Index) value()     {}

// String renders "Index([0], [1, 2])"-style text; scalar dims print bare.
func (x *Index) String() string {
	parts := make([]string, len(x.dims))
	for d, dim := range x.dims {
		if dim.Scalar {
			parts[d] = strconv.Itoa(dim.Positions[0])
			continue
		}
		ps := make([]string, len(dim.Positions))
		for i, p := range dim.Positions {
			ps[i] = strconv.Itoa(p)
		}
		parts[d] = "[" + strings.Join(ps, ", ") + "]"
	}

	return "Index(" + strings.Join(parts, ", ") + ")"
}

// Len returns the number of dimensions.
func (x *Index) Len() int { return len(x.dims) }

// Dim returns a copy of dimension d.
func (x *Index) Dim(d int) Dim {
	dim := x.dims[d]

	return Dim{Positions: append([]int(nil), dim.Positions...), Scalar: dim.Scalar}
}

// Scalar reports whether every dimension is scalar (a single-cell selection).
func (x *Index) Scalar() bool {
	for _, dim := range x.dims {
		if !dim.Scalar {
			return false
		}
	}

	return len(x.dims) > 0
}

// Size returns the number of positions per dimension.
func (x *Index) Size() []int {
	out := make([]int, len(x.dims))
	for d, dim := range x.dims {
		out[d] = len(dim.Positions)
	}

	return out
}

// Max returns the largest position per dimension (-1 for an empty dimension).
func (x *Index) Max() []int {
	out := make([]int, len(x.dims))
	for d, dim := range x.dims {
		out[d] = -1
		for _, p := range dim.Positions {
			if p > out[d] {
				out[d] = p
			}
		}
	}

	return out
}

// Shift returns a copy with delta added to every position (used to convert
// one-based positions). Positions must stay non-negative.
func (x *Index) Shift(delta int) (*Index, error) {
	dims := make([]Dim, len(x.dims))
	for d, dim := range x.dims {
		ps := make([]int, len(dim.Positions))
		for i, p := range dim.Positions {
			ps[i] = p + delta
		}
		dims[d] = Dim{Positions: ps, Scalar: dim.Scalar}
	}

	return NewIndex(dims...)
}
