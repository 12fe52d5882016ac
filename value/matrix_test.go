// SPDX-License-Identifier: MIT

package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/value"
)

// nums builds a 1-D Array of numbers.
func nums(xs ...float64) value.Array {
	out := make(value.Array, len(xs))
	for i, x := range xs {
		out[i] = value.Number(x)
	}

	return out
}

func TestArraySize(t *testing.T) {
	t.Parallel()

	size, err := value.Array{}.Size()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, size)

	size, err = value.Array{nums(1, 2, 3), nums(4, 5, 6)}.Size()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, size)

	_, err = value.Array{nums(1, 2), nums(3)}.Size()
	require.ErrorIs(t, err, value.ErrJagged)

	_, err = value.Array{value.Number(1), nums(3)}.Size()
	require.ErrorIs(t, err, value.ErrJagged)
}

func TestArrayFlattenAndReshape(t *testing.T) {
	t.Parallel()

	a := value.Array{nums(1, 2, 3), nums(4, 5, 6)}
	flat := a.Flatten()
	require.Len(t, flat, 6)
	assert.Equal(t, value.Number(4), flat[3])

	back, err := value.Reshape(flat, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, a, back)

	_, err = value.Reshape(flat, []int{4, 2})
	require.ErrorIs(t, err, value.ErrDimensionMismatch)
}

func TestMatrixDense_AtSetClone(t *testing.T) {
	t.Parallel()

	m, err := value.NewMatrix(value.Array{nums(1, 2, 3), nums(4, 5, 6)})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, m.Size())
	assert.Equal(t, value.StorageDense, m.Storage())
	assert.Equal(t, 6, m.Len())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, value.Number(6), v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, value.ErrOutOfRange)
	_, err = m.At(0)
	require.ErrorIs(t, err, value.ErrDimensionMismatch)

	c := m.Clone()
	require.NoError(t, c.Set(value.Number(9), 0, 0))
	orig, _ := m.At(0, 0)
	assert.Equal(t, value.Number(1), orig, "clone must be independent")
	assert.Equal(t, "[[9, 2, 3], [4, 5, 6]]", c.String())
}

func TestMatrix_ThreeDimOffsets(t *testing.T) {
	t.Parallel()

	a := value.Array{
		value.Array{nums(0, 1), nums(2, 3)},
		value.Array{nums(4, 5), nums(6, 7)},
	}
	m, err := value.NewMatrix(a)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, m.Size())

	v, err := m.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, value.Number(5), v)
	assert.Equal(t, a, m.ToArray())
}

func TestMatrixSparse(t *testing.T) {
	t.Parallel()

	a := value.Array{nums(0, 2, 0), nums(1, 0, 3)}
	m, err := value.NewSparse(a)
	require.NoError(t, err)
	assert.Equal(t, value.StorageSparse, m.Storage())
	assert.Equal(t, 3, m.NonZeros())
	assert.Equal(t, a, m.ToArray())

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, value.Number(0), v)

	// insert, update, remove
	require.NoError(t, m.Set(value.Number(7), 0, 0))
	require.NoError(t, m.Set(value.Number(8), 1, 2))
	require.NoError(t, m.Set(value.Number(0), 0, 1))
	assert.Equal(t, value.Array{nums(7, 0, 0), nums(1, 0, 8)}, m.ToArray())
	assert.Equal(t, 3, m.NonZeros())

	_, err = value.NewSparse(nums(1, 2, 3))
	require.ErrorIs(t, err, value.ErrNotTwoDim)

	d, err := m.WithStorage(value.StorageDense)
	require.NoError(t, err)
	assert.Equal(t, value.StorageDense, d.Storage())
	assert.True(t, value.Equal(m, d))
}

func TestNewDense_Validates(t *testing.T) {
	t.Parallel()

	_, err := value.NewDense([]int{2, 2}, nums(1, 2, 3).Flatten())
	require.ErrorIs(t, err, value.ErrDimensionMismatch)

	m, err := value.NewDense([]int{3}, nums(1, 2, 3).Flatten())
	require.NoError(t, err)
	assert.Equal(t, nums(1, 2, 3), m.ToArray())
}

func TestIndex(t *testing.T) {
	t.Parallel()

	x, err := value.NewIndex(value.At(1), value.Span(0, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, x.Len())
	assert.False(t, x.Scalar())
	assert.Equal(t, []int{1, 3}, x.Size())
	assert.Equal(t, []int{1, 2}, x.Max())
	assert.Equal(t, "Index(1, [0, 1, 2])", x.String())

	shifted, err := x.Shift(1)
	require.NoError(t, err)
	assert.Equal(t, "Index(2, [1, 2, 3])", shifted.String())

	_, err = x.Shift(-1)
	require.ErrorIs(t, err, value.ErrOutOfRange)

	_, err = value.NewIndex(value.Positions(-1))
	require.ErrorIs(t, err, value.ErrOutOfRange)
}

func TestFunction_TrimsToArity(t *testing.T) {
	t.Parallel()

	var seen int
	f := value.NewFunction("count", 1, func(args ...value.Value) (value.Value, error) {
		seen = len(args)
		return value.Boolean(true), nil
	})
	_, err := f.Call(value.Number(1), value.Array{}, value.Array{})
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
	assert.Equal(t, "function count", f.String())
}
