// SPDX-License-Identifier: MIT

package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/function"
	"github.com/katalvlaran/lvmath/value"
)

func callT(t testing.TB, ns *factory.Namespace, name string, args ...value.Value) value.Value {
	t.Helper()
	v, err := ns.CallTransform(name, args...)
	require.NoError(t, err)

	return v
}

func TestTransform_Dims(t *testing.T) {
	t.Parallel()
	ns := build(t)
	square := value.Array{nums(1, 5), nums(7, 2)}

	assert.Equal(t, nums(7, 5), callT(t, ns, "max", square, value.Number(1)))
	assert.Equal(t, nums(1, 2), callT(t, ns, "min", square, value.Number(2)))
	assert.Equal(t, nums(4, 3.5), callT(t, ns, "mean", square, value.Number(1)))
	assert.Equal(t, value.Number(3), callT(t, ns, "max", value.Number(1), value.Number(3), value.Number(2)))

	sq := value.Array{nums(1, 2), nums(3, 4)}
	assert.Equal(t, nums(0.25, 0.25), callT(t, ns, "var", sq, value.Number(2), value.String(function.NormUncorrected)))
	assert.Equal(t, nums(0.5, 0.5), callT(t, ns, "std", sq, value.Number(2), value.String(function.NormUncorrected)))

	left := value.Array{nums(1), nums(2)}
	right := value.Array{nums(3), nums(4)}
	assert.Equal(t, value.Array{nums(1), nums(2), nums(3), nums(4)}, callT(t, ns, "concat", left, right, value.Number(1)))

	_, err := ns.CallTransform("max", square, value.Number(0))
	assert.ErrorIs(t, err, function.ErrBadDimension)
}

func TestTransform_IndexAndSubset(t *testing.T) {
	t.Parallel()
	ns := build(t)

	x := callT(t, ns, "index", value.Number(1), nums(1, 3))
	assert.Equal(t, "Index(0, [0, 2])", value.Format(x))

	got := callT(t, ns, "subset", value.Array{nums(1, 2, 3), nums(4, 5, 6)}, x)
	assert.Equal(t, nums(1, 3), got)

	_, err := ns.CallTransform("index", value.Number(0))
	assert.ErrorIs(t, err, value.ErrOutOfRange)

	// Positions past the end are reported as the user typed them.
	six := callT(t, ns, "index", value.Number(6))
	_, err = ns.CallTransform("subset", nums(1, 2, 3), six)
	require.ErrorIs(t, err, value.ErrOutOfRange)
	var ie *function.IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Base)
	assert.EqualError(t, err, "subset: function: index 6 out of range for dimension 1 (size 3)")

	grown := callT(t, ns, "subset", nums(1), six, value.Number(9))
	assert.Equal(t, nums(1, 0, 0, 0, 0, 9), grown)
}

func TestTransform_RangeIncludesEnd(t *testing.T) {
	t.Parallel()
	ns := build(t, config.WithMatrix(config.OutputArray))

	assert.Equal(t, nums(1, 2, 3), callT(t, ns, "range", value.String("1:3")))
	assert.Equal(t, nums(1, 2, 3), callT(t, ns, "range", value.Number(1), value.Number(3)))
	assert.Equal(t, nums(0, 0.5, 1), callT(t, ns, "range", value.Number(0), value.Number(1), value.Number(0.5)))
	assert.Equal(t, nums(1, 2), callT(t, ns, "range", value.Number(1), value.Number(3), value.Boolean(false)))
	assert.Equal(t, nums(1, 2), callT(t, ns, "range", value.String("1:3"), value.Boolean(false)))
}

func TestTransform_Callbacks(t *testing.T) {
	t.Parallel()
	ns := build(t)

	var seen []string
	callT(t, ns, "map", value.Array{nums(1, 2), nums(3, 4)}, recorder(&seen))
	assert.Equal(t, []string{"[1, 1]", "[1, 2]", "[2, 1]", "[2, 2]"}, seen)

	seen = nil
	callT(t, ns, "forEach", nums(7, 8), recorder(&seen))
	assert.Equal(t, []string{"[1]", "[2]"}, seen)

	firstOnly := value.NewFunction("first", 2, func(args ...value.Value) (value.Value, error) {
		return value.Boolean(value.Format(args[1]) == "[1]"), nil
	})
	assert.Equal(t, nums(7), callT(t, ns, "filter", nums(7, 8), firstOnly))
	assert.Equal(t, nums(8), callT(t, ns, "filter", nums(7, 8), value.String("8")))

	// A one-argument callback is untouched by index rebasing.
	assert.Equal(t, nums(14, 16), callT(t, ns, "map", nums(7, 8), double))
}

func TestTransform_FallsBackToPlain(t *testing.T) {
	t.Parallel()
	ns := build(t)

	v := callT(t, ns, "linspace", value.Number(0), value.Number(1), value.Number(3))
	assert.Equal(t, nums(0, 0.5, 1), asArray(t, v))
	assert.Equal(t, nums(3), asArray(t, callT(t, ns, "size", nums(1, 2, 3))))
}
