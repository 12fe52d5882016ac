// SPDX-License-Identifier: MIT

package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/function"
	"github.com/katalvlaran/lvmath/value"
)

func TestLimits_Linspace(t *testing.T) {
	t.Parallel()
	ns := build(t)

	for _, n := range []float64{2e9, function.MaxCells + 1} {
		_, err := ns.Call("linspace", value.Number(0), value.Number(1), value.Number(n))
		assert.ErrorIs(t, err, function.ErrTooLarge, "n=%v", n)
	}

	big, err := value.ParseBigNumber("2000000000", 32)
	require.NoError(t, err)
	_, err = ns.Call("linspace", value.Number(0), value.Number(1), big)
	assert.ErrorIs(t, err, function.ErrTooLarge)
}

func TestLimits_SubsetGrowth(t *testing.T) {
	t.Parallel()
	ns := build(t)

	_, err := ns.Call("subset", value.Array{}, index(t, value.At(2e9)), value.Number(1))
	assert.ErrorIs(t, err, function.ErrTooLarge)

	_, err = ns.Call("subset", value.Array{}, index(t, value.At(70000), value.At(70000)), value.Number(1))
	assert.ErrorIs(t, err, function.ErrTooLarge)

	_, err = ns.CallTransform("subset", nums(1), index(t, value.At(2e9)), value.Number(1))
	assert.ErrorIs(t, err, function.ErrTooLarge)
}

func TestLimits_Range(t *testing.T) {
	t.Parallel()
	ns := build(t)

	_, err := ns.Call("range", value.Number(0), value.Number(1e300), value.Number(1))
	assert.ErrorIs(t, err, function.ErrTooLarge)

	_, err = ns.Call("range", value.Number(0), value.Number(1), value.Number(1e-12))
	assert.ErrorIs(t, err, function.ErrTooLarge)

	_, err = ns.CallTransform("range", value.String("1e300:-1:0"))
	assert.ErrorIs(t, err, function.ErrTooLarge)

	fr := build(t, config.WithNumber(config.NumberFraction))
	_, err = fr.Call("range", value.String("0:1/1000000000:1"))
	assert.ErrorIs(t, err, function.ErrTooLarge)
}
