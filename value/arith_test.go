// SPDX-License-Identifier: MIT

package value_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/value"
)

func mustFraction(t *testing.T, num, den int64) value.Fraction {
	t.Helper()
	f, err := value.NewFraction(num, den)
	require.NoError(t, err)

	return f
}

func mustBig(t *testing.T, s string) value.BigNumber {
	t.Helper()
	b, err := value.ParseBigNumber(s, 32)
	require.NoError(t, err)

	return b
}

func TestAdd_PromotesAlongLattice(t *testing.T) {
	t.Parallel()

	// number + Fraction → Fraction
	v, err := value.Add(value.Number(0.5), mustFraction(t, 1, 3))
	require.NoError(t, err)
	require.Equal(t, value.TypeFraction, value.TypeOf(v))
	assert.Equal(t, "5/6", v.String())

	// Fraction + BigNumber → BigNumber
	v, err = value.Add(mustFraction(t, 1, 2), mustBig(t, "1.25"))
	require.NoError(t, err)
	require.Equal(t, value.TypeBigNumber, value.TypeOf(v))
	assert.Equal(t, "1.75", v.String())

	// BigNumber + Complex → Complex
	v, err = value.Add(mustBig(t, "1"), value.Complex(complex(0, 2)))
	require.NoError(t, err)
	assert.Equal(t, value.Complex(complex(1, 2)), v)

	// boolean + boolean → number
	v, err = value.Add(value.Boolean(true), value.Boolean(true))
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)
}

func TestArith_NotNumeric(t *testing.T) {
	t.Parallel()

	_, err := value.Add(value.String("a"), value.Number(1))
	require.ErrorIs(t, err, value.ErrNotNumeric)

	_, err = value.Multiply(value.Array{value.Number(1)}, value.Number(1))
	require.ErrorIs(t, err, value.ErrNotNumeric)
}

func TestDivide_ByZeroPerKind(t *testing.T) {
	t.Parallel()

	// number: IEEE semantics.
	v, err := value.Divide(value.Number(3), value.Number(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(v.(value.Number)), 1))

	v, err = value.Divide(value.Number(0), value.Number(0))
	require.NoError(t, err)
	assert.True(t, value.IsNaN(v))

	// BigNumber: x/0 = Inf, 0/0 undefined.
	v, err = value.Divide(mustBig(t, "3"), mustBig(t, "0"))
	require.NoError(t, err)
	assert.Equal(t, "Infinity", v.String())

	_, err = value.Divide(mustBig(t, "0"), mustBig(t, "0"))
	require.ErrorIs(t, err, value.ErrUndefined)

	// Fraction: error.
	_, err = value.Divide(mustFraction(t, 1, 2), mustFraction(t, 0, 1))
	require.ErrorIs(t, err, value.ErrDivisionByZero)
}

func TestMultiply_BigZeroTimesInfUndefined(t *testing.T) {
	t.Parallel()

	inf, err := value.Divide(mustBig(t, "1"), mustBig(t, "0"))
	require.NoError(t, err)
	_, err = value.Multiply(mustBig(t, "0"), inf)
	require.ErrorIs(t, err, value.ErrUndefined)

	_, err = value.Subtract(inf, inf)
	require.ErrorIs(t, err, value.ErrUndefined)
}

func TestBigNumber_KeepsLargestPrecision(t *testing.T) {
	t.Parallel()

	hi, err := value.ParseBigNumber("1", 80)
	require.NoError(t, err)
	lo, err := value.ParseBigNumber("3", 10)
	require.NoError(t, err)

	q, err := value.Divide(hi, lo)
	require.NoError(t, err)
	assert.Equal(t, hi.Prec(), q.(value.BigNumber).Prec())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	c, err := value.Compare(value.Number(1), mustFraction(t, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = value.Compare(mustBig(t, "2"), value.Number(2))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = value.Compare(value.String("b"), value.String("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	_, err = value.Compare(value.Complex(1), value.Number(1))
	require.ErrorIs(t, err, value.ErrNotComparable)

	_, err = value.Compare(value.Number(math.NaN()), value.Number(1))
	require.ErrorIs(t, err, value.ErrNotComparable)
}

func TestSqrt(t *testing.T) {
	t.Parallel()

	v, err := value.Sqrt(value.Number(9))
	require.NoError(t, err)
	assert.Equal(t, value.Number(3), v)

	v, err = value.Sqrt(value.Number(-4))
	require.NoError(t, err)
	assert.Equal(t, value.Complex(complex(0, 2)), v)

	v, err = value.Sqrt(mustFraction(t, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, value.Number(0.5), v)

	v, err = value.Sqrt(mustBig(t, "16"))
	require.NoError(t, err)
	assert.Equal(t, "4", v.String())

	_, err = value.Sqrt(value.String("x"))
	require.ErrorIs(t, err, value.ErrNotNumeric)
}

func TestToInt(t *testing.T) {
	t.Parallel()

	n, err := value.ToInt(value.Number(4))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = value.ToInt(mustFraction(t, 8, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = value.ToInt(value.NewBigNumber(big.NewFloat(-7)))
	require.NoError(t, err)
	assert.Equal(t, -7, n)

	for _, bad := range []value.Value{
		value.Number(2.5),
		value.Number(math.Inf(1)),
		value.Number(math.NaN()),
		mustFraction(t, 1, 3),
	} {
		_, err = value.ToInt(bad)
		require.ErrorIs(t, err, value.ErrNotInteger, bad.String())
	}

	_, err = value.ToInt(value.String("1"))
	require.ErrorIs(t, err, value.ErrNotNumeric)
}

func TestFromInt_FollowsKind(t *testing.T) {
	t.Parallel()

	b := mustBig(t, "1")
	v := value.FromInt(3, b)
	require.Equal(t, value.TypeBigNumber, value.TypeOf(v))
	assert.Equal(t, b.Prec(), v.(value.BigNumber).Prec())

	assert.Equal(t, value.TypeFraction, value.TypeOf(value.FromInt(3, mustFraction(t, 1, 2))))
	assert.Equal(t, value.Number(3), value.FromInt(3, value.String("x")))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, value.Equal(value.Number(0.5), mustFraction(t, 1, 2)))
	assert.True(t, value.Equal(value.Array{value.Number(1)}, value.Array{mustFraction(t, 1, 1)}))
	assert.False(t, value.Equal(value.String("1"), value.Number(1)))
	assert.False(t, value.Equal(value.Array{value.Number(1)}, value.Array{}))
}
