// SPDX-License-Identifier: MIT

package lvmath_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath"
	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/logger"
	"github.com/katalvlaran/lvmath/value"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()
	m, err := lvmath.New()
	require.NoError(t, err)

	assert.Equal(t, config.Default(), m.Config())
	assert.Len(t, m.Names(), 15)
	assert.Len(t, m.TransformNames(), 12)

	v, err := m.Call("linspace", value.Number(0), value.Number(3), value.Number(4))
	require.NoError(t, err)
	assert.Equal(t, value.TypeMatrix, value.TypeOf(v))
	assert.Equal(t, "[0, 1, 2, 3]", value.Format(v))
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Precision = 0

	_, err := lvmath.New(lvmath.WithConfig(cfg))
	assert.ErrorIs(t, err, config.ErrInvalidPrecision)
}

func TestMath_WithConfig(t *testing.T) {
	t.Parallel()
	m, err := lvmath.New()
	require.NoError(t, err)

	arr, err := m.WithConfig(config.New(config.WithMatrix(config.OutputArray)))
	require.NoError(t, err)

	a, err := arr.Call("range", value.String("0:3"))
	require.NoError(t, err)
	assert.Equal(t, value.TypeArray, value.TypeOf(a))

	// The original keeps its snapshot.
	v, err := m.Call("range", value.String("0:3"))
	require.NoError(t, err)
	assert.Equal(t, value.TypeMatrix, value.TypeOf(v))
	assert.Equal(t, config.OutputMatrix, m.Config().Matrix)

	_, err = m.WithConfig(config.Config{})
	assert.Error(t, err)
}

func TestMath_Lookup(t *testing.T) {
	t.Parallel()
	m, err := lvmath.New()
	require.NoError(t, err)

	fn, err := m.Function("std")
	require.NoError(t, err)
	assert.Equal(t, "std", fn.Name())

	_, err = m.Function("nope")
	assert.ErrorIs(t, err, factory.ErrUnknownFunction)

	tr, err := m.Transform("size")
	require.NoError(t, err)
	assert.Equal(t, "size", tr.Name())

	v, err := m.CallTransform("range", value.String("1:3"))
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", value.Format(v))
}

func TestWithLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_, err := lvmath.New(lvmath.WithLogger(logger.New(logger.ModeDev, &buf)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "factory: namespace built")

	assert.Panics(t, func() { lvmath.WithLogger(nil) })
}
