// SPDX-License-Identifier: MIT

package factory_test

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/logger"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// constant returns a factory whose function takes no arguments and yields n.
func constant(name string, n float64, deps ...string) factory.Factory {
	return factory.Factory{
		Name:         name,
		Dependencies: deps,
		Create: func(env *factory.Env) (*typed.Function, error) {
			for _, d := range deps {
				if _, err := env.Load(d); err != nil {
					return nil, err
				}
			}
			return env.Typed().Create(name, typed.Overloads{{
				Signature: "",
				Impl: func(...value.Value) (value.Value, error) {
					return value.Number(n), nil
				},
			}})
		},
	}
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()
	reg := factory.NewRegistry()

	err := reg.Register(factory.Factory{Name: "x"})
	assert.ErrorIs(t, err, factory.ErrInvalidFactory)

	err = reg.Register(constant("", 1))
	assert.ErrorIs(t, err, factory.ErrInvalidFactory)

	require.NoError(t, reg.Register(constant("a", 1)))
	err = reg.Register(constant("a", 2))
	assert.ErrorIs(t, err, factory.ErrDuplicateFactory)

	// A failing batch adds nothing.
	err = reg.Register(constant("b", 1), constant("b", 2))
	assert.ErrorIs(t, err, factory.ErrDuplicateFactory)
	_, ok := reg.Lookup("b")
	assert.False(t, ok)

	// Transforms live in their own table.
	require.NoError(t, reg.RegisterTransform(constant("a", 10, "a")))
	assert.Equal(t, []string{"a"}, reg.Names())
	assert.Equal(t, []string{"a"}, reg.TransformNames())
	_, ok = reg.LookupTransform("a")
	assert.True(t, ok)
}

func TestLoader_CachesIdenticalFunction(t *testing.T) {
	t.Parallel()

	var creates atomic.Int32
	reg := factory.NewRegistry()
	require.NoError(t, reg.Register(factory.Factory{
		Name: "one",
		Create: func(env *factory.Env) (*typed.Function, error) {
			creates.Add(1)
			return env.Typed().Create("one", typed.Overloads{{
				Signature: "",
				Impl:      func(...value.Value) (value.Value, error) { return value.Number(1), nil },
			}})
		},
	}))
	l, err := factory.NewLoader(reg, config.Default())
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]*typed.Function, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fn, err := l.Load("one")
			assert.NoError(t, err)
			got[i] = fn
		}(i)
	}
	wg.Wait()

	for _, fn := range got[1:] {
		assert.Same(t, got[0], fn)
	}
	assert.Equal(t, int32(1), creates.Load())
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	reg := factory.NewRegistry()
	require.NoError(t, reg.Register(
		constant("a", 1, "b"),
		constant("b", 2, "a"),
		constant("lonely", 3, "ghost"),
		factory.Factory{
			Name: "sneaky",
			Create: func(env *factory.Env) (*typed.Function, error) {
				_, err := env.Load("lonely")
				return nil, err
			},
		},
	))
	l, err := factory.NewLoader(reg, config.Default())
	require.NoError(t, err)

	_, err = l.Load("missing")
	assert.ErrorIs(t, err, factory.ErrUnresolvedDependency)

	_, err = l.Load("lonely")
	assert.ErrorIs(t, err, factory.ErrUnresolvedDependency)
	assert.Contains(t, err.Error(), "lonely → ghost")

	_, err = l.Load("a")
	require.ErrorIs(t, err, factory.ErrCircularDependency)
	assert.Contains(t, err.Error(), "a → b → a")

	_, err = l.Load("sneaky")
	assert.ErrorIs(t, err, factory.ErrUndeclaredDependency)

	_, err = factory.NewLoader(reg, config.Config{})
	assert.ErrorIs(t, err, config.ErrInvalidMatrix)
}

func TestLoader_CreateErrorIsWrapped(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	reg := factory.NewRegistry()
	require.NoError(t, reg.Register(
		factory.Factory{Name: "bad", Create: func(*factory.Env) (*typed.Function, error) { return nil, boom }},
		factory.Factory{Name: "nil", Create: func(*factory.Env) (*typed.Function, error) { return nil, nil }},
	))
	l, err := factory.NewLoader(reg, config.Default())
	require.NoError(t, err)

	_, err = l.Load("bad")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "factory.Load(bad)")

	_, err = l.Load("nil")
	assert.ErrorIs(t, err, factory.ErrInvalidFactory)
}

func TestBuild_DeterministicOrder(t *testing.T) {
	t.Parallel()

	reg := factory.NewRegistry()
	require.NoError(t, reg.Register(
		constant("d", 4),
		constant("c", 3, "a", "b"),
		constant("b", 2, "a", "a"),
		constant("a", 1),
	))
	ns, err := factory.Build(reg, config.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, ns.Order())
	assert.Equal(t, []string{"a", "b", "c", "d"}, ns.Names())

	v, err := ns.Call("c")
	require.NoError(t, err)
	assert.Equal(t, value.Number(3), v)

	_, err = ns.Call("zzz")
	assert.ErrorIs(t, err, factory.ErrUnknownFunction)
}

func TestBuild_ValidatesGraphFirst(t *testing.T) {
	t.Parallel()

	var creates atomic.Int32
	counted := func(name string, deps ...string) factory.Factory {
		f := constant(name, 0, deps...)
		create := f.Create
		f.Create = func(env *factory.Env) (*typed.Function, error) {
			creates.Add(1)
			return create(env)
		}
		return f
	}

	reg := factory.NewRegistry()
	require.NoError(t, reg.Register(counted("a"), counted("b", "c"), counted("c", "b")))
	_, err := factory.Build(reg, config.Default())
	require.ErrorIs(t, err, factory.ErrCircularDependency)
	assert.Contains(t, err.Error(), "b, c")
	assert.Zero(t, creates.Load())

	reg = factory.NewRegistry()
	require.NoError(t, reg.Register(counted("a", "ghost")))
	_, err = factory.Build(reg, config.Default())
	require.ErrorIs(t, err, factory.ErrUnresolvedDependency)
	assert.Contains(t, err.Error(), "a → ghost")

	reg = factory.NewRegistry()
	require.NoError(t, reg.Register(counted("a")))
	require.NoError(t, reg.RegisterTransform(counted("t", "ghost")))
	_, err = factory.Build(reg, config.Default())
	assert.ErrorIs(t, err, factory.ErrUnresolvedDependency)
	assert.Zero(t, creates.Load())

	_, err = factory.Build(reg, config.New(), nil)
	assert.ErrorIs(t, err, factory.ErrUnresolvedDependency)

	_, err = factory.Build(factory.NewRegistry(), config.Config{Matrix: config.OutputArray, Number: config.NumberPlain})
	assert.ErrorIs(t, err, config.ErrInvalidPrecision)
}

func TestNamespace_TransformFallback(t *testing.T) {
	t.Parallel()

	reg := factory.NewRegistry()
	require.NoError(t, reg.Register(constant("f", 1), constant("g", 2)))
	require.NoError(t, reg.RegisterTransform(constant("f", 100, "f")))

	ns, err := factory.Build(reg, config.Default())
	require.NoError(t, err)

	v, err := ns.CallTransform("f")
	require.NoError(t, err)
	assert.Equal(t, value.Number(100), v)

	v, err = ns.Call("f")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)

	v, err = ns.CallTransform("g")
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)

	_, err = ns.Transform("nope")
	assert.ErrorIs(t, err, factory.ErrUnknownFunction)
	assert.Equal(t, []string{"f"}, ns.TransformNames())
}

func TestNamespace_RebuildSnapshotsConfig(t *testing.T) {
	t.Parallel()

	reg := factory.NewRegistry()
	require.NoError(t, reg.Register(factory.Factory{
		Name: "digits",
		Create: func(env *factory.Env) (*typed.Function, error) {
			digits := env.Config().Precision
			return env.Typed().Create("digits", typed.Overloads{{
				Signature: "",
				Impl: func(...value.Value) (value.Value, error) {
					return value.Number(digits), nil
				},
			}})
		},
	}))

	cfg := config.New(config.WithPrecision(20))
	ns, err := factory.Build(reg, cfg)
	require.NoError(t, err)
	cfg.Precision = 99

	v, err := ns.Call("digits")
	require.NoError(t, err)
	assert.Equal(t, value.Number(20), v)

	ns2, err := ns.Rebuild(config.New(config.WithPrecision(32)))
	require.NoError(t, err)
	v, err = ns2.Call("digits")
	require.NoError(t, err)
	assert.Equal(t, value.Number(32), v)
	assert.Equal(t, 32, ns2.Config().Precision)

	v, err = ns.Call("digits")
	require.NoError(t, err)
	assert.Equal(t, value.Number(20), v)
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reg := factory.NewRegistry()
	require.NoError(t, reg.Register(constant("a", 1)))
	_, err := factory.Build(reg, config.Default(), factory.WithLogger(logger.New(logger.ModeDev, &buf)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "factory: instantiated")
	assert.Contains(t, buf.String(), "name=a")

	assert.Panics(t, func() { factory.WithLogger(nil) })
	assert.Panics(t, func() { factory.WithConversions(nil) })
}

func TestWithConversions(t *testing.T) {
	t.Parallel()

	reg := factory.NewRegistry()
	require.NoError(t, reg.Register(factory.Factory{
		Name: "big",
		Create: func(env *factory.Env) (*typed.Function, error) {
			return env.Typed().Create("big", typed.Overloads{{
				Signature: "BigNumber",
				Impl:      func(args ...value.Value) (value.Value, error) { return args[0], nil },
			}})
		},
	}))
	none := func(int) []typed.Conversion { return nil }
	ns, err := factory.Build(reg, config.Default(), factory.WithConversions(none))
	require.NoError(t, err)

	_, err = ns.Call("big", value.Number(1))
	assert.ErrorIs(t, err, typed.ErrNoMatchingSignature)
}
