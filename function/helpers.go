// SPDX-License-Identifier: MIT

package function

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Signature fragments shared by the catalog.
const (
	sigCollection = "Array | Matrix"
	sigReal       = "number | BigNumber | Fraction"
	sigDim        = "number | BigNumber"
	sigScalar     = "number | BigNumber | Fraction | Complex | boolean"
)

// outFunc wraps a freshly built Array into the configured container.
type outFunc func(value.Array) (value.Value, error)

// output loads the matrix constructor and returns the wrapper for env's
// configuration. The choice is made once, at creation time.
func output(env *factory.Env) (outFunc, error) {
	if env.Config().WantsArray() {
		return func(a value.Array) (value.Value, error) { return a, nil }, nil
	}
	matrix, err := env.Load(NameMatrix)
	if err != nil {
		return nil, err
	}

	return func(a value.Array) (value.Value, error) { return matrix.Call(a) }, nil
}

// leaves returns every cell of an Array or Matrix in row-major order.
func leaves(v value.Value) ([]value.Value, error) {
	switch x := v.(type) {
	case value.Array:
		if _, err := x.Size(); err != nil {
			return nil, err
		}
		return x.Flatten(), nil
	case *value.Matrix:
		return x.Data(), nil
	}

	return nil, value.ErrNotNumeric
}

// sameKind returns r as a Matrix when like is a Matrix and r is a collection.
func sameKind(like, r value.Value) (value.Value, error) {
	m, ok := like.(*value.Matrix)
	if !ok {
		return r, nil
	}
	a, ok := r.(value.Array)
	if !ok {
		return r, nil
	}
	out, err := value.NewMatrix(a)
	if err != nil {
		return nil, err
	}
	if m.Storage() == value.StorageSparse && len(out.Size()) == 2 {
		return out.WithStorage(value.StorageSparse)
	}

	return out, nil
}

// MaxCells bounds the number of cells a single call may produce.
const MaxCells = 1 << 24

// checkCells fails with ErrTooLarge when shape holds more than MaxCells cells.
func checkCells(shape ...int) error {
	n := 1
	for _, s := range shape {
		if s != 0 && n > MaxCells/s {
			return ErrTooLarge
		}
		n *= s
	}
	if n > MaxCells {
		return ErrTooLarge
	}

	return nil
}

// toCount converts v to a non-negative integer. Numbers within eps of an
// integer are accepted.
func toCount(v value.Value, eps float64) (int, bool) {
	if n, ok := v.(value.Number); ok {
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		r := math.Round(f)
		if !scalar.EqualWithinAbs(f, r, eps) || r < 0 || r > math.MaxInt32 {
			return 0, false
		}
		return int(r), true
	}
	n, err := value.ToInt(v)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// toDim validates a zero-based dimension argument against ndim.
func toDim(v value.Value, ndim int) (int, error) {
	d, err := value.ToInt(v)
	if err != nil {
		return 0, err
	}
	if d < 0 || d >= ndim {
		return 0, ErrBadDimension
	}

	return d, nil
}

// isFinite reports whether a real value is neither infinite nor NaN.
func isFinite(v value.Value) bool {
	switch x := v.(type) {
	case value.Number:
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case value.BigNumber:
		return !x.Float().IsInf()
	}

	return true
}

// truthy reports whether a callback result selects an element.
func truthy(v value.Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case value.String:
		return x != ""
	case value.Array, *value.Matrix, *value.Index, *value.Function:
		return true
	}
	if value.IsNaN(v) {
		return false
	}

	return !value.IsZero(v)
}

// promoteAll converts vs to their common numeric kind.
func promoteAll(cfg config.Config, vs ...value.Value) ([]value.Value, error) {
	kind := value.TypeOf(vs[0])
	for _, v := range vs[1:] {
		k, err := value.CommonKind(kind, value.TypeOf(v))
		if err != nil {
			return nil, err
		}
		kind = k
	}
	if kind == value.TypeBoolean {
		kind = value.TypeNumber
	}
	out := make([]value.Value, len(vs))
	for i, v := range vs {
		c, err := value.Convert(v, kind, cfg.Precision)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// positions renders a multi-index as the Array handed to callbacks.
func positions(idx []int, base int) value.Array {
	out := make(value.Array, len(idx))
	for i, p := range idx {
		out[i] = value.Number(p + base)
	}

	return out
}

// create is the common tail of every Create callback.
func create(env *factory.Env, name string, overloads typed.Overloads) (*typed.Function, error) {
	return env.Typed().Create(name, overloads)
}
