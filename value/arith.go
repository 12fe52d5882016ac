// SPDX-License-Identifier: MIT
// Package value: scalar arithmetic kernels.
//
// Purpose:
//   - Provide Add/Subtract/Multiply/Divide/Sqrt/Compare over all numeric kinds with
//     one promotion rule, so function modules never branch on kinds themselves.
//
// Promotion:
//   - boolean,number (rank 0) < Fraction (1) < BigNumber (2) < Complex (3).
//   - BigNumber results use the largest precision among BigNumber operands.
//
// Division by zero (not intercepted, reported per kind):
//   - number: IEEE (±Inf, NaN).
//   - BigNumber: ±Inf; 0/0, 0·Inf, Inf−Inf → ErrUndefined.
//   - Fraction: ErrDivisionByZero.
//   - Complex: IEEE.

package value

import (
	"math"
	"math/big"
	"math/cmplx"
)

const (
	opAdd      = "Add"
	opSubtract = "Subtract"
	opMultiply = "Multiply"
	opDivide   = "Divide"
	opCompare  = "Compare"
	opSqrt     = "Sqrt"
	opToInt    = "ToInt"
)

// numericRank orders kinds for promotion; ok is false for non-numeric types.
func numericRank(t Type) (int, bool) {
	switch t {
	case TypeBoolean, TypeNumber:
		return 0, true
	case TypeFraction:
		return 1, true
	case TypeBigNumber:
		return 2, true
	case TypeComplex:
		return 3, true
	}

	return 0, false
}

var rankType = [...]Type{TypeNumber, TypeFraction, TypeBigNumber, TypeComplex}

// CommonKind returns the numeric kind both a and b promote to.
func CommonKind(a, b Type) (Type, error) {
	ra, oka := numericRank(a)
	rb, okb := numericRank(b)
	if !oka || !okb {
		return TypeUndefined, ErrNotNumeric
	}
	if rb > ra {
		ra = rb
	}

	return rankType[ra], nil
}

// precOf returns the largest BigNumber precision among vs (default when none).
func precOf(vs ...Value) uint {
	var p uint
	for _, v := range vs {
		if b, ok := v.(BigNumber); ok && b.Prec() > p {
			p = b.Prec()
		}
	}
	if p == 0 {
		p = bitsForDigits(DefaultDigits)
	}

	return p
}

// promote converts a and b to their common kind.
func promote(tag string, a, b Value) (Value, Value, Type, error) {
	k, err := CommonKind(TypeOf(a), TypeOf(b))
	if err != nil {
		return nil, nil, TypeUndefined, valueErrorf(tag+"("+TypeOf(a).String()+", "+TypeOf(b).String()+")", err)
	}
	x, okx := promoteTo(a, k, precOf(a, b))
	y, oky := promoteTo(b, k, precOf(a, b))
	if !okx || !oky {
		return nil, nil, TypeUndefined, valueErrorf(tag+" promote→"+k.String(), ErrConversion)
	}

	return x, y, k, nil
}

func promoteTo(v Value, k Type, prec uint) (Value, bool) {
	if TypeOf(v) == k {
		return v, true
	}
	switch k {
	case TypeNumber:
		f, ok := toFloat(v)
		return Number(f), ok
	case TypeFraction:
		r, ok := toRat(v)
		return Fraction{r: r}, ok
	case TypeBigNumber:
		f, ok := toBig(v, prec)
		return BigNumber{f: f}, ok
	case TypeComplex:
		c, ok := toComplex(v)
		return Complex(c), ok
	}

	return nil, false
}

// bigOp runs a big.Float kernel, mapping big.ErrNaN panics to ErrUndefined.
func bigOp(tag string, fn func(z *big.Float), prec uint) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(big.ErrNaN); !ok {
				panic(r)
			}
			v, err = nil, valueErrorf(tag, ErrUndefined)
		}
	}()
	z := new(big.Float).SetPrec(prec)
	fn(z)

	return BigNumber{f: z}, nil
}

// Add returns a + b in the common kind of the operands.
func Add(a, b Value) (Value, error) {
	x, y, k, err := promote(opAdd, a, b)
	if err != nil {
		return nil, err
	}
	switch k {
	case TypeNumber:
		return x.(Number) + y.(Number), nil
	case TypeFraction:
		return Fraction{r: new(big.Rat).Add(x.(Fraction).rat(), y.(Fraction).rat())}, nil
	case TypeBigNumber:
		return bigOp(opAdd, func(z *big.Float) { z.Add(x.(BigNumber).big(), y.(BigNumber).big()) }, precOf(x, y))
	default:
		return x.(Complex) + y.(Complex), nil
	}
}

// Subtract returns a − b in the common kind of the operands.
func Subtract(a, b Value) (Value, error) {
	x, y, k, err := promote(opSubtract, a, b)
	if err != nil {
		return nil, err
	}
	switch k {
	case TypeNumber:
		return x.(Number) - y.(Number), nil
	case TypeFraction:
		return Fraction{r: new(big.Rat).Sub(x.(Fraction).rat(), y.(Fraction).rat())}, nil
	case TypeBigNumber:
		return bigOp(opSubtract, func(z *big.Float) { z.Sub(x.(BigNumber).big(), y.(BigNumber).big()) }, precOf(x, y))
	default:
		return x.(Complex) - y.(Complex), nil
	}
}

// Multiply returns a · b in the common kind of the operands.
func Multiply(a, b Value) (Value, error) {
	x, y, k, err := promote(opMultiply, a, b)
	if err != nil {
		return nil, err
	}
	switch k {
	case TypeNumber:
		return x.(Number) * y.(Number), nil
	case TypeFraction:
		return Fraction{r: new(big.Rat).Mul(x.(Fraction).rat(), y.(Fraction).rat())}, nil
	case TypeBigNumber:
		return bigOp(opMultiply, func(z *big.Float) { z.Mul(x.(BigNumber).big(), y.(BigNumber).big()) }, precOf(x, y))
	default:
		return x.(Complex) * y.(Complex), nil
	}
}

// Divide returns a / b in the common kind of the operands.
// Division by zero is reported per kind (see package notes).
func Divide(a, b Value) (Value, error) {
	x, y, k, err := promote(opDivide, a, b)
	if err != nil {
		return nil, err
	}
	switch k {
	case TypeNumber:
		return x.(Number) / y.(Number), nil
	case TypeFraction:
		d := y.(Fraction).rat()
		if d.Sign() == 0 {
			return nil, valueErrorf(opDivide, ErrDivisionByZero)
		}
		return Fraction{r: new(big.Rat).Quo(x.(Fraction).rat(), d)}, nil
	case TypeBigNumber:
		return bigOp(opDivide, func(z *big.Float) { z.Quo(x.(BigNumber).big(), y.(BigNumber).big()) }, precOf(x, y))
	default:
		return x.(Complex) / y.(Complex), nil
	}
}

// Sqrt returns the principal square root. Negative reals produce a Complex;
// Fractions are evaluated as numbers.
func Sqrt(a Value) (Value, error) {
	switch x := a.(type) {
	case Boolean, Number:
		f, _ := toFloat(x)
		if f < 0 {
			return Complex(cmplx.Sqrt(complex(f, 0))), nil
		}
		return Number(math.Sqrt(f)), nil
	case Fraction:
		f, _ := x.rat().Float64()
		return Sqrt(Number(f))
	case BigNumber:
		f := x.big()
		if f.Sign() < 0 {
			g, _ := f.Float64()
			return Complex(cmplx.Sqrt(complex(g, 0))), nil
		}
		if f.IsInf() {
			return x, nil
		}
		return bigOp(opSqrt, func(z *big.Float) { z.Sqrt(f) }, f.Prec())
	case Complex:
		return Complex(cmplx.Sqrt(complex128(x))), nil
	}

	return nil, valueErrorf(opSqrt+"("+TypeOf(a).String()+")", ErrNotNumeric)
}

// Compare orders a and b: -1, 0 or +1. Complex and NaN are not comparable.
// Strings compare lexicographically with strings.
func Compare(a, b Value) (int, error) {
	if sa, ok := a.(String); ok {
		if sb, ok := b.(String); ok {
			switch {
			case sa < sb:
				return -1, nil
			case sa > sb:
				return 1, nil
			}
			return 0, nil
		}
	}
	if IsNaN(a) || IsNaN(b) {
		return 0, valueErrorf(opCompare, ErrNotComparable)
	}
	x, y, k, err := promote(opCompare, a, b)
	if err != nil {
		return 0, err
	}
	switch k {
	case TypeNumber:
		p, q := x.(Number), y.(Number)
		switch {
		case p < q:
			return -1, nil
		case p > q:
			return 1, nil
		}
		return 0, nil
	case TypeFraction:
		return x.(Fraction).rat().Cmp(y.(Fraction).rat()), nil
	case TypeBigNumber:
		return x.(BigNumber).big().Cmp(y.(BigNumber).big()), nil
	}

	return 0, valueErrorf(opCompare, ErrNotComparable)
}

// Equal reports whether a and b hold the same value. Numeric operands are
// compared after promotion; other values compare structurally.
func Equal(a, b Value) bool {
	ta, tb := TypeOf(a), TypeOf(b)
	if _, ok := numericRank(ta); ok {
		if _, ok := numericRank(tb); ok {
			x, y, k, err := promote("Equal", a, b)
			if err != nil {
				return false
			}
			if k == TypeComplex {
				return x.(Complex) == y.(Complex)
			}
			c, err := Compare(x, y)
			return err == nil && c == 0
		}
	}
	if ta != tb {
		return false
	}
	switch x := a.(type) {
	case String:
		return x == b.(String)
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Matrix:
		y := b.(*Matrix)
		return equalShape(x.shape, y.shape) && Equal(x.ToArray(), y.ToArray())
	case *Index:
		return x.String() == b.(*Index).String()
	case *Function:
		return x == b.(*Function)
	}

	return false
}

// IsNaN reports whether v is a NaN number or a Complex with a NaN part.
func IsNaN(v Value) bool {
	switch x := v.(type) {
	case Number:
		return math.IsNaN(float64(x))
	case Complex:
		return cmplx.IsNaN(complex128(x))
	}

	return false
}

// IsZero reports whether v is a numeric zero (or false).
func IsZero(v Value) bool {
	switch x := v.(type) {
	case Boolean:
		return !bool(x)
	case Number:
		return x == 0
	case BigNumber:
		return x.big().Sign() == 0
	case Fraction:
		return x.rat().Sign() == 0
	case Complex:
		return x == 0
	}

	return false
}

// ToInt returns v as an int when v is an integral real number.
func ToInt(v Value) (int, error) {
	switch x := v.(type) {
	case Number:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, valueErrorf(opToInt+"("+x.String()+")", ErrNotInteger)
		}
		return int(f), nil
	case BigNumber:
		f := x.big()
		if f.IsInf() || !f.IsInt() {
			return 0, valueErrorf(opToInt+"("+x.String()+")", ErrNotInteger)
		}
		n, acc := f.Int64()
		if acc != big.Exact || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, valueErrorf(opToInt+"("+x.String()+")", ErrNotInteger)
		}
		return int(n), nil
	case Fraction:
		r := x.rat()
		if !r.IsInt() || !r.Num().IsInt64() {
			return 0, valueErrorf(opToInt+"("+x.String()+")", ErrNotInteger)
		}
		n := r.Num().Int64()
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, valueErrorf(opToInt+"("+x.String()+")", ErrNotInteger)
		}
		return int(n), nil
	}

	return 0, valueErrorf(opToInt+"("+TypeOf(v).String()+")", ErrNotNumeric)
}

// FromInt returns n in the numeric kind of like (BigNumber keeps like's
// precision). Non-numeric like yields a number.
func FromInt(n int, like Value) Value {
	switch x := like.(type) {
	case BigNumber:
		return BigNumber{f: new(big.Float).SetPrec(x.Prec()).SetInt64(int64(n))}
	case Fraction:
		return Fraction{r: new(big.Rat).SetInt64(int64(n))}
	case Complex:
		return Complex(complex(float64(n), 0))
	}

	return Number(n)
}

// Zero returns the additive identity in the kind of like.
func Zero(like Value) Value {
	return FromInt(0, like)
}
