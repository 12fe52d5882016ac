// SPDX-License-Identifier: MIT

package value

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Convert returns v as type to.
//
// Convert is the explicit conversion kernel; implicit conversion during
// dispatch is restricted to the edges declared in package typed, each of
// which delegates here.
//
// Behavior highlights:
//   - number→Fraction uses the shortest decimal form (0.1 → 1/10); non-finite fails.
//   - number→BigNumber fails for NaN; ±Inf is kept.
//   - Complex→real kinds requires a zero imaginary part.
//   - digits is the BigNumber precision used when the target is BigNumber.
//
// Errors: ErrConversion wrapped with "Convert <from>→<to>".
func Convert(v Value, to Type, digits int) (Value, error) {
	from := TypeOf(v)
	if from == to {
		return v, nil
	}
	out, ok := convert(v, to, digits)
	if !ok {
		return nil, valueErrorf("Convert "+from.String()+"→"+to.String(), ErrConversion)
	}

	return out, nil
}

func convert(v Value, to Type, digits int) (Value, bool) {
	switch to {
	case TypeNumber:
		x, ok := toFloat(v)
		return Number(x), ok
	case TypeBigNumber:
		f, ok := toBig(v, bitsForDigits(digits))
		if !ok {
			return nil, false
		}
		return BigNumber{f: f}, true
	case TypeFraction:
		r, ok := toRat(v)
		if !ok {
			return nil, false
		}
		return Fraction{r: r}, true
	case TypeComplex:
		c, ok := toComplex(v)
		return Complex(c), ok
	case TypeBoolean:
		if x, ok := toFloat(v); ok && TypeOf(v) != TypeString {
			return Boolean(x != 0), true
		}
	case TypeString:
		if TypeOf(v).IsNumeric() || TypeOf(v) == TypeBoolean {
			return String(strings.Trim(v.String(), `"`)), true
		}
	case TypeMatrix:
		if a, ok := v.(Array); ok {
			m, err := NewMatrix(a)
			return m, err == nil
		}
	case TypeArray:
		if m, ok := v.(*Matrix); ok && m != nil {
			return m.ToArray(), true
		}
	}

	return nil, false
}

func toFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case Boolean:
		if x {
			return 1, true
		}
		return 0, true
	case Number:
		return float64(x), true
	case BigNumber:
		f, _ := x.big().Float64()
		return f, true
	case Fraction:
		f, _ := x.rat().Float64()
		return f, true
	case Complex:
		if imag(x) != 0 {
			return 0, false
		}
		return real(x), true
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		return f, err == nil
	}

	return 0, false
}

func toBig(v Value, prec uint) (*big.Float, bool) {
	switch x := v.(type) {
	case BigNumber:
		return x.big(), true
	case Fraction:
		return new(big.Float).SetPrec(prec).SetRat(x.rat()), true
	case String:
		f, _, err := big.ParseFloat(strings.TrimSpace(string(x)), 10, prec, big.ToNearestEven)
		return f, err == nil
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return nil, false
	}

	return new(big.Float).SetPrec(prec).SetFloat64(f), true
}

func toRat(v Value) (*big.Rat, bool) {
	switch x := v.(type) {
	case Fraction:
		return x.rat(), true
	case BigNumber:
		if x.big().IsInf() {
			return nil, false
		}
		r, _ := x.big().Rat(nil)
		return r, true
	case String:
		f, err := ParseFraction(string(x))
		return f.r, err == nil
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))

	return r, ok
}

func toComplex(v Value) (complex128, bool) {
	if c, ok := v.(Complex); ok {
		return complex128(c), true
	}
	f, ok := toFloat(v)

	return complex(f, 0), ok
}

// Float64 returns v as a float64 when v is a real numeric value or a boolean.
func Float64(v Value) (float64, bool) {
	if TypeOf(v) == TypeString {
		return 0, false
	}

	return toFloat(v)
}
