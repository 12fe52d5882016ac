// SPDX-License-Identifier: MIT

package value

import (
	"math"
	"math/big"
	"math/cmplx"
	"strconv"
	"strings"
)

// DefaultDigits is the BigNumber precision (significant decimal digits) used
// when no precision is supplied.
const DefaultDigits = 64

// bitsForDigits converts significant decimal digits into big.Float mantissa bits.
func bitsForDigits(digits int) uint {
	if digits <= 0 {
		digits = DefaultDigits
	}

	return uint(math.Ceil(float64(digits) * math.Log2(10)))
}

// ---------- boolean ----------

// Boolean is a truth value. It converts implicitly to number (1/0).
type Boolean bool

func (Boolean) Type() Type       { return TypeBoolean }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (Boolean) value()           {}

// ---------- number ----------

// Number is a plain IEEE-754 double.
type Number float64

func (Number) Type() Type       { return TypeNumber }
func (n Number) String() string { return formatFloat(float64(n)) }
func (Number) value()           {}

// formatFloat prints the shortest round-trip form; non-finite values use the
// spelled-out names.
func formatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

// ---------- string ----------

// String is a text value.
type String string

func (String) Type() Type       { return TypeString }
func (s String) String() string { return strconv.Quote(string(s)) }
func (String) value()           {}

// ---------- BigNumber ----------

// BigNumber is an arbitrary-precision decimal. The wrapped *big.Float is never
// mutated after construction; the zero BigNumber is 0.
type BigNumber struct {
	f *big.Float
}

// NewBigNumber copies f (keeping its precision). A nil f yields zero.
func NewBigNumber(f *big.Float) BigNumber {
	if f == nil {
		return BigNumber{}
	}

	return BigNumber{f: new(big.Float).Copy(f)}
}

// BigNumberFromFloat converts x with the given significant digits.
// NaN has no BigNumber representation.
func BigNumberFromFloat(x float64, digits int) (BigNumber, error) {
	if math.IsNaN(x) {
		return BigNumber{}, valueErrorf("BigNumberFromFloat", ErrConversion)
	}

	return BigNumber{f: new(big.Float).SetPrec(bitsForDigits(digits)).SetFloat64(x)}, nil
}

// ParseBigNumber parses a decimal literal (Infinity/-Infinity accepted).
func ParseBigNumber(s string, digits int) (BigNumber, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "Infinity", "+Infinity":
		s = "+Inf"
	case "-Infinity":
		s = "-Inf"
	}
	f, _, err := big.ParseFloat(s, 10, bitsForDigits(digits), big.ToNearestEven)
	if err != nil {
		return BigNumber{}, valueErrorf("ParseBigNumber("+strconv.Quote(s)+")", ErrConversion)
	}

	return BigNumber{f: f}, nil
}

func (BigNumber) Type() Type { return TypeBigNumber }
func (BigNumber) value()     {}

// String renders the shortest decimal that identifies the value at its precision.
func (b BigNumber) String() string {
	f := b.big()
	if f.IsInf() {
		if f.Sign() < 0 {
			return "-Infinity"
		}
		return "Infinity"
	}

	return f.Text('g', -1)
}

// Float returns a copy of the underlying *big.Float.
func (b BigNumber) Float() *big.Float {
	return new(big.Float).Copy(b.big())
}

// Prec returns the mantissa precision in bits.
func (b BigNumber) Prec() uint {
	return b.big().Prec()
}

// big returns the backing float, substituting zero for the zero value.
func (b BigNumber) big() *big.Float {
	if b.f == nil {
		return new(big.Float).SetPrec(bitsForDigits(DefaultDigits))
	}

	return b.f
}

// ---------- Fraction ----------

// Fraction is an exact rational number. The zero Fraction is 0.
type Fraction struct {
	r *big.Rat
}

// NewFraction builds num/den in lowest terms.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, valueErrorf("NewFraction", ErrDivisionByZero)
	}

	return Fraction{r: big.NewRat(num, den)}, nil
}

// FractionFromRat copies r. A nil r yields zero.
func FractionFromRat(r *big.Rat) Fraction {
	if r == nil {
		return Fraction{}
	}

	return Fraction{r: new(big.Rat).Set(r)}
}

// ParseFraction accepts "a/b", integers and decimal literals ("0.25", "1e-3").
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		d, okd := new(big.Int).SetString(strings.TrimSpace(den), 10)
		n, okn := new(big.Int).SetString(strings.TrimSpace(num), 10)
		if !okd || !okn {
			return Fraction{}, valueErrorf("ParseFraction("+strconv.Quote(s)+")", ErrConversion)
		}
		if d.Sign() == 0 {
			return Fraction{}, valueErrorf("ParseFraction("+strconv.Quote(s)+")", ErrDivisionByZero)
		}
		return Fraction{r: new(big.Rat).SetFrac(n, d)}, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Fraction{}, valueErrorf("ParseFraction("+strconv.Quote(s)+")", ErrConversion)
	}

	return Fraction{r: r}, nil
}

func (Fraction) Type() Type { return TypeFraction }
func (Fraction) value()     {}

// String prints integers plainly and other values as "n/d".
func (f Fraction) String() string {
	r := f.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.String()
}

// Rat returns a copy of the underlying *big.Rat.
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).Set(f.rat())
}

func (f Fraction) rat() *big.Rat {
	if f.r == nil {
		return new(big.Rat)
	}

	return f.r
}

// ---------- Complex ----------

// Complex is a complex128 value.
type Complex complex128

func (Complex) Type() Type { return TypeComplex }
func (Complex) value()     {}

// String prints "re + imi"; a zero imaginary part prints only re and a zero
// real part prints only the imaginary term.
func (c Complex) String() string {
	re, im := real(c), imag(c)
	switch {
	case cmplx.IsNaN(complex128(c)):
		return "NaN"
	case im == 0:
		return formatFloat(re)
	case re == 0:
		return formatFloat(im) + "i"
	case im < 0:
		return formatFloat(re) + " - " + formatFloat(-im) + "i"
	}

	return formatFloat(re) + " + " + formatFloat(im) + "i"
}
