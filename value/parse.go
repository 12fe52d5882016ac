// SPDX-License-Identifier: MIT

package value

import (
	"strconv"
	"strings"
)

// ParseNumber parses a numeric literal into the requested kind
// (TypeNumber, TypeBigNumber or TypeFraction).
func ParseNumber(s string, number Type, digits int) (Value, error) {
	s = strings.TrimSpace(s)
	switch number {
	case TypeBigNumber:
		return ParseBigNumber(s, digits)
	case TypeFraction:
		return ParseFraction(s)
	case TypeNumber:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, valueErrorf("ParseNumber("+strconv.Quote(s)+")", ErrConversion)
		}
		return Number(f), nil
	}

	return nil, valueErrorf("ParseNumber: kind "+number.String(), ErrUnknownType)
}

// Parse turns a text token (CLI argument, query parameter) into a value.
//
// Recognised forms, in order:
//   - "true" / "false"                → boolean
//   - JSON array or object            → DecodeJSON (numbers of the configured kind)
//   - "a/b" with integer a, b         → Fraction
//   - literal of the configured kind  → number / BigNumber / Fraction
//   - "re+imi" style complex literal  → Complex
//   - anything else                   → string
func Parse(s string, number Type, digits int) (Value, error) {
	t := strings.TrimSpace(s)
	switch t {
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	}
	if strings.HasPrefix(t, "[") || strings.HasPrefix(t, "{") {
		return DecodeJSON([]byte(t), number, digits)
	}
	if strings.Contains(t, "/") {
		if f, err := ParseFraction(t); err == nil {
			return f, nil
		}
	}
	if v, err := ParseNumber(t, number, digits); err == nil {
		return v, nil
	}
	if strings.HasSuffix(t, "i") {
		if c, err := strconv.ParseComplex(t, 128); err == nil {
			return Complex(c), nil
		}
	}

	return String(s), nil
}
