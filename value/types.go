// SPDX-License-Identifier: MIT

// Package value: type tags and the sealed Value interface.
//
// Purpose:
//   - Give every runtime value a small integer tag (Type) so dispatch tables can be
//     indexed by tag tuples.
//   - Keep the set closed: Value carries an unexported marker method.
package value

import (
	"fmt"
	"strings"
)

// Type is the runtime tag of a Value.
type Type uint8

// Tags in promotion-relevant order. TypeUndefined is reported for a nil Value
// and never appears in a signature.
const (
	TypeBoolean Type = iota
	TypeNumber
	TypeBigNumber
	TypeFraction
	TypeComplex
	TypeString
	TypeArray
	TypeMatrix
	TypeIndex
	TypeFunction
	TypeUndefined

	numTypes = TypeUndefined
)

// NumTypes is the number of concrete (non-undefined) type tags.
const NumTypes = int(numTypes)

var typeNames = [...]string{
	TypeBoolean:   "boolean",
	TypeNumber:    "number",
	TypeBigNumber: "BigNumber",
	TypeFraction:  "Fraction",
	TypeComplex:   "Complex",
	TypeString:    "string",
	TypeArray:     "Array",
	TypeMatrix:    "Matrix",
	TypeIndex:     "Index",
	TypeFunction:  "function",
	TypeUndefined: "undefined",
}

// String returns the canonical type name used in signatures and errors.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}

	return fmt.Sprintf("Type(%d)", uint8(t))
}

// IsNumeric reports whether t is one of the four numeric kinds.
func (t Type) IsNumeric() bool {
	switch t {
	case TypeNumber, TypeBigNumber, TypeFraction, TypeComplex:
		return true
	}

	return false
}

// IsCollection reports whether t is Array or Matrix.
func (t Type) IsCollection() bool {
	return t == TypeArray || t == TypeMatrix
}

// ParseType resolves a canonical type name (case-sensitive, surrounding space ignored).
func ParseType(name string) (Type, error) {
	name = strings.TrimSpace(name)
	for i := 0; i < NumTypes; i++ {
		if typeNames[i] == name {
			return Type(i), nil
		}
	}

	return TypeUndefined, fmt.Errorf("ParseType(%q): %w", name, ErrUnknownType)
}

// Value is any runtime value handled by lvmath. The interface is sealed.
type Value interface {
	// Type returns the runtime tag.
	Type() Type

	// String renders the value in the library's text format.
	String() string

	value()
}

// TypeOf returns the tag of v, or TypeUndefined for a nil Value.
func TypeOf(v Value) Type {
	switch x := v.(type) {
	case nil:
		return TypeUndefined
	case Boolean:
		return TypeBoolean
	case Number:
		return TypeNumber
	case BigNumber:
		return TypeBigNumber
	case Fraction:
		return TypeFraction
	case Complex:
		return TypeComplex
	case String:
		return TypeString
	case Array:
		return TypeArray
	case *Matrix:
		if x == nil {
			return TypeUndefined
		}
		return TypeMatrix
	case *Index:
		if x == nil {
			return TypeUndefined
		}
		return TypeIndex
	case *Function:
		if x == nil {
			return TypeUndefined
		}
		return TypeFunction
	}

	return TypeUndefined
}

// TypesOf returns the tags of vs in order.
func TypesOf(vs []Value) []Type {
	out := make([]Type, len(vs))
	for i, v := range vs {
		out[i] = TypeOf(v)
	}

	return out
}

// Format renders v, printing "undefined" for nil.
func Format(v Value) string {
	if TypeOf(v) == TypeUndefined {
		return typeNames[TypeUndefined]
	}

	return v.String()
}
