// SPDX-License-Identifier: MIT
// Package value: JSON codec in the math.js reviver format.
//
// Scalars:
//   - boolean, string → JSON literals; finite number → JSON number.
//   - non-finite number → {"mathjs":"number","value":"NaN"|"Infinity"|"-Infinity"}.
//   - BigNumber → {"mathjs":"BigNumber","value":"1.5"}.
//   - Fraction  → {"mathjs":"Fraction","n":1,"d":3}.
//   - Complex   → {"mathjs":"Complex","re":1,"im":2}.
//
// Containers:
//   - Array  → JSON array.
//   - Matrix → {"mathjs":"DenseMatrix"|"SparseMatrix","data":[...],"size":[...]}.
//   - Index  → {"mathjs":"Index","dimensions":[[0,1],2]}; a bare number is a scalar dim.

package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
)

const (
	jsonTag          = "mathjs"
	jsonNumber       = "number"
	jsonBigNumber    = "BigNumber"
	jsonFraction     = "Fraction"
	jsonComplex      = "Complex"
	jsonDenseMatrix  = "DenseMatrix"
	jsonSparseMatrix = "SparseMatrix"
	jsonIndex        = "Index"
)

// EncodeJSON serialises v. Functions are not serialisable (ErrConversion).
func EncodeJSON(v Value) ([]byte, error) {
	tree, err := Encode(v)
	if err != nil {
		return nil, err
	}

	return json.Marshal(tree)
}

// Encode converts v into a tree of JSON-ready Go values.
func Encode(v Value) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Boolean:
		return bool(x), nil
	case Number:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return map[string]any{jsonTag: jsonNumber, "value": x.String()}, nil
		}
		return f, nil
	case String:
		return string(x), nil
	case BigNumber:
		return map[string]any{jsonTag: jsonBigNumber, "value": x.String()}, nil
	case Fraction:
		r := x.rat()
		return map[string]any{
			jsonTag: jsonFraction,
			"n":     json.Number(r.Num().String()),
			"d":     json.Number(r.Denom().String()),
		}, nil
	case Complex:
		return map[string]any{jsonTag: jsonComplex, "re": real(x), "im": imag(x)}, nil
	case Array:
		out := make([]any, len(x))
		for i, e := range x {
			enc, err := Encode(e)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	case *Matrix:
		data, err := Encode(x.ToArray())
		if err != nil {
			return nil, err
		}
		tag := jsonDenseMatrix
		if x.Storage() == StorageSparse {
			tag = jsonSparseMatrix
		}
		return map[string]any{jsonTag: tag, "data": data, "size": x.Size()}, nil
	case *Index:
		dims := make([]any, x.Len())
		for d := 0; d < x.Len(); d++ {
			dim := x.Dim(d)
			if dim.Scalar {
				dims[d] = dim.Positions[0]
				continue
			}
			dims[d] = dim.Positions
		}
		return map[string]any{jsonTag: jsonIndex, "dimensions": dims}, nil
	}

	return nil, valueErrorf("Encode("+TypeOf(v).String()+")", ErrConversion)
}

// DecodeJSON parses data. Plain JSON numbers become values of kind number
// (TypeNumber, TypeBigNumber or TypeFraction) using digits for BigNumber.
func DecodeJSON(data []byte, number Type, digits int) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("DecodeJSON: %w: %v", ErrConversion, err)
	}

	return Decode(tree, number, digits)
}

// Decode converts a generic JSON tree (as produced by encoding/json with
// UseNumber) into a Value.
func Decode(tree any, number Type, digits int) (Value, error) {
	switch x := tree.(type) {
	case bool:
		return Boolean(x), nil
	case json.Number:
		return ParseNumber(x.String(), number, digits)
	case float64:
		return Convert(Number(x), number, digits)
	case string:
		return String(x), nil
	case []any:
		out := make(Array, len(x))
		for i, e := range x {
			v, err := Decode(e, number, digits)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case map[string]any:
		return decodeObject(x, number, digits)
	}

	return nil, valueErrorf(fmt.Sprintf("Decode(%T)", tree), ErrConversion)
}

func decodeObject(obj map[string]any, number Type, digits int) (Value, error) {
	tag, _ := obj[jsonTag].(string)
	switch tag {
	case jsonNumber:
		s, _ := obj["value"].(string)
		return ParseNumber(s, TypeNumber, digits)
	case jsonBigNumber:
		return ParseBigNumber(fmt.Sprint(obj["value"]), digits)
	case jsonFraction:
		n, okn := new(big.Int).SetString(fmt.Sprint(obj["n"]), 10)
		d, okd := new(big.Int).SetString(fmt.Sprint(obj["d"]), 10)
		if !okn || !okd {
			return nil, valueErrorf("Decode(Fraction)", ErrConversion)
		}
		if d.Sign() == 0 {
			return nil, valueErrorf("Decode(Fraction)", ErrDivisionByZero)
		}
		return Fraction{r: new(big.Rat).SetFrac(n, d)}, nil
	case jsonComplex:
		re, okr := jsonFloat(obj["re"])
		im, oki := jsonFloat(obj["im"])
		if !okr || !oki {
			return nil, valueErrorf("Decode(Complex)", ErrConversion)
		}
		return Complex(complex(re, im)), nil
	case jsonDenseMatrix, jsonSparseMatrix:
		data, err := Decode(obj["data"], number, digits)
		if err != nil {
			return nil, err
		}
		a, ok := data.(Array)
		if !ok {
			return nil, valueErrorf("Decode(Matrix)", ErrConversion)
		}
		if tag == jsonSparseMatrix {
			return NewSparse(a)
		}
		return NewMatrix(a)
	case jsonIndex:
		raw, _ := obj["dimensions"].([]any)
		dims := make([]Dim, len(raw))
		for d, r := range raw {
			dim, err := decodeDim(r)
			if err != nil {
				return nil, err
			}
			dims[d] = dim
		}
		return NewIndex(dims...)
	}

	return nil, valueErrorf("Decode(object "+tag+")", ErrConversion)
}

func decodeDim(raw any) (Dim, error) {
	if list, ok := raw.([]any); ok {
		ps := make([]int, len(list))
		for i, e := range list {
			f, ok := jsonFloat(e)
			if !ok || f != math.Trunc(f) {
				return Dim{}, valueErrorf("Decode(Index)", ErrNotInteger)
			}
			ps[i] = int(f)
		}
		return Dim{Positions: ps}, nil
	}
	f, ok := jsonFloat(raw)
	if !ok || f != math.Trunc(f) {
		return Dim{}, valueErrorf("Decode(Index)", ErrNotInteger)
	}

	return At(int(f)), nil
}

func jsonFloat(raw any) (float64, bool) {
	switch x := raw.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	}

	return 0, false
}
