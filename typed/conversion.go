// SPDX-License-Identifier: MIT

package typed

import "github.com/katalvlaran/lvmath/value"

// Conversion is one implicit conversion edge tried during dispatch.
type Conversion struct {
	From, To value.Type
	Convert  func(value.Value) (value.Value, error)
}

// DefaultConversions returns the library's implicit conversions in priority
// order. digits is the BigNumber precision used by edges that produce BigNumbers.
//
//	boolean  → number
//	number   → BigNumber
//	number   → Fraction
//	number   → Complex
//	Fraction → BigNumber
//	Fraction → Complex
//	BigNumber→ Complex
//	string   → number
//	Array    → Matrix
//	Matrix   → Array
func DefaultConversions(digits int) []Conversion {
	edge := func(from, to value.Type) Conversion {
		return Conversion{
			From: from,
			To:   to,
			Convert: func(v value.Value) (value.Value, error) {
				return value.Convert(v, to, digits)
			},
		}
	}

	return []Conversion{
		edge(value.TypeBoolean, value.TypeNumber),
		edge(value.TypeNumber, value.TypeBigNumber),
		edge(value.TypeNumber, value.TypeFraction),
		edge(value.TypeNumber, value.TypeComplex),
		edge(value.TypeFraction, value.TypeBigNumber),
		edge(value.TypeFraction, value.TypeComplex),
		edge(value.TypeBigNumber, value.TypeComplex),
		edge(value.TypeString, value.TypeNumber),
		edge(value.TypeArray, value.TypeMatrix),
		edge(value.TypeMatrix, value.TypeArray),
	}
}

// routeTable holds, for every (from, to) pair, the shortest chain of edges.
// Chains are found breadth-first; among chains of equal length the one whose
// edges were declared first wins.
type routeTable [value.NumTypes][value.NumTypes][]Conversion

func buildRoutes(convs []Conversion) *routeTable {
	var rt routeTable
	for from := 0; from < value.NumTypes; from++ {
		visited := [value.NumTypes]bool{}
		visited[from] = true
		queue := []value.Type{value.Type(from)}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, c := range convs {
				if c.From != cur || int(c.To) >= value.NumTypes || visited[c.To] {
					continue
				}
				visited[c.To] = true
				path := append(append([]Conversion(nil), rt[from][cur]...), c)
				rt[from][c.To] = path
				queue = append(queue, c.To)
			}
		}
	}

	return &rt
}

// route returns the chain converting from → to (nil when none or identical).
func (rt *routeTable) route(from, to value.Type) []Conversion {
	if int(from) >= value.NumTypes || int(to) >= value.NumTypes {
		return nil
	}

	return rt[from][to]
}
