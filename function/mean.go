// SPDX-License-Identifier: MIT

package function

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Mean returns the factory of mean; it takes the same forms as min.
// Complex values are averaged component-wise. Cells that are all plain
// numbers are averaged by gonum's stat.Mean.
func Mean() factory.Factory {
	return factory.Factory{
		Name: NameMean,
		Create: func(env *factory.Env) (*typed.Function, error) {
			return create(env, NameMean, reducer(NameMean, mean))
		},
	}
}

func mean(vs []value.Value) (value.Value, error) {
	if len(vs) == 0 {
		return nil, value.ErrEmpty
	}
	if xs, ok := plainNumbers(vs); ok {
		return value.Number(stat.Mean(xs, nil)), nil
	}
	sum, err := total(vs)
	if err != nil {
		return nil, err
	}

	return value.Divide(sum, value.FromInt(len(vs), sum))
}

// total adds vs left to right, starting from number 0 (the lowest kind).
func total(vs []value.Value) (value.Value, error) {
	var sum value.Value = value.Number(0)
	for _, v := range vs {
		s, err := value.Add(sum, v)
		if err != nil {
			return nil, err
		}
		sum = s
	}

	return sum, nil
}

// plainNumbers returns vs as float64 when every cell is a number.
func plainNumbers(vs []value.Value) ([]float64, bool) {
	xs := make([]float64, len(vs))
	for i, v := range vs {
		n, ok := v.(value.Number)
		if !ok {
			return nil, false
		}
		xs[i] = float64(n)
	}

	return xs, true
}
