// SPDX-License-Identifier: MIT

package function

import (
	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Linspace returns the factory of linspace(start, end, n): n evenly spaced
// values from start to end, both included.
//
//	linspace(0, 3, 4) → [0, 1, 2, 3]
//	linspace(0, 3, 7) → [0, 0.5, 1, 1.5, 2, 2.5, 3]
//
// Implementation:
//   - Stage 1: promote start, end and n to their common kind.
//   - Stage 2: step = (end − start) / (n − 1), result[i] = start + i·step.
//   - Stage 3: wrap per configuration.
//
// Behavior highlights:
//   - n must be a non-negative integer (ErrInvalidCount); n = 0 yields an empty result.
//   - n above MaxCells fails with ErrTooLarge.
//   - n = 1 divides by zero and is not special-cased: number yields [NaN],
//     BigNumber fails with value.ErrUndefined, Fraction with value.ErrDivisionByZero.
//
// Complexity: O(n).
func Linspace() factory.Factory {
	return factory.Factory{
		Name:         NameLinspace,
		Dependencies: []string{NameMatrix},
		Create: func(env *factory.Env) (*typed.Function, error) {
			out, err := output(env)
			if err != nil {
				return nil, err
			}
			cfg := env.Config()
			sig := sigReal + ", " + sigReal + ", " + sigReal
			return create(env, NameLinspace, typed.Overloads{
				{Signature: sig, Impl: func(args ...value.Value) (value.Value, error) {
					a, err := linspace(cfg, args[0], args[1], args[2])
					if err != nil {
						return nil, fnErrorf(NameLinspace, err)
					}
					return out(a)
				}},
			})
		},
	}
}

func linspace(cfg config.Config, start, end, n value.Value) (value.Array, error) {
	vs, err := promoteAll(cfg, start, end, n)
	if err != nil {
		return nil, err
	}
	start, end = vs[0], vs[1]
	count, ok := toCount(vs[2], cfg.Epsilon)
	if !ok {
		return nil, ErrInvalidCount
	}
	if err := checkCells(count); err != nil {
		return nil, err
	}
	out := make(value.Array, 0, count)
	if count == 0 {
		return out, nil
	}

	diff, err := value.Subtract(end, start)
	if err != nil {
		return nil, err
	}
	step, err := value.Divide(diff, value.FromInt(count-1, start))
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		off, err := value.Multiply(value.FromInt(i, start), step)
		if err != nil {
			return nil, err
		}
		x, err := value.Add(start, off)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}

	return out, nil
}
