// SPDX-License-Identifier: MIT

package function

import (
	"strings"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Range returns the factory of range.
//
//	range("2:6")             → [2, 3, 4, 5]
//	range("0:2:7")           → [0, 2, 4, 6]
//	range(start, end)        step 1, end excluded
//	range(start, end, step)
//	range(start, end, includeEnd)
//	range(start, end, step, includeEnd)
//
// Strings are parsed in the configured number kind. A zero step yields an
// empty result; non-finite bounds or step fail with ErrBadRange.
// Element i is start + i·step.
func Range() factory.Factory {
	return factory.Factory{
		Name:         NameRange,
		Dependencies: []string{NameMatrix},
		Create: func(env *factory.Env) (*typed.Function, error) {
			out, err := output(env)
			if err != nil {
				return nil, err
			}
			cfg := env.Config()
			run := func(start, end, step value.Value, includeEnd bool) (value.Value, error) {
				a, err := rangeOf(cfg, start, end, step, includeEnd)
				if err != nil {
					return nil, fnErrorf(NameRange, err)
				}
				return out(a)
			}
			parsed := func(s string, includeEnd bool) (value.Value, error) {
				start, end, step, err := parseRange(cfg, s)
				if err != nil {
					return nil, fnErrorf(NameRange+"("+s+")", err)
				}
				return run(start, end, step, includeEnd)
			}
			pair := sigReal + ", " + sigReal
			return create(env, NameRange, typed.Overloads{
				{Signature: "string", Impl: func(args ...value.Value) (value.Value, error) {
					return parsed(string(args[0].(value.String)), false)
				}},
				{Signature: "string, boolean", Impl: func(args ...value.Value) (value.Value, error) {
					return parsed(string(args[0].(value.String)), bool(args[1].(value.Boolean)))
				}},
				{Signature: pair, Impl: func(args ...value.Value) (value.Value, error) {
					return run(args[0], args[1], nil, false)
				}},
				{Signature: pair + ", " + sigReal, Impl: func(args ...value.Value) (value.Value, error) {
					return run(args[0], args[1], args[2], false)
				}},
				{Signature: pair + ", boolean", Impl: func(args ...value.Value) (value.Value, error) {
					return run(args[0], args[1], nil, bool(args[2].(value.Boolean)))
				}},
				{Signature: pair + ", " + sigReal + ", boolean", Impl: func(args ...value.Value) (value.Value, error) {
					return run(args[0], args[1], args[2], bool(args[3].(value.Boolean)))
				}},
			})
		},
	}
}

// parseRange splits "start:end" or "start:step:end". A nil step means 1.
func parseRange(cfg config.Config, s string) (start, end, step value.Value, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, nil, nil, ErrBadRange
	}
	nums := make([]value.Value, len(parts))
	for i, p := range parts {
		nums[i], err = value.ParseNumber(strings.TrimSpace(p), cfg.NumberType(), cfg.Precision)
		if err != nil {
			return nil, nil, nil, ErrBadRange
		}
	}
	if len(nums) == 2 {
		return nums[0], nums[1], nil, nil
	}

	return nums[0], nums[2], nums[1], nil
}

func rangeOf(cfg config.Config, start, end, step value.Value, includeEnd bool) (value.Array, error) {
	if step == nil {
		step = value.FromInt(1, start)
	}
	vs, err := promoteAll(cfg, start, end, step)
	if err != nil {
		return nil, err
	}
	start, end, step = vs[0], vs[1], vs[2]
	for _, v := range vs {
		if !isFinite(v) {
			return nil, ErrBadRange
		}
	}
	out := value.Array{}
	if value.IsZero(step) {
		return out, nil
	}

	dir, err := value.Compare(step, value.Zero(step))
	if err != nil {
		return nil, err
	}
	if tooLong(start, end, step) {
		return nil, ErrTooLarge
	}
	for i := 0; ; i++ {
		off, err := value.Multiply(value.FromInt(i, start), step)
		if err != nil {
			return nil, err
		}
		x, err := value.Add(start, off)
		if err != nil {
			return nil, err
		}
		c, err := value.Compare(x, end)
		if err != nil {
			return nil, err
		}
		// c*dir < 0: still before end in the direction of travel.
		if c*dir > 0 || (c == 0 && !includeEnd) {
			break
		}
		if len(out) == MaxCells {
			return nil, ErrTooLarge
		}
		out = append(out, x)
	}

	return out, nil
}

// tooLong estimates the element count in float64 and reports whether it
// exceeds MaxCells.
func tooLong(start, end, step value.Value) bool {
	s, ok1 := value.Float64(start)
	e, ok2 := value.Float64(end)
	st, ok3 := value.Float64(step)
	if !ok1 || !ok2 || !ok3 {
		return false
	}

	return (e-s)/st > MaxCells
}
