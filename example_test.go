// SPDX-License-Identifier: MIT

package lvmath_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath"
	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/value"
)

// ExampleNew spaces points and takes their standard deviation.
func ExampleNew() {
	m, err := lvmath.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	xs, _ := m.Call("linspace", value.Number(0), value.Number(1), value.Number(5))
	mean, _ := m.Call("mean", xs)
	fmt.Println(xs)
	fmt.Println(mean)

	// Output:
	// [0, 0.25, 0.5, 0.75, 1]
	// 0.5
}

// ExampleMath_WithConfig switches to exact fractions.
func ExampleMath_WithConfig() {
	m, _ := lvmath.New()
	exact, err := m.WithConfig(config.New(
		config.WithNumber(config.NumberFraction),
		config.WithMatrix(config.OutputArray),
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r, _ := exact.Call("range", value.String("0:1/4:1"))
	fmt.Println(r)

	// Output:
	// [0, 1/4, 1/2, 3/4]
}
