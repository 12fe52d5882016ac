// SPDX-License-Identifier: MIT

package function_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/function"
	"github.com/katalvlaran/lvmath/value"
)

// ExampleLinspace builds the catalog and spaces four points over [0, 3].
func ExampleLinspace() {
	reg := factory.NewRegistry()
	if err := function.Register(reg); err != nil {
		fmt.Println("error:", err)
		return
	}
	ns, err := factory.Build(reg, config.Default())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v, err := ns.Call("linspace", value.Number(0), value.Number(3), value.Number(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(value.TypeOf(v), v)

	// Output:
	// Matrix [0, 1, 2, 3]
}

// ExampleRangeTransform shows the one-based range used by expression front
// ends: the end is included.
func ExampleRangeTransform() {
	reg := factory.NewRegistry()
	_ = function.Register(reg)
	ns, _ := factory.Build(reg, config.New(config.WithMatrix(config.OutputArray)))

	plain, _ := ns.Call("range", value.String("1:4"))
	oneBased, _ := ns.CallTransform("range", value.String("1:4"))
	fmt.Println(plain)
	fmt.Println(oneBased)

	// Output:
	// [1, 2, 3]
	// [1, 2, 3, 4]
}

// ExampleSubset reads a row and writes past the end of a vector.
func ExampleSubset() {
	reg := factory.NewRegistry()
	_ = function.Register(reg)
	ns, _ := factory.Build(reg, config.Default())

	rows := value.Array{
		value.Array{value.Number(1), value.Number(2), value.Number(3)},
		value.Array{value.Number(4), value.Number(5), value.Number(6)},
	}
	second, _ := value.NewIndex(value.At(1), value.Span(0, 3))
	row, _ := ns.Call("subset", rows, second)
	fmt.Println(row)

	far, _ := value.NewIndex(value.At(3))
	grown, _ := ns.Call("subset", value.Array{value.Number(1)}, far, value.Number(9))
	fmt.Println(grown)

	// Output:
	// [4, 5, 6]
	// [1, 0, 0, 9]
}
