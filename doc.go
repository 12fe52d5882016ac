// SPDX-License-Identifier: MIT

// Package lvmath is a typed numeric function library: a closed set of
// runtime values, a typed-dispatch core and a catalog of functions built
// from factories against an immutable configuration.
//
// What is inside?
//
//	value/    - numbers, BigNumbers, Fractions, Complex, strings, Arrays,
//	            Matrices, Indexes and callbacks, with arithmetic and a JSON codec
//	config/   - the configuration snapshot (output container, number kind,
//	            precision, epsilon), options and YAML/TOML loading
//	typed/    - signature parsing, overload resolution and implicit conversions
//	factory/  - factory registry, lazy loader and explicit Build in dependency order
//	function/ - the catalog: matrix, size, index, linspace, range, min, max,
//	            mean, var, std, subset, concat, map, forEach, filter, plus
//	            one-based transforms
//	logger/   - slog handlers for dev/prod/silence modes
//	server/   - HTTP adapter over chi
//	cmd/      - the lvmath CLI
//
// Quick start:
//
//	m, err := lvmath.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	v, _ := m.Call("linspace", value.Number(0), value.Number(3), value.Number(4))
//	fmt.Println(v) // [0, 1, 2, 3]
//
// A Math value is immutable. WithConfig builds a new one; functions already
// obtained keep the configuration they were created with.
package lvmath
