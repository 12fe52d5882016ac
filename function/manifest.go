// SPDX-License-Identifier: MIT

package function

import "github.com/katalvlaran/lvmath/factory"

// Public function names.
const (
	NameConcat   = "concat"
	NameFilter   = "filter"
	NameForEach  = "forEach"
	NameIndex    = "index"
	NameLinspace = "linspace"
	NameMap      = "map"
	NameMatrix   = "matrix"
	NameMax      = "max"
	NameMean     = "mean"
	NameMin      = "min"
	NameRange    = "range"
	NameSize     = "size"
	NameStd      = "std"
	NameSubset   = "subset"
	NameVar      = "var"
)

// All returns every plain factory of the catalog.
func All() []factory.Factory {
	return []factory.Factory{
		Concat(),
		Filter(),
		ForEach(),
		Index(),
		Linspace(),
		Map(),
		Matrix(),
		Max(),
		Mean(),
		Min(),
		Range(),
		Size(),
		Std(),
		Subset(),
		Var(),
	}
}

// Transforms returns the one-based variants used by expression front ends.
// Each one depends on the plain function of the same name.
func Transforms() []factory.Factory {
	return []factory.Factory{
		ConcatTransform(),
		FilterTransform(),
		ForEachTransform(),
		IndexTransform(),
		MapTransform(),
		MaxTransform(),
		MeanTransform(),
		MinTransform(),
		RangeTransform(),
		StdTransform(),
		SubsetTransform(),
		VarTransform(),
	}
}

// Register adds All to reg as plain functions and Transforms as transforms.
func Register(reg *factory.Registry) error {
	if err := reg.Register(All()...); err != nil {
		return err
	}

	return reg.RegisterTransform(Transforms()...)
}
