// SPDX-License-Identifier: MIT

package value

// Callback is the Go shape of a user callback passed to map, filter and forEach.
type Callback func(args ...Value) (Value, error)

// Function wraps a Callback with a declared arity. Callers always offer the
// full argument list (value, index, container); Call trims it to the arity so
// a one-argument callback never sees the index.
type Function struct {
	name  string
	arity int
	fn    Callback
}

// NewFunction wraps fn. arity < 0 passes every offered argument.
// Panics if fn is nil (programmer error).
func NewFunction(name string, arity int, fn Callback) *Function {
	if fn == nil {
		panic("value: NewFunction: nil callback")
	}

	return &Function{name: name, arity: arity, fn: fn}
}

func (*Function) Type() Type { return TypeFunction }
func (*Function) value()     {}

// String renders "function name".
func (f *Function) String() string {
	if f.name == "" {
		return "function"
	}

	return "function " + f.name
}

// Name returns the declared name.
func (f *Function) Name() string { return f.name }

// Arity returns the declared arity (negative: variadic).
func (f *Function) Arity() int { return f.arity }

// Call invokes the callback with at most Arity() arguments.
func (f *Function) Call(args ...Value) (Value, error) {
	if f.arity >= 0 && len(args) > f.arity {
		args = args[:f.arity]
	}

	return f.fn(args...)
}
