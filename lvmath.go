// SPDX-License-Identifier: MIT

package lvmath

import (
	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/factory"
	"github.com/katalvlaran/lvmath/function"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// Math is an assembled namespace: every catalog function and transform,
// built for one configuration.
type Math struct {
	ns *factory.Namespace
}

// New registers the catalog and builds it.
//
// Errors:
//   - config validation errors (config.ErrInvalidMatrix, ...).
//   - factory errors from the build (never expected for the stock catalog).
func New(opts ...Option) (*Math, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	reg := factory.NewRegistry()
	if err := function.Register(reg); err != nil {
		return nil, err
	}
	ns, err := factory.Build(reg, o.cfg, factory.WithLogger(o.log))
	if err != nil {
		return nil, err
	}

	return &Math{ns: ns}, nil
}

// Call invokes the plain function name.
func (m *Math) Call(name string, args ...value.Value) (value.Value, error) {
	return m.ns.Call(name, args...)
}

// CallTransform invokes the one-based transform of name, or the plain
// function when there is none.
func (m *Math) CallTransform(name string, args ...value.Value) (value.Value, error) {
	return m.ns.CallTransform(name, args...)
}

// Function returns the plain function name (factory.ErrUnknownFunction if absent).
func (m *Math) Function(name string) (*typed.Function, error) {
	return m.ns.Function(name)
}

// Transform returns the transform of name, falling back to the plain function.
func (m *Math) Transform(name string) (*typed.Function, error) {
	return m.ns.Transform(name)
}

// Names returns the plain function names in sorted order.
func (m *Math) Names() []string { return m.ns.Names() }

// TransformNames returns the names that have a transform, sorted.
func (m *Math) TransformNames() []string { return m.ns.TransformNames() }

// Config returns the configuration the namespace was built with.
func (m *Math) Config() config.Config { return m.ns.Config() }

// WithConfig returns a new Math built for cfg. m is unchanged.
func (m *Math) WithConfig(cfg config.Config) (*Math, error) {
	ns, err := m.ns.Rebuild(cfg)
	if err != nil {
		return nil, err
	}

	return &Math{ns: ns}, nil
}
