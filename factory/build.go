// SPDX-License-Identifier: MIT

package factory

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/typed"
	"github.com/katalvlaran/lvmath/value"
)

// ErrUnknownFunction is returned by Namespace lookups for unregistered names.
var ErrUnknownFunction = errors.New("factory: unknown function")

// Namespace is a fully built set of functions for one configuration.
// It is immutable and safe for concurrent use.
type Namespace struct {
	reg        *Registry
	opts       []Option
	cfg        config.Config
	order      []string
	functions  map[string]*typed.Function
	transforms map[string]*typed.Function
}

// Build validates the dependency graph of reg and instantiates every factory.
//
// Implementation:
//   - Stage 1: validate cfg and snapshot the registry.
//   - Stage 2: check that every dependency is registered, then order the
//     plain factories with Kahn's algorithm (ready set by name ascending).
//   - Stage 3: instantiate plain factories in that order, then transforms by name.
//
// Errors:
//   - cfg.Validate failures.
//   - ErrUnresolvedDependency naming "factory → dependency".
//   - ErrCircularDependency naming every factory left on a cycle.
//   - Create errors, wrapped with the factory name.
//
// Complexity: O(V log V + E) excluding Create calls.
func Build(reg *Registry, cfg config.Config, opts ...Option) (*Namespace, error) {
	if reg == nil {
		return nil, factoryErrorf("Build", "nil registry", ErrInvalidFactory)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fs, ts := reg.snapshot()
	order, err := planOrder(fs, ts)
	if err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	l := newLoader(fs, ts, cfg, o)
	functions := make(map[string]*typed.Function, len(order))
	for _, name := range order {
		fn, err := l.load(name)
		if err != nil {
			return nil, err
		}
		functions[name] = fn
	}
	transforms := make(map[string]*typed.Function, len(ts))
	for _, name := range sortedKeys(ts) {
		fn, err := l.loadTransform(name)
		if err != nil {
			return nil, err
		}
		transforms[name] = fn
	}
	o.log.Debug("factory: namespace built",
		slog.Int("functions", len(functions)),
		slog.Int("transforms", len(transforms)),
		slog.String("matrix", string(cfg.Matrix)),
		slog.String("number", string(cfg.Number)))

	return &Namespace{
		reg:        reg,
		opts:       append([]Option(nil), opts...),
		cfg:        cfg,
		order:      order,
		functions:  functions,
		transforms: transforms,
	}, nil
}

// planOrder returns a dependency-first order of fs.
func planOrder(fs, ts map[string]Factory) ([]string, error) {
	names := sortedKeys(fs)
	indeg := make(map[string]int, len(fs))
	dependents := make(map[string][]string, len(fs))
	for _, name := range names {
		seen := make(map[string]bool)
		for _, dep := range fs[name].Dependencies {
			if _, ok := fs[dep]; !ok {
				return nil, factoryErrorf("Build", name+" → "+dep, ErrUnresolvedDependency)
			}
			if seen[dep] {
				continue
			}
			seen[dep] = true
			indeg[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}
	for _, name := range sortedKeys(ts) {
		for _, dep := range ts[name].Dependencies {
			if _, ok := fs[dep]; !ok {
				return nil, factoryErrorf("Build", "transform "+name+" → "+dep, ErrUnresolvedDependency)
			}
		}
	}

	ready := make([]string, 0, len(names))
	for _, name := range names {
		if indeg[name] == 0 {
			ready = append(ready, name)
		}
	}
	order := make([]string, 0, len(names))
	for len(ready) > 0 {
		cur := ready[0]
		ready = ready[1:]
		order = append(order, cur)
		released := false
		for _, next := range dependents[cur] {
			indeg[next]--
			if indeg[next] == 0 {
				ready = append(ready, next)
				released = true
			}
		}
		if released {
			sort.Strings(ready)
		}
	}
	if len(order) != len(names) {
		var cyclic []string
		for _, name := range names {
			if indeg[name] > 0 {
				cyclic = append(cyclic, name)
			}
		}
		return nil, factoryErrorf("Build", strings.Join(cyclic, ", "), ErrCircularDependency)
	}

	return order, nil
}

// Config returns the configuration the namespace was built with.
func (ns *Namespace) Config() config.Config { return ns.cfg }

// Order returns the instantiation order of plain functions.
func (ns *Namespace) Order() []string {
	return append([]string(nil), ns.order...)
}

// Names returns the plain function names in ascending order.
func (ns *Namespace) Names() []string {
	out := append([]string(nil), ns.order...)
	sort.Strings(out)

	return out
}

// TransformNames returns the names with a registered transform, ascending.
func (ns *Namespace) TransformNames() []string {
	out := make([]string, 0, len(ns.transforms))
	for k := range ns.transforms {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Function returns the plain function name.
func (ns *Namespace) Function(name string) (*typed.Function, error) {
	fn, ok := ns.functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}

	return fn, nil
}

// Transform returns the transform registered under name, falling back to
// the plain function.
func (ns *Namespace) Transform(name string) (*typed.Function, error) {
	if fn, ok := ns.transforms[name]; ok {
		return fn, nil
	}

	return ns.Function(name)
}

// Call invokes the plain function name with args.
func (ns *Namespace) Call(name string, args ...value.Value) (value.Value, error) {
	fn, err := ns.Function(name)
	if err != nil {
		return nil, err
	}

	return fn.Call(args...)
}

// CallTransform invokes the transform (or plain function) name with args.
func (ns *Namespace) CallTransform(name string, args ...value.Value) (value.Value, error) {
	fn, err := ns.Transform(name)
	if err != nil {
		return nil, err
	}

	return fn.Call(args...)
}

// Rebuild builds a new Namespace from the same registry and options with cfg.
// ns is unchanged; functions obtained from it keep their old configuration.
func (ns *Namespace) Rebuild(cfg config.Config) (*Namespace, error) {
	return Build(ns.reg, cfg, ns.opts...)
}
