// SPDX-License-Identifier: MIT

package factory

import (
	"sort"
	"sync"

	"github.com/katalvlaran/lvmath/typed"
)

// Factory is a recipe producing one named typed function.
type Factory struct {
	// Name is the public function name.
	Name string

	// Dependencies lists the plain functions Create may Load.
	Dependencies []string

	// Create builds the function. It runs once per configuration.
	Create func(env *Env) (*typed.Function, error)
}

func (f Factory) validate() error {
	if f.Name == "" || f.Create == nil {
		return factoryErrorf("Register", f.Name, ErrInvalidFactory)
	}

	return nil
}

// Registry holds plain and transform factories. Entries are never removed.
// A Registry is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]Factory
	transforms map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		functions:  make(map[string]Factory),
		transforms: make(map[string]Factory),
	}
}

// Register adds plain factories. Either all of fs are added or none.
func (r *Registry) Register(fs ...Factory) error {
	return r.register(r.functions, fs)
}

// RegisterTransform adds transform factories. Either all of fs are added or none.
func (r *Registry) RegisterTransform(fs ...Factory) error {
	return r.register(r.transforms, fs)
}

func (r *Registry) register(into map[string]Factory, fs []Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make(map[string]bool, len(fs))
	for _, f := range fs {
		if err := f.validate(); err != nil {
			return err
		}
		if _, dup := into[f.Name]; dup || batch[f.Name] {
			return factoryErrorf("Register", f.Name, ErrDuplicateFactory)
		}
		batch[f.Name] = true
	}
	for _, f := range fs {
		f.Dependencies = append([]string(nil), f.Dependencies...)
		into[f.Name] = f
	}

	return nil
}

// Lookup returns the plain factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.functions[name]

	return f, ok
}

// LookupTransform returns the transform factory registered under name.
func (r *Registry) LookupTransform(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.transforms[name]

	return f, ok
}

// Names returns the plain factory names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.functions)
}

// TransformNames returns the transform factory names in ascending order.
func (r *Registry) TransformNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.transforms)
}

// snapshot copies both tables so a build is unaffected by later registrations.
func (r *Registry) snapshot() (map[string]Factory, map[string]Factory) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fs := make(map[string]Factory, len(r.functions))
	for k, v := range r.functions {
		fs[k] = v
	}
	ts := make(map[string]Factory, len(r.transforms))
	for k, v := range r.transforms {
		ts[k] = v
	}

	return fs, ts
}

func sortedKeys(m map[string]Factory) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
