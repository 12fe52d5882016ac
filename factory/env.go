// SPDX-License-Identifier: MIT

package factory

import (
	"log/slog"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/typed"
)

// Env is what a Create callback can reach: the configuration snapshot, the
// dispatcher and its declared dependencies.
type Env struct {
	name   string
	deps   map[string]bool
	loader *Loader
}

func newEnv(f Factory, l *Loader) *Env {
	deps := make(map[string]bool, len(f.Dependencies))
	for _, d := range f.Dependencies {
		deps[d] = true
	}

	return &Env{name: f.Name, deps: deps, loader: l}
}

// Name returns the name of the factory being created.
func (e *Env) Name() string { return e.name }

// Config returns the configuration snapshot.
func (e *Env) Config() config.Config { return e.loader.cfg }

// Typed returns the dispatcher used to create the function.
func (e *Env) Typed() *typed.Typed { return e.loader.typed }

// Logger returns the injected logger.
func (e *Env) Logger() *slog.Logger { return e.loader.log }

// Load returns the declared dependency dep, instantiating it when needed.
// Must only be called from within Create.
func (e *Env) Load(dep string) (*typed.Function, error) {
	if !e.deps[dep] {
		return nil, factoryErrorf("Env.Load", e.name+" → "+dep, ErrUndeclaredDependency)
	}

	return e.loader.load(dep)
}
