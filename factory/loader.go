// SPDX-License-Identifier: MIT

package factory

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/typed"
)

// visit state used for lazy cycle detection.
type visit uint8

const (
	white visit = iota // not started
	gray               // Create in progress
)

// Loader instantiates factories on first request and caches the result for
// its configuration. A Loader is safe for concurrent use; Create callbacks
// run one at a time.
type Loader struct {
	functions  map[string]Factory
	transforms map[string]Factory
	cfg        config.Config
	typed      *typed.Typed
	log        *slog.Logger

	mu     sync.Mutex
	cache  map[string]*typed.Function
	tcache map[string]*typed.Function
	state  map[string]visit
	stack  []string
}

// NewLoader returns a lazy Loader over a snapshot of reg.
//
// Errors: cfg.Validate failures.
func NewLoader(reg *Registry, cfg config.Config, opts ...Option) (*Loader, error) {
	if reg == nil {
		return nil, factoryErrorf("NewLoader", "nil registry", ErrInvalidFactory)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fs, ts := reg.snapshot()

	return newLoader(fs, ts, cfg, applyOptions(opts)), nil
}

func newLoader(fs, ts map[string]Factory, cfg config.Config, o options) *Loader {
	return &Loader{
		functions:  fs,
		transforms: ts,
		cfg:        cfg,
		typed:      typed.New(o.conversions(cfg.Precision)...),
		log:        o.log,
		cache:      make(map[string]*typed.Function, len(fs)),
		tcache:     make(map[string]*typed.Function, len(ts)),
		state:      make(map[string]visit, len(fs)),
	}
}

// Config returns the snapshot every factory of this loader receives.
func (l *Loader) Config() config.Config { return l.cfg }

// Load returns the plain function name, instantiating it and its
// dependencies on first use.
//
// Errors:
//   - ErrUnresolvedDependency when name (or a transitive dependency) is not registered.
//   - ErrCircularDependency when a cycle is reached; the message lists the path.
//   - ErrUndeclaredDependency / Create errors, wrapped with the loading chain.
func (l *Loader) Load(name string) (*typed.Function, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.load(name)
}

// LoadTransform returns the transform registered under name, or the plain
// function when there is none.
func (l *Loader) LoadTransform(name string) (*typed.Function, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.loadTransform(name)
}

func (l *Loader) load(name string) (*typed.Function, error) {
	if fn, ok := l.cache[name]; ok {
		return fn, nil
	}
	f, ok := l.functions[name]
	if !ok {
		return nil, factoryErrorf("Load", l.path(name), ErrUnresolvedDependency)
	}
	if l.state[name] == gray {
		return nil, factoryErrorf("Load", l.path(name), ErrCircularDependency)
	}
	fn, err := l.create(f, l.state)
	if err != nil {
		return nil, err
	}
	l.cache[name] = fn

	return fn, nil
}

func (l *Loader) loadTransform(name string) (*typed.Function, error) {
	if fn, ok := l.tcache[name]; ok {
		return fn, nil
	}
	f, ok := l.transforms[name]
	if !ok {
		return l.load(name)
	}
	// Transforms depend on plain functions only, so they need no cycle state.
	fn, err := l.create(f, map[string]visit{})
	if err != nil {
		return nil, err
	}
	l.tcache[name] = fn

	return fn, nil
}

// create runs f.Create with its Env, tracking the in-progress chain.
func (l *Loader) create(f Factory, state map[string]visit) (*typed.Function, error) {
	state[f.Name] = gray
	l.stack = append(l.stack, f.Name)
	defer func() {
		l.stack = l.stack[:len(l.stack)-1]
		delete(state, f.Name)
	}()

	env := newEnv(f, l)
	fn, err := f.Create(env)
	if err != nil {
		return nil, fmt.Errorf("factory.Load(%s): %w", f.Name, err)
	}
	if fn == nil {
		return nil, factoryErrorf("Load", f.Name+" returned no function", ErrInvalidFactory)
	}
	l.log.Debug("factory: instantiated",
		slog.String("name", f.Name),
		slog.Any("dependencies", f.Dependencies),
		slog.Int("signatures", len(fn.Signatures())))

	return fn, nil
}

// path renders the loading chain ending in name ("a → b → name").
func (l *Loader) path(name string) string {
	return strings.Join(append(append([]string(nil), l.stack...), name), " → ")
}
