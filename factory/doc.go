// SPDX-License-Identifier: MIT

// Package factory turns registered function recipes into a namespace of
// typed functions, instantiating each one after its dependencies.
//
// What:
//
//   - Factory: a name, the names of the functions it depends on, and a
//     Create callback that receives an Env and returns a *typed.Function.
//   - Registry: the set of factories (plain functions and transforms).
//   - Loader: lazy instantiation with a per-configuration cache. Requesting
//     the same name twice yields the identical *typed.Function.
//   - Build: validates the whole dependency graph, orders it (Kahn, ties by
//     name ascending) and instantiates every function up front, so a built
//     Namespace never fails with a missing dependency.
//
// Env (what a Create callback sees):
//
//	Config()   immutable config.Config snapshot
//	Typed()    dispatcher bound to the default conversions at cfg.Precision
//	Load(dep)  a declared dependency, already instantiated
//	Logger()   injected *slog.Logger
//
// Transforms are a second layer: a transform factory may depend on plain
// functions only, and Namespace.Transform falls back to the plain function
// when no transform is registered under a name.
//
// Errors:
//
//   - ErrInvalidFactory        empty name or nil Create
//   - ErrDuplicateFactory      a name registered twice
//   - ErrUnresolvedDependency  a dependency (or requested name) is not registered
//   - ErrCircularDependency    the dependency graph has a cycle
//   - ErrUndeclaredDependency  Env.Load of a name missing from Dependencies
//
// Complexity:
//
//   - Build: O(V + E) for validation and ordering, plus the Create calls.
//   - Loader.Load: O(1) for cached names.
package factory
