// Package rscontainer provides a typed, lazily-constructed service registry for Go.
//
// The repository is split into three small packages:
//
//   - registry: the container itself, construct-or-fetch resolution of shared
//     (cached, reference-counted) and local (fresh-per-call) services, with
//     optional constructor overrides frozen through a Builder.
//   - access: the guarded-access layer, one closure-based contract over four
//     backing primitives (plain value, borrow-checked cell, mutex, rwmutex),
//     surfacing lock poisoning as a Healthy/Poisoned tag instead of an error.
//   - handle: the reference-counted erasure cell that lets heterogeneous
//     guard types share one storage slot inside the registry.
//
// Wiring stays explicit: the container is a passive data structure that you
// own and pass around (or hand to constructors as a restricted Scope). It does
// not lock its own map, detect dependency cycles, or retry failed
// construction.
//
// Start with registry's package docs and the runnable programs under
// examples/.
package rscontainer
