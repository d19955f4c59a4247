// Package registry implements the typed service container: a keyed map from
// type identity to lazily-constructed instances.
//
// Services come in two flavours, declared by implementing a capability
// interface on the service type itself:
//
//   - shared (SharedService): resolved at most once per container, cached
//     behind a reference-counted handle, every caller observes the same
//     physical instance through a guard of the service's choosing.
//   - local (LocalService): constructed afresh on every call, parameterized
//     by caller-supplied arguments, never cached.
//
// Resolution is recursive: constructors receive a Scope, a restricted
// capability that can resolve and insert but never replace or clear the
// registry, and use it to request their own dependencies. There is no cycle
// detection; a cyclic pair of shared default constructors recurses until
// stack exhaustion. Break cycles with the post-resolution hooks
// (SharedHook/LocalHook): construct one side with a placeholder and inject the
// real reference in the hook, which runs after the instance exists.
//
// Custom constructors can replace a type's defaults. They are accumulated on
// a Builder before the container is created and are immutable afterwards:
//
//	b := registry.NewBuilder()
//	registry.WithShared(b, func(s registry.Scope) (access.Guard[Clock], error) {
//		return access.NewPlain(Clock{now: fixed}), nil
//	})
//	c := b.Build()
//	defer c.Close()
//
// Constructor errors propagate verbatim through every level of recursive
// resolution, never wrapped and never retried, and a failed shared resolve
// leaves the entry exactly as it was, so a later attempt constructs again.
//
// The container is a passive, single-threaded data structure. It never locks
// its own map; callers serialize resolution against one container, and share
// only the already-resolved instances (which carry their own guards) across
// goroutines.
package registry
