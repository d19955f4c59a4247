package registry

// Scope is the capability handed to service constructors and hooks.
//
// Through a Scope, ResolveShared, ResolveLocal and Insert work exactly as on
// the container itself, and nothing else does. A full *Container is also a
// Scope, but constructors only ever receive a *Resolver, so a service cannot
// swap out or clear the registry it is being built into.
//
// The interface is sealed by an unexported method: outside packages cannot
// implement it.
type Scope interface {
	container() *Container
}

// Resolver is the restricted Scope passed to constructors.
//
// It deliberately has no exported methods; use the package-level generic
// functions with it:
//
//	func (db Database) ConstructShared(scope registry.Scope) (access.Guard[Database], error) {
//		cfg, err := registry.ResolveShared[Config](scope)
//		...
//	}
type Resolver struct {
	ctn *Container
}

// container implements Scope.
func (r *Resolver) container() *Container { return r.ctn }
