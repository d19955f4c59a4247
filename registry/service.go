package registry

import (
	"github.com/yvesdum/rscontainer/access"
)

// SharedService is implemented by types resolvable as shared services.
//
// ConstructShared is invoked on the zero value of S (use a value receiver)
// and picks the guard backing the instance: access.NewPlain for untouched or
// single-goroutine data, access.NewMutex/NewRWMutex for cross-goroutine
// mutation, access.NewCell for borrow discipline without a lock.
//
// The construction error type is the service's own; the registry propagates
// it verbatim and never retries.
type SharedService[S any] interface {
	// ConstructShared builds the default shared instance, resolving
	// dependencies through scope.
	ConstructShared(scope Scope) (access.Guard[S], error)
}

// LocalService is implemented by types resolvable as local services.
//
// A is the caller-supplied argument type of every resolution; use struct{}
// when no arguments are needed. ConstructLocal is invoked on the zero value
// of S (use a value receiver).
type LocalService[S, A any] interface {
	// ConstructLocal builds a fresh instance, resolving dependencies
	// through scope.
	ConstructLocal(scope Scope, args A) (S, error)
}

// SharedHook is optionally implemented by shared services that need wiring
// after construction.
//
// ResolvedShared runs once per ResolveShared call, for cached instances too,
// after the instance is obtained, with a sub-resolver. This is the supported
// way to break constructor-time dependency cycles: construct with a
// placeholder, then inject the real reference here, when the cached handle
// already exists.
type SharedHook[S any] interface {
	ResolvedShared(inst Shared[S], scope Scope)
}

// LocalHook is the local counterpart of SharedHook, running once per
// ResolveLocal call with the freshly constructed instance.
type LocalHook[S any] interface {
	ResolvedLocal(inst *S, scope Scope)
}

// SharedConstructor overrides a type's default shared construction.
type SharedConstructor[S any] func(scope Scope) (access.Guard[S], error)

// LocalConstructor overrides a type's default local construction.
type LocalConstructor[S, A any] func(scope Scope, args A) (S, error)
