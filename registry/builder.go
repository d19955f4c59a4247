package registry

import (
	"github.com/yvesdum/rscontainer/handle"
)

// Builder accumulates constructor overrides and pre-seeded instances before
// the container exists.
//
// Registration happens through the free generic functions (WithShared,
// WithLocal, WithConstructors, WithInstance; Go methods cannot introduce
// type parameters). Build transfers everything into a fresh Container and
// spends the builder: overrides are immutable from then on, though
// pre-seeding unresolved shared instances through Insert stays possible.
type Builder struct {
	services map[Key]*entry
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{services: make(map[Key]*entry)}
}

// NewBuilderWithCapacity creates an empty Builder sized for n services.
func NewBuilderWithCapacity(n int) *Builder {
	return &Builder{services: make(map[Key]*entry, n)}
}

// Build creates the container from everything registered so far.
//
// The builder is spent afterwards; further use panics with ErrBuilderSpent.
func (b *Builder) Build() *Container {
	if b.services == nil {
		panic(ErrBuilderSpent)
	}
	services := b.services
	b.services = nil
	return newContainer(services)
}

// entryFor returns the slot for a key, creating it when absent.
func (b *Builder) entryFor(key Key) *entry {
	if b.services == nil {
		panic(ErrBuilderSpent)
	}
	e := b.services[key]
	if e == nil {
		e = &entry{}
		b.services[key] = e
	}
	return e
}

// WithShared registers a custom shared constructor for S, replacing the
// type's default. Returns the builder for chaining.
func WithShared[S SharedService[S]](b *Builder, ctor SharedConstructor[S]) *Builder {
	b.entryFor(KeyFor[S]()).sharedCtor = eraseSharedCtor(ctor)
	return b
}

// WithLocal registers a custom local constructor for S, replacing the type's
// default. Returns the builder for chaining.
func WithLocal[S LocalService[S, A], A any](b *Builder, ctor LocalConstructor[S, A]) *Builder {
	b.entryFor(KeyFor[S]()).localCtor = eraseLocalCtor(ctor)
	return b
}

// WithConstructors registers custom constructors for both flavours of S at
// once.
func WithConstructors[S interface {
	SharedService[S]
	LocalService[S, A]
}, A any](b *Builder, local LocalConstructor[S, A], shared SharedConstructor[S]) *Builder {
	e := b.entryFor(KeyFor[S]())
	e.sharedCtor = eraseSharedCtor(shared)
	e.localCtor = eraseLocalCtor(local)
	return b
}

// WithInstance pre-seeds the shared instance of S. Same contract as Insert:
// ownership of the reference transfers, and seeding a key twice panics with
// AlreadyResolvedError.
func WithInstance[S any](b *Builder, inst Shared[S]) *Builder {
	if inst.IsZero() {
		panic(ErrZeroShared)
	}
	key := KeyFor[S]()
	e := b.entryFor(key)
	if !e.resolved.IsZero() {
		panic(AlreadyResolvedError{Key: key})
	}
	e.resolved = inst.h
	return b
}

// eraseSharedCtor adapts a typed shared constructor to the erased slot,
// folding in the standard erasure step of the default path.
func eraseSharedCtor[S any](ctor SharedConstructor[S]) func(Scope) (handle.Handle, error) {
	return func(scope Scope) (handle.Handle, error) {
		guard, err := ctor(scope)
		if err != nil {
			return handle.Handle{}, err
		}
		return handle.Erase(guard, closeFinalizer[S]()), nil
	}
}

// eraseLocalCtor adapts a typed local constructor to the erased slot. The
// args assertion cannot fail for constructors registered through WithLocal:
// the constraint ties A to S's own ConstructLocal signature.
func eraseLocalCtor[S, A any](ctor LocalConstructor[S, A]) func(Scope, any) (any, error) {
	return func(scope Scope, args any) (any, error) {
		var a A
		if args != nil {
			a = args.(A)
		}
		return ctor(scope, a)
	}
}
