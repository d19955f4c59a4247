package registry

import (
	"go.uber.org/multierr"

	"github.com/yvesdum/rscontainer/access"
	"github.com/yvesdum/rscontainer/handle"
)

// entry is the type-erased per-key slot.
//
// resolved is written at most once per container; the constructor overrides
// are frozen by the Builder. The typing invariant is carried by the map key:
// everything stored here was erased under the same Key it is un-erased with.
type entry struct {
	// resolved holds the container's own reference to the cached shared
	// instance. Zero until the first successful shared resolve or Insert.
	resolved handle.Handle

	// sharedCtor replaces the type's default shared construction.
	sharedCtor func(scope Scope) (handle.Handle, error)

	// localCtor replaces the type's default local construction. The args
	// value is the A of the LocalConstructor this closure wraps.
	localCtor func(scope Scope, args any) (any, error)
}

// Container holds every service of an application.
//
// It exclusively owns the per-key slots and thus one reference to each
// resolved shared instance. It provides no internal locking and must not be
// shared across goroutines; see the package documentation.
type Container struct {
	services map[Key]*entry
	resolver *Resolver
	closed   bool
}

// New creates an empty container.
func New() *Container {
	return newContainer(make(map[Key]*entry))
}

// WithCapacity creates an empty container sized for n services.
func WithCapacity(n int) *Container {
	return newContainer(make(map[Key]*entry, n))
}

func newContainer(services map[Key]*entry) *Container {
	c := &Container{services: services}
	c.resolver = &Resolver{ctn: c}
	return c
}

// Len returns the number of keys known to the container, resolved or not.
func (c *Container) Len() int { return len(c.services) }

// Close releases the container's reference on every resolved shared instance.
//
// Instances still referenced elsewhere stay alive; the others run their
// finalizers, whose errors are combined into the returned error. Close is
// idempotent, and a closed container panics with ErrClosed when asked to
// resolve or insert.
func (c *Container) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	var err error
	for _, e := range c.services {
		if !e.resolved.IsZero() {
			err = multierr.Append(err, e.resolved.Release())
		}
	}
	c.services = nil
	return err
}

// container implements Scope.
func (c *Container) container() *Container { return c }

// entryFor returns the slot for a key, creating it when absent.
func (c *Container) entryFor(key Key) *entry {
	e := c.services[key]
	if e == nil {
		e = &entry{}
		c.services[key] = e
	}
	return e
}

// ensureOpen panics with ErrClosed once the container is closed.
func (c *Container) ensureOpen() {
	if c.closed {
		panic(ErrClosed)
	}
}

// cache stores the container's reference to a freshly resolved shared
// instance. The slot is write-once: hitting a resolved slot means either a
// constructor resolved its own type recursively or an Insert raced a resolve,
// both contract violations.
func (c *Container) cache(key Key, h handle.Handle) {
	e := c.entryFor(key)
	if !e.resolved.IsZero() {
		panic(AlreadyResolvedError{Key: key})
	}
	e.resolved = h
}

// ResolveShared resolves the shared instance of S, constructing and caching
// it on first use.
//
// The cached instance is returned on every later call without running any
// constructor; the returned Shared is a new reference that the caller owns
// and should Release (or deliberately hold for the process lifetime). On
// constructor error nothing is cached and the error is returned verbatim, so
// a later call attempts construction again.
func ResolveShared[S SharedService[S]](scope Scope) (Shared[S], error) {
	c := scope.container()
	c.ensureOpen()
	key := KeyFor[S]()

	var inst Shared[S]
	switch e := c.services[key]; {
	case e != nil && !e.resolved.IsZero():
		// Cached: hand out another reference, no construction.
		inst = Shared[S]{
			h:     e.resolved.Clone(),
			guard: handle.Unerase[access.Guard[S]](e.resolved),
		}

	case e != nil && e.sharedCtor != nil:
		h, err := e.sharedCtor(c.resolver)
		if err != nil {
			return Shared[S]{}, err
		}
		c.cache(key, h)
		inst = Shared[S]{h: h.Clone(), guard: handle.Unerase[access.Guard[S]](h)}

	default:
		var svc S
		guard, err := svc.ConstructShared(c.resolver)
		if err != nil {
			return Shared[S]{}, err
		}
		h := handle.Erase(guard, closeFinalizer[S]())
		c.cache(key, h)
		inst = Shared[S]{h: h.Clone(), guard: guard}
	}

	var svc S
	if hook, ok := any(svc).(SharedHook[S]); ok {
		hook.ResolvedShared(inst, c.resolver)
	}
	return inst, nil
}

// ResolveLocal constructs a fresh instance of S with the given arguments.
//
// Nothing is cached: two calls yield two instances, each built by one
// constructor run (the registered override if present, the type's default
// otherwise).
func ResolveLocal[S LocalService[S, A], A any](scope Scope, args A) (S, error) {
	c := scope.container()
	c.ensureOpen()

	var inst S
	if e := c.services[KeyFor[S]()]; e != nil && e.localCtor != nil {
		v, err := e.localCtor(c.resolver, args)
		if err != nil {
			return inst, err
		}
		inst = v.(S)
	} else {
		var svc S
		var err error
		inst, err = svc.ConstructLocal(c.resolver, args)
		if err != nil {
			return inst, err
		}
	}

	var svc S
	if hook, ok := any(svc).(LocalHook[S]); ok {
		hook.ResolvedLocal(&inst, c.resolver)
	}
	return inst, nil
}

// Insert pre-seeds the shared instance of S with an already-built value.
//
// Ownership of the passed reference transfers to the container: do not
// Release it afterwards, Clone first if you need your own. Inserting over an
// already-resolved key panics with AlreadyResolvedError: silently replacing
// an instance other holders may reference is forbidden.
func Insert[S any](scope Scope, inst Shared[S]) {
	c := scope.container()
	c.ensureOpen()
	if inst.IsZero() {
		panic(ErrZeroShared)
	}
	c.cache(KeyFor[S](), inst.h)
}
