package registry

import (
	"io"

	"github.com/yvesdum/rscontainer/access"
	"github.com/yvesdum/rscontainer/handle"
)

// Shared is a typed reference to a resolved shared instance.
//
// It pairs a reference onto the erased storage cell with the typed guard, so
// holders access the instance without re-asserting types. Shared values are
// cheap to copy, but a copy is NOT a new reference: use Clone to keep an
// instance alive independently of the container, and pair every Clone with a
// Release.
//
// The zero Shared is invalid; it only comes from error returns.
type Shared[S any] struct {
	h     handle.Handle
	guard access.Guard[S]
}

// NewShared wraps a pre-built guarded instance into a fresh Shared holding
// the only reference, ready for Insert.
//
// If the instance implements io.Closer, Close runs when the last reference is
// released.
func NewShared[S any](guard access.Guard[S]) Shared[S] {
	return Shared[S]{h: handle.Erase(guard, closeFinalizer[S]()), guard: guard}
}

// Guard returns the guard backing the instance.
func (s Shared[S]) Guard() access.Guard[S] { return s.guard }

// Handle returns the underlying erased handle.
func (s Shared[S]) Handle() handle.Handle { return s.h }

// Is reports whether two Shared values reference the same physical instance.
//
// Compares identity only, never contents, so it is always cheap.
func (s Shared[S]) Is(other Shared[S]) bool { return s.h.Is(other.h) }

// Clone returns a new independent reference to the same instance.
func (s Shared[S]) Clone() Shared[S] {
	return Shared[S]{h: s.h.Clone(), guard: s.guard}
}

// Release drops this reference. The last release runs the instance's
// finalizer and returns its error.
func (s Shared[S]) Release() error { return s.h.Release() }

// IsZero reports whether s is the zero Shared.
func (s Shared[S]) IsZero() bool { return s.h.IsZero() }

// View runs f under shared guarded access. See access.Guard.
func (s Shared[S]) View(f func(access.Poisoning[*S])) { s.guard.View(f) }

// TryView runs f under shared guarded access without blocking, reporting
// whether f ran.
func (s Shared[S]) TryView(f func(access.Poisoning[*S])) bool { return s.guard.TryView(f) }

// Update runs f under exclusive guarded access. See access.Guard.
func (s Shared[S]) Update(f func(access.Poisoning[*S])) { s.guard.Update(f) }

// TryUpdate runs f under exclusive guarded access without blocking, reporting
// whether f ran.
func (s Shared[S]) TryUpdate(f func(access.Poisoning[*S])) bool { return s.guard.TryUpdate(f) }

// closeFinalizer releases the guarded instance when its last reference dies:
// if the instance implements io.Closer, Close runs under exclusive access.
func closeFinalizer[S any]() handle.Finalizer {
	return func(value any) error {
		var err error
		value.(access.Guard[S]).Update(func(p access.Poisoning[*S]) {
			if closer, ok := any(p.Unpoison()).(io.Closer); ok {
				err = closer.Close()
			}
		})
		return err
	}
}
