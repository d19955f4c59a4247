// Package handle implements the reference-counted erasure cell that lets
// heterogeneous guard types share one storage slot in the registry.
//
// Erase consumes a typed value into an opaque Handle: a cell holding the
// value, an explicit reference count and the finalizer captured at erasure
// time. Unerase reconstructs the typed value. Pairing the two safely rests
// entirely on keying discipline: the registry always uses the same type key
// for both directions, so a mismatch is a violated precondition and panics
// rather than returning an error.
//
// The count is explicit, not the garbage collector's: it exists so the
// finalizer (release of sockets, files, ...) runs exactly once, when the last
// owner calls Release. Handles are not internally synchronized; callers
// serialize clone/release traffic the same way they serialize the registry.
package handle

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
)

// ErrReleased is the panic value when a dead or zero handle is used.
var ErrReleased = errors.New("handle: use of released handle")

// TypeMismatchError is the panic value when Unerase is asked for a type other
// than the one erased. It indicates broken keying discipline in the caller,
// never a recoverable condition.
type TypeMismatchError struct {
	// Have is the dynamic type that was erased.
	Have string

	// Want is the type Unerase was asked for.
	Want string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	// Example: handle: erased *access.Mutex[main.Counter] cannot unerase as *access.Plain[main.Counter]
	return "handle: erased " + e.Have + " cannot unerase as " + e.Want
}

// Finalizer runs when the last reference to an erased value is released.
type Finalizer func(value any) error

// cell is the shared state behind every clone of a Handle.
type cell struct {
	value    any
	finalize Finalizer
	refs     atomic.Int64
}

// Handle is an opaque reference onto an erased, reference-counted value.
//
// Handles are small value types; copying one does NOT create a new reference.
// Use Clone for that, and pair every Clone (and the Erase itself) with exactly
// one Release. The zero Handle is dead: every operation on it panics except
// IsZero and Is.
type Handle struct {
	c *cell
}

// Erase consumes a value into a fresh Handle holding the only reference.
//
// The finalizer is captured here and runs exactly once, when the reference
// count reaches zero. A nil finalizer is allowed.
func Erase(value any, finalize Finalizer) Handle {
	c := &cell{value: value, finalize: finalize}
	c.refs.Store(1)
	return Handle{c: c}
}

// Unerase reconstructs the typed value behind h without touching the
// reference count.
//
// The result must not be treated as an extra owner: clone the handle first if
// the value will outlive it. Asking for a type other than the erased one
// panics with a TypeMismatchError.
func Unerase[P any](h Handle) P {
	h.live()
	p, ok := h.c.value.(P)
	if !ok {
		panic(TypeMismatchError{
			Have: fmt.Sprintf("%T", h.c.value),
			Want: reflect.TypeOf((*P)(nil)).Elem().String(),
		})
	}
	return p
}

// Clone returns a new reference to the same cell, incrementing the count.
func (h Handle) Clone() Handle {
	h.live()
	h.c.refs.Add(1)
	return h
}

// Release drops one reference. When the count reaches zero the finalizer runs
// and its error is returned; the handle (and every copy of it) is dead
// afterwards. Releasing more often than the cell was referenced panics with
// ErrReleased.
func (h Handle) Release() error {
	h.live()
	if h.c.refs.Add(-1) > 0 {
		return nil
	}
	if h.c.finalize == nil {
		return nil
	}
	return h.c.finalize(h.c.value)
}

// Is reports whether two handles reference the same cell.
//
// It compares identity only, never contents, and is always O(1).
func (h Handle) Is(other Handle) bool {
	return h.c != nil && h.c == other.c
}

// Refs returns the current reference count. It exists for diagnostics and
// tests; zero means the handle is dead (or was never initialized).
func (h Handle) Refs() int64 {
	if h.c == nil {
		return 0
	}
	return h.c.refs.Load()
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.c == nil }

// live panics unless the handle still holds at least one reference.
func (h Handle) live() {
	if h.c == nil || h.c.refs.Load() <= 0 {
		panic(ErrReleased)
	}
}
