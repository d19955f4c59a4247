package registry

import (
	"github.com/yvesdum/rscontainer/access"
)

// Instance holds either a shared reference or a local instance of S.
//
// Use it as a struct field when the user should decide which flavour to
// supply; the access methods dispatch so the consuming code stays oblivious.
// Local instances always access as Healthy; there is no lock to poison.
type Instance[S any] struct {
	shared Shared[S]
	local  *S
}

// FromShared wraps a shared reference into an Instance.
func FromShared[S any](inst Shared[S]) Instance[S] {
	return Instance[S]{shared: inst}
}

// FromLocal wraps a local instance into an Instance.
func FromLocal[S any](inst S) Instance[S] {
	return Instance[S]{local: &inst}
}

// SharedInstance resolves S as a shared service directly into an Instance.
func SharedInstance[S SharedService[S]](scope Scope) (Instance[S], error) {
	inst, err := ResolveShared[S](scope)
	if err != nil {
		return Instance[S]{}, err
	}
	return FromShared(inst), nil
}

// LocalInstance resolves S as a local service directly into an Instance.
func LocalInstance[S LocalService[S, A], A any](scope Scope, args A) (Instance[S], error) {
	inst, err := ResolveLocal[S](scope, args)
	if err != nil {
		return Instance[S]{}, err
	}
	return FromLocal(inst), nil
}

// IsShared reports whether the Instance holds a shared reference.
func (i Instance[S]) IsShared() bool { return !i.shared.IsZero() }

// IsLocal reports whether the Instance holds a local instance.
func (i Instance[S]) IsLocal() bool { return i.local != nil }

// AsShared returns the shared reference and true when the Instance holds one.
func (i Instance[S]) AsShared() (Shared[S], bool) {
	return i.shared, !i.shared.IsZero()
}

// AsLocal returns the local instance and true when the Instance holds one.
func (i Instance[S]) AsLocal() (*S, bool) {
	return i.local, i.local != nil
}

// View runs f under shared access to whichever instance is held.
func (i Instance[S]) View(f func(access.Poisoning[*S])) {
	if i.local != nil {
		f(access.Healthy(i.local))
		return
	}
	i.shared.View(f)
}

// TryView is the non-blocking View; local instances always succeed.
func (i Instance[S]) TryView(f func(access.Poisoning[*S])) bool {
	if i.local != nil {
		f(access.Healthy(i.local))
		return true
	}
	return i.shared.TryView(f)
}

// Update runs f under exclusive access to whichever instance is held.
func (i Instance[S]) Update(f func(access.Poisoning[*S])) {
	if i.local != nil {
		f(access.Healthy(i.local))
		return
	}
	i.shared.Update(f)
}

// TryUpdate is the non-blocking Update; local instances always succeed.
func (i Instance[S]) TryUpdate(f func(access.Poisoning[*S])) bool {
	if i.local != nil {
		f(access.Healthy(i.local))
		return true
	}
	return i.shared.TryUpdate(f)
}
