package access

// Guard is the uniform access contract over a guarded value.
//
// The four methods are the four combinations of two axes: shared vs exclusive
// access, blocking vs non-blocking acquisition. Results are captured by the
// closure; the Try variants report whether the closure ran at all.
//
// A Guard decouples calling code from which primitive backs a given value:
// swapping a Plain for a Mutex changes construction, not call sites.
//
// Guards hand the closure a Poisoning so the caller can observe whether a
// previous exclusive access panicked mid-mutation. Poisoning clears only when
// an exclusive access completes without panicking.
type Guard[T any] interface {
	// View runs f under shared access, blocking until access is available.
	View(f func(Poisoning[*T]))

	// TryView runs f under shared access if it is available right now.
	// It reports whether f ran.
	TryView(f func(Poisoning[*T])) bool

	// Update runs f under exclusive access, blocking until access is
	// available.
	Update(f func(Poisoning[*T]))

	// TryUpdate runs f under exclusive access if it is available right now.
	// It reports whether f ran.
	TryUpdate(f func(Poisoning[*T])) bool
}

var (
	_ Guard[struct{}] = (*Plain[struct{}])(nil)
	_ Guard[struct{}] = (*Cell[struct{}])(nil)
	_ Guard[struct{}] = (*Mutex[struct{}])(nil)
	_ Guard[struct{}] = (*RWMutex[struct{}])(nil)
)
