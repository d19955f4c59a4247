package access

// Plain guards a value with nothing at all.
//
// Every access succeeds immediately and is always Healthy. Use it for
// services that are only touched from one goroutine, or that are immutable
// after construction. It provides no synchronization: sharing a Plain across
// goroutines is the caller's problem.
type Plain[T any] struct {
	value T
}

// NewPlain wraps a value in a Plain guard.
func NewPlain[T any](value T) *Plain[T] {
	return &Plain[T]{value: value}
}

// View runs f with shared access to the value. It always succeeds.
func (p *Plain[T]) View(f func(Poisoning[*T])) {
	f(Healthy(&p.value))
}

// TryView runs f with shared access to the value. It always returns true.
func (p *Plain[T]) TryView(f func(Poisoning[*T])) bool {
	f(Healthy(&p.value))
	return true
}

// Update runs f with exclusive access to the value. It always succeeds.
func (p *Plain[T]) Update(f func(Poisoning[*T])) {
	f(Healthy(&p.value))
}

// TryUpdate runs f with exclusive access to the value. It always returns true.
func (p *Plain[T]) TryUpdate(f func(Poisoning[*T])) bool {
	f(Healthy(&p.value))
	return true
}
