package access

import "errors"

var (
	// ErrPoisoned is the panic value of AssertHealthy on a poisoned instance.
	ErrPoisoned = errors.New("access: shared instance is poisoned")

	// ErrNotPoisoned is the panic value of AssertPoisoned on a healthy instance.
	ErrNotPoisoned = errors.New("access: shared instance is not poisoned")
)

// Poisoning carries a guarded value together with its poisoning status.
//
// Every guarded access produces one. Poisoned means a previous exclusive
// accessor panicked mid-mutation, so the value may be inconsistent; it is
// still handed out, because only the caller can judge whether that matters.
//
// How to use this:
//   - When a poisoned value is a hard bug, use AssertHealthy.
//   - When the poisoning status doesn't matter, use Unpoison.
//   - When you need different logic for each status, branch on IsPoisoned.
type Poisoning[T any] struct {
	value    T
	poisoned bool
}

// Healthy wraps a value that is not poisoned.
func Healthy[T any](value T) Poisoning[T] {
	return Poisoning[T]{value: value}
}

// Poisoned wraps a value that may be inconsistent.
func Poisoned[T any](value T) Poisoning[T] {
	return Poisoning[T]{value: value, poisoned: true}
}

// IsHealthy reports whether the value is not poisoned.
func (p Poisoning[T]) IsHealthy() bool { return !p.poisoned }

// IsPoisoned reports whether the value is poisoned.
func (p Poisoning[T]) IsPoisoned() bool { return p.poisoned }

// AssertHealthy returns the value, panicking with ErrPoisoned if it is
// poisoned.
//
// Prefer this over Unpoison for guards that cannot poison today: it won't
// hide bugs when the backing primitive is swapped for a lock later.
func (p Poisoning[T]) AssertHealthy() T {
	if p.poisoned {
		panic(ErrPoisoned)
	}
	return p.value
}

// AssertPoisoned returns the value, panicking with ErrNotPoisoned if it is
// healthy.
func (p Poisoning[T]) AssertPoisoned() T {
	if !p.poisoned {
		panic(ErrNotPoisoned)
	}
	return p.value
}

// Unpoison returns the value regardless of its status.
//
// Only use this when you are certain the logic is correct for a possibly
// inconsistent value.
func (p Poisoning[T]) Unpoison() T { return p.value }

// AsHealthy returns the value and true if it is not poisoned.
func (p Poisoning[T]) AsHealthy() (T, bool) {
	if p.poisoned {
		var zero T
		return zero, false
	}
	return p.value, true
}

// AsPoisoned returns the value and true if it is poisoned.
func (p Poisoning[T]) AsPoisoned() (T, bool) {
	if !p.poisoned {
		var zero T
		return zero, false
	}
	return p.value, true
}

// taint re-wraps a value with an explicit status.
func taint[T any](value T, poisoned bool) Poisoning[T] {
	return Poisoning[T]{value: value, poisoned: poisoned}
}
