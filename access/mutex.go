package access

import "sync"

// Mutex guards a value with a sync.Mutex and emulated poisoning.
//
// Go mutexes do not poison on panic, so Mutex keeps its own flag: it is set
// before an exclusive critical section runs and cleared only when the section
// completes normally. If an Update closure panics, the lock is released (the
// program may recover) but the flag stays set, and every later access observes
// Poisoned until an exclusive access completes without panicking.
//
// Shared access still takes the full lock, since a plain mutex has no read
// side. It reports the flag without touching it: a reader cannot have left the
// value half-mutated.
type Mutex[T any] struct {
	mu       sync.Mutex
	poisoned bool
	value    T
}

// NewMutex wraps a value in a Mutex guard.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// View runs f with shared access, blocking on the lock.
func (m *Mutex[T]) View(f func(Poisoning[*T])) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f(taint(&m.value, m.poisoned))
}

// TryView runs f with shared access if the lock is free, reporting whether f
// ran.
func (m *Mutex[T]) TryView(f func(Poisoning[*T])) bool {
	if !m.mu.TryLock() {
		return false
	}
	defer m.mu.Unlock()
	f(taint(&m.value, m.poisoned))
	return true
}

// Update runs f with exclusive access, blocking on the lock.
func (m *Mutex[T]) Update(f func(Poisoning[*T])) {
	m.mu.Lock()
	defer m.mu.Unlock()
	was := m.poisoned
	m.poisoned = true
	f(taint(&m.value, was))
	// Not reached when f panics: the value stays poisoned.
	m.poisoned = false
}

// TryUpdate runs f with exclusive access if the lock is free, reporting
// whether f ran.
func (m *Mutex[T]) TryUpdate(f func(Poisoning[*T])) bool {
	if !m.mu.TryLock() {
		return false
	}
	defer m.mu.Unlock()
	was := m.poisoned
	m.poisoned = true
	f(taint(&m.value, was))
	m.poisoned = false
	return true
}
