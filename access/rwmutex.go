package access

import "sync"

// RWMutex guards a value with a sync.RWMutex and emulated poisoning.
//
// Shared accesses hold the read lock and may overlap; exclusive accesses hold
// the write lock. Poisoning follows the same protocol as Mutex: the flag is
// set before an exclusive critical section and cleared only on its normal
// completion. Readers observe the flag without modifying it, which is safe
// under the read lock because only write-lock holders ever touch it.
type RWMutex[T any] struct {
	mu       sync.RWMutex
	poisoned bool
	value    T
}

// NewRWMutex wraps a value in an RWMutex guard.
func NewRWMutex[T any](value T) *RWMutex[T] {
	return &RWMutex[T]{value: value}
}

// View runs f with shared access, blocking on the read lock.
func (m *RWMutex[T]) View(f func(Poisoning[*T])) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f(taint(&m.value, m.poisoned))
}

// TryView runs f with shared access if the read lock is free, reporting
// whether f ran.
func (m *RWMutex[T]) TryView(f func(Poisoning[*T])) bool {
	if !m.mu.TryRLock() {
		return false
	}
	defer m.mu.RUnlock()
	f(taint(&m.value, m.poisoned))
	return true
}

// Update runs f with exclusive access, blocking on the write lock.
func (m *RWMutex[T]) Update(f func(Poisoning[*T])) {
	m.mu.Lock()
	defer m.mu.Unlock()
	was := m.poisoned
	m.poisoned = true
	f(taint(&m.value, was))
	// Not reached when f panics: the value stays poisoned.
	m.poisoned = false
}

// TryUpdate runs f with exclusive access if the write lock is free, reporting
// whether f ran.
func (m *RWMutex[T]) TryUpdate(f func(Poisoning[*T])) bool {
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
