package access

import "errors"

var (
	// ErrBorrowed is the panic value when Update finds an outstanding borrow.
	ErrBorrowed = errors.New("access: value already borrowed")

	// ErrMutablyBorrowed is the panic value when View finds an outstanding
	// exclusive borrow.
	ErrMutablyBorrowed = errors.New("access: value already mutably borrowed")
)

// Cell guards a value with runtime borrow checking instead of a lock.
//
// Any number of shared borrows may be outstanding at once, or a single
// exclusive borrow, never both. A conflicting borrow is a programming error
// (typically re-entrant access from inside a View/Update closure): the Try
// variants report it, the blocking variants panic with ErrBorrowed or
// ErrMutablyBorrowed rather than deadlock.
//
// Cell never poisons: a panic inside a closure unwinds through the borrow
// release, leaving no critical section half-done that a later accessor could
// not also have produced. It is not safe for concurrent use.
type Cell[T any] struct {
	value T

	// 0 free, -1 exclusively borrowed, n>0 shared borrows outstanding.
	borrows int
}

// NewCell wraps a value in a borrow-checked Cell.
func NewCell[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// View runs f with shared access. It panics with ErrMutablyBorrowed if an
// exclusive borrow is outstanding.
func (c *Cell[T]) View(f func(Poisoning[*T])) {
	if !c.TryView(f) {
		panic(ErrMutablyBorrowed)
	}
}

// TryView runs f with shared access, reporting false if an exclusive borrow
// is outstanding.
func (c *Cell[T]) TryView(f func(Poisoning[*T])) bool {
	if c.borrows < 0 {
		return false
	}
	c.borrows++
	defer func() { c.borrows-- }()
	f(Healthy(&c.value))
	return true
}

// Update runs f with exclusive access. It panics with ErrBorrowed if any
// borrow is outstanding.
func (c *Cell[T]) Update(f func(Poisoning[*T])) {
	if !c.TryUpdate(f) {
		panic(ErrBorrowed)
	}
}

// TryUpdate runs f with exclusive access, reporting false if any borrow is
// outstanding.
func (c *Cell[T]) TryUpdate(f func(Poisoning[*T])) bool {
	if c.borrows != 0 {
		return false
	}
	c.borrows = -1
	defer func() { c.borrows = 0 }()
	f(Healthy(&c.value))
	return true
}
