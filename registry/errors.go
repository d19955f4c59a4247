package registry

import (
	"errors"
	"strconv"
)

var (
	// ErrClosed is the panic value when a closed container is asked to
	// resolve or insert.
	ErrClosed = errors.New("registry: container is closed")

	// ErrBuilderSpent is the panic value when a Builder is used after Build.
	ErrBuilderSpent = errors.New("registry: builder already built")

	// ErrZeroShared is the panic value when a zero Shared is inserted.
	ErrZeroShared = errors.New("registry: insert of zero Shared")
)

// AlreadyResolvedError is the panic value when a shared instance would
// replace an already-resolved one.
//
// Replacing is forbidden because external holders may still reference the old
// instance; the registry guarantees one physical instance per key per
// container.
type AlreadyResolvedError struct{ Key Key }

// Error implements the error interface.
func (e AlreadyResolvedError) Error() string {
	// Example: registry: shared instance for "pkg.Counter" already resolved
	return "registry: shared instance for " + strconv.Quote(string(e.Key)) + " already resolved"
}
