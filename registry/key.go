package registry

import (
	typetostring "github.com/samber/go-type-to-string"
)

// Key identifies a service type in the registry.
//
// It is bijective with the concrete Go type for the lifetime of the process,
// which is the entire safety argument of the erased storage: the same Key is
// used to erase and to un-erase, so the types always line up.
type Key string

// KeyFor derives the Key of a service type.
//
// Works for concrete and interface types alike.
func KeyFor[S any]() Key {
	return Key(typetostring.GetType[S]())
}

// String returns the key's type name.
func (k Key) String() string { return string(k) }
