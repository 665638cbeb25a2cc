package kv

import "errors"

// ErrEmptyKey is returned by Set when the key is the empty string.
// Empty values are fine; empty keys are not addressable in any useful way.
var ErrEmptyKey = errors.New("key must not be empty")

// Store defines the interface for a key-value store.
// Implementations of this interface can be swapped out,
// allowing for different storage backends (e.g., hash map, sharded, ordered tree).
type Store interface {
	// Get retrieves the value associated with the given key.
	// Returns the value and true if the key exists, or empty string and false if not.
	// A missing key is a normal outcome, never an error.
	Get(key string) (string, bool)

	// Set stores a key-value pair, overwriting any existing value.
	// Returns ErrEmptyKey if key is empty.
	Set(key, value string) error

	// Delete removes a key from the store.
	// Deleting a key that does not exist is a no-op, not an error.
	Delete(key string) error
}

// KeyLister is an optional interface implemented by backends that can
// enumerate their contents. Ordering is backend-defined.
type KeyLister interface {
	Keys() []string
	Len() int
}
