package store

import (
	"sync"

	"github.com/heysubinoy/pitara/pkg/kv"
)

// MemStore is an in-memory implementation of the kv.Store interface.
// It uses a single map protected by a RWMutex.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// Compile-time checks to ensure MemStore satisfies the store interfaces.
var (
	_ kv.Store     = (*MemStore)(nil)
	_ kv.KeyLister = (*MemStore)(nil)
)

// NewMemStore creates and returns a new empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]string),
	}
}

// Get retrieves a value by key from the store.
// Returns the value and true if found, empty string and false otherwise.
func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// Set stores a key-value pair, overwriting any previous value.
func (s *MemStore) Set(key, value string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete removes a key from the store.
// Always returns nil, even if the key doesn't exist.
func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Keys returns all keys currently in the store, in no particular order.
func (s *MemStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of keys in the store.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}
