package store

import (
	"sync"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/heysubinoy/pitara/pkg/kv"
)

// TreeStore keeps entries in a red-black tree ordered by key.
// Same contract as MemStore, but Keys comes back sorted.
type TreeStore struct {
	mu   sync.RWMutex
	tree *rbt.Tree
}

var (
	_ kv.Store     = (*TreeStore)(nil)
	_ kv.KeyLister = (*TreeStore)(nil)
)

// NewTreeStore creates and returns a new empty TreeStore.
func NewTreeStore() *TreeStore {
	return &TreeStore{
		tree: rbt.NewWithStringComparator(),
	}
}

// Get retrieves a value by key.
func (s *TreeStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.tree.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// Set stores a key-value pair, overwriting any previous value.
func (s *TreeStore) Set(key, value string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.Put(key, value)
	return nil
}

// Delete removes a key from the store.
// Always returns nil, even if the key doesn't exist.
func (s *TreeStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.Remove(key)
	return nil
}

// Keys returns all keys in ascending order.
func (s *TreeStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw := s.tree.Keys()
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = k.(string)
	}
	return keys
}

// Len returns the number of keys in the store.
func (s *TreeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Size()
}
