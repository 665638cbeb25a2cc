package store

import (
	"sync"

	"github.com/spaolacci/murmur3"

	"github.com/heysubinoy/pitara/pkg/kv"
)

// DefaultShardCount is used when the caller doesn't specify one.
const DefaultShardCount = 16

// ShardedStore partitions keys across a fixed number of independently
// locked maps. Writers to different shards never contend, so it scales
// better than MemStore under many concurrent callers.
type ShardedStore struct {
	shards []*shard
}

type shard struct {
	mu   sync.RWMutex
	data map[string]string
}

var (
	_ kv.Store     = (*ShardedStore)(nil)
	_ kv.KeyLister = (*ShardedStore)(nil)
)

// NewShardedStore creates a store with n shards.
// n values less than 1 fall back to DefaultShardCount.
func NewShardedStore(n int) *ShardedStore {
	if n < 1 {
		n = DefaultShardCount
	}
	shards := make([]*shard, n)
	for i := range shards {
		shards[i] = &shard{data: make(map[string]string)}
	}
	return &ShardedStore{shards: shards}
}

// shardFor hashes the key with murmur3 and picks the owning shard.
func (s *ShardedStore) shardFor(key string) *shard {
	h := murmur3.Sum32([]byte(key))
	return s.shards[h%uint32(len(s.shards))]
}

// Get retrieves a value by key.
func (s *ShardedStore) Get(key string) (string, bool) {
	sh := s.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	val, ok := sh.data[key]
	return val, ok
}

// Set stores a key-value pair in the owning shard.
func (s *ShardedStore) Set(key, value string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}

	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.data[key] = value
	return nil
}

// Delete removes a key from the owning shard.
// Always returns nil, even if the key doesn't exist.
func (s *ShardedStore) Delete(key string) error {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	delete(sh.data, key)
	return nil
}

// Keys returns all keys across all shards, in no particular order.
func (s *ShardedStore) Keys() []string {
	keys := make([]string, 0, s.Len())
	for _, sh := range s.shards {
		sh.mu.RLock()
		for k := range sh.data {
			keys = append(keys, k)
		}
		sh.mu.RUnlock()
	}
	return keys
}

// Len returns the total number of keys across all shards.
func (s *ShardedStore) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.data)
		sh.mu.RUnlock()
	}
	return total
}
