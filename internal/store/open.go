package store

import (
	"fmt"

	"github.com/heysubinoy/pitara/pkg/kv"
)

// Backend names accepted by Open.
const (
	BackendMemory  = "memory"
	BackendSharded = "sharded"
	BackendTree    = "tree"
)

// Open builds a store backend by name. shards only applies to the
// sharded backend; pass 0 for the default.
func Open(backend string, shards int) (kv.Store, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemStore(), nil
	case BackendSharded:
		return NewShardedStore(shards), nil
	case BackendTree:
		return NewTreeStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s, %s or %s)",
			backend, BackendMemory, BackendSharded, BackendTree)
	}
}
