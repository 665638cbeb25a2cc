package store

import "testing"

func TestOpenSelectsBackend(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{BackendMemory, "*store.MemStore"},
		{"", "*store.MemStore"},
		{BackendSharded, "*store.ShardedStore"},
		{BackendTree, "*store.TreeStore"},
	}

	for _, tt := range tests {
		st, err := Open(tt.backend, 0)
		if err != nil {
			t.Errorf("Open(%q) error: %v", tt.backend, err)
			continue
		}
		switch tt.want {
		case "*store.MemStore":
			if _, ok := st.(*MemStore); !ok {
				t.Errorf("Open(%q) = %T, want %s", tt.backend, st, tt.want)
			}
		case "*store.ShardedStore":
			if _, ok := st.(*ShardedStore); !ok {
				t.Errorf("Open(%q) = %T, want %s", tt.backend, st, tt.want)
			}
		case "*store.TreeStore":
			if _, ok := st.(*TreeStore); !ok {
				t.Errorf("Open(%q) = %T, want %s", tt.backend, st, tt.want)
			}
		}
	}
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	if _, err := Open("redis", 0); err == nil {
		t.Error("Open(redis) succeeded, want error")
	}
}

func TestOpenShardCountPassedThrough(t *testing.T) {
	st, err := Open(BackendSharded, 3)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	sharded := st.(*ShardedStore)
	if len(sharded.shards) != 3 {
		t.Errorf("shard count = %d, want 3", len(sharded.shards))
	}
}
