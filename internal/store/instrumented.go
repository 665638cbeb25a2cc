package store

import (
	"sync/atomic"
	"time"

	"github.com/heysubinoy/pitara/pkg/kv"
)

// opStats accumulates call count and total latency for one operation.
// Atomic fields so concurrent callers never need a lock here.
type opStats struct {
	count   atomic.Uint64
	totalNs atomic.Uint64
}

func (o *opStats) record(start time.Time) {
	o.count.Add(1)
	o.totalNs.Add(uint64(time.Since(start).Nanoseconds()))
}

func (o *opStats) snapshot() (uint64, time.Duration) {
	count := o.count.Load()
	if count == 0 {
		return 0, 0
	}
	return count, time.Duration(o.totalNs.Load() / count)
}

func (o *opStats) reset() {
	o.count.Store(0)
	o.totalNs.Store(0)
}

// InstrumentedStore wraps any kv.Store implementation with timing metrics.
// The wrapped backend can be in-memory, sharded, or tree-backed.
type InstrumentedStore struct {
	store kv.Store

	gets    opStats
	sets    opStats
	deletes opStats
}

// Compile-time check to ensure InstrumentedStore implements kv.Store.
var _ kv.Store = (*InstrumentedStore)(nil)

// NewInstrumentedStore wraps a store with instrumentation.
func NewInstrumentedStore(store kv.Store) *InstrumentedStore {
	return &InstrumentedStore{store: store}
}

// Get delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Get(key string) (string, bool) {
	defer s.gets.record(time.Now())
	return s.store.Get(key)
}

// Set delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Set(key, value string) error {
	defer s.sets.record(time.Now())
	return s.store.Set(key, value)
}

// Delete delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Delete(key string) error {
	defer s.deletes.record(time.Now())
	return s.store.Delete(key)
}

// Keys delegates to the wrapped store when it can enumerate.
func (s *InstrumentedStore) Keys() []string {
	if lister, ok := s.store.(kv.KeyLister); ok {
		return lister.Keys()
	}
	return nil
}

// Len delegates to the wrapped store when it can enumerate.
func (s *InstrumentedStore) Len() int {
	if lister, ok := s.store.(kv.KeyLister); ok {
		return lister.Len()
	}
	return 0
}

// Metrics returns a point-in-time view of the counters.
func (s *InstrumentedStore) Metrics() MetricsSnapshot {
	var snap MetricsSnapshot
	snap.GetCount, snap.GetAvgLatency = s.gets.snapshot()
	snap.SetCount, snap.SetAvgLatency = s.sets.snapshot()
	snap.DeleteCount, snap.DeleteAvgLatency = s.deletes.snapshot()
	return snap
}

// ResetMetrics clears all counters.
func (s *InstrumentedStore) ResetMetrics() {
	s.gets.reset()
	s.sets.reset()
	s.deletes.reset()
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	GetCount         uint64
	SetCount         uint64
	DeleteCount      uint64
	GetAvgLatency    time.Duration
	SetAvgLatency    time.Duration
	DeleteAvgLatency time.Duration
}
