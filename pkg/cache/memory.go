package cache

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

const shardCount = 16

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

type shard[K Key, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
}

// MemoryStore is the in-memory Store implementation. Entries are spread
// over a fixed number of shards so unrelated keys never contend on the same
// lock. Expiry is lazy: an entry past its TTL is purged when it is next
// looked up, there is no background sweeper and no size bound.
type MemoryStore[K Key, V any] struct {
	shards [shardCount]*shard[K, V]
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryStore creates a store with the given TTL. A ttl of zero falls
// back to DefaultTTL.
func NewMemoryStore[K Key, V any](ttl time.Duration) *MemoryStore[K, V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &MemoryStore[K, V]{ttl: ttl, now: time.Now}
	for i := range s.shards {
		s.shards[i] = &shard[K, V]{entries: make(map[K]entry[V])}
	}
	return s
}

func (s *MemoryStore[K, V]) shardFor(key K) *shard[K, V] {
	h := fnv.New32a()
	h.Write([]byte(key.CacheKey()))
	return s.shards[h.Sum32()%shardCount]
}

func (s *MemoryStore[K, V]) Get(_ context.Context, key K) (V, bool) {
	var zero V
	sh := s.shardFor(key)

	sh.mu.RLock()
	e, ok := sh.entries[key]
	sh.mu.RUnlock()
	if !ok {
		return zero, false
	}

	if s.now().Sub(e.insertedAt) >= s.ttl {
		// Expired entries count as absent; purge so the map does not grow
		// unbounded with dead keys.
		sh.mu.Lock()
		if cur, still := sh.entries[key]; still && cur.insertedAt.Equal(e.insertedAt) {
			delete(sh.entries, key)
		}
		sh.mu.Unlock()
		return zero, false
	}

	return e.value, true
}

func (s *MemoryStore[K, V]) Put(_ context.Context, key K, value V) {
	sh := s.shardFor(key)

	sh.mu.Lock()
	sh.entries[key] = entry[V]{value: value, insertedAt: s.now()}
	sh.mu.Unlock()
}

// Len returns the number of live (non-expired) entries across all shards.
func (s *MemoryStore[K, V]) Len() int {
	now := s.now()
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, e := range sh.entries {
			if now.Sub(e.insertedAt) < s.ttl {
				total++
			}
		}
		sh.mu.RUnlock()
	}
	return total
}
