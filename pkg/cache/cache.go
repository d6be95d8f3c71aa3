package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long an aggregate stays valid after being written.
// Clients of the API must not assume better freshness than this.
const DefaultTTL = 10 * time.Minute

// Key constrains cache keys to comparable value types that can also render
// themselves as a stable string. Structural equality of the key, not object
// identity, decides cache hits; the string form is used for shard selection
// and by remote backends.
type Key interface {
	comparable
	CacheKey() string
}

// Store is a read-through cache for composite aggregates.
//
// Get returns the stored value only if it is present and younger than the
// TTL; expired entries are treated as absent. Put unconditionally overwrites
// the entry and resets its insertion time. There is no single-flight guard:
// concurrent misses on the same key may both recompute, and the last Put
// wins. Emptiness is a property of the value, not of the entry; an empty
// slice stored via Put is a perfectly valid hit.
type Store[K Key, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Put(ctx context.Context, key K, value V)
}
