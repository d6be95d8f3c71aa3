package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	valkeylib "github.com/valkey-io/valkey-go"

	"github.com/tharun634/JavaBot/infrastructure/valkey"
)

// ValkeyStore implements Store on top of a shared Valkey instance so several
// API replicas can serve from one cache. Values are stored as JSON and
// expiry is delegated to Valkey's native TTL.
//
// Transport faults are logged and reported as misses: the aggregation path
// is idempotent, so recomputing is always safe and the API keeps answering
// while the cache is down.
type ValkeyStore[K Key, V any] struct {
	client *valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyStore creates a store whose keys live under the given namespace,
// e.g. "profile" or "leaderboard:experience". Namespaces keep boards with
// the same (guild, page) key shape from colliding.
func NewValkeyStore[K Key, V any](client *valkey.Client, namespace string, ttl time.Duration) *ValkeyStore[K, V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ValkeyStore[K, V]{
		client: client,
		prefix: client.Key(namespace) + ":",
		ttl:    ttl,
	}
}

func (s *ValkeyStore[K, V]) inner() valkeylib.Client {
	return s.client.Inner()
}

func (s *ValkeyStore[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zero V

	cmd := s.inner().B().Get().Key(s.prefix + key.CacheKey()).Build()
	data, err := s.inner().Do(ctx, cmd).AsBytes()
	if err != nil {
		if !valkeylib.IsValkeyNil(err) {
			logrus.WithError(err).Warnf("[CACHE] valkey get failed for %s", key.CacheKey())
		}
		return zero, false
	}

	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		logrus.WithError(err).Warnf("[CACHE] corrupt valkey entry for %s", key.CacheKey())
		return zero, false
	}
	return value, true
}

func (s *ValkeyStore[K, V]) Put(ctx context.Context, key K, value V) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).Errorf("[CACHE] marshal failed for %s", key.CacheKey())
		return
	}

	cmd := s.inner().B().Set().
		Key(s.prefix + key.CacheKey()).
		Value(string(data)).
		Ex(s.ttl).
		Build()

	if err := s.inner().Do(ctx, cmd).Error(); err != nil {
		logrus.WithError(err).Warnf("[CACHE] valkey set failed for %s", key.CacheKey())
	}
}
