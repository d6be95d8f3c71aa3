package application

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
)

// HealthService reports liveness plus a small view of the cache layer.
type HealthService struct {
	started time.Time
	version string
	backend string
	entries func() int
}

// NewHealthService creates the health usecase. entries reports the number
// of live cached aggregates; pass nil when the backend cannot count (e.g.
// Valkey, where expiry is server-side).
func NewHealthService(version, cacheBackend string, entries func() int) *HealthService {
	return &HealthService{
		started: time.Now(),
		version: version,
		backend: cacheBackend,
		entries: entries,
	}
}

func (s *HealthService) GetStatus(_ context.Context) (apiDomain.HealthStatus, error) {
	status := apiDomain.HealthStatus{
		Status:       "OK",
		Version:      s.version,
		Uptime:       humanize.Time(s.started),
		CacheBackend: s.backend,
	}
	if s.entries != nil {
		status.CacheEntries = s.entries()
	}
	return status, nil
}
