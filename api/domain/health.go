package domain

import "context"

// HealthStatus is the snapshot served by the health endpoint.
type HealthStatus struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
	CacheBackend string `json:"cache_backend"`
	CacheEntries int    `json:"cache_entries"`
}

type IHealthUsecase interface {
	GetStatus(ctx context.Context) (HealthStatus, error)
}
