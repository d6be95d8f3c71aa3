package domain

import "context"

// DefaultWarnTimeoutDays is the lookback window for warnings when a guild
// has no stored configuration.
const DefaultWarnTimeoutDays = 30

// Settings is the per-guild configuration snapshot. It is a value: each
// request reads its own copy instead of consulting a mutable global.
type Settings struct {
	GuildID         uint64 `json:"guildId"`
	WarnTimeoutDays int    `json:"warnTimeoutDays"`
}

// Repository gives access to per-guild settings.
type Repository interface {
	// GetOrDefault returns the guild's settings, or a snapshot populated
	// with defaults when the guild has none stored.
	GetOrDefault(ctx context.Context, guildID uint64) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}
