package domain

import "context"

// LeaderboardEntry is one row of a ranked, paged leaderboard. Rank is taken
// verbatim from the ranking provider's ordering.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      uint64  `json:"userId"`
	DisplayName string  `json:"displayName"`
	AvatarURL   string  `json:"avatarUrl"`
	Score       float64 `json:"score"`
}

// LeaderboardRequest carries the validated query of a leaderboard call.
type LeaderboardRequest struct {
	GuildID uint64 `json:"guild_id"`
	Page    int    `json:"page"`
}

type ILeaderboardUsecase interface {
	GetExperienceLeaderboard(ctx context.Context, guildID uint64, page int) ([]LeaderboardEntry, error)
	GetQOTWLeaderboard(ctx context.Context, guildID uint64, page int) ([]LeaderboardEntry, error)
}
