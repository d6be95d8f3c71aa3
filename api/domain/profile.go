package domain

import (
	"context"

	experienceDomain "github.com/tharun634/JavaBot/experience/domain"
	moderationDomain "github.com/tharun634/JavaBot/moderation/domain"
	preferencesDomain "github.com/tharun634/JavaBot/preferences/domain"
	qotwDomain "github.com/tharun634/JavaBot/qotw/domain"
)

// UserProfileData is one user's aggregate profile in a guild, assembled
// from the QOTW, help experience, preference and moderation stores plus the
// live display identity. It is built fresh on every cache miss and immutable
// once built.
type UserProfileData struct {
	UserID             uint64                             `json:"userId"`
	UserName           string                             `json:"userName"`
	Discriminator      string                             `json:"discriminator"`
	EffectiveAvatarURL string                             `json:"effectiveAvatarUrl"`
	QOTWAccount        qotwDomain.Account                 `json:"qotwAccount"`
	HelpAccount        experienceDomain.Account           `json:"helpAccount"`
	Preferences        []preferencesDomain.UserPreference `json:"preferences"`
	Warns              []moderationDomain.Warn            `json:"warns"`
}

type IProfileUsecase interface {
	GetUserProfile(ctx context.Context, guildID, userID uint64) (*UserProfileData, error)
}
