package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
	experienceDomain "github.com/tharun634/JavaBot/experience/domain"
	guildconfigDomain "github.com/tharun634/JavaBot/guildconfig/domain"
	moderationDomain "github.com/tharun634/JavaBot/moderation/domain"
	"github.com/tharun634/JavaBot/pkg/cache"
	pkgError "github.com/tharun634/JavaBot/pkg/error"
	preferencesDomain "github.com/tharun634/JavaBot/preferences/domain"
	qotwDomain "github.com/tharun634/JavaBot/qotw/domain"
)

// ProfileService aggregates one user's records from the QOTW, experience,
// preference and moderation stores into a single cached view.
type ProfileService struct {
	gateway     apiDomain.Gateway
	cache       cache.Store[apiDomain.ProfileKey, *apiDomain.UserProfileData]
	qotw        qotwDomain.Repository
	experience  experienceDomain.Repository
	preferences preferencesDomain.Repository
	warns       moderationDomain.Repository
	settings    guildconfigDomain.Repository
	now         func() time.Time
}

func NewProfileService(
	gateway apiDomain.Gateway,
	store cache.Store[apiDomain.ProfileKey, *apiDomain.UserProfileData],
	qotw qotwDomain.Repository,
	experience experienceDomain.Repository,
	preferences preferencesDomain.Repository,
	warns moderationDomain.Repository,
	settings guildconfigDomain.Repository,
) *ProfileService {
	return &ProfileService{
		gateway:     gateway,
		cache:       store,
		qotw:        qotw,
		experience:  experience,
		preferences: preferences,
		warns:       warns,
		settings:    settings,
		now:         time.Now,
	}
}

// GetUserProfile validates both ids against the gateway, then serves the
// profile from cache or assembles it fresh. Assembly is all-or-nothing: any
// provider fault aborts the whole computation and nothing is cached.
func (s *ProfileService) GetUserProfile(ctx context.Context, guildID, userID uint64) (*apiDomain.UserProfileData, error) {
	guild, err := s.gateway.GuildByID(ctx, guildID)
	if err != nil {
		if errors.Is(err, apiDomain.ErrUnknownGuild) {
			return nil, pkgError.NotFoundError("You've provided an invalid guild id!")
		}
		return nil, s.internal("resolve guild", guildID, err)
	}

	user, err := s.gateway.RetrieveUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apiDomain.ErrUnknownUser) {
			return nil, pkgError.NotFoundError("You've provided an invalid user id!")
		}
		return nil, s.internal("resolve user", userID, err)
	}

	key := apiDomain.ProfileKey{GuildID: guild.ID, UserID: user.ID}
	if data, ok := s.cache.Get(ctx, key); ok {
		return data, nil
	}

	qotwAccount, err := s.qotw.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, s.internal("load qotw account", userID, err)
	}

	helpAccount, err := s.experience.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, s.internal("load help account", userID, err)
	}

	kinds := preferencesDomain.Kinds()
	prefs := make([]preferencesDomain.UserPreference, 0, len(kinds))
	for _, kind := range kinds {
		pref, err := s.preferences.GetOrCreate(ctx, user.ID, kind)
		if err != nil {
			return nil, s.internal("load preferences", userID, err)
		}
		prefs = append(prefs, *pref)
	}

	// The warn lookback is guild configuration, read as a snapshot per
	// request rather than from a process-wide accessor.
	settings, err := s.settings.GetOrDefault(ctx, guild.ID)
	if err != nil {
		return nil, s.internal("load guild settings", guildID, err)
	}
	cutoff := s.now().AddDate(0, 0, -settings.WarnTimeoutDays)
	warns, err := s.warns.ListByUserSince(ctx, user.ID, cutoff)
	if err != nil {
		return nil, s.internal("load warns", userID, err)
	}
	if warns == nil {
		warns = []moderationDomain.Warn{}
	}

	data := &apiDomain.UserProfileData{
		UserID:             user.ID,
		UserName:           user.UserName,
		Discriminator:      user.Discriminator,
		EffectiveAvatarURL: user.AvatarURL,
		QOTWAccount:        *qotwAccount,
		HelpAccount:        *helpAccount,
		Preferences:        prefs,
		Warns:              warns,
	}

	s.cache.Put(ctx, key, data)
	return data, nil
}

func (s *ProfileService) internal(op string, id uint64, err error) error {
	logrus.WithError(err).WithField("id", id).Errorf("[API] profile aggregation failed: %s", op)
	return pkgError.InternalServerError("An internal server error occurred.")
}
