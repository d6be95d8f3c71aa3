package cmd

import (
	"context"

	"github.com/sirupsen/logrus"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
	"github.com/tharun634/JavaBot/core/config"
	"github.com/tharun634/JavaBot/core/database"
	experienceRepository "github.com/tharun634/JavaBot/experience/repository"
	guildconfigRepository "github.com/tharun634/JavaBot/guildconfig/repository"
	"github.com/tharun634/JavaBot/infrastructure/valkey"
	moderationRepository "github.com/tharun634/JavaBot/moderation/repository"
	"github.com/tharun634/JavaBot/pkg/cache"
	preferencesRepository "github.com/tharun634/JavaBot/preferences/repository"
	qotwRepository "github.com/tharun634/JavaBot/qotw/repository"
)

// initStorage opens the database and wires all gorm repositories, creating
// missing tables on the way.
func initStorage() {
	var err error
	db, err = database.NewDatabase(config.Global)
	if err != nil {
		logrus.Fatalln("Failed to initialize database: ", err.Error())
	}

	qotwGorm := qotwRepository.NewAccountGormRepository(db)
	experienceGorm := experienceRepository.NewAccountGormRepository(db)
	preferencesGorm := preferencesRepository.NewPreferenceGormRepository(db)
	warnGorm := moderationRepository.NewWarnGormRepository(db)
	settingsGorm := guildconfigRepository.NewSettingsGormRepository(db)

	ctx := context.Background()
	schemas := map[string]interface{ InitSchema(context.Context) error }{
		"qotw":        qotwGorm,
		"experience":  experienceGorm,
		"preferences": preferencesGorm,
		"warns":       warnGorm,
		"settings":    settingsGorm,
	}
	for name, repo := range schemas {
		if err := repo.InitSchema(ctx); err != nil {
			logrus.Fatalf("Failed to migrate %s schema: %v", name, err)
		}
	}

	qotwRepo = qotwGorm
	experienceRepo = experienceGorm
	preferencesRepo = preferencesGorm
	warnRepo = warnGorm
	settingsRepo = settingsGorm
}

// cacheStores bundles the per-aggregate cache stores together with a
// description of the backend for the health endpoint.
type cacheStores struct {
	profile    cache.Store[apiDomain.ProfileKey, *apiDomain.UserProfileData]
	experience cache.Store[apiDomain.PageKey, []apiDomain.LeaderboardEntry]
	qotw       cache.Store[apiDomain.PageKey, []apiDomain.LeaderboardEntry]
	backend    string
	entryCount func() int
	valkeyConn *valkey.Client
}

// buildCacheStores picks the cache backend: a shared Valkey instance when
// enabled, the in-process sharded store otherwise.
func buildCacheStores(cfg *config.Config) cacheStores {
	if cfg.Database.ValkeyEnabled {
		client, err := valkey.NewClient(valkey.Config{
			Address:   cfg.Database.ValkeyAddress,
			Password:  cfg.Database.ValkeyPassword,
			DB:        cfg.Database.ValkeyDB,
			KeyPrefix: cfg.Database.ValkeyKeyPrefix,
		})
		if err != nil {
			logrus.WithError(err).Warn("[CACHE] valkey unavailable, falling back to in-memory store")
		} else {
			return cacheStores{
				profile:    cache.NewValkeyStore[apiDomain.ProfileKey, *apiDomain.UserProfileData](client, "profile", cache.DefaultTTL),
				experience: cache.NewValkeyStore[apiDomain.PageKey, []apiDomain.LeaderboardEntry](client, "leaderboard:experience", cache.DefaultTTL),
				qotw:       cache.NewValkeyStore[apiDomain.PageKey, []apiDomain.LeaderboardEntry](client, "leaderboard:qotw", cache.DefaultTTL),
				backend:    "valkey",
				valkeyConn: client,
			}
		}
	}

	profile := cache.NewMemoryStore[apiDomain.ProfileKey, *apiDomain.UserProfileData](cache.DefaultTTL)
	experience := cache.NewMemoryStore[apiDomain.PageKey, []apiDomain.LeaderboardEntry](cache.DefaultTTL)
	qotw := cache.NewMemoryStore[apiDomain.PageKey, []apiDomain.LeaderboardEntry](cache.DefaultTTL)

	return cacheStores{
		profile:    profile,
		experience: experience,
		qotw:       qotw,
		backend:    "memory",
		entryCount: func() int {
			return profile.Len() + experience.Len() + qotw.Len()
		},
	}
}
