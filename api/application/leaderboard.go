package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
	experienceDomain "github.com/tharun634/JavaBot/experience/domain"
	"github.com/tharun634/JavaBot/pkg/cache"
	pkgError "github.com/tharun634/JavaBot/pkg/error"
	qotwDomain "github.com/tharun634/JavaBot/qotw/domain"
	"github.com/tharun634/JavaBot/validations"
)

// PageSize is the fixed number of entries per leaderboard page.
const PageSize = 8

// LeaderboardService serves ranked, paged leaderboard views. Each board has
// its own cache because both boards share the (guild, page) key shape.
type LeaderboardService struct {
	gateway    apiDomain.Gateway
	experience experienceDomain.Repository
	qotw       qotwDomain.Repository
	expCache   cache.Store[apiDomain.PageKey, []apiDomain.LeaderboardEntry]
	qotwCache  cache.Store[apiDomain.PageKey, []apiDomain.LeaderboardEntry]
}

func NewLeaderboardService(
	gateway apiDomain.Gateway,
	experience experienceDomain.Repository,
	qotw qotwDomain.Repository,
	expCache cache.Store[apiDomain.PageKey, []apiDomain.LeaderboardEntry],
	qotwCache cache.Store[apiDomain.PageKey, []apiDomain.LeaderboardEntry],
) *LeaderboardService {
	return &LeaderboardService{
		gateway:    gateway,
		experience: experience,
		qotw:       qotw,
		expCache:   expCache,
		qotwCache:  qotwCache,
	}
}

// rankedRow is the provider-agnostic shape of one ranked account.
type rankedRow struct {
	rank   int
	userID uint64
	score  float64
}

func (s *LeaderboardService) GetExperienceLeaderboard(ctx context.Context, guildID uint64, page int) ([]apiDomain.LeaderboardEntry, error) {
	return s.getPage(ctx, guildID, page, s.expCache, func(ctx context.Context) ([]rankedRow, error) {
		accounts, err := s.experience.GetTopAccounts(ctx, PageSize, page)
		if err != nil {
			return nil, err
		}
		rows := make([]rankedRow, len(accounts))
		for i, a := range accounts {
			rows[i] = rankedRow{rank: a.Rank, userID: a.UserID, score: a.Experience}
		}
		return rows, nil
	})
}

func (s *LeaderboardService) GetQOTWLeaderboard(ctx context.Context, guildID uint64, page int) ([]apiDomain.LeaderboardEntry, error) {
	return s.getPage(ctx, guildID, page, s.qotwCache, func(ctx context.Context) ([]rankedRow, error) {
		accounts, err := s.qotw.GetTopAccounts(ctx, PageSize, page)
		if err != nil {
			return nil, err
		}
		rows := make([]rankedRow, len(accounts))
		for i, a := range accounts {
			rows[i] = rankedRow{rank: a.Rank, userID: a.UserID, score: float64(a.Points)}
		}
		return rows, nil
	})
}

// getPage validates the request, then serves the page from the given cache
// or computes it. A page past the end of the ranking is an empty page, not
// an error, and empty pages are cached like any other complete result. One
// failed identity resolution aborts the whole page; a partial page would be
// misleading to consumers.
func (s *LeaderboardService) getPage(
	ctx context.Context,
	guildID uint64,
	page int,
	store cache.Store[apiDomain.PageKey, []apiDomain.LeaderboardEntry],
	top func(ctx context.Context) ([]rankedRow, error),
) ([]apiDomain.LeaderboardEntry, error) {
	if err := validations.ValidateLeaderboardRequest(ctx, apiDomain.LeaderboardRequest{GuildID: guildID, Page: page}); err != nil {
		return nil, err
	}

	guild, err := s.gateway.GuildByID(ctx, guildID)
	if err != nil {
		if errors.Is(err, apiDomain.ErrUnknownGuild) {
			return nil, pkgError.NotFoundError("You've provided an invalid guild id!")
		}
		return nil, s.internal("resolve guild", err)
	}

	key := apiDomain.PageKey{GuildID: guild.ID, Page: page}
	if entries, ok := store.Get(ctx, key); ok {
		return entries, nil
	}

	rows, err := top(ctx)
	if err != nil {
		return nil, s.internal("load ranked accounts", err)
	}

	entries := make([]apiDomain.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		user, err := s.gateway.RetrieveUser(ctx, row.userID)
		if err != nil {
			return nil, s.internal("resolve ranked user", err)
		}
		entries = append(entries, apiDomain.LeaderboardEntry{
			Rank:        row.rank,
			UserID:      user.ID,
			DisplayName: user.UserName,
			AvatarURL:   user.AvatarURL,
			Score:       row.score,
		})
	}

	store.Put(ctx, key, entries)
	return entries, nil
}

func (s *LeaderboardService) internal(op string, err error) error {
	logrus.WithError(err).Errorf("[API] leaderboard aggregation failed: %s", op)
	return pkgError.InternalServerError("An internal server error occurred.")
}
