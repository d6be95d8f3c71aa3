package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
	"github.com/tharun634/JavaBot/pkg/cache"
	pkgError "github.com/tharun634/JavaBot/pkg/error"
)

func newLeaderboardFixture() (*LeaderboardService, *fakeGateway, *fakeExperienceRepo, *fakeQOTWRepo) {
	gateway := &fakeGateway{
		guilds: map[uint64]string{testGuildID: "Java Community"},
		users:  map[uint64]apiDomain.UserRef{},
	}
	for id := uint64(1); id <= 20; id++ {
		gateway.users[id] = apiDomain.UserRef{ID: id, UserName: "member", AvatarURL: "https://cdn.discordapp.com/avatars/a.png"}
	}

	experience := &fakeExperienceRepo{accounts: map[uint64]float64{}}
	qotw := &fakeQOTWRepo{accounts: map[uint64]int64{}}

	expCache := cache.NewMemoryStore[apiDomain.PageKey, []apiDomain.LeaderboardEntry](cache.DefaultTTL)
	qotwCache := cache.NewMemoryStore[apiDomain.PageKey, []apiDomain.LeaderboardEntry](cache.DefaultTTL)

	return NewLeaderboardService(gateway, experience, qotw, expCache, qotwCache), gateway, experience, qotw
}

func TestGetExperienceLeaderboardRanksAndPages(t *testing.T) {
	service, _, experience, _ := newLeaderboardFixture()
	ctx := context.Background()

	// Ten accounts with distinct scores: two pages of eight and two.
	for id := uint64(1); id <= 10; id++ {
		experience.accounts[id] = float64(id) * 10
	}

	page1, err := service.GetExperienceLeaderboard(ctx, testGuildID, 1)
	assert.NoError(t, err)
	assert.Len(t, page1, PageSize)
	assert.Equal(t, 1, page1[0].Rank)
	assert.Equal(t, uint64(10), page1[0].UserID)
	assert.Equal(t, float64(100), page1[0].Score)
	assert.Equal(t, 8, page1[7].Rank)

	page2, err := service.GetExperienceLeaderboard(ctx, testGuildID, 2)
	assert.NoError(t, err)
	assert.Len(t, page2, 2)
	// Ranks continue across pages exactly as the provider reported them.
	assert.Equal(t, 9, page2[0].Rank)
	assert.Equal(t, 10, page2[1].Rank)
}

func TestGetLeaderboardPageMustBePositive(t *testing.T) {
	service, _, _, _ := newLeaderboardFixture()

	_, err := service.GetQOTWLeaderboard(context.Background(), testGuildID, 0)
	assert.IsType(t, pkgError.ValidationError(""), err)

	_, err = service.GetQOTWLeaderboard(context.Background(), testGuildID, -3)
	assert.IsType(t, pkgError.ValidationError(""), err)
}

func TestGetLeaderboardUnknownGuild(t *testing.T) {
	service, _, _, _ := newLeaderboardFixture()

	_, err := service.GetExperienceLeaderboard(context.Background(), 42, 1)
	assert.Equal(t, pkgError.NotFoundError("You've provided an invalid guild id!"), err)
}

func TestGetLeaderboardEmptyPageIsCached(t *testing.T) {
	service, _, experience, _ := newLeaderboardFixture()
	ctx := context.Background()
	experience.accounts[1] = 50

	// Page 3 is far past the end of a one-account ranking.
	empty, err := service.GetExperienceLeaderboard(ctx, testGuildID, 3)
	assert.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
	assert.Equal(t, 1, experience.calls)

	// The empty page is a complete result, served from cache on repeat.
	_, err = service.GetExperienceLeaderboard(ctx, testGuildID, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1, experience.calls)
}

func TestGetLeaderboardIdentityFailureAborts(t *testing.T) {
	service, gateway, _, qotw := newLeaderboardFixture()
	ctx := context.Background()
	qotw.accounts[1] = 3
	qotw.accounts[2] = 5

	gateway.userErr = apiDomain.ErrUnknownUser
	_, err := service.GetQOTWLeaderboard(ctx, testGuildID, 1)
	assert.Equal(t, pkgError.InternalServerError("An internal server error occurred."), err)

	// The aborted page was not cached: once the gateway recovers, the page
	// is recomputed and served in full.
	gateway.userErr = nil
	entries, err := service.GetQOTWLeaderboard(ctx, testGuildID, 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 2, qotw.calls)
}

func TestLeaderboardCachesAreIndependent(t *testing.T) {
	service, _, experience, qotw := newLeaderboardFixture()
	ctx := context.Background()
	experience.accounts[1] = 10
	qotw.accounts[2] = 4

	expEntries, err := service.GetExperienceLeaderboard(ctx, testGuildID, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), expEntries[0].UserID)

	// Both boards address page 1 of the same guild, but a cached experience
	// page must never answer a QOTW request.
	qotwEntries, err := service.GetQOTWLeaderboard(ctx, testGuildID, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), qotwEntries[0].UserID)
	assert.Equal(t, float64(4), qotwEntries[0].Score)
}
