package application

import (
	"context"
	"sort"
	"time"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
	experienceDomain "github.com/tharun634/JavaBot/experience/domain"
	guildconfigDomain "github.com/tharun634/JavaBot/guildconfig/domain"
	moderationDomain "github.com/tharun634/JavaBot/moderation/domain"
	preferencesDomain "github.com/tharun634/JavaBot/preferences/domain"
	qotwDomain "github.com/tharun634/JavaBot/qotw/domain"
)

// The fakes below emulate the storage contracts, in particular the
// idempotent get-or-create upserts, so the aggregators can be exercised
// without a database.

type fakeGateway struct {
	guilds     map[uint64]string
	users      map[uint64]apiDomain.UserRef
	guildCalls int
	userCalls  int
	userErr    error
}

func (g *fakeGateway) GuildByID(_ context.Context, guildID uint64) (*apiDomain.GuildRef, error) {
	g.guildCalls++
	name, ok := g.guilds[guildID]
	if !ok {
		return nil, apiDomain.ErrUnknownGuild
	}
	return &apiDomain.GuildRef{ID: guildID, Name: name}, nil
}

func (g *fakeGateway) RetrieveUser(_ context.Context, userID uint64) (*apiDomain.UserRef, error) {
	g.userCalls++
	if g.userErr != nil {
		return nil, g.userErr
	}
	u, ok := g.users[userID]
	if !ok {
		return nil, apiDomain.ErrUnknownUser
	}
	return &u, nil
}

type fakeQOTWRepo struct {
	accounts map[uint64]int64
	calls    int
	err      error
}

func (r *fakeQOTWRepo) GetOrCreate(_ context.Context, userID uint64) (*qotwDomain.Account, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if r.accounts == nil {
		r.accounts = make(map[uint64]int64)
	}
	if _, ok := r.accounts[userID]; !ok {
		r.accounts[userID] = 0
	}
	return &qotwDomain.Account{UserID: userID, Points: r.accounts[userID]}, nil
}

func (r *fakeQOTWRepo) Increment(_ context.Context, userID uint64) (int64, error) {
	if r.accounts == nil {
		r.accounts = make(map[uint64]int64)
	}
	r.accounts[userID]++
	return r.accounts[userID], nil
}

func (r *fakeQOTWRepo) GetTopAccounts(_ context.Context, amount, page int) ([]qotwDomain.RankedAccount, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	type row struct {
		userID uint64
		points int64
	}
	rows := make([]row, 0, len(r.accounts))
	for id, points := range r.accounts {
		if points > 0 {
			rows = append(rows, row{id, points})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].points != rows[j].points {
			return rows[i].points > rows[j].points
		}
		return rows[i].userID < rows[j].userID
	})

	offset := (page - 1) * amount
	ranked := []qotwDomain.RankedAccount{}
	for i := offset; i < len(rows) && i < offset+amount; i++ {
		ranked = append(ranked, qotwDomain.RankedAccount{
			Rank:    i + 1,
			Account: qotwDomain.Account{UserID: rows[i].userID, Points: rows[i].points},
		})
	}
	return ranked, nil
}

type fakeExperienceRepo struct {
	accounts map[uint64]float64
	calls    int
	err      error
}

func (r *fakeExperienceRepo) GetOrCreate(_ context.Context, userID uint64) (*experienceDomain.Account, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if r.accounts == nil {
		r.accounts = make(map[uint64]float64)
	}
	if _, ok := r.accounts[userID]; !ok {
		r.accounts[userID] = 0
	}
	return &experienceDomain.Account{UserID: userID, Experience: r.accounts[userID]}, nil
}

func (r *fakeExperienceRepo) AddExperience(_ context.Context, userID uint64, amount float64) (float64, error) {
	if r.accounts == nil {
		r.accounts = make(map[uint64]float64)
	}
	r.accounts[userID] += amount
	return r.accounts[userID], nil
}

func (r *fakeExperienceRepo) GetTopAccounts(_ context.Context, amount, page int) ([]experienceDomain.RankedAccount, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	type row struct {
		userID uint64
		xp     float64
	}
	rows := make([]row, 0, len(r.accounts))
	for id, xp := range r.accounts {
		if xp > 0 {
			rows = append(rows, row{id, xp})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].xp != rows[j].xp {
			return rows[i].xp > rows[j].xp
		}
		return rows[i].userID < rows[j].userID
	})

	offset := (page - 1) * amount
	ranked := []experienceDomain.RankedAccount{}
	for i := offset; i < len(rows) && i < offset+amount; i++ {
		ranked = append(ranked, experienceDomain.RankedAccount{
			Rank:    i + 1,
			Account: experienceDomain.Account{UserID: rows[i].userID, Experience: rows[i].xp},
		})
	}
	return ranked, nil
}

type prefKey struct {
	userID uint64
	kind   preferencesDomain.Kind
}

type fakePreferenceRepo struct {
	records map[prefKey]bool
	calls   int
	err     error
}

func (r *fakePreferenceRepo) GetOrCreate(_ context.Context, userID uint64, kind preferencesDomain.Kind) (*preferencesDomain.UserPreference, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if r.records == nil {
		r.records = make(map[prefKey]bool)
	}
	key := prefKey{userID, kind}
	if _, ok := r.records[key]; !ok {
		r.records[key] = false
	}
	return &preferencesDomain.UserPreference{UserID: userID, Kind: kind, Enabled: r.records[key]}, nil
}

func (r *fakePreferenceRepo) Set(_ context.Context, userID uint64, kind preferencesDomain.Kind, enabled bool) error {
	if r.records == nil {
		r.records = make(map[prefKey]bool)
	}
	r.records[prefKey{userID, kind}] = enabled
	return nil
}

type fakeWarnRepo struct {
	warns      []moderationDomain.Warn
	lastCutoff time.Time
	calls      int
	err        error
}

func (r *fakeWarnRepo) Insert(_ context.Context, warn *moderationDomain.Warn) error {
	r.warns = append(r.warns, *warn)
	return nil
}

func (r *fakeWarnRepo) ListByUserSince(_ context.Context, userID uint64, cutoff time.Time) ([]moderationDomain.Warn, error) {
	r.calls++
	r.lastCutoff = cutoff
	if r.err != nil {
		return nil, r.err
	}
	var out []moderationDomain.Warn
	for _, w := range r.warns {
		if w.UserID == userID && !w.CreatedAt.Before(cutoff) {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	days  map[uint64]int
	calls int
	err   error
}

func (r *fakeSettingsRepo) GetOrDefault(_ context.Context, guildID uint64) (guildconfigDomain.Settings, error) {
	r.calls++
	if r.err != nil {
		return guildconfigDomain.Settings{}, r.err
	}
	days, ok := r.days[guildID]
	if !ok {
		days = guildconfigDomain.DefaultWarnTimeoutDays
	}
	return guildconfigDomain.Settings{GuildID: guildID, WarnTimeoutDays: days}, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, settings guildconfigDomain.Settings) error {
	if r.days == nil {
		r.days = make(map[uint64]int)
	}
	r.days[settings.GuildID] = settings.WarnTimeoutDays
	return nil
}
