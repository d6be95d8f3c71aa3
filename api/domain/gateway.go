package domain

import (
	"context"
	"errors"
)

var (
	ErrUnknownGuild = errors.New("guild id does not resolve to a live guild")
	ErrUnknownUser  = errors.New("user id does not resolve to a user")
)

// GuildRef is the minimal view of a guild the API needs.
type GuildRef struct {
	ID   uint64
	Name string
}

// UserRef is the resolved display identity of a user id.
type UserRef struct {
	ID            uint64
	UserName      string
	Discriminator string
	AvatarURL     string
}

// Gateway resolves ids against the live platform. GuildByID validates guild
// membership, RetrieveUser resolves display identities. Both return the
// ErrUnknown* sentinels for ids that do not resolve; any other error is a
// transport fault.
type Gateway interface {
	GuildByID(ctx context.Context, guildID uint64) (*GuildRef, error)
	RetrieveUser(ctx context.Context, userID uint64) (*UserRef, error)
}
