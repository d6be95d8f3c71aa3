package discord

import (
	"context"
	"errors"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
)

// Gateway implements apiDomain.Gateway on top of a discordgo session. Guild
// lookups are answered from the session state when the websocket is open
// and fall back to the REST API otherwise; user lookups always hit REST
// since arbitrary users are not kept in state.
type Gateway struct {
	session *discordgo.Session
}

func NewGateway(token string) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentGuilds
	return &Gateway{session: session}, nil
}

// Open connects the websocket so guild state stays warm. The REST fallback
// keeps the gateway usable without it.
func (g *Gateway) Open() error {
	return g.session.Open()
}

func (g *Gateway) Close() error {
	return g.session.Close()
}

func (g *Gateway) GuildByID(ctx context.Context, guildID uint64) (*apiDomain.GuildRef, error) {
	id := strconv.FormatUint(guildID, 10)

	if guild, err := g.session.State.Guild(id); err == nil {
		return &apiDomain.GuildRef{ID: guildID, Name: guild.Name}, nil
	}

	guild, err := g.session.Guild(id, discordgo.WithContext(ctx))
	if err != nil {
		if isUnknownEntity(err) {
			return nil, apiDomain.ErrUnknownGuild
		}
		logrus.WithError(err).Warnf("[DISCORD] guild lookup failed for %s", id)
		return nil, err
	}
	return &apiDomain.GuildRef{ID: guildID, Name: guild.Name}, nil
}

func (g *Gateway) RetrieveUser(ctx context.Context, userID uint64) (*apiDomain.UserRef, error) {
	id := strconv.FormatUint(userID, 10)

	user, err := g.session.User(id, discordgo.WithContext(ctx))
	if err != nil {
		if isUnknownEntity(err) {
			return nil, apiDomain.ErrUnknownUser
		}
		logrus.WithError(err).Warnf("[DISCORD] user lookup failed for %s", id)
		return nil, err
	}

	return &apiDomain.UserRef{
		ID:            userID,
		UserName:      user.Username,
		Discriminator: user.Discriminator,
		AvatarURL:     user.AvatarURL(""),
	}, nil
}

func isUnknownEntity(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Message == nil {
		return false
	}
	switch restErr.Message.Code {
	case discordgo.ErrCodeUnknownGuild, discordgo.ErrCodeUnknownUser, discordgo.ErrCodeUnknownMember:
		return true
	}
	return false
}
