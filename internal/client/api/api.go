package api

import (
	"context"

	"github.com/avelichka/termcord/internal/client/models"
)

// Client is the typed gateway to the messaging platform's REST API.
//
// Every operation takes the bearer credential explicitly; nothing in this
// package reads shared state, so implementations are trivially testable
// with injected tokens. A blank token fails fast with ErrMissingCredential
// and a blank required identifier with ErrInvalidInput, in both cases
// before any request is issued.
//
// Implementations never mutate the credential store: whether an
// ErrUnauthorized should end the session is the caller's decision.
type Client interface {
	CurrentUser(ctx context.Context, token string) (models.User, error)
	ListGuilds(ctx context.Context, token string) ([]models.Guild, error)
	ListChannels(ctx context.Context, token, guildID string) ([]models.Channel, error)
	ListMessages(ctx context.Context, token, channelID string, limit int) ([]models.Message, error)
	SendMessage(ctx context.Context, token, channelID, content string) (models.Message, error)
	ListVoiceRegions(ctx context.Context, token string) ([]models.VoiceRegion, error)
	JoinVoiceChannel(ctx context.Context, token, guildID, userID, channelID string) (models.GuildMember, error)
}
