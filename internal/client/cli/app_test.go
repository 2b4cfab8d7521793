package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelichka/termcord/internal/client/models"
	"github.com/avelichka/termcord/internal/client/services"
)

func TestIsLoggedIn(t *testing.T) {
	app := newTestApp(&fakeSession{state: services.StateUnauthenticated}, &fakeChat{})
	assert.False(t, app.isLoggedIn())

	app = newTestApp(&fakeSession{state: services.StateAuthenticated}, &fakeChat{})
	assert.True(t, app.isLoggedIn())

	app = newTestApp(&fakeSession{state: services.StateInvalid}, &fakeChat{})
	assert.False(t, app.isLoggedIn())
}

func TestGetStatus(t *testing.T) {
	guilds := []models.Guild{{ID: "g1", Name: "Home"}}
	channels := []models.Channel{{ID: "c1", Name: "general", Kind: models.KindText}}

	t.Run("empty when logged out", func(t *testing.T) {
		app := newTestApp(&fakeSession{}, &fakeChat{})
		assert.Equal(t, "", app.getStatus())
	})

	t.Run("user only", func(t *testing.T) {
		session := &fakeSession{hasUsr: true, user: models.User{Username: "alice"}}
		app := newTestApp(session, &fakeChat{})
		assert.Equal(t, "(alice)", app.getStatus())
	})

	t.Run("user guild and channel", func(t *testing.T) {
		session := &fakeSession{hasUsr: true, user: models.User{Username: "alice"}}
		chat := &fakeChat{
			guilds:   guilds,
			channels: channels,
			sel:      models.Selection{GuildID: "g1", ChannelID: "c1"},
		}
		app := newTestApp(session, chat)
		assert.Equal(t, "(alice Home/#general)", app.getStatus())
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "alice", displayName(models.User{Username: "alice", Discriminator: "0"}))
	assert.Equal(t, "alice", displayName(models.User{Username: "alice"}))
	assert.Equal(t, "legacy#1234", displayName(models.User{Username: "legacy", Discriminator: "1234"}))
}

func TestChannelLabel(t *testing.T) {
	assert.Equal(t, "#general", channelLabel(models.Channel{Name: "general", Kind: models.KindText}))
	assert.Equal(t, ")Lounge", channelLabel(models.Channel{Name: "Lounge", Kind: models.KindVoice}))
}
