package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"

	"github.com/avelichka/termcord/internal/client/api"
	"github.com/avelichka/termcord/internal/client/config"
	"github.com/avelichka/termcord/internal/client/credentials"
	"github.com/avelichka/termcord/internal/client/models"
	"github.com/avelichka/termcord/internal/client/services"
	"github.com/avelichka/termcord/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the credential store, gateway and services together and
// exposes them to the REPL.
type App struct {
	config  *config.Config
	session services.SessionService
	chat    services.ChatService
	store   *credentials.SQLiteStore
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := credentials.OpenSQLite(ctx, cfg.CredentialsDB)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewDiscordClient().
		WithBaseURL(cfg.APIBaseURL).
		WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout})

	session := services.NewSessionService(apiClient, store, log)
	chat := services.NewChatService(apiClient, store, session, log, cfg.MessageLimit)

	return &App{
		config:  cfg,
		session: session,
		chat:    chat,
		store:   store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the credential database.
func (a *App) Close() error {
	return a.store.Close()
}

// Run validates any stored credential, reports the resulting session state
// and drops into the command loop.
func (a *App) Run(ctx context.Context) {
	printlnFn("termcord (type 'help' for commands)")

	switch a.session.Bootstrap(ctx) {
	case services.StateAuthenticated:
		a.chat.SetGuilds(a.session.Guilds())
		if user, ok := a.session.User(); ok {
			printlnFn("Logged in as " + displayName(user))
		}
		if reason := a.session.Reason(); reason != "" {
			printlnFn("warning: " + reason)
		}
	case services.StateInvalid:
		printlnFn("Could not validate the stored session: " + a.session.Reason())
		printlnFn("Retry later or 'login' with a fresh token.")
	default:
		if reason := a.session.Reason(); reason != "" {
			printlnFn(reason)
		}
		printlnFn("Not logged in. Use 'login' to paste a token.")
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == services.StateAuthenticated
}

// getStatus renders the prompt suffix: the user plus the active
// guild/channel pair, e.g. "(alice Home/#general)".
func (a *App) getStatus() string {
	s := ""
	if user, ok := a.session.User(); ok {
		s = user.Username
	}
	sel := a.chat.Selection()
	if sel.GuildID != "" {
		if guild, ok := findGuild(a.chat.Guilds(), sel.GuildID); ok {
			s += " " + guild.Name
		}
		if sel.ChannelID != "" {
			if channel, ok := channelByID(a.chat.Channels(), sel.ChannelID); ok {
				s += "/" + channelLabel(channel)
			}
		}
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

func displayName(user models.User) string {
	if user.Discriminator != "" && user.Discriminator != "0" {
		return user.Username + "#" + user.Discriminator
	}
	return user.Username
}

// channelLabel marks the channel kind the way chat UIs do: '#' for text,
// ')' prefix for voice.
func channelLabel(ch models.Channel) string {
	if ch.Kind == models.KindVoice {
		return ")" + ch.Name
	}
	return "#" + ch.Name
}

func findGuild(guilds []models.Guild, id string) (models.Guild, bool) {
	for _, g := range guilds {
		if g.ID == id {
			return g, true
		}
	}
	return models.Guild{}, false
}

func channelByID(channels []models.Channel, id string) (models.Channel, bool) {
	for _, ch := range channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return models.Channel{}, false
}
