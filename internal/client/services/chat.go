package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/avelichka/termcord/internal/client/api"
	"github.com/avelichka/termcord/internal/client/credentials"
	"github.com/avelichka/termcord/internal/client/models"
	"github.com/avelichka/termcord/internal/logging"
)

// identityProvider is the read-only slice of the session the chat service
// needs: the validated user, for voice-channel moves.
type identityProvider interface {
	User() (models.User, bool)
}

// ChatService is the selection state machine: it owns the guild, channel
// and message sets plus the active selection, and sequences the dependent
// fetches (guild → channels, channel → messages) behind them.
//
// Responses are applied in selection order, not arrival order: every fetch
// is tagged with the selection generation it was issued for, and a result
// that resolves after a newer selection is discarded. Fetch failures leave
// the affected set empty and never end the session.
type ChatService interface {
	SetGuilds(guilds []models.Guild)
	RefreshGuilds(ctx context.Context) error
	SelectGuild(ctx context.Context, id string) error
	SelectChannel(ctx context.Context, id string) error
	Send(ctx context.Context, text string) (models.Message, error)
	JoinVoice(ctx context.Context, channelID string) (models.GuildMember, error)
	VoiceRegions(ctx context.Context) ([]models.VoiceRegion, error)
	Reset()

	Guilds() []models.Guild
	Channels() []models.Channel
	Messages() []models.Message
	Selection() models.Selection
	ChannelsLoading() bool
}

type chatService struct {
	client   api.Client
	creds    credentials.Store
	identity identityProvider
	log      logging.Logger

	// messageLimit is the page size for transcript fetches.
	messageLimit int

	mu              sync.Mutex
	guilds          []models.Guild
	channels        []models.Channel
	messages        []models.Message
	sel             models.Selection
	channelsLoading bool
	// Selection generations; a fetch result is only committed when the
	// generation it was issued under is still current.
	guildGen   uint64
	channelGen uint64
}

// NewChatService constructs a ChatService. messageLimit <= 0 falls back to
// the gateway default.
func NewChatService(client api.Client, creds credentials.Store, identity identityProvider, log logging.Logger, messageLimit int) ChatService {
	return &chatService{
		client:       client,
		creds:        creds,
		identity:     identity,
		log:          log,
		messageLimit: messageLimit,
	}
}

// token resolves the stored credential; the gateway itself never reads
// shared state.
func (s *chatService) token(ctx context.Context) (string, error) {
	token, err := s.creds.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	if token == "" {
		return "", api.ErrMissingCredential
	}
	return token, nil
}

// SetGuilds replaces the guild set with the list the session bootstrap
// fetched. The selection is untouched.
func (s *chatService) SetGuilds(guilds []models.Guild) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guilds = append([]models.Guild(nil), guilds...)
}

// RefreshGuilds re-fetches the guild list on demand.
func (s *chatService) RefreshGuilds(ctx context.Context) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	guilds, err := s.client.ListGuilds(ctx, token)
	if err != nil {
		return err
	}
	s.SetGuilds(guilds)
	return nil
}

// SelectGuild makes the guild active, drops the previous channel selection
// together with the channel and message sets, and fetches the guild's
// channels. Only text and voice channels survive into the exposed set.
//
// If the user selects another guild before the fetch resolves, the stale
// response is discarded on arrival: last selection wins regardless of
// response order.
func (s *chatService) SelectGuild(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: guild id is required", api.ErrInvalidInput)
	}
	token, err := s.token(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.guildGen++
	s.channelGen++ // orphan any in-flight message fetch of the old guild
	gen := s.guildGen
	s.sel = models.Selection{GuildID: id}
	s.channels = nil
	s.messages = nil
	s.channelsLoading = true
	s.mu.Unlock()

	channels, err := s.client.ListChannels(ctx, token, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.guildGen {
		// A newer selection owns the state now; drop this response.
		s.log.Debug(ctx, "stale channel list discarded", "guild_id", id)
		return nil
	}
	s.channelsLoading = false
	if err != nil {
		s.log.Warn(ctx, "channel fetch failed", "guild_id", id, "err", err)
		return err
	}
	s.channels = filterChannels(channels)
	return nil
}

// SelectChannel makes a channel of the active guild current. The id must
// be in the last-fetched channel set. Text channels load one page of
// transcript, subject to the same stale-response discard; voice channels
// never trigger a message fetch.
func (s *chatService) SelectChannel(ctx context.Context, id string) error {
	s.mu.Lock()
	channel, ok := findChannel(s.channels, id)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: unknown channel %q", api.ErrInvalidInput, id)
	}
	s.channelGen++
	gen := s.channelGen
	s.sel.ChannelID = id
	s.messages = nil
	s.mu.Unlock()

	if channel.Kind != models.KindText {
		return nil
	}

	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	messages, err := s.client.ListMessages(ctx, token, id, s.messageLimit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.channelGen {
		s.log.Debug(ctx, "stale transcript discarded", "channel_id", id)
		return nil
	}
	if err != nil {
		s.log.Warn(ctx, "message fetch failed", "channel_id", id, "err", err)
		return err
	}
	s.messages = messages
	return nil
}

// Send posts text to the active text channel and appends the returned
// message (with its server-assigned id and timestamp) to the transcript.
// There is no refetch. On failure the transcript is left untouched so the
// caller can retry the same text.
func (s *chatService) Send(ctx context.Context, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, fmt.Errorf("%w: message text is required", api.ErrInvalidInput)
	}

	s.mu.Lock()
	channelID := s.sel.ChannelID
	channel, ok := findChannel(s.channels, channelID)
	gen := s.channelGen
	s.mu.Unlock()

	if channelID == "" || !ok {
		return models.Message{}, fmt.Errorf("%w: no active channel", api.ErrInvalidInput)
	}
	if channel.Kind != models.KindText {
		return models.Message{}, fmt.Errorf("%w: %q is not a text channel", api.ErrInvalidInput, channel.Name)
	}

	token, err := s.token(ctx)
	if err != nil {
		return models.Message{}, err
	}
	msg, err := s.client.SendMessage(ctx, token, channelID, text)
	if err != nil {
		return models.Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Merge optimistically, but only into the transcript the send was
	// issued for; after a channel switch the message is still sent, just
	// not displayed.
	if gen == s.channelGen && s.sel.ChannelID == channelID {
		s.messages = append(s.messages, msg)
	}
	return msg, nil
}

// JoinVoice moves the authenticated user into a voice channel of the
// active guild. Metadata operation only: no audio transport is opened.
func (s *chatService) JoinVoice(ctx context.Context, channelID string) (models.GuildMember, error) {
	s.mu.Lock()
	guildID := s.sel.GuildID
	channel, ok := findChannel(s.channels, channelID)
	s.mu.Unlock()

	if guildID == "" || !ok {
		return models.GuildMember{}, fmt.Errorf("%w: unknown voice channel %q", api.ErrInvalidInput, channelID)
	}
	if channel.Kind != models.KindVoice {
		return models.GuildMember{}, fmt.Errorf("%w: %q is not a voice channel", api.ErrInvalidInput, channel.Name)
	}
	user, ok := s.identity.User()
	if !ok {
		return models.GuildMember{}, api.ErrMissingCredential
	}

	token, err := s.token(ctx)
	if err != nil {
		return models.GuildMember{}, err
	}
	return s.client.JoinVoiceChannel(ctx, token, guildID, user.ID, channelID)
}

// VoiceRegions lists the platform's voice regions.
func (s *chatService) VoiceRegions(ctx context.Context) ([]models.VoiceRegion, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.ListVoiceRegions(ctx, token)
}

// Reset empties the selection and every derived set. Used on logout.
func (s *chatService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guildGen++
	s.channelGen++
	s.guilds = nil
	s.channels = nil
	s.messages = nil
	s.sel = models.Selection{}
	s.channelsLoading = false
}

func (s *chatService) Guilds() []models.Guild {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Guild(nil), s.guilds...)
}

func (s *chatService) Channels() []models.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Channel(nil), s.channels...)
}

func (s *chatService) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

func (s *chatService) Selection() models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

func (s *chatService) ChannelsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channelsLoading
}

// filterChannels keeps text and voice channels, in the platform's order.
// Filtering is idempotent: running it over its own output changes nothing.
func filterChannels(channels []models.Channel) []models.Channel {
	out := make([]models.Channel, 0, len(channels))
	for _, ch := range channels {
		if ch.Kind == models.KindText || ch.Kind == models.KindVoice {
			out = append(out, ch)
		}
	}
	return out
}

func findChannel(channels []models.Channel, id string) (models.Channel, bool) {
	for _, ch := range channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return models.Channel{}, false
}
