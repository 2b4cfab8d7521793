package services

import (
	"context"
	"sync"

	"github.com/avelichka/termcord/internal/client/models"
)

// fakeClient implements api.Client with per-operation stubs and call
// counting, so tests can script responses and assert which calls happened.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int

	currentUserFn  func(token string) (models.User, error)
	listGuildsFn   func(token string) ([]models.Guild, error)
	listChannelsFn func(token, guildID string) ([]models.Channel, error)
	listMessagesFn func(token, channelID string, limit int) ([]models.Message, error)
	sendMessageFn  func(token, channelID, content string) (models.Message, error)
	voiceRegionsFn func(token string) ([]models.VoiceRegion, error)
	joinVoiceFn    func(token, guildID, userID, channelID string) (models.GuildMember, error)
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}}
}

func (f *fakeClient) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
}

func (f *fakeClient) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeClient) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) CurrentUser(ctx context.Context, token string) (models.User, error) {
	f.record("CurrentUser")
	if f.currentUserFn != nil {
		return f.currentUserFn(token)
	}
	return models.User{}, nil
}

func (f *fakeClient) ListGuilds(ctx context.Context, token string) ([]models.Guild, error) {
	f.record("ListGuilds")
	if f.listGuildsFn != nil {
		return f.listGuildsFn(token)
	}
	return nil, nil
}

func (f *fakeClient) ListChannels(ctx context.Context, token, guildID string) ([]models.Channel, error) {
	f.record("ListChannels")
	if f.listChannelsFn != nil {
		return f.listChannelsFn(token, guildID)
	}
	return nil, nil
}

func (f *fakeClient) ListMessages(ctx context.Context, token, channelID string, limit int) ([]models.Message, error) {
	f.record("ListMessages")
	if f.listMessagesFn != nil {
		return f.listMessagesFn(token, channelID, limit)
	}
	return nil, nil
}

func (f *fakeClient) SendMessage(ctx context.Context, token, channelID, content string) (models.Message, error) {
	f.record("SendMessage")
	if f.sendMessageFn != nil {
		return f.sendMessageFn(token, channelID, content)
	}
	return models.Message{}, nil
}

func (f *fakeClient) ListVoiceRegions(ctx context.Context, token string) ([]models.VoiceRegion, error) {
	f.record("ListVoiceRegions")
	if f.voiceRegionsFn != nil {
		return f.voiceRegionsFn(token)
	}
	return nil, nil
}

func (f *fakeClient) JoinVoiceChannel(ctx context.Context, token, guildID, userID, channelID string) (models.GuildMember, error) {
	f.record("JoinVoiceChannel")
	if f.joinVoiceFn != nil {
		return f.joinVoiceFn(token, guildID, userID, channelID)
	}
	return models.GuildMember{}, nil
}

// fakeIdentity satisfies identityProvider.
type fakeIdentity struct {
	user    models.User
	hasUser bool
}

func (f *fakeIdentity) User() (models.User, bool) {
	return f.user, f.hasUser
}
