package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avelichka/termcord/internal/client/models"
)

const (
	// DefaultBaseURL is the platform's public REST endpoint.
	DefaultBaseURL = "https://discord.com/api/v10"

	// DefaultCDNBaseURL serves guild icons and user avatars.
	DefaultCDNBaseURL = "https://cdn.discordapp.com"

	// DefaultHTTPTimeout bounds every request; expirations surface as ErrNetwork.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultMessageLimit is the page size used when the caller passes limit <= 0.
	DefaultMessageLimit = 50
)

// Channel type discriminators on the wire. Everything else maps to KindUnknown.
const (
	channelTypeText  = 0
	channelTypeVoice = 2
)

// DiscordClient is the HTTP implementation of Client.
type DiscordClient struct {
	baseURL    string
	cdnBaseURL string
	httpClient *http.Client
}

// NewDiscordClient creates a client against the public API endpoint.
func NewDiscordClient() *DiscordClient {
	return &DiscordClient{
		baseURL:    DefaultBaseURL,
		cdnBaseURL: DefaultCDNBaseURL,
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// WithBaseURL returns a copy of the client talking to the given endpoint.
// Useful for testing with httptest servers.
func (c *DiscordClient) WithBaseURL(baseURL string) *DiscordClient {
	out := *c
	out.baseURL = strings.TrimRight(baseURL, "/")
	return &out
}

// WithHTTPClient returns a copy of the client using the given HTTP client.
func (c *DiscordClient) WithHTTPClient(httpClient *http.Client) *DiscordClient {
	out := *c
	out.httpClient = httpClient
	return &out
}

func (c *DiscordClient) CurrentUser(ctx context.Context, token string) (models.User, error) {
	var p userPayload
	if err := c.do(ctx, token, http.MethodGet, "/users/@me", nil, &p); err != nil {
		return models.User{}, err
	}
	return c.toUser(p), nil
}

func (c *DiscordClient) ListGuilds(ctx context.Context, token string) ([]models.Guild, error) {
	var ps []guildPayload
	if err := c.do(ctx, token, http.MethodGet, "/users/@me/guilds", nil, &ps); err != nil {
		return nil, err
	}
	guilds := make([]models.Guild, 0, len(ps))
	for _, p := range ps {
		guilds = append(guilds, c.toGuild(p))
	}
	return guilds, nil
}

func (c *DiscordClient) ListChannels(ctx context.Context, token, guildID string) ([]models.Channel, error) {
	if strings.TrimSpace(guildID) == "" {
		return nil, fmt.Errorf("%w: guild id is required", ErrInvalidInput)
	}
	var ps []channelPayload
	path := "/guilds/" + url.PathEscape(guildID) + "/channels"
	if err := c.do(ctx, token, http.MethodGet, path, nil, &ps); err != nil {
		return nil, err
	}
	channels := make([]models.Channel, 0, len(ps))
	for _, p := range ps {
		channels = append(channels, toChannel(p))
	}
	return channels, nil
}

func (c *DiscordClient) ListMessages(ctx context.Context, token, channelID string, limit int) ([]models.Message, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, fmt.Errorf("%w: channel id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	var ps []messagePayload
	path := "/channels/" + url.PathEscape(channelID) + "/messages?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &ps); err != nil {
		return nil, err
	}
	messages := make([]models.Message, 0, len(ps))
	for _, p := range ps {
		messages = append(messages, toMessage(p))
	}
	return messages, nil
}

func (c *DiscordClient) SendMessage(ctx context.Context, token, channelID, content string) (models.Message, error) {
	if strings.TrimSpace(channelID) == "" {
		return models.Message{}, fmt.Errorf("%w: channel id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return models.Message{}, fmt.Errorf("%w: message content is required", ErrInvalidInput)
	}
	// The nonce lets the platform deduplicate a resend of the same message.
	body := sendMessageRequest{Content: content, Nonce: uuid.NewString()}
	var p messagePayload
	path := "/channels/" + url.PathEscape(channelID) + "/messages"
	if err := c.do(ctx, token, http.MethodPost, path, body, &p); err != nil {
		return models.Message{}, err
	}
	return toMessage(p), nil
}

func (c *DiscordClient) ListVoiceRegions(ctx context.Context, token string) ([]models.VoiceRegion, error) {
	var ps []voiceRegionPayload
	if err := c.do(ctx, token, http.MethodGet, "/voice/regions", nil, &ps); err != nil {
		return nil, err
	}
	regions := make([]models.VoiceRegion, 0, len(ps))
	for _, p := range ps {
		regions = append(regions, models.VoiceRegion(p))
	}
	return regions, nil
}

func (c *DiscordClient) JoinVoiceChannel(ctx context.Context, token, guildID, userID, channelID string) (models.GuildMember, error) {
	if strings.TrimSpace(guildID) == "" || strings.TrimSpace(userID) == "" || strings.TrimSpace(channelID) == "" {
		return models.GuildMember{}, fmt.Errorf("%w: guild, user and channel ids are required", ErrInvalidInput)
	}
	body := moveMemberRequest{ChannelID: channelID}
	var p memberPayload
	path := "/guilds/" + url.PathEscape(guildID) + "/members/" + url.PathEscape(userID)
	if err := c.do(ctx, token, http.MethodPatch, path, body, &p); err != nil {
		return models.GuildMember{}, err
	}
	return models.GuildMember{
		Nick:           p.Nick,
		VoiceChannelID: p.ChannelID,
		Mute:           p.Mute,
		Deaf:           p.Deaf,
	}, nil
}

// do issues one authenticated request and decodes the JSON response into out.
// The credential is sent exactly as stored, in the Authorization header.
func (c *DiscordClient) do(ctx context.Context, token, method, path string, body, out any) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingCredential
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrInvalidInput, err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
	}
	return nil
}

// mapStatus folds every non-success response into the sentinel taxonomy.
func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, code)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", ErrNotFound, code)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimited, code)
	default:
		return fmt.Errorf("%w: status %d", ErrServer, code)
	}
}

func (c *DiscordClient) toUser(p userPayload) models.User {
	u := models.User{
		ID:            p.ID,
		Username:      p.Username,
		Discriminator: p.Discriminator,
		Email:         p.Email,
	}
	if p.Avatar != "" {
		u.AvatarURL = fmt.Sprintf("%s/avatars/%s/%s.png", c.cdnBaseURL, p.ID, p.Avatar)
	}
	return u
}

func (c *DiscordClient) toGuild(p guildPayload) models.Guild {
	g := models.Guild{ID: p.ID, Name: p.Name}
	if p.Icon != "" {
		g.IconURL = fmt.Sprintf("%s/icons/%s/%s.png", c.cdnBaseURL, p.ID, p.Icon)
	}
	return g
}

func toChannel(p channelPayload) models.Channel {
	ch := models.Channel{ID: p.ID, Name: p.Name}
	switch p.Type {
	case channelTypeText:
		ch.Kind = models.KindText
	case channelTypeVoice:
		ch.Kind = models.KindVoice
	default:
		ch.Kind = models.KindUnknown
	}
	return ch
}

func toMessage(p messagePayload) models.Message {
	return models.Message{
		ID:        p.ID,
		Author:    p.Author.Username,
		Content:   p.Content,
		Timestamp: p.Timestamp,
	}
}
