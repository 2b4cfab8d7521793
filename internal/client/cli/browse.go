package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avelichka/termcord/internal/client/models"
)

// Guilds prints the guild sidebar in its listed order. The printed numbers
// are accepted by 'use' as shorthand for the guild ID.
func (a *App) Guilds(ctx context.Context) error {
	guilds := a.chat.Guilds()
	if len(guilds) == 0 {
		printlnFn("No guilds. Try 'refresh'.")
		return nil
	}
	for i, g := range guilds {
		printlnFn(fmt.Sprintf("%2d. %s (%s)", i+1, g.Name, g.ID))
	}
	return nil
}

// Refresh refetches the guild sidebar and prints it.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.chat.RefreshGuilds(ctx); err != nil {
		return err
	}
	return a.Guilds(ctx)
}

// Use selects a guild by list number or ID and prints its channels once
// they arrive.
func (a *App) Use(ctx context.Context, ref string) error {
	guild, err := resolveGuild(a.chat.Guilds(), ref)
	if err != nil {
		return err
	}
	if err := a.chat.SelectGuild(ctx, guild.ID); err != nil {
		return err
	}
	printlnFn("Now browsing " + guild.Name)
	return a.Channels(ctx)
}

// Channels prints the channel list of the active guild, text channels
// first the way the API ordered them. The printed numbers are accepted by
// 'join' and 'voice'.
func (a *App) Channels(ctx context.Context) error {
	if a.chat.Selection().GuildID == "" {
		printlnFn("No guild selected. Use 'guilds' then 'use <n>'.")
		return nil
	}
	if a.chat.ChannelsLoading() {
		printlnFn("Channels are still loading...")
		return nil
	}
	channels := a.chat.Channels()
	if len(channels) == 0 {
		printlnFn("No text or voice channels in this guild.")
		return nil
	}
	for i, ch := range channels {
		printlnFn(fmt.Sprintf("%2d. %s (%s)", i+1, channelLabel(ch), ch.ID))
	}
	return nil
}

// Join selects a text channel by list number or ID and prints its most
// recent messages.
func (a *App) Join(ctx context.Context, ref string) error {
	channel, err := resolveChannel(a.chat.Channels(), ref)
	if err != nil {
		return err
	}
	if err := a.chat.SelectChannel(ctx, channel.ID); err != nil {
		return err
	}
	if channel.Kind == models.KindVoice {
		printlnFn("Selected voice channel " + channel.Name + ". Use 'voice' to connect.")
		return nil
	}
	return a.Messages(ctx)
}

// resolveGuild interprets ref as a 1-based number into the listed order, or
// failing that as a raw guild ID.
func resolveGuild(guilds []models.Guild, ref string) (models.Guild, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(guilds) {
			return models.Guild{}, fmt.Errorf("no guild numbered %d", n)
		}
		return guilds[n-1], nil
	}
	if g, ok := findGuild(guilds, ref); ok {
		return g, nil
	}
	return models.Guild{}, fmt.Errorf("unknown guild %q", ref)
}

// resolveChannel interprets ref as a 1-based number into the listed order,
// or failing that as a raw channel ID.
func resolveChannel(channels []models.Channel, ref string) (models.Channel, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(channels) {
			return models.Channel{}, fmt.Errorf("no channel numbered %d", n)
		}
		return channels[n-1], nil
	}
	if ch, ok := channelByID(channels, ref); ok {
		return ch, nil
	}
	return models.Channel{}, fmt.Errorf("unknown channel %q", ref)
}
