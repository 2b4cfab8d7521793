package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avelichka/termcord/internal/client/models"
)

// Regions lists the platform's voice regions, marking the optimal one and
// skipping nothing: deprecated and custom regions are shown with a tag so
// the user knows what they are picking.
func (a *App) Regions(ctx context.Context) error {
	regions, err := a.chat.VoiceRegions(ctx)
	if err != nil {
		return err
	}
	for _, r := range regions {
		printlnFn(formatRegion(r))
	}
	return nil
}

// Voice moves the current user into a voice channel picked by list number
// or ID and reports the resulting membership state.
func (a *App) Voice(ctx context.Context, ref string) error {
	channel, err := resolveChannel(a.chat.Channels(), ref)
	if err != nil {
		return err
	}
	member, err := a.chat.JoinVoice(ctx, channel.ID)
	if err != nil {
		return err
	}

	printlnFn("Connected to )" + channel.Name)
	var state []string
	if member.Mute {
		state = append(state, "muted")
	}
	if member.Deaf {
		state = append(state, "deafened")
	}
	if len(state) > 0 {
		printlnFn("Note: you are " + strings.Join(state, " and "))
	}
	return nil
}

func formatRegion(r models.VoiceRegion) string {
	var tags []string
	if r.Optimal {
		tags = append(tags, "optimal")
	}
	if r.Deprecated {
		tags = append(tags, "deprecated")
	}
	if r.Custom {
		tags = append(tags, "custom")
	}
	if len(tags) == 0 {
		return fmt.Sprintf("%s (%s)", r.Name, r.ID)
	}
	return fmt.Sprintf("%s (%s) [%s]", r.Name, r.ID, strings.Join(tags, ", "))
}
