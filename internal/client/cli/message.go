package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avelichka/termcord/internal/client/models"
)

// getSimpleText is an indirection used to facilitate testing. It points to
// the interactive line prompt and can be swapped in tests.
var getSimpleText = GetSimpleText

// Messages prints the transcript of the active text channel, oldest first.
func (a *App) Messages(ctx context.Context) error {
	if a.chat.Selection().ChannelID == "" {
		printlnFn("No channel selected. Use 'channels' then 'join <n>'.")
		return nil
	}
	messages := a.chat.Messages()
	if len(messages) == 0 {
		printlnFn("No messages yet.")
		return nil
	}
	for _, m := range messages {
		printlnFn(formatMessage(m))
	}
	return nil
}

// Send posts text to the active text channel and echoes the accepted
// message back the way the server recorded it. When called without text it
// prompts for a line first.
func (a *App) Send(ctx context.Context, text string) error {
	if text == "" {
		var err error
		text, err = getSimpleText(a.reader, "Enter message", os.Stdout)
		if err != nil {
			return err
		}
	}

	msg, err := a.chat.Send(ctx, text)
	if err != nil {
		return err
	}
	printlnFn(formatMessage(msg))
	return nil
}

func formatMessage(m models.Message) string {
	return fmt.Sprintf("[%s] %s: %s", m.Timestamp, m.Author, m.Content)
}
