package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Guilds(ctx context.Context) error
	Refresh(ctx context.Context) error
	Use(ctx context.Context, ref string) error
	Channels(ctx context.Context) error
	Join(ctx context.Context, ref string) error
	Messages(ctx context.Context) error
	Send(ctx context.Context, text string) error
	Regions(ctx context.Context) error
	Voice(ctx context.Context, ref string) error
}

// runREPL starts the read–eval–print loop.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Command handlers report their own failures as one-line banners; the loop
// itself never terminates on a command error. Fetch and send failures are
// transient here: the session stays up and the user simply re-runs the
// action.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("termcord %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: guilds, refresh, use <n|id>, channels, join <n|id>, messages, send <text>, regions, voice <n|id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			banner(a.Login(ctx))

		case "logout":
			banner(a.Logout(ctx))

		case "whoami":
			banner(a.Whoami(ctx))

		case "g", "guilds":
			banner(a.Guilds(ctx))

		case "refresh":
			banner(a.Refresh(ctx))

		case "use":
			if len(args) == 0 {
				printlnFn("Usage: use <number|guild-id>")
				continue
			}
			banner(a.Use(ctx, args[0]))

		case "c", "channels":
			banner(a.Channels(ctx))

		case "join":
			if len(args) == 0 {
				printlnFn("Usage: join <number|channel-id>")
				continue
			}
			banner(a.Join(ctx, args[0]))

		case "m", "messages":
			banner(a.Messages(ctx))

		case "send":
			banner(a.Send(ctx, strings.Join(args, " ")))

		case "regions":
			banner(a.Regions(ctx))

		case "voice":
			if len(args) == 0 {
				printlnFn("Usage: voice <number|channel-id>")
				continue
			}
			banner(a.Voice(ctx, args[0]))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// banner prints a command failure as a one-line, dismissible notice.
func banner(err error) {
	if err != nil {
		printlnFn("error:", err.Error())
	}
}
