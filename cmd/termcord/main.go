package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avelichka/termcord/internal/client/cli"
	"github.com/avelichka/termcord/internal/client/config"
	"github.com/avelichka/termcord/internal/logging"
)

// Version information, injected at build time via ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "termcord",
	Short: "Terminal Discord client",
	Long: `termcord is an interactive terminal client for Discord.

It validates a stored token on start, lets you browse your guilds and
channels, read and send messages, and hop between voice channels.
Configuration is layered: defaults, TERMCORD_* environment variables, an
optional JSON file (-c) and command-line flags.`,
	Version: fmt.Sprintf("%s (build %s, %s)", Version, Build, BuildTime),
	// Config flags are parsed by the config package itself, stage by stage.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := config.LoadConfig()
		log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

		app, err := cli.NewApp(cfg, log)
		if err != nil {
			return err
		}
		defer app.Close()

		app.Run(ctx)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
