// Package cli provides the interactive termcord command-line client.
//
// It wires configuration, the credential store, the Discord gateway and the
// session/chat services into an interactive REPL. Typical flow: validate any
// stored token on start, list guilds, pick a guild and a text channel, read
// and send messages.
//
// Key features:
//   - Login / Logout (token pasted without echo, validated before use)
//   - Guild and channel browsing with number-or-ID selection
//   - Message transcripts and sending
//   - Voice regions and voice-channel join
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
