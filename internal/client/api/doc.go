// Package api is the typed gateway to the messaging platform's REST API.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) covering the seven
//     operations the client needs: current user, guild/channel/message
//     listing, message sending, voice regions, and voice-channel moves.
//  2. A concrete HTTP implementation (see DiscordClient) that authenticates
//     with an explicitly passed bearer credential, decodes wire payloads
//     into the models package, and folds every failure into a small set of
//     sentinel errors.
//
// # Error Handling
//
// Callers match failures with errors.Is against ErrMissingCredential,
// ErrInvalidInput, ErrUnauthorized, ErrNotFound, ErrRateLimited, ErrServer
// and ErrNetwork. Input validation happens before any network I/O, and raw
// transport errors never escape unwrapped.
//
// Concurrency & Contexts
//
// DiscordClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; timeouts come from the underlying
// HTTP client and surface as ErrNetwork.
package api
