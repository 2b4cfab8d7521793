package api

import "errors"

// Sentinel errors for every way a gateway call can fail. Callers match them
// with errors.Is; the raw transport error is only ever carried as wrapped
// context behind ErrNetwork.
var (
	// Pre-flight failures, raised before any network I/O.
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidInput      = errors.New("invalid input")

	// Response failures, mapped from the platform's status codes.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")

	// Transport-level failures (connection refused, timeouts, bad payloads).
	ErrNetwork = errors.New("network error")
)
