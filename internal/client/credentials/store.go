// Package credentials is the storage facade for the bearer credential.
//
// The store holds at most one token, saved exactly as obtained: it is never
// parsed, never validated locally and never logged. Validity can only be
// proven by a round trip to the platform, which is the session service's
// job. The store itself has no network side effects.
package credentials

import "context"

// tokenKey is the single slot the credential lives under.
const tokenKey = "token"

// Store is the injected key-value port for the credential slot.
//
// Get returns an empty string when no credential is stored; absence is not
// an error. Set overwrites any previous value verbatim. Clear is idempotent.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}
