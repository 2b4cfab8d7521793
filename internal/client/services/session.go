// Package services contains the application services of the chat client.
// This file defines the session service: credential validation on start,
// token login, logout, and the derived session state the rest of the client
// reads but never writes.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/avelichka/termcord/internal/client/api"
	"github.com/avelichka/termcord/internal/client/credentials"
	"github.com/avelichka/termcord/internal/client/models"
	"github.com/avelichka/termcord/internal/logging"
)

// State is the session's lifecycle position.
type State string

const (
	// StateUnauthenticated: no usable credential; terminal until login.
	StateUnauthenticated State = "unauthenticated"
	// StateValidating: a stored credential is being checked against the API.
	StateValidating State = "validating"
	// StateAuthenticated: the credential was accepted and the user is known.
	StateAuthenticated State = "authenticated"
	// StateInvalid: validation hit a retryable failure (rate limit, 5xx);
	// the credential is kept so the user can try again.
	StateInvalid State = "invalid"
)

// SessionService owns authentication state.
//
// Contract:
//   - Bootstrap: validate any stored credential and load the initial guild
//     list; with no credential stored it settles in StateUnauthenticated
//     without any network call.
//   - Login: store a pasted token, then validate it the same way; a token
//     the API rejects is removed again.
//   - Logout: clear the credential and all derived state unconditionally.
//
// The session state is read-only for every other component; only this
// service (and the login path feeding it) mutates the credential store.
type SessionService interface {
	Bootstrap(ctx context.Context) State
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	State() State
	User() (models.User, bool)
	Guilds() []models.Guild
	Reason() string
}

type sessionService struct {
	client api.Client
	creds  credentials.Store
	log    logging.Logger

	mu         sync.Mutex
	validating bool
	state      State
	user       models.User
	hasUser    bool
	guilds     []models.Guild
	reason     string
}

// NewSessionService constructs a SessionService over the given gateway and
// credential store.
func NewSessionService(client api.Client, creds credentials.Store, log logging.Logger) SessionService {
	return &sessionService{
		client: client,
		creds:  creds,
		log:    log,
		state:  StateUnauthenticated,
	}
}

// Bootstrap drives unauthenticated → validating → {authenticated | unauthenticated}.
//
// At most one validation is in flight; a concurrent call is a no-op that
// reports the state current at that moment. A guild-list failure after a
// successful identity check is non-fatal: the session stays authenticated
// and the failure is surfaced via Reason.
func (s *sessionService) Bootstrap(ctx context.Context) State {
	s.mu.Lock()
	if s.validating {
		cur := s.state
		s.mu.Unlock()
		return cur
	}
	s.validating = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.validating = false
		s.mu.Unlock()
	}()

	token, err := s.creds.Get(ctx)
	if err != nil || token == "" {
		s.setUnauthenticated("")
		return StateUnauthenticated
	}

	s.setState(StateValidating)
	user, err := s.client.CurrentUser(ctx, token)
	if err != nil {
		return s.validationFailed(ctx, err)
	}

	guilds, gerr := s.client.ListGuilds(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.user = user
	s.hasUser = true
	s.guilds = guilds
	s.reason = ""
	if gerr != nil {
		// Non-fatal: the identity is proven, only the guild list is missing.
		s.guilds = nil
		s.reason = fmt.Sprintf("guild list unavailable: %v", gerr)
		s.log.Warn(ctx, "guild list fetch failed", "err", gerr)
	}
	s.log.Info(ctx, "session authenticated", "user_id", user.ID)
	return StateAuthenticated
}

// validationFailed maps a failed identity check onto the session state.
// A rejected or unreachable credential is cleared; anything retryable
// (rate limit, server error) keeps the credential and parks the session
// in StateInvalid.
func (s *sessionService) validationFailed(ctx context.Context, err error) State {
	if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, api.ErrNetwork) || errors.Is(err, api.ErrMissingCredential) {
		if cerr := s.creds.Clear(ctx); cerr != nil {
			s.log.Error(ctx, "credential clear failed", "err", cerr)
		}
		s.setUnauthenticated(fmt.Sprintf("session expired: %v", err))
		s.log.Warn(ctx, "credential validation failed", "err", err)
		return StateUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateInvalid
	s.reason = fmt.Sprintf("validation unavailable: %v", err)
	s.log.Warn(ctx, "credential validation deferred", "err", err)
	return StateInvalid
}

// Login stores the pasted token and validates it. A token the platform
// rejects is cleared again so a bad paste never lingers on disk.
func (s *sessionService) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: token is required", api.ErrInvalidInput)
	}
	if err := s.creds.Set(ctx, token); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	switch s.Bootstrap(ctx) {
	case StateAuthenticated:
		return nil
	default:
		reason := s.Reason()
		if reason == "" {
			reason = "login failed"
		}
		return errors.New(reason)
	}
}

// Logout clears the credential store unconditionally and resets the
// session to unauthenticated.
func (s *sessionService) Logout(ctx context.Context) error {
	err := s.creds.Clear(ctx)
	s.setUnauthenticated("")
	s.log.Info(ctx, "session closed")
	return err
}

func (s *sessionService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the validated identity, if the session is authenticated.
func (s *sessionService) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.hasUser
}

// Guilds returns a copy of the guild list fetched during validation, in
// the order the platform returned it.
func (s *sessionService) Guilds() []models.Guild {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Guild, len(s.guilds))
	copy(out, s.guilds)
	return out
}

// Reason reports why the session is not (fully) authenticated, or the last
// non-fatal bootstrap problem. Empty when there is nothing to surface.
func (s *sessionService) Reason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

func (s *sessionService) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *sessionService) setUnauthenticated(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUnauthenticated
	s.user = models.User{}
	s.hasUser = false
	s.guilds = nil
	s.reason = reason
}
