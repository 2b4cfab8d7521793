package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avelichka/termcord/internal/client/services"
)

// getToken is an indirection used to facilitate testing. It points to the
// interactive no-echo token prompt and can be swapped in tests.
var getToken = GetToken

// Login prompts for an authentication token (read without echo) and hands it
// to the session service for validation. On success the guild sidebar is
// primed from the validated session and a greeting is printed.
//
// The token itself is never printed or logged; only the validation outcome is
// reported.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in. Use 'logout' first to switch accounts.")
		return nil
	}

	token, err := getToken(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		return err
	}

	a.chat.SetGuilds(a.session.Guilds())
	if user, ok := a.session.User(); ok {
		printlnFn("Logged in as " + displayName(user))
	}
	return nil
}

// Logout discards the stored credential and clears all fetched chat state.
// It succeeds even when no session is active.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.chat.Reset()
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the validated account identity, or the current session state
// when no identity is available.
func (a *App) Whoami(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		switch a.session.State() {
		case services.StateValidating:
			printlnFn("Validating session...")
		default:
			printlnFn("Not logged in.")
		}
		return nil
	}

	printlnFn("Logged in as " + displayName(user))
	if user.Email != "" {
		printlnFn("Email: " + user.Email)
	}
	if user.AvatarURL != "" {
		printlnFn("Avatar: " + user.AvatarURL)
	}
	printlnFn(fmt.Sprintf("ID: %s", user.ID))
	return nil
}
