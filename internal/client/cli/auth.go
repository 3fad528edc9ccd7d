package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookit/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errUsage = errors.New("usage")

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

// Login signs in with phone and password (staff accounts).
func (a *App) Login(ctx context.Context, args []string) error {
	phone := ""
	if len(args) > 0 {
		phone = args[0]
	} else {
		var err error
		if phone, err = getSimpleText(a.reader, "Enter phone", a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.authService.AdminLogin(ctx, phone, password)
	if err != nil {
		return err
	}
	a.setMode(ModeOnline)
	a.printf("Welcome, %s (%s)\n", displayName(u), u.Role)
	return nil
}

// CodeLogin signs in with a one-time login code issued by the mini-program platform.
func (a *App) CodeLogin(ctx context.Context, args []string) error {
	code := ""
	if len(args) > 0 {
		code = args[0]
	} else {
		var err error
		if code, err = getSimpleText(a.reader, "Enter login code", a.out); err != nil {
			return err
		}
	}

	u, err := a.authService.CodeLogin(ctx, code)
	if err != nil {
		return err
	}
	a.setMode(ModeOnline)
	a.printf("Welcome, %s (%s)\n", displayName(u), u.Role)
	return nil
}

// Me refreshes the profile from the server.
func (a *App) Me(ctx context.Context, _ []string) error {
	u, err := a.authService.Refresh(ctx)
	if err != nil {
		return err
	}
	a.printf("uid: %s\nname: %s\nphone: %s\nrole: %s (acting as %s)\n",
		u.UID, displayName(u), u.Phone, a.session.ActualRole(), a.session.UserRole())
	return nil
}

// Role shows the current perspective or, for admins, switches it.
// Switching keeps the cart.
func (a *App) Role(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("acting as %s (actual role %s)\n", a.session.UserRole(), a.session.ActualRole())
		return nil
	}

	role, err := models.ParseRole(args[0])
	if err != nil {
		role = models.Role(args[0])
	}
	if err := a.session.SetRoleOverride(ctx, role); err != nil {
		return err
	}
	a.printf("now acting as %s\n", a.session.UserRole())
	return nil
}

// Logout ends the session and empties the cart.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out\n")
	return nil
}

func (a *App) expireSession(ctx context.Context) {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout after 401 failed", "error", err)
	}
}

func displayName(u models.User) string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.UID
}
