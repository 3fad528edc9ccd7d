package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookit/internal/client/client"
	"github.com/dmitrijs2005/bookit/internal/client/holds"
	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/client/repositories/receipts"
	"github.com/dmitrijs2005/bookit/internal/client/session"
	"github.com/dmitrijs2005/bookit/internal/common"
	"github.com/dmitrijs2005/bookit/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - CodeLogin / AdminLogin: obtain a token, store it, then fetch the profile.
//     Signing in as a different user empties the cart.
//   - Refresh: re-read the profile; a rejected token ends the session.
//   - Logout: forget the session, the local receipts and every hold.
//   - Ping: check server liveness.
type AuthService interface {
	CodeLogin(ctx context.Context, code string) (models.User, error)
	AdminLogin(ctx context.Context, phone string, password []byte) (models.User, error)
	Refresh(ctx context.Context) (models.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	api      client.AuthAPI
	session  *session.Store
	holds    *holds.Store
	receipts receipts.Repository
	log      logging.Logger
}

func NewAuthService(api client.AuthAPI, sess *session.Store, hs *holds.Store, db *sql.DB, log logging.Logger) AuthService {
	return &authService{
		api:      api,
		session:  sess,
		holds:    hs,
		receipts: receipts.NewSQLiteRepository(db),
		log:      log,
	}
}

func (a *authService) CodeLogin(ctx context.Context, code string) (models.User, error) {
	tok, err := a.api.WxLogin(ctx, code)
	if err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}
	return a.startSession(ctx, tok)
}

// AdminLogin wipes password once it has been sent.
func (a *authService) AdminLogin(ctx context.Context, phone string, password []byte) (models.User, error) {
	defer common.WipeByteArray(password)

	tok, err := a.api.AdminLogin(ctx, phone, string(password))
	if err != nil {
		return models.User{}, fmt.Errorf("admin login error: %w", err)
	}
	return a.startSession(ctx, tok)
}

func (a *authService) startSession(ctx context.Context, tok models.TokenResponse) (models.User, error) {
	if tok.AccessToken == "" {
		return models.User{}, fmt.Errorf("login error: %w", common.ErrInvalidToken)
	}
	prev, hadUser := a.session.User()

	if err := a.session.SetToken(ctx, tok.AccessToken); err != nil {
		return models.User{}, fmt.Errorf("session saving error: %w", err)
	}

	u, err := a.Refresh(ctx)
	if err != nil {
		if !errors.Is(err, client.ErrUnauthorized) {
			_ = a.session.Logout(ctx)
		}
		return models.User{}, err
	}

	// Holds belong to whoever built the cart.
	if !hadUser || prev.UID != u.UID {
		a.holds.Clear()
	}

	a.log.Info(ctx, "logged in", "user", u.UID, "role", u.Role)
	return u, nil
}

func (a *authService) Refresh(ctx context.Context) (models.User, error) {
	if !a.session.IsLoggedIn() {
		return models.User{}, session.ErrNotLoggedIn
	}
	if a.session.TokenExpired() {
		a.expire(ctx)
		return models.User{}, fmt.Errorf("%w: %w", client.ErrUnauthorized, common.ErrTokenExpired)
	}

	u, err := a.api.Me(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		a.expire(ctx)
		return models.User{}, err
	}
	if err != nil {
		return models.User{}, fmt.Errorf("profile error: %w", err)
	}

	if err := a.session.SetUser(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("session saving error: %w", err)
	}
	return u, nil
}

func (a *authService) expire(ctx context.Context) {
	a.log.Warn(ctx, "session rejected by server, logging out")
	if err := a.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
	}
}

func (a *authService) Logout(ctx context.Context) error {
	a.holds.Clear()

	errReceipts := a.receipts.Clear(ctx)
	errSession := a.session.Logout(ctx)
	if err := errors.Join(errSession, errReceipts); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.api.Ping(ctx)
}
