// Package session keeps who is signed in and in which role they act.
//
// The state (access token, cached profile, role override) lives in memory
// and is mirrored to the local metadata repository so it survives restarts.
// Admins may act as another role; everybody else always acts as themselves.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bookit/internal/timex"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrNotAdmin        = errors.New("only admins can switch role")
	ErrUnsupportedRole = errors.New("unsupported role")
)

const (
	keyToken        = "token"
	keyUser         = "user_info"
	keyRoleOverride = "role_override"
)

type Store struct {
	mu       sync.RWMutex
	repo     metadata.Repository
	clock    timex.Clock
	token    string
	user     *models.User
	override models.Role
}

func New(repo metadata.Repository, clock timex.Clock) *Store {
	return &Store{repo: repo, clock: clock}
}

// Load restores the persisted session. An access token whose exp claim has
// passed is discarded together with the rest of the session.
func (s *Store) Load(ctx context.Context) error {
	values, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = values[keyToken]
	s.user = nil
	if raw, ok := values[keyUser]; ok {
		var u models.User
		if json.Unmarshal([]byte(raw), &u) == nil {
			s.user = &u
		}
	}
	s.override = models.Role(values[keyRoleOverride])
	if !s.override.Valid() {
		s.override = ""
	}
	expired := s.token != "" && tokenExpired(s.token, s.clock)
	s.mu.Unlock()

	if expired {
		return s.Logout(ctx)
	}
	return nil
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

// TokenExpired reports whether the current token carries an exp claim in the past.
func (s *Store) TokenExpired() bool {
	tok := s.Token()
	return tok != "" && tokenExpired(tok, s.clock)
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, keyToken, token); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// User returns the cached profile, if any.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// SetUser caches the profile. A leftover override is dropped when the
// user is not an admin (any more).
func (s *Store) SetUser(ctx context.Context, u models.User) error {
	if !s.IsLoggedIn() {
		return ErrNotLoggedIn
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.repo.Set(ctx, keyUser, string(data)); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = &u
	stale := s.override != "" && actualRole(s.user) != models.RoleAdmin
	s.mu.Unlock()

	if stale {
		return s.ClearRoleOverride(ctx)
	}
	return nil
}

// ActualRole is the role the server assigned, customer when unknown.
func (s *Store) ActualRole() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return actualRole(s.user)
}

// UserRole is the role the user currently acts in.
func (s *Store) UserRole() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.override != "" {
		return s.override
	}
	return actualRole(s.user)
}

// RoleOverride returns the active override, "" when none.
func (s *Store) RoleOverride() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.override
}

// SetRoleOverride lets an admin act as another role. Choosing the actual
// role removes the override.
func (s *Store) SetRoleOverride(ctx context.Context, role models.Role) error {
	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()

	if user == nil || actualRole(user) != models.RoleAdmin {
		return ErrNotAdmin
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedRole, role)
	}

	if role == actualRole(user) {
		return s.ClearRoleOverride(ctx)
	}

	if err := s.repo.Set(ctx, keyRoleOverride, string(role)); err != nil {
		return err
	}
	s.mu.Lock()
	s.override = role
	s.mu.Unlock()
	return nil
}

func (s *Store) ClearRoleOverride(ctx context.Context) error {
	if err := s.repo.Delete(ctx, keyRoleOverride); err != nil {
		return err
	}
	s.mu.Lock()
	s.override = ""
	s.mu.Unlock()
	return nil
}

// Logout forgets token, profile and override. The metadata table holds
// nothing but session keys, so it is emptied as a whole.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.override = ""
	s.mu.Unlock()
	return nil
}

func actualRole(u *models.User) models.Role {
	if u == nil || u.Role == "" {
		return models.RoleCustomer
	}
	return u.Role
}

// tokenExpired reads the exp claim without verifying the signature; the
// server remains the authority. Opaque tokens never count as expired.
func tokenExpired(token string, clock timex.Clock) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(clock.Now())
}
