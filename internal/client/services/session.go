// Package services contains application services for the useradm client.
// This file defines the session store: the single source of truth for
// "who is logged in", with durable token persistence across restarts.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dpetrovs/useradm/internal/client/api"
	"github.com/dpetrovs/useradm/internal/client/models"
	"github.com/dpetrovs/useradm/internal/client/repositories/tokens"
	"github.com/dpetrovs/useradm/internal/logging"
)

// accessTokenKey is the storage key holding the persisted bearer token.
const accessTokenKey = "access_token"

// Routes signaled to the navigator after login/logout.
const (
	RouteDashboard = "/dashboard"
	RouteLogin     = "/login"
)

// ErrLoginFailed is the single login-path sentinel. Every lower-level
// failure (transport, non-2xx, missing token, persistence) wraps into it.
var ErrLoginFailed = errors.New("login failed")

// Navigator receives fire-and-forget route-change signals from the session
// store. The store never blocks on it.
type Navigator interface {
	NavigateTo(path string)
}

// SessionStore defines session lifecycle operations for the client.
//
// Contract:
//   - Login: authenticate against the server and persist the token.
//   - Logout: clear in-memory and persisted state; idempotent.
//   - Init: restore a persisted session without any network call.
//   - IsLoggedIn: derived read, true iff a token is held.
//   - AccessToken: the current bearer token, empty when logged out.
type SessionStore interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Init(ctx context.Context) error
	IsLoggedIn() bool
	AccessToken() string
	CurrentUser() *models.User
}

type sessionStore struct {
	mu    sync.RWMutex
	token string
	user  *models.User

	client      api.Client
	tokens      tokens.Repository
	nav         Navigator
	log         logging.Logger
	checkExpiry bool
}

type SessionOption func(*sessionStore)

// WithExpiryCheck makes Init inspect the restored token's exp claim locally
// and discard expired tokens. Opaque (non-JWT) tokens are always adopted.
// No server round trip happens either way.
func WithExpiryCheck() SessionOption {
	return func(s *sessionStore) { s.checkExpiry = true }
}

// NewSessionStore constructs a SessionStore bound to the given API client,
// token repository and navigator. All dependencies are injected; the store
// never reaches for ambient state.
func NewSessionStore(client api.Client, repo tokens.Repository, nav Navigator, log logging.Logger, opts ...SessionOption) SessionStore {
	s := &sessionStore{client: client, tokens: repo, nav: nav, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login exchanges credentials for a token, persists it and signals
// navigation to the dashboard. On any failure no partial state remains:
// the token is set in memory only after it has been persisted.
func (s *sessionStore) Login(ctx context.Context, email, password string) error {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.log.Error(ctx, "login failed", "error", err)
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	if err := s.tokens.Set(ctx, accessTokenKey, []byte(token)); err != nil {
		s.log.Error(ctx, "failed to persist token", "error", err)
		return fmt.Errorf("%w: persisting token: %v", ErrLoginFailed, err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.nav.NavigateTo(RouteDashboard)
	return nil
}

// Logout wipes the session and signals navigation to the login route.
// Calling it while already logged out is a harmless no-op.
func (s *sessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted token", "error", err)
		return err
	}

	s.nav.NavigateTo(RouteLogin)
	return nil
}

// Init adopts a previously persisted token, if any. The token is not
// re-validated against the server.
func (s *sessionStore) Init(ctx context.Context) error {
	value, err := s.tokens.Get(ctx, accessTokenKey)
	if err != nil {
		return fmt.Errorf("reading persisted token: %w", err)
	}
	if len(value) == 0 {
		return nil
	}

	token := string(value)
	if s.checkExpiry && tokenExpired(token) {
		s.log.Warn(ctx, "discarding expired session token")
		return s.tokens.Delete(ctx, accessTokenKey)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.log.Info(ctx, "session restored from storage")
	return nil
}

func (s *sessionStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *sessionStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser returns the identity record, if one was ever populated.
// The login response does not include it, so this is usually nil.
func (s *sessionStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// tokenExpired reports whether token is a JWT with an exp claim in the
// past. The signature is deliberately not verified: only the server can
// do that, and Init must stay offline.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
