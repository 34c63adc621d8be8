package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"chemexplorer/internal/client/api"
	"chemexplorer/internal/client/storage"
	"chemexplorer/internal/validation"
	pkgapi "chemexplorer/pkg/api"
)

// AuthAPI is the part of the API client the session manager needs.
type AuthAPI interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.TokenResponse, error)
}

// Session is the authenticated identity and bearer credential held by the
// client for the current interactive period.
type Session struct {
	Username string
	Token    string
}

// IsAuthenticated reports whether the session carries a credential.
// This is the defining invariant: authenticated iff the token is non-empty.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Manager owns the session. It is the only writer of session state; other
// components read the current session to authorize their requests.
//
// A token restored from durable storage is trusted without re-validation.
// If it turns out to be stale, protected calls fail with a 401 and the
// surrounding application must treat that as an implicit logout. That policy
// lives with the caller, not here.
type Manager struct {
	api     AuthAPI
	store   storage.SessionStorage
	logger  *slog.Logger
	current Session
}

// NewManager creates a session manager backed by the given API client and
// durable store.
func NewManager(apiClient AuthAPI, store storage.SessionStorage, logger *slog.Logger) *Manager {
	return &Manager{
		api:    apiClient,
		store:  store,
		logger: logger,
	}
}

// Current returns the session as it stands.
func (m *Manager) Current() Session {
	return m.current
}

// Token returns the current bearer credential, empty when unauthenticated.
func (m *Manager) Token() string {
	return m.current.Token
}

// Login authenticates against the server and, on success, establishes the
// session in memory and in durable storage. On any failure no state changes.
func (m *Manager) Login(ctx context.Context, username, password string) (Session, error) {
	if username == "" {
		return Session{}, &api.AuthError{Detail: "username cannot be empty"}
	}
	if password == "" {
		return Session{}, &api.AuthError{Detail: "password cannot be empty"}
	}

	resp, err := m.api.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return Session{}, err
	}

	return m.establish(ctx, username, resp.AccessToken)
}

// Register creates a new account. A successful registration logs the user in
// exactly as Login does.
func (m *Manager) Register(ctx context.Context, username, email, password string) (Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return Session{}, &api.AuthError{Err: err, Detail: err.Error()}
	}
	if err := validation.ValidateEmail(email); err != nil {
		return Session{}, &api.AuthError{Err: err, Detail: err.Error()}
	}
	if err := validation.ValidatePassword(password); err != nil {
		return Session{}, &api.AuthError{Err: err, Detail: err.Error()}
	}

	resp, err := m.api.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return Session{}, err
	}

	return m.establish(ctx, username, resp.AccessToken)
}

// Logout clears the session unconditionally: in-memory fields and the durable
// entries. Logging out while already logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.current = Session{}

	if err := m.store.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete stored session: %w", err)
	}

	m.logger.Info("session cleared")
	return nil
}

// Restore reconstructs the session from durable storage at startup.
// The stored credential is trusted as-is (trust-on-read); the server is not
// consulted. Returns false when no complete session is stored.
func (m *Manager) Restore(ctx context.Context) (Session, bool, error) {
	stored, err := m.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return Session{}, false, nil
		}
		return Session{}, false, fmt.Errorf("failed to read stored session: %w", err)
	}

	m.current = Session{
		Username: stored.Username,
		Token:    stored.Token,
	}

	m.logger.Info("session restored", "username", stored.Username)
	return m.current, true, nil
}

// establish persists and installs a freshly issued session. The durable write
// happens first: if it fails, the login is reported as failed and memory is
// left untouched.
func (m *Manager) establish(ctx context.Context, username, token string) (Session, error) {
	if token == "" {
		return Session{}, &api.AuthError{Detail: "server did not return a token"}
	}

	data := &storage.SessionData{
		Token:    token,
		Username: username,
	}
	if err := m.store.SaveSession(ctx, data); err != nil {
		return Session{}, fmt.Errorf("failed to save session: %w", err)
	}

	m.current = Session{
		Username: username,
		Token:    token,
	}

	m.logger.Info("session established", "username", username)
	return m.current, nil
}
