package storage

import (
	"context"
)

// SessionStorage defines the durable store for the client session.
// The token and the username form one unit: they are written together, read
// together at startup, and deleted together on logout.
type SessionStorage interface {
	// SaveSession stores the session data, replacing any previous entry
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session data.
	// Returns ErrSessionNotFound if no complete session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session data (logout); idempotent
	DeleteSession(ctx context.Context) error
}

// SessionData is the durable part of a session: the bearer credential and the
// identity it belongs to.
type SessionData struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
