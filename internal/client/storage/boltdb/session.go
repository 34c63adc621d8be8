package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"chemexplorer/internal/client/storage"
)

// The session is stored as two named string entries under one bucket.
// Both are written in a single transaction so a partial session can never be
// observed.
var (
	keyToken    = []byte("token")
	keyUsername = []byte("username")
)

// SaveSession stores the token and username together.
func (s *Storage) SaveSession(ctx context.Context, session *storage.SessionData) error {
	if session == nil {
		return fmt.Errorf("session data is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(keyToken, []byte(session.Token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		if err := bucket.Put(keyUsername, []byte(session.Username)); err != nil {
			return fmt.Errorf("failed to save username: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the stored session.
// A session is only considered present when both the credential and the
// identity exist; anything less reads as ErrSessionNotFound.
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	var session *storage.SessionData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		token := bucket.Get(keyToken)
		username := bucket.Get(keyUsername)
		if len(token) == 0 || len(username) == 0 {
			return storage.ErrSessionNotFound
		}

		session = &storage.SessionData{
			Token:    string(token),
			Username: string(username),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes both entries; deleting an absent session is not an
// error.
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		if err := bucket.Delete(keyUsername); err != nil {
			return fmt.Errorf("failed to delete username: %w", err)
		}

		return nil
	})
}
