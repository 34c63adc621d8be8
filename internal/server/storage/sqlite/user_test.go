package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chemexplorer/internal/server/storage"
)

func TestCreateUser_And_GetByUsername(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	created := createTestUser(t, s, "alice")

	got, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, created.PasswordHash, got.PasswordHash)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := createTestStorage(t)

	first := createTestUser(t, s, "alice")

	dup := *first
	dup.ID = "another-id"
	err := s.CreateUser(context.Background(), &dup)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	s := createTestStorage(t)

	_, err := s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestGetUserByID(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	created := createTestUser(t, s, "bob")

	got, err := s.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	_, err = s.GetUserByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
