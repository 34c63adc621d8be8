package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"chemexplorer/internal/models"
	"chemexplorer/internal/server/storage"
	"chemexplorer/pkg/api"
)

// mockUserStorage is a hand-written mock for storage.UserStorage
type mockUserStorage struct {
	createUserFunc        func(ctx context.Context, user *models.User) error
	getUserByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	getUserByIDFunc       func(ctx context.Context, userID string) (*models.User, error)
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.getUserByUsernameFunc(ctx, username)
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return m.getUserByIDFunc(ctx, userID)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Detail
}

func TestRegister_Success(t *testing.T) {
	var created *models.User
	users := &mockUserStorage{
		createUserFunc: func(ctx context.Context, user *models.User) error {
			created = user
			return nil
		},
	}

	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	rec := postJSON(t, h.Register, "/register", api.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	// Token is usable right away
	claims, err := ValidateAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	// Password stored as bcrypt hash, not plaintext
	require.NotNil(t, created)
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestRegister_ValidationErrors(t *testing.T) {
	users := &mockUserStorage{
		createUserFunc: func(ctx context.Context, user *models.User) error {
			t.Fatal("CreateUser must not be called for invalid input")
			return nil
		},
	}
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	tests := []struct {
		name string
		req  api.RegisterRequest
	}{
		{"short username", api.RegisterRequest{Username: "ab", Email: "a@b.com", Password: "password123"}},
		{"bad email", api.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "password123"}},
		{"short password", api.RegisterRequest{Username: "alice", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Register, "/register", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeDetail(t, rec))
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := &mockUserStorage{
		createUserFunc: func(ctx context.Context, user *models.User) error {
			return storage.ErrUserAlreadyExists
		},
	}
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	rec := postJSON(t, h.Register, "/register", api.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already registered", decodeDetail(t, rec))
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserStorage{
		getUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			require.Equal(t, "alice", username)
			return &models.User{
				ID:           "user-1",
				Username:     "alice",
				PasswordHash: string(hash),
				CreatedAt:    time.Now(),
			}, nil
		},
	}
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	rec := postJSON(t, h.Login, "/login", api.LoginRequest{Username: "alice", Password: "password123"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	claims, err := ValidateAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserStorage{
		getUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: "user-1", Username: "alice", PasswordHash: string(hash)}, nil
		},
	}
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	rec := postJSON(t, h.Login, "/login", api.LoginRequest{Username: "alice", Password: "wrongpass"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", decodeDetail(t, rec))
}

func TestLogin_UnknownUser(t *testing.T) {
	users := &mockUserStorage{
		getUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, storage.ErrUserNotFound
		},
	}
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	rec := postJSON(t, h.Login, "/login", api.LoginRequest{Username: "ghost", Password: "password123"})

	// Same message as a wrong password, no user enumeration
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", decodeDetail(t, rec))
}

func TestLogin_MissingFields(t *testing.T) {
	h := NewAuthHandler(testLogger(), &mockUserStorage{}, testJWTConfig())

	rec := postJSON(t, h.Login, "/login", api.LoginRequest{Username: "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
