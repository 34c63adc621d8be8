package favorites

import (
	"context"
	"log/slog"
	"sync"

	"chemexplorer/internal/models"
)

// FavoritesAPI is the part of the API client the store needs.
type FavoritesAPI interface {
	GetFavorites(ctx context.Context, token string) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, token, compoundID string) error
	DeleteFavorite(ctx context.Context, token, favoriteID string) error
}

// SessionReader exposes the current bearer credential read-only.
type SessionReader interface {
	Token() string
}

// Store owns the client's view of the user's favorites list. The server is
// the sole source of truth for membership: every mutation is followed by a
// full refetch, never an optimistic local patch. That costs a second round
// trip per mutation and buys the absence of local/server divergence.
type Store struct {
	api      FavoritesAPI
	sessions SessionReader
	logger   *slog.Logger

	mu   sync.Mutex
	list []models.Favorite
}

// NewStore creates a favorites store.
func NewStore(apiClient FavoritesAPI, sessions SessionReader, logger *slog.Logger) *Store {
	return &Store{
		api:      apiClient,
		sessions: sessions,
		logger:   logger,
	}
}

// Refresh fetches the complete favorites list and replaces the held list in
// full. On failure the prior list is kept.
func (s *Store) Refresh(ctx context.Context) ([]models.Favorite, error) {
	favorites, err := s.api.GetFavorites(ctx, s.sessions.Token())
	if err != nil {
		s.logger.Warn("favorites refresh failed", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.list = favorites
	s.mu.Unlock()

	return favorites, nil
}

// Add requests creation of a favorite for the given compound, then refetches
// the whole list to pick up the server-assigned favorite id.
func (s *Store) Add(ctx context.Context, compoundID string) error {
	if err := s.api.AddFavorite(ctx, s.sessions.Token(), compoundID); err != nil {
		s.logger.Warn("add favorite failed", "compound_id", compoundID, "error", err)
		return err
	}

	_, err := s.Refresh(ctx)
	return err
}

// Remove requests deletion of the favorite with the given id, then refetches
// the whole list.
func (s *Store) Remove(ctx context.Context, favoriteID string) error {
	if err := s.api.DeleteFavorite(ctx, s.sessions.Token(), favoriteID); err != nil {
		s.logger.Warn("remove favorite failed", "favorite_id", favoriteID, "error", err)
		return err
	}

	_, err := s.Refresh(ctx)
	return err
}

// List returns the favorites list as of the last successful refresh.
func (s *Store) List() []models.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list
}
