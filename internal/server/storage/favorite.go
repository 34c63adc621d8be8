package storage

import (
	"context"

	"chemexplorer/internal/models"
)

// FavoriteStorage defines interface for per-user favorite persistence
type FavoriteStorage interface {
	// ListFavorites returns the user's favorites with embedded compound
	// snapshots, ordered by insertion
	ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error)

	// AddFavorite records a compound as the user's favorite and returns the
	// assigned favorite ID.
	// Returns ErrFavoriteExists if the compound is already favorited and
	// ErrCompoundNotFound if the catalog has no such compound.
	AddFavorite(ctx context.Context, userID, compoundID string) (string, error)

	// DeleteFavorite removes one favorite owned by the user
	// Returns ErrFavoriteNotFound if it doesn't exist or belongs to another user
	DeleteFavorite(ctx context.Context, userID, favoriteID string) error
}
