package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"chemexplorer/internal/models"
	"chemexplorer/internal/server/storage"
)

// ListFavorites returns the user's favorites with embedded compound snapshots
func (s *Storage) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	query := `
		SELECT f.id, f.compound_id,
			c.id, c.smiles, c.logp, c.qed, c.sas,
			c.molecular_formula, c.molecular_weight, c.iupac_name, c.structure_image
		FROM favorites f
		JOIN compounds c ON c.id = f.compound_id
		WHERE f.user_id = ?
		ORDER BY f.created_at, f.id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []models.Favorite
	for rows.Next() {
		var f models.Favorite
		err := rows.Scan(
			&f.FavoriteID,
			&f.CompoundID,
			&f.Compound.ID,
			&f.Compound.SMILES,
			&f.Compound.LogP,
			&f.Compound.QED,
			&f.Compound.SAS,
			&f.Compound.MolecularFormula,
			&f.Compound.MolecularWeight,
			&f.Compound.IUPACName,
			&f.Compound.StructureImage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return favorites, nil
}

// AddFavorite records a compound as the user's favorite
func (s *Storage) AddFavorite(ctx context.Context, userID, compoundID string) (string, error) {
	// Foreign keys reject unknown compound IDs, but checking explicitly
	// gives the caller a distinct error to map to 404
	if _, err := s.GetCompound(ctx, compoundID); err != nil {
		return "", err
	}

	favoriteID := uuid.New().String()

	query := `
		INSERT INTO favorites (id, user_id, compound_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, favoriteID, userID, compoundID, time.Now())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return "", storage.ErrFavoriteExists
		}
		return "", fmt.Errorf("failed to insert favorite: %w", err)
	}

	return favoriteID, nil
}

// DeleteFavorite removes one favorite owned by the user
func (s *Storage) DeleteFavorite(ctx context.Context, userID, favoriteID string) error {
	query := `DELETE FROM favorites WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, favoriteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrFavoriteNotFound
	}

	return nil
}
