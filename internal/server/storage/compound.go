package storage

import (
	"context"

	"chemexplorer/internal/models"
)

// CompoundFilter holds resolved numeric bounds and a SMILES substring for a
// catalog query. Nil bounds are unconstrained. Handlers translate the named
// query buckets (solubility, druglikeness, synthesizability) into bounds
// before calling the storage layer, so storage only deals in ranges.
type CompoundFilter struct {
	LogPMin *float64
	LogPMax *float64
	QEDMin  *float64
	QEDMax  *float64
	SASMin  *float64
	SASMax  *float64

	// SMILES substring, matched case-insensitively. Empty means no constraint.
	SMILES string
}

// CompoundStorage defines interface for the compound catalog
type CompoundStorage interface {
	// ListCompounds returns catalog entries matching the filter,
	// ordered by ID
	ListCompounds(ctx context.Context, filter CompoundFilter) ([]models.Compound, error)

	// GetCompound retrieves one compound by ID
	// Returns ErrCompoundNotFound if it doesn't exist
	GetCompound(ctx context.Context, compoundID string) (*models.Compound, error)
}
