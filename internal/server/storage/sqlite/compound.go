package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"chemexplorer/internal/models"
	"chemexplorer/internal/server/storage"
)

const compoundColumns = `id, smiles, logp, qed, sas,
	molecular_formula, molecular_weight, iupac_name, structure_image`

// ListCompounds returns catalog entries matching the filter, ordered by ID
func (s *Storage) ListCompounds(ctx context.Context, filter storage.CompoundFilter) ([]models.Compound, error) {
	var (
		conds []string
		args  []any
	)

	addBound := func(column, op string, bound *float64) {
		if bound != nil {
			conds = append(conds, fmt.Sprintf("%s %s ?", column, op))
			args = append(args, *bound)
		}
	}

	addBound("logp", ">=", filter.LogPMin)
	addBound("logp", "<=", filter.LogPMax)
	addBound("qed", ">=", filter.QEDMin)
	addBound("qed", "<=", filter.QEDMax)
	addBound("sas", ">=", filter.SASMin)
	addBound("sas", "<=", filter.SASMax)

	if filter.SMILES != "" {
		// LIKE is case-insensitive for ASCII in SQLite
		conds = append(conds, "smiles LIKE ?")
		args = append(args, "%"+filter.SMILES+"%")
	}

	query := "SELECT " + compoundColumns + " FROM compounds"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY CAST(id AS INTEGER), id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query compounds: %w", err)
	}
	defer rows.Close()

	var compounds []models.Compound
	for rows.Next() {
		var c models.Compound
		if err := scanCompound(rows.Scan, &c); err != nil {
			return nil, fmt.Errorf("failed to scan compound: %w", err)
		}
		compounds = append(compounds, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate compounds: %w", err)
	}

	return compounds, nil
}

// GetCompound retrieves one compound by ID
func (s *Storage) GetCompound(ctx context.Context, compoundID string) (*models.Compound, error) {
	query := "SELECT " + compoundColumns + " FROM compounds WHERE id = ?"

	var c models.Compound
	err := scanCompound(s.db.QueryRowContext(ctx, query, compoundID).Scan, &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCompoundNotFound
		}
		return nil, fmt.Errorf("failed to get compound: %w", err)
	}

	return &c, nil
}

// UpsertCompound inserts or replaces one catalog entry. Used by the
// catalog importer.
func (s *Storage) UpsertCompound(ctx context.Context, c *models.Compound) error {
	query := `
		INSERT INTO compounds (` + compoundColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			smiles = excluded.smiles,
			logp = excluded.logp,
			qed = excluded.qed,
			sas = excluded.sas,
			molecular_formula = excluded.molecular_formula,
			molecular_weight = excluded.molecular_weight,
			iupac_name = excluded.iupac_name,
			structure_image = excluded.structure_image
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.SMILES, c.LogP, c.QED, c.SAS,
		c.MolecularFormula, c.MolecularWeight, c.IUPACName, c.StructureImage,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert compound: %w", err)
	}

	return nil
}

// scanCompound reads one compound row through the given Scan function
func scanCompound(scan func(dest ...any) error, c *models.Compound) error {
	return scan(
		&c.ID,
		&c.SMILES,
		&c.LogP,
		&c.QED,
		&c.SAS,
		&c.MolecularFormula,
		&c.MolecularWeight,
		&c.IUPACName,
		&c.StructureImage,
	)
}
