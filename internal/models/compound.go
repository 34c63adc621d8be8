package models

// Compound is an immutable catalog snapshot returned by search.
// Identity key is ID; all other fields are descriptive properties computed
// when the catalog was built.
type Compound struct {
	ID               string  `json:"id"`
	SMILES           string  `json:"smiles"`
	LogP             float64 `json:"logP"`
	QED              float64 `json:"qed"`
	SAS              float64 `json:"sas"`
	MolecularFormula string  `json:"molecular_formula"`
	MolecularWeight  float64 `json:"molecular_weight"`
	IUPACName        string  `json:"iupac_name"`
	StructureImage   string  `json:"structure_image"` // base64-encoded PNG
}

// Favorite is a user-scoped favorite relationship with an embedded compound
// snapshot. FavoriteID identifies the relationship itself and is assigned by
// the server; it is distinct from CompoundID. The embedded snapshot may be
// stale relative to the catalog's current record for that compound.
type Favorite struct {
	FavoriteID string `json:"favorite_id"`
	CompoundID string `json:"compound_id"`
	Compound
}
