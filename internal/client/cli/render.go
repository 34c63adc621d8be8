package cli

import (
	"chemexplorer/internal/client/favorites"
)

// renderViews prints reconciled items, one block per compound.
// The structure image is an opaque base64 blob and is never printed.
func (c *Cli) renderViews(views []favorites.ResultView) {
	if len(views) == 0 {
		c.io.Println("No results to display. Enter search criteria and run search.")
		return
	}

	c.io.Printf("Found %d compound(s):\n", len(views))
	c.io.Println()

	for i, view := range views {
		marker := " "
		if view.IsFavorite {
			marker = "★"
		}

		c.io.Printf("%d. %s %s\n", i+1, marker, view.Compound.SMILES)
		c.io.Printf("   ID:      %s\n", view.Compound.ID)
		if view.Compound.IUPACName != "" {
			c.io.Printf("   Name:    %s\n", view.Compound.IUPACName)
		}
		c.io.Printf("   Formula: %s (MW %.2f)\n", view.Compound.MolecularFormula, view.Compound.MolecularWeight)
		c.io.Printf("   logP: %.2f  QED: %.2f  SAS: %.2f\n", view.Compound.LogP, view.Compound.QED, view.Compound.SAS)
		if view.IsFavorite {
			c.io.Printf("   Favorite id: %s\n", view.FavoriteID)
		}
		c.io.Println()
	}
}
