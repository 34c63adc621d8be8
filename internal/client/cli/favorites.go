package cli

import (
	"context"

	"chemexplorer/internal/client/favorites"
)

func (c *Cli) runFavorites(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	favs, err := c.favs.Refresh(ctx)
	if err != nil {
		return c.handleUnauthorized(ctx, err)
	}

	c.io.Println("=== Favorites ===")
	c.io.Println()

	if len(favs) == 0 {
		c.io.Println("No favorites yet.")
		c.io.Println()
		c.io.Println("Use 'fav <compound id>' in browse mode to add one.")
		return nil
	}

	c.renderViews(favorites.FavoritesView(favs))
	return nil
}
