package cli

import (
	"context"
	"fmt"
	"strings"

	"chemexplorer/internal/client/favorites"
)

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	c.filters.Clear()
	if err := c.applyFilterArgs(args); err != nil {
		return err
	}

	results, err := c.searcher.Search(ctx, c.filters.Criteria())
	if err != nil {
		return c.handleUnauthorized(ctx, err)
	}
	c.activeTab = TabResults

	// The favorites list is fetched independently and matched against the
	// results; a failure here only loses the star markers, not the results.
	favs, err := c.favs.Refresh(ctx)
	if err != nil {
		c.logger.Warn("favorites unavailable, rendering results without favorite status", "error", err)
	}

	c.io.Println("=== Search Results ===")
	c.io.Println()
	c.renderViews(favorites.Reconcile(results, favs))

	return nil
}

// applyFilterArgs parses field=value arguments into the filter model.
func (c *Cli) applyFilterArgs(args []string) error {
	for _, arg := range args {
		field, value, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("invalid filter %q, expected field=value", arg)
		}
		if err := c.filters.Set(field, value); err != nil {
			return err
		}
	}
	return nil
}
