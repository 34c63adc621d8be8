package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"chemexplorer/internal/client/api"
	"chemexplorer/internal/client/favorites"
	"chemexplorer/internal/client/search"
)

// runBrowse starts the interactive explorer: a read-eval-print loop with a
// results tab and a favorites tab, mirroring the two-tab screen of the web
// client this tool replaces.
func (c *Cli) runBrowse(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	// The favorites list is loaded up front so results can be starred from
	// the first search on.
	if _, err := c.favs.Refresh(ctx); err != nil {
		if api.IsUnauthorized(err) {
			return c.handleUnauthorized(ctx, err)
		}
		c.logger.Warn("initial favorites fetch failed", "error", err)
	}

	c.io.Println("=== ChemExplorer ===")
	c.io.Println("Type 'help' for available commands, 'exit' to leave.")
	c.io.Println()

	for {
		prompt := fmt.Sprintf("%s [%s]> ", c.sessions.Current().Username, c.activeTab)
		line, err := c.io.ReadInput(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		done, err := c.dispatchBrowse(ctx, parts[0], parts[1:])
		if err != nil {
			if api.IsUnauthorized(err) {
				return c.handleUnauthorized(ctx, err)
			}
			c.io.Printf("Error: %v\n", err)
		}
		if done {
			return nil
		}
	}
}

// dispatchBrowse executes one browse command. It returns done=true when the
// loop should exit.
func (c *Cli) dispatchBrowse(ctx context.Context, cmd string, args []string) (bool, error) {
	switch cmd {
	case "help":
		c.printBrowseHelp()

	case "set":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: set <field> <value>")
		}
		if err := c.filters.Set(args[0], strings.Join(args[1:], " ")); err != nil {
			return false, err
		}

	case "filters":
		c.printFilters()

	case "clear":
		c.filters.Clear()
		c.io.Println("Filters cleared.")

	case "search":
		results, err := c.searcher.Search(ctx, c.filters.Criteria())
		if err != nil {
			if errors.Is(err, search.ErrSuperseded) {
				return false, nil
			}
			return false, err
		}
		// A successful search always lands on the results tab
		c.activeTab = TabResults
		c.renderViews(favorites.Reconcile(results, c.favs.List()))

	case "results":
		c.activeTab = TabResults
		c.renderTab()

	case "favorites":
		c.activeTab = TabFavorites
		if _, err := c.favs.Refresh(ctx); err != nil {
			return false, err
		}
		c.renderTab()

	case "fav":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: fav <compound id>")
		}
		if err := c.favs.Add(ctx, args[0]); err != nil {
			return false, err
		}
		c.renderTab()

	case "unfav":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: unfav <favorite id>")
		}
		if err := c.favs.Remove(ctx, args[0]); err != nil {
			return false, err
		}
		c.renderTab()

	case "logout":
		if err := c.sessions.Logout(ctx); err != nil {
			return false, err
		}
		c.io.Println("✓ Logged out.")
		return true, nil

	case "exit", "quit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command: %s (try 'help')", cmd)
	}

	return false, nil
}

// renderTab redraws the active tab from the two held collections.
func (c *Cli) renderTab() {
	switch c.activeTab {
	case TabFavorites:
		c.io.Println("=== Favorites ===")
		c.io.Println()
		c.renderViews(favorites.FavoritesView(c.favs.List()))
	default:
		c.io.Println("=== Search Results ===")
		c.io.Println()
		c.renderViews(favorites.Reconcile(c.searcher.Results(), c.favs.List()))
	}
}

func (c *Cli) printFilters() {
	params := c.filters.Values()
	if len(params) == 0 {
		c.io.Println("No filters set.")
		return
	}
	for field := range params {
		c.io.Printf("  %s = %s\n", field, params.Get(field))
	}
}

func (c *Cli) printBrowseHelp() {
	c.io.Println("Commands:")
	c.io.Println("  set <field> <value>   Set a filter field (see 'chemexplorer --help' for fields)")
	c.io.Println("  filters               Show current filters")
	c.io.Println("  clear                 Clear all filters")
	c.io.Println("  search                Run the search with current filters")
	c.io.Println("  results               Switch to the results tab")
	c.io.Println("  favorites             Switch to the favorites tab (refetches)")
	c.io.Println("  fav <compound id>     Add a compound to favorites")
	c.io.Println("  unfav <favorite id>   Remove a favorite")
	c.io.Println("  logout                Log out and exit")
	c.io.Println("  exit | quit           Leave the explorer")
}
