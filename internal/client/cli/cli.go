package cli

import (
	"context"
	"fmt"
	"log/slog"

	"chemexplorer/internal/client/api"
	"chemexplorer/internal/client/favorites"
	"chemexplorer/internal/client/filter"
	"chemexplorer/internal/client/iocli"
	"chemexplorer/internal/client/search"
	"chemexplorer/internal/client/session"
)

// Tab identifies the active view of the browse screen.
type Tab string

const (
	TabResults   Tab = "results"
	TabFavorites Tab = "favorites"
)

// Cli wires the client components together and dispatches commands.
type Cli struct {
	io       iocli.IO
	sessions *session.Manager
	filters  *filter.Model
	searcher *search.Controller
	favs     *favorites.Store
	logger   *slog.Logger

	activeTab Tab
}

// New creates the command dispatcher.
func New(io iocli.IO, sessions *session.Manager, searcher *search.Controller, favs *favorites.Store, logger *slog.Logger) *Cli {
	return &Cli{
		io:        io,
		sessions:  sessions,
		filters:   filter.NewModel(),
		searcher:  searcher,
		favs:      favs,
		logger:    logger,
		activeTab: TabResults,
	}
}

// Run executes one command.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "search":
		return c.runSearch(ctx, args)
	case "favorites":
		return c.runFavorites(ctx)
	case "browse":
		return c.runBrowse(ctx)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireSession restores the stored session before a protected command.
// The restored credential is trusted as-is; staleness shows up later as a 401.
func (c *Cli) requireSession(ctx context.Context) error {
	if c.sessions.Current().IsAuthenticated() {
		return nil
	}

	_, ok, err := c.sessions.Restore(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if !ok {
		return fmt.Errorf("not authenticated. Please run 'chemexplorer login' first")
	}
	return nil
}

// handleUnauthorized implements the implicit-logout policy: a 401 from a
// protected endpoint means the stored credential went stale, so the session
// is cleared and the user is asked to log in again.
func (c *Cli) handleUnauthorized(ctx context.Context, err error) error {
	if !api.IsUnauthorized(err) {
		return err
	}

	c.logger.Warn("token rejected by server, clearing session")
	if logoutErr := c.sessions.Logout(ctx); logoutErr != nil {
		c.logger.Error("failed to clear stale session", "error", logoutErr)
	}
	return fmt.Errorf("session expired. Please run 'chemexplorer login' again")
}

func PrintUsage(io iocli.IO) {
	io.Println("ChemExplorer Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  chemexplorer [OPTIONS] COMMAND")
	io.Println()
	io.Println("Options:")
	io.Println("  --version    Show version information")
	io.Println("  --server URL Server URL (default: http://localhost:8000)")
	io.Println("  --db PATH    Path to local session database (default: chemexplorer-client.db)")
	io.Println()
	io.Println("Commands:")
	io.Println("  register                 Register new user (logs you in)")
	io.Println("  login                    Login to server")
	io.Println("  logout                   Logout and forget the stored session")
	io.Println("  status                   Show authentication status")
	io.Println("  search [field=value]...  One-shot compound search")
	io.Println("  favorites                List your favorite compounds")
	io.Println("  browse                   Interactive explorer (filters, tabs, favorites)")
	io.Println()
	io.Println("Filter fields:")
	io.Println("  logp_min, logp_max       logP range (solubility good: 0-3, poor: >3)")
	io.Println("  solubility               good | poor")
	io.Println("  qed_min, qed_max         QED range (high: >0.67, moderate: 0.5-0.67, low: <=0.5)")
	io.Println("  druglikeness             high | moderate | low")
	io.Println("  sas_min, sas_max         SAS range (easy: 1-3, moderate: 3-6, hard: >6)")
	io.Println("  synthesizability         easy | moderate | hard")
	io.Println("  smile                    SMILES substring")
	io.Println()
	io.Println("Examples:")
	io.Println("  chemexplorer login")
	io.Println("  chemexplorer search logp_min=0 logp_max=3")
	io.Println("  chemexplorer search smile=CCO druglikeness=high")
	io.Println("  chemexplorer browse")
}
