package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chemexplorer/internal/client/api"
	"chemexplorer/internal/client/favorites"
	"chemexplorer/internal/client/search"
	"chemexplorer/internal/client/session"
	"chemexplorer/internal/client/storage"
	"chemexplorer/internal/client/storage/boltdb"
	"chemexplorer/internal/models"
	pkgapi "chemexplorer/pkg/api"
)

// fakeIO scripts user input and captures output
type fakeIO struct {
	out    strings.Builder
	inputs []string
}

func (f *fakeIO) Println(a ...any) {
	fmt.Fprintln(&f.out, a...)
}

func (f *fakeIO) Printf(format string, a ...any) {
	fmt.Fprintf(&f.out, format, a...)
}

func (f *fakeIO) next() (string, error) {
	if len(f.inputs) == 0 {
		return "", io.EOF
	}
	input := f.inputs[0]
	f.inputs = f.inputs[1:]
	return input, nil
}

func (f *fakeIO) ReadInput(prompt string) (string, error) {
	f.out.WriteString(prompt)
	return f.next()
}

func (f *fakeIO) ReadPassword(prompt string) (string, error) {
	f.out.WriteString(prompt)
	return f.next()
}

// newTestCli wires real components against an httptest server and a
// temporary bolt database.
func newTestCli(t *testing.T, handler http.Handler, inputs ...string) (*Cli, *fakeIO, *boltdb.Storage) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	apiClient := api.NewClient(server.URL)
	sessions := session.NewManager(apiClient, store, logger)
	searcher := search.NewController(apiClient, sessions, logger)
	favStore := favorites.NewStore(apiClient, sessions, logger)

	fio := &fakeIO{inputs: inputs}
	return New(fio, sessions, searcher, favStore, logger), fio, store
}

// catalogHandler is a minimal fake backend for CLI flow tests
func catalogHandler(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secretpass" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Detail: "Invalid username or password"})
			return
		}
		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "token-abc"})
	})

	requireBearer := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer token-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Detail: "invalid token"})
			return false
		}
		return true
	}

	favs := []models.Favorite{}

	mux.HandleFunc("GET /compounds", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode([]models.Compound{
			{ID: "42", SMILES: "CCO", MolecularFormula: "C2H6O", MolecularWeight: 46.07, LogP: -0.14},
			{ID: "43", SMILES: "c1ccccc1", MolecularFormula: "C6H6", MolecularWeight: 78.11, LogP: 2.13},
		})
	})

	mux.HandleFunc("GET /favorites", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(favs)
	})

	mux.HandleFunc("POST /favorites", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		var req pkgapi.AddFavoriteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		favs = append(favs, models.Favorite{
			FavoriteID: "7",
			CompoundID: req.CompoundID,
			Compound:   models.Compound{ID: req.CompoundID, SMILES: "CCO"},
		})
		_ = json.NewEncoder(w).Encode(pkgapi.MessageResponse{Message: "Added to favorites"})
	})

	mux.HandleFunc("DELETE /favorites/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		kept := favs[:0]
		for _, fav := range favs {
			if fav.FavoriteID != r.PathValue("id") {
				kept = append(kept, fav)
			}
		}
		favs = kept
		_ = json.NewEncoder(w).Encode(pkgapi.MessageResponse{Message: "Removed from favorites"})
	})

	return mux
}

func TestCli_LoginThenStatus(t *testing.T) {
	cli, fio, store := newTestCli(t, catalogHandler(t), "alice", "secretpass")

	err := cli.Run(context.Background(), "login", nil)
	require.NoError(t, err)
	assert.Contains(t, fio.out.String(), "Login successful")

	// Durable session written
	stored, err := store.GetSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-abc", stored.Token)
	assert.Equal(t, "alice", stored.Username)

	err = cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)
	assert.Contains(t, fio.out.String(), "Status: Authenticated")
	assert.Contains(t, fio.out.String(), "alice")
}

func TestCli_Login_BadCredentials(t *testing.T) {
	cli, _, store := newTestCli(t, catalogHandler(t), "alice", "wrongpass")

	err := cli.Run(context.Background(), "login", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid username or password")

	_, err = store.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestCli_Search_RequiresSession(t *testing.T) {
	cli, _, _ := newTestCli(t, catalogHandler(t))

	err := cli.Run(context.Background(), "search", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestCli_Search_WithRestoredSession(t *testing.T) {
	cli, fio, store := newTestCli(t, catalogHandler(t))

	// Simulate a session persisted by an earlier login
	require.NoError(t, store.SaveSession(context.Background(), &storage.SessionData{
		Token:    "token-abc",
		Username: "alice",
	}))

	err := cli.Run(context.Background(), "search", []string{"logp_min=0", "logp_max=3"})
	require.NoError(t, err)

	out := fio.out.String()
	assert.Contains(t, out, "Search Results")
	assert.Contains(t, out, "CCO")
	assert.Contains(t, out, "c1ccccc1")
}

func TestCli_Search_InvalidFilterArg(t *testing.T) {
	cli, _, store := newTestCli(t, catalogHandler(t))
	require.NoError(t, store.SaveSession(context.Background(), &storage.SessionData{
		Token:    "token-abc",
		Username: "alice",
	}))

	err := cli.Run(context.Background(), "search", []string{"nonsense"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field=value")

	err = cli.Run(context.Background(), "search", []string{"bogus_field=1"})
	require.Error(t, err)
}

func TestCli_Search_StaleTokenClearsSession(t *testing.T) {
	cli, _, store := newTestCli(t, catalogHandler(t))

	require.NoError(t, store.SaveSession(context.Background(), &storage.SessionData{
		Token:    "stale-token",
		Username: "alice",
	}))

	err := cli.Run(context.Background(), "search", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")

	// Implicit logout removed the durable session
	_, err = store.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestCli_BrowseFlow(t *testing.T) {
	cli, fio, store := newTestCli(t, catalogHandler(t),
		"set logp_min 0",
		"search",
		"fav 42",
		"favorites",
		"unfav 7",
		"exit",
	)

	require.NoError(t, store.SaveSession(context.Background(), &storage.SessionData{
		Token:    "token-abc",
		Username: "alice",
	}))

	err := cli.Run(context.Background(), "browse", nil)
	require.NoError(t, err)

	out := fio.out.String()

	// Search landed on the results tab
	assert.Contains(t, out, "alice [results]>")
	assert.Contains(t, out, "CCO")

	// After fav 42 the results tab shows the star with the assigned id
	assert.Contains(t, out, "★")
	assert.Contains(t, out, "Favorite id: 7")

	// Favorites tab rendered
	assert.Contains(t, out, "=== Favorites ===")
	assert.Contains(t, out, "alice [favorites]>")
}

func TestCli_Browse_UnknownCommandKeepsLooping(t *testing.T) {
	cli, fio, store := newTestCli(t, catalogHandler(t),
		"frobnicate",
		"exit",
	)

	require.NoError(t, store.SaveSession(context.Background(), &storage.SessionData{
		Token:    "token-abc",
		Username: "alice",
	}))

	err := cli.Run(context.Background(), "browse", nil)
	require.NoError(t, err)
	assert.Contains(t, fio.out.String(), "unknown command: frobnicate")
}

func TestCli_UnknownCommand(t *testing.T) {
	cli, fio, _ := newTestCli(t, catalogHandler(t))

	err := cli.Run(context.Background(), "bogus", nil)
	require.Error(t, err)
	assert.Contains(t, fio.out.String(), "Usage:")
}
