package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"chemexplorer/internal/models"
	"chemexplorer/internal/server"
	"chemexplorer/internal/server/handlers"
	"chemexplorer/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8000", "Listen address")
	dbPath := flag.String("db", "chemexplorer.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (required unless CHEMEXPLORER_JWT_SECRET is set)")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "Access token lifetime")
	importPath := flag.String("import", "", "Import compounds from a CSV file and exit")
	loginRate := flag.Int("login-rate", 10, "Login attempts allowed per IP per minute (0 disables)")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if *importPath != "" {
		n, err := importCompounds(ctx, store, *importPath)
		if err != nil {
			logger.Error("import failed", "error", err)
			os.Exit(1)
		}
		logger.Info("catalog import complete", "compounds", n)
		return
	}

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("CHEMEXPLORER_JWT_SECRET")
	}
	if secret == "" {
		logger.Error("JWT secret is required, set -jwt-secret or CHEMEXPLORER_JWT_SECRET")
		os.Exit(1)
	}

	router := server.NewRouter(server.Config{
		Logger:      logger,
		Users:       store,
		Compounds:   store,
		Favorites:   store,
		JWT:         handlers.JWTConfig{Secret: []byte(secret), AccessTokenTTL: *tokenTTL},
		Version:     Version,
		LoginRate:   *loginRate,
		LoginWindow: time.Minute,
	})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("server starting", "addr", *addr, "version", Version)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// importCompounds loads catalog rows from a CSV file. The header row names
// the columns; smiles, logP, qed and SAS are required, id and the descriptive
// columns are optional. Rows without an id get their line number.
func importCompounds(ctx context.Context, store *sqlite.Storage, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"smiles", "logp", "qed", "sas"} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	count := 0
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return count, fmt.Errorf("line %d: %w", line, err)
		}

		c := models.Compound{
			ID:               field(record, "id"),
			SMILES:           field(record, "smiles"),
			MolecularFormula: field(record, "molecular_formula"),
			IUPACName:        field(record, "iupac_name"),
			StructureImage:   field(record, "structure_image"),
		}
		if c.ID == "" {
			c.ID = strconv.Itoa(line)
		}

		if c.LogP, err = strconv.ParseFloat(field(record, "logp"), 64); err != nil {
			return count, fmt.Errorf("line %d: invalid logP: %w", line, err)
		}
		if c.QED, err = strconv.ParseFloat(field(record, "qed"), 64); err != nil {
			return count, fmt.Errorf("line %d: invalid qed: %w", line, err)
		}
		if c.SAS, err = strconv.ParseFloat(field(record, "sas"), 64); err != nil {
			return count, fmt.Errorf("line %d: invalid SAS: %w", line, err)
		}
		if mw := field(record, "molecular_weight"); mw != "" {
			if c.MolecularWeight, err = strconv.ParseFloat(mw, 64); err != nil {
				return count, fmt.Errorf("line %d: invalid molecular_weight: %w", line, err)
			}
		}

		if err := store.UpsertCompound(ctx, &c); err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		count++
	}

	return count, nil
}

func printVersion() {
	fmt.Printf("ChemExplorer Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
