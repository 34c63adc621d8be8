package server

import (
	"log/slog"
	"net/http"
	"time"

	"chemexplorer/internal/server/handlers"
	"chemexplorer/internal/server/middleware"
	"chemexplorer/internal/server/storage"
)

// Config carries the router's dependencies and settings
type Config struct {
	Logger    *slog.Logger
	Users     storage.UserStorage
	Compounds storage.CompoundStorage
	Favorites storage.FavoriteStorage
	JWT       handlers.JWTConfig
	Version   string

	// LoginRate limits credential attempts per IP per LoginWindow.
	// Zero disables rate limiting.
	LoginRate   int
	LoginWindow time.Duration
}

// NewRouter builds the HTTP handler with all routes and middleware
func NewRouter(cfg Config) http.Handler {
	authHandler := handlers.NewAuthHandler(cfg.Logger, cfg.Users, cfg.JWT)
	compoundsHandler := handlers.NewCompoundsHandler(cfg.Logger, cfg.Compounds)
	favoritesHandler := handlers.NewFavoritesHandler(cfg.Logger, cfg.Favorites)
	healthHandler := handlers.NewHealthHandler(cfg.Logger, cfg.Version)

	requireAuth := middleware.AuthMiddleware(cfg.Logger, cfg.JWT)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)

	// Credential endpoints, optionally rate limited
	var login http.Handler = http.HandlerFunc(authHandler.Login)
	var register http.Handler = http.HandlerFunc(authHandler.Register)
	if cfg.LoginRate > 0 {
		limit := middleware.RateLimitMiddleware(cfg.LoginRate, cfg.LoginWindow, cfg.Logger)
		login = limit(login)
		register = limit(register)
	}
	mux.Handle("POST /login", login)
	mux.Handle("POST /register", register)

	// Protected catalog and favorites
	mux.Handle("GET /compounds", requireAuth(http.HandlerFunc(compoundsHandler.List)))
	mux.Handle("GET /favorites", requireAuth(http.HandlerFunc(favoritesHandler.List)))
	mux.Handle("POST /favorites", requireAuth(http.HandlerFunc(favoritesHandler.Add)))
	mux.Handle("DELETE /favorites/{id}", requireAuth(http.HandlerFunc(favoritesHandler.Delete)))

	var handler http.Handler = mux
	handler = middleware.CORSMiddleware(handler)
	handler = middleware.LoggingWithSkip(cfg.Logger, []string{"/health"})(handler)
	handler = middleware.RecoveryMiddleware(cfg.Logger)(handler)

	return handler
}
