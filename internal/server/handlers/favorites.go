package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"chemexplorer/internal/models"
	"chemexplorer/internal/server/storage"
	"chemexplorer/pkg/api"
)

// FavoritesHandler manages the per-user favorites collection
type FavoritesHandler struct {
	logger    *slog.Logger
	favorites storage.FavoriteStorage
}

// NewFavoritesHandler creates the favorites handler
func NewFavoritesHandler(logger *slog.Logger, favorites storage.FavoriteStorage) *FavoritesHandler {
	return &FavoritesHandler{
		logger:    logger,
		favorites: favorites,
	}
}

// userID extracts the authenticated user set by the auth middleware
func (h *FavoritesHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok || userID == "" {
		h.logger.ErrorContext(r.Context(), "missing user ID in authenticated request")
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return "", false
	}
	return userID, true
}

// List handles GET /favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	favorites, err := h.favorites.ListFavorites(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list favorites", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if favorites == nil {
		favorites = []models.Favorite{}
	}

	sendJSON(h.logger, w, favorites, http.StatusOK)
}

// Add handles POST /favorites
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.CompoundID == "" {
		sendError(h.logger, w, "compound_id is required", http.StatusBadRequest)
		return
	}

	_, err := h.favorites.AddFavorite(ctx, userID, req.CompoundID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFavoriteExists):
			sendError(h.logger, w, "Favorite already exists", http.StatusBadRequest)
		case errors.Is(err, storage.ErrCompoundNotFound):
			sendError(h.logger, w, "Compound not found", http.StatusNotFound)
		default:
			h.logger.ErrorContext(ctx, "failed to add favorite", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "favorite added",
		slog.String("user_id", userID),
		slog.String("compound_id", req.CompoundID))

	sendJSON(h.logger, w, api.MessageResponse{Message: "Added to favorites"}, http.StatusOK)
}

// Delete handles DELETE /favorites/{id}
func (h *FavoritesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	favoriteID := r.PathValue("id")
	if favoriteID == "" {
		sendError(h.logger, w, "favorite id is required", http.StatusBadRequest)
		return
	}

	if err := h.favorites.DeleteFavorite(ctx, userID, favoriteID); err != nil {
		if errors.Is(err, storage.ErrFavoriteNotFound) {
			sendError(h.logger, w, "Favorite not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete favorite", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "favorite removed",
		slog.String("user_id", userID),
		slog.String("favorite_id", favoriteID))

	sendJSON(h.logger, w, api.MessageResponse{Message: "Removed from favorites"}, http.StatusOK)
}
