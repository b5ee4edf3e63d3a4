package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/favkeeper/internal/server/storage"
	"github.com/iudanet/favkeeper/pkg/api"
)

// FavoritesHandler обрабатывает операции над избранным пользователя
// Все маршруты закрыты auth middleware, username берется из контекста
type FavoritesHandler struct {
	logger *slog.Logger
	users  storage.UserStore
}

// NewFavoritesHandler создает новый handler для избранного
func NewFavoritesHandler(logger *slog.Logger, users storage.UserStore) *FavoritesHandler {
	return &FavoritesHandler{
		logger: logger,
		users:  users,
	}
}

// List обрабатывает GET /api/favs
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "Token no valid", http.StatusUnauthorized)
		return
	}

	favs, err := h.users.ListFavorites(ctx, username)
	if err != nil {
		// Токен мог пережить запись: пользователя больше нет
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "user from token not found", slog.String("username", username))
			sendError(h.logger, w, "username not found", http.StatusNotFound)
			return
		}
		sendInternalError(h.logger, w, err)
		return
	}

	if favs == nil {
		// Пустой список сериализуется как [], не null
		favs = []string{}
	}

	sendJSON(h.logger, w, api.FavoritesResponse{Favs: favs}, http.StatusOK)
}

// Create обрабатывает POST /api/favs/{id}
// Добавление уже существующего id — no-op, ответ тот же
func (h *FavoritesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "Token no valid", http.StatusUnauthorized)
		return
	}

	// id — непрозрачная строка, числовой вид сегмента не проверяется
	id := r.PathValue("id")

	if err := h.users.AddFavorite(ctx, username, id); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "user from token not found", slog.String("username", username))
			sendError(h.logger, w, "username not found", http.StatusNotFound)
			return
		}
		sendInternalError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "favorite added",
		slog.String("username", username),
		slog.String("id", id))

	w.WriteHeader(http.StatusOK)
}

// Delete обрабатывает DELETE /api/favs/{id}
func (h *FavoritesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "Token no valid", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")

	if err := h.users.RemoveFavorite(ctx, username, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			h.logger.WarnContext(ctx, "user from token not found", slog.String("username", username))
			sendError(h.logger, w, "username not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrFavoriteNotFound):
			sendError(h.logger, w, "favorite not found", http.StatusNotFound)
		default:
			sendInternalError(h.logger, w, err)
		}
		return
	}

	h.logger.InfoContext(ctx, "favorite removed",
		slog.String("username", username),
		slog.String("id", id))

	w.WriteHeader(http.StatusOK)
}
