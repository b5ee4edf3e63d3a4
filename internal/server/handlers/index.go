package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/favkeeper/pkg/api"
)

// Index обрабатывает GET /api/
// Публичная приветственная страница
func Index(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sendJSON(logger, w, api.MessageResponse{Message: "Welcome"}, http.StatusOK)
	}
}

// NotFound обрабатывает все пути вне таблицы маршрутов
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sendError(logger, w, "Not Found", http.StatusNotFound)
	}
}
