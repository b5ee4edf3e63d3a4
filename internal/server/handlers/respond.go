package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/favkeeper/pkg/api"
)

// internalErrorMessage единственное, что уходит клиенту при 5xx
// Детали причины остаются в логах
const internalErrorMessage = "Internal Error"

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой в форме {"message": ...}
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendJSON(logger, w, api.MessageResponse{Message: message}, statusCode)
}

// sendInternalError логирует причину и отправляет generic 500
func sendInternalError(logger *slog.Logger, w http.ResponseWriter, err error) {
	logger.Error("internal error", slog.Any("error", err))
	sendError(logger, w, internalErrorMessage, http.StatusInternalServerError)
}
