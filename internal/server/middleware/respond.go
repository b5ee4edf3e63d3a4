package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/favkeeper/pkg/api"
)

// writeError отправляет JSON ошибку в той же форме, что и handlers: {"message": ...}
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: message})
}
