package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/favkeeper/internal/server/handlers"
	"github.com/iudanet/favkeeper/internal/server/jwt"
)

// AuthMiddleware создает middleware для проверки bearer токена
// Заголовок Authorization несет сырой подписанный токен, без префикса схемы
func AuthMiddleware(logger *slog.Logger, tokens *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("Authorization")
			if tokenString == "" {
				logger.Warn("missing Authorization header",
					"method", r.Method,
					"path", r.URL.Path)
				writeError(w, "Token cannot be empty", http.StatusUnauthorized)
				return
			}

			// Любой отказ верификации наружу выглядит одинаково
			claims, err := tokens.Verify(tokenString)
			if err != nil {
				logger.Warn("token verification failed", "error", err)
				writeError(w, "Token no valid", http.StatusUnauthorized)
				return
			}

			// Кладем проверенный username в контекст для handlers
			ctx := context.WithValue(r.Context(), handlers.UsernameKey, claims.Username)

			logger.Debug("user authenticated", "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
