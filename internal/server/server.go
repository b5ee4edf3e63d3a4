package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/favkeeper/internal/config"
	"github.com/iudanet/favkeeper/internal/crypto"
	"github.com/iudanet/favkeeper/internal/models"
	"github.com/iudanet/favkeeper/internal/server/handlers"
	"github.com/iudanet/favkeeper/internal/server/jwt"
	"github.com/iudanet/favkeeper/internal/server/middleware"
	"github.com/iudanet/favkeeper/internal/server/storage"
)

// Учетная запись по умолчанию, создается на старте
// Делает сервис сразу пригодным для проверки авторизованных маршрутов
const (
	DefaultUsername = "admin"
	DefaultPassword = "admin"
)

// Лимиты для credential endpoints: защищают login/register от перебора
const (
	credentialRateLimit  = 10
	credentialRateWindow = time.Minute
)

// Server оборачивает http.Server с собранной таблицей маршрутов
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
	limiter    *middleware.RateLimiter
}

// SeedDefaultUser создает учетную запись по умолчанию с пустым избранным
// Повторный вызов поверх существующей записи — no-op
func SeedDefaultUser(ctx context.Context, users storage.UserStore) error {
	passwordHash, err := crypto.HashPassword(DefaultPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	user := &models.User{
		Username:     DefaultUsername,
		PasswordHash: passwordHash,
		Favorites:    []string{},
	}

	if err := users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to seed default user: %w", err)
	}

	return nil
}

// NewRouter собирает таблицу маршрутов и цепочку middleware
// Go 1.22 mux: метод в паттерне, {id} как path value, {$} для точного /api/
func NewRouter(logger *slog.Logger, users storage.UserStore, tokens *jwt.Service, limiter *middleware.RateLimiter, version string) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, users, tokens)
	favsHandler := handlers.NewFavoritesHandler(logger, users)
	healthHandler := handlers.NewHealthHandler(logger, version)

	authGate := middleware.AuthMiddleware(logger, tokens)

	mux := http.NewServeMux()

	// Публичные маршруты
	mux.Handle("GET /api/{$}", handlers.Index(logger))
	mux.Handle("GET /api/health", http.HandlerFunc(healthHandler.Health))
	mux.Handle("POST /api/login", limiter.Middleware(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/register", limiter.Middleware(http.HandlerFunc(authHandler.Register)))

	// Маршруты за auth gate
	mux.Handle("GET /api/favs", authGate(http.HandlerFunc(favsHandler.List)))
	mux.Handle("POST /api/favs/{id}", authGate(http.HandlerFunc(favsHandler.Create)))
	mux.Handle("DELETE /api/favs/{id}", authGate(http.HandlerFunc(favsHandler.Delete)))

	// Все остальные пути — JSON 404
	mux.Handle("/", handlers.NotFound(logger))

	// recovery снаружи logging: паника в логировании тоже не уронит процесс
	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}

// New создает сервер, готовый к запуску
func New(cfg *config.Config, logger *slog.Logger, users storage.UserStore, version string) *Server {
	tokens := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
	limiter := middleware.NewRateLimiter(credentialRateLimit, credentialRateWindow, logger)

	handler := NewRouter(logger, users, tokens, limiter, version)

	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		limiter: limiter,
	}
}

// Run запускает HTTP listener и блокируется до отмены контекста
// После отмены выполняется graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	s.limiter.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
