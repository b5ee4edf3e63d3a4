package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/favkeeper/internal/crypto"
	"github.com/iudanet/favkeeper/internal/models"
	"github.com/iudanet/favkeeper/internal/server/jwt"
	"github.com/iudanet/favkeeper/internal/server/storage"
	"github.com/iudanet/favkeeper/internal/validation"
	"github.com/iudanet/favkeeper/pkg/api"
)

// AuthHandler обрабатывает запросы регистрации и входа
type AuthHandler struct {
	logger *slog.Logger
	users  storage.UserStore
	tokens *jwt.Service
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users storage.UserStore, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

// Register обрабатывает POST /api/register
// Каждый шаг проверяется отдельно, первый отказ завершает запрос
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateCredentials(req.Username, req.Password); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		sendInternalError(h.logger, w, err)
		return
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Favorites:    []string{},
	}

	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			sendError(h.logger, w, "username already exists", http.StatusBadRequest)
			return
		}
		sendInternalError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "user registered", slog.String("username", req.Username))

	// Тело ответа пустое
	w.WriteHeader(http.StatusOK)
}

// Login обрабатывает POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Неизвестный username и неверный пароль наружу неразличимы
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			sendError(h.logger, w, "Wrong credentials", http.StatusUnauthorized)
			return
		}
		sendInternalError(h.logger, w, err)
		return
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		sendError(h.logger, w, "Wrong credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		sendInternalError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "user logged in", slog.String("username", req.Username))

	sendJSON(h.logger, w, api.TokenResponse{Token: token}, http.StatusOK)
}
