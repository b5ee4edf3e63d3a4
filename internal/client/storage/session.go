package storage

import "context"

// SessionStorage defines interface for storing the client session
// Токен хранится как выдан сервером, локальное хранилище — один файл на машину
type SessionStorage interface {
	// SaveSession stores session data, replacing any previous session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	// Returns ErrSessionNotFound if no session exists
	DeleteSession(ctx context.Context) error

	// IsAuthenticated checks if a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// SessionData represents the persisted client session
type SessionData struct {
	Username  string `json:"username"`
	Token     string `json:"token"`      // bearer токен как выдан сервером
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}
