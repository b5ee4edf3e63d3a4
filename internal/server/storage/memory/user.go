package memory

import (
	"context"

	"github.com/iudanet/favkeeper/internal/models"
	"github.com/iudanet/favkeeper/internal/server/storage"
)

// CreateUser creates a new user record
// Проверка уникальности и вставка выполняются под одним локом,
// гонки check-then-insert при конкурентной регистрации нет
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}

	s.users[user.Username] = cloneUser(user)
	return nil
}

// GetUserByUsername retrieves user by exact username match
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}

	return cloneUser(user), nil
}
