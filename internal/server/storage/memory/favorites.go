package memory

import (
	"context"

	"github.com/iudanet/favkeeper/internal/server/storage"
)

// ListFavorites returns the user's favorites in insertion order
func (s *Storage) ListFavorites(ctx context.Context, username string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}

	// Возвращаем копию: слайс пользователя может поменяться после разлока
	favs := make([]string, len(user.Favorites))
	copy(favs, user.Favorites)
	return favs, nil
}

// AddFavorite appends id to the user's favorites
// Повторное добавление того же id — no-op
func (s *Storage) AddFavorite(ctx context.Context, username, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return storage.ErrUserNotFound
	}

	for _, fav := range user.Favorites {
		if fav == id {
			return nil
		}
	}

	user.Favorites = append(user.Favorites, id)
	return nil
}

// RemoveFavorite removes id from the user's favorites
func (s *Storage) RemoveFavorite(ctx context.Context, username, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return storage.ErrUserNotFound
	}

	for i, fav := range user.Favorites {
		if fav == id {
			user.Favorites = append(user.Favorites[:i], user.Favorites[i+1:]...)
			return nil
		}
	}

	return storage.ErrFavoriteNotFound
}
