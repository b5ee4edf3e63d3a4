package memory

import (
	"sync"

	"github.com/iudanet/favkeeper/internal/models"
)

// Storage represents in-memory storage implementation
// Записи живут ровно столько, сколько живет процесс: персистентность
// сознательно отсутствует, рестарт начинает с чистого состояния
type Storage struct {
	mu    sync.RWMutex
	users map[string]*models.User // username -> User
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users: make(map[string]*models.User),
	}
}

// Close releases the storage
// Для памяти делать нечего, метод есть ради симметрии с другими бэкендами
func (s *Storage) Close() error {
	return nil
}

// cloneUser возвращает копию записи, чтобы вызывающий код
// не мог мутировать состояние store мимо мьютекса
func cloneUser(u *models.User) *models.User {
	favs := make([]string, len(u.Favorites))
	copy(favs, u.Favorites)
	return &models.User{
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Favorites:    favs,
	}
}
