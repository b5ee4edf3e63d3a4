package storage

import (
	"context"

	"github.com/iudanet/favkeeper/internal/models"
)

// UserStore defines interface for user records and their favorites
type UserStore interface {
	// CreateUser creates a new user record
	// Returns ErrUserAlreadyExists if username is taken; the check is
	// performed atomically inside the store
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by exact username match
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// ListFavorites returns the user's favorites in insertion order
	// Returns ErrUserNotFound if user doesn't exist
	ListFavorites(ctx context.Context, username string) ([]string, error)

	// AddFavorite appends id to the user's favorites
	// Adding an id that is already present is a no-op
	AddFavorite(ctx context.Context, username, id string) error

	// RemoveFavorite removes id from the user's favorites
	// Returns ErrFavoriteNotFound if id is absent
	RemoveFavorite(ctx context.Context, username, id string) error
}
