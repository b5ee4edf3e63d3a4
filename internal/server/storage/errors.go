package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrFavoriteNotFound indicates that the favorite id is not in the user's list
	ErrFavoriteNotFound = errors.New("favorite not found")
)
