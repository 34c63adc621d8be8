package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that the username is already taken
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrCompoundNotFound indicates that catalog has no such compound
	ErrCompoundNotFound = errors.New("compound not found")

	// ErrFavoriteNotFound indicates that favorite was not found
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrFavoriteExists indicates the compound is already in the user's favorites
	ErrFavoriteExists = errors.New("favorite already exists")
)
