package handlers

// contextKey is a private type for request context values set by middleware
type contextKey string

const (
	// UserIDKey holds the authenticated user's ID
	UserIDKey contextKey = "user_id"

	// UsernameKey holds the authenticated user's username
	UsernameKey contextKey = "username"
)
