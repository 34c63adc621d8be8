package api

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /register.
// Registration implicitly logs the user in, so a successful response is a
// TokenResponse just like for login.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token returned by login and register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the error body returned by all endpoints.
// Detail is a human-readable message suitable for direct display.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
