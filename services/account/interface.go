package account

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// AccountService defines account registration and authentication.
type AccountService interface {
	// Register creates a new account and mints a bearer token.
	Register(email, secret string) (*AuthResponse, error)
	// Login authenticates existing credentials and mints a bearer token.
	Login(email, secret string) (*AuthResponse, error)
}
