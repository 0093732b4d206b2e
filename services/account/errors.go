package account

import "errors"

var (
	// ErrInvalidInput means email or secret was missing or malformed.
	ErrInvalidInput = errors.New("email and secret are required")

	// ErrAccountExists means an account with that email already exists.
	ErrAccountExists = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// secret. The two cases must stay indistinguishable to the caller so the
	// endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or secret")
)
