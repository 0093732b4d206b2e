package accountRepo

import (
	"errors"

	"ecoscan/models"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
// The store's unique index is the sole serialization point for concurrent
// registrations; the losing writer observes this error.
var ErrDuplicateEmail = errors.New("account email already exists")

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// Create inserts a new account record. Fails with ErrDuplicateEmail if
	// an account with the same email already exists.
	Create(account *models.Account) error
	// GetByEmail retrieves an account by its (lower-cased) email address.
	// Returns (nil, nil) when no such account exists.
	GetByEmail(email string) (*models.Account, error)
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
}
