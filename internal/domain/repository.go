package domain

import "context"

// AccountRepository defines the interface for account lookup operations
type AccountRepository interface {
	// GetByIBAN retrieves an account by its IBAN
	// Returns ErrAccountNotFound if no account carries that IBAN
	GetByIBAN(ctx context.Context, iban string) (Account, error)
}

// UserRepository defines the interface for user lookup operations
type UserRepository interface {
	// GetByEmail retrieves a user by their email
	// Returns ErrUserNotFound if no user carries that email
	GetByEmail(ctx context.Context, email string) (Owner, error)
}
