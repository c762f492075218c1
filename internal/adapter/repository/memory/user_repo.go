package memory

import (
	"context"

	"github.com/marinaa13/Banking-Application/internal/domain"
)

// userRepository implements domain.UserRepository
type userRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository over the registry
func NewUserRepository(db *DB) domain.UserRepository {
	return &userRepository{db: db}
}

// GetByEmail retrieves a user by their email
func (r *userRepository) GetByEmail(_ context.Context, email string) (domain.Owner, error) {
	user, ok := r.db.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
