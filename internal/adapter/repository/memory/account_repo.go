package memory

import (
	"context"

	"github.com/marinaa13/Banking-Application/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository over the registry
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

// GetByIBAN retrieves an account by its IBAN
func (r *accountRepository) GetByIBAN(_ context.Context, iban string) (domain.Account, error) {
	account, ok := r.db.accounts[iban]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}
