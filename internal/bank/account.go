// Package bank holds the concrete simulation entities the split-payment
// core consumes through its collaborator interfaces: accounts with a
// mutable balance and the users owning them.
package bank

import (
	"strings"

	"github.com/google/uuid"

	"github.com/marinaa13/Banking-Application/internal/domain"
)

// Account is a current account in the simulated bank. It implements
// domain.Account.
type Account struct {
	iban     string
	balance  float64
	currency domain.Currency
	owner    *User
}

// NewAccount creates an account for the given owner. An empty IBAN is
// replaced with a generated one.
func NewAccount(iban string, currency domain.Currency, owner *User) *Account {
	if iban == "" {
		iban = generateIBAN()
	}
	return &Account{
		iban:     iban,
		currency: currency,
		owner:    owner,
	}
}

// generateIBAN derives a fresh IBAN-shaped identifier. The source log's
// seeded account-number generator is out of scope, so identifiers only
// need to be unique within one run.
func generateIBAN() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "RO69BANK" + raw[:16]
}

// IBAN implements domain.Account
func (a *Account) IBAN() string { return a.iban }

// Balance implements domain.Account
func (a *Account) Balance() float64 { return a.balance }

// Currency implements domain.Account
func (a *Account) Currency() domain.Currency { return a.currency }

// Owner implements domain.Account
func (a *Account) Owner() domain.Owner { return a.owner }

// Debit implements domain.Account. The amount is already converted to the
// account's own currency; sufficiency was checked by the caller's protocol.
func (a *Account) Debit(amount float64) {
	a.balance -= amount
}

// Credit adds funds to the account
func (a *Account) Credit(amount float64) {
	a.balance += amount
}

// DeductFee withdraws a fee, refusing to overdraw
func (a *Account) DeductFee(amount float64) error {
	if a.balance < amount {
		return domain.ErrInsufficientFunds
	}
	a.balance -= amount
	return nil
}
