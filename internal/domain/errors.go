package domain

import "errors"

var (
	// ErrInvalidAccount is reported when a split proposal names an account
	// that cannot be resolved; no payment is created
	ErrInvalidAccount = errors.New("one of the accounts is invalid")

	// ErrAccountNotFound is reported by repositories on a missing IBAN
	ErrAccountNotFound = errors.New("account not found")

	// ErrUserNotFound is reported by repositories on a missing email
	ErrUserNotFound = errors.New("user not found")

	// ErrNoPendingPayment is reported when an owner resolves a vote with no
	// matching pending proposal; callers log it and continue
	ErrNoPendingPayment = errors.New("no pending split payment to resolve")

	// ErrInvalidShares is reported when a custom share vector does not line
	// up with the participant list
	ErrInvalidShares = errors.New("custom split shares do not match participants")

	// ErrInsufficientFunds is reported when a fee cannot be deducted
	ErrInsufficientFunds = errors.New("insufficient funds")
)
