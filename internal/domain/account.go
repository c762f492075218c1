package domain

// Account is the mutable balance/currency handle the split-payment core
// consumes. Concrete implementations live with the simulation entities;
// the core never constructs one.
type Account interface {
	// IBAN returns the account's unique identifier
	IBAN() string

	// Balance returns the current balance in the account's own currency
	Balance() float64

	// Currency returns the currency the balance is denominated in
	Currency() Currency

	// Debit subtracts amount (already converted to the account's currency)
	Debit(amount float64)

	// Owner returns the user owning this account
	Owner() Owner
}

// Owner is the account owner's side of the protocol: the plan commission
// function and the append-only outcome history sink.
type Owner interface {
	// Email returns the owner's unique identifier
	Email() string

	// Commission returns the plan multiplier for a transaction amount
	// expressed in the reference currency (RON)
	Commission(refAmount float64) float64

	// RecordOutcome appends a protocol outcome to the owner's history
	RecordOutcome(event Event)
}
