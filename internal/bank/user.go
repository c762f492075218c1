package bank

import (
	"errors"

	"github.com/marinaa13/Banking-Application/internal/domain"
	"github.com/marinaa13/Banking-Application/internal/usecase/plan"
)

// User is an account owner in the simulated bank. It implements
// domain.Owner: the plan supplies the commission function and the history
// is the append-only outcome sink the protocol broadcasts into.
type User struct {
	firstName string
	lastName  string
	email     string
	plan      plan.Plan
	accounts  []*Account
	history   []domain.Event
}

// NewUser creates a user; students start on the student plan, everyone
// else on standard
func NewUser(firstName, lastName, email, occupation string) *User {
	p := plan.Standard
	if occupation == "student" {
		p = plan.Student
	}
	return &User{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		plan:      p,
	}
}

// Email implements domain.Owner
func (u *User) Email() string { return u.email }

// FirstName returns the user's first name
func (u *User) FirstName() string { return u.firstName }

// LastName returns the user's last name
func (u *User) LastName() string { return u.lastName }

// Commission implements domain.Owner
func (u *User) Commission(refAmount float64) float64 {
	return u.plan.Commission(refAmount)
}

// RecordOutcome implements domain.Owner
func (u *User) RecordOutcome(event domain.Event) {
	u.history = append(u.history, event)
}

// History returns a copy of the user's outcome history, oldest first
func (u *User) History() []domain.Event {
	return append([]domain.Event(nil), u.history...)
}

// Plan returns the user's current service plan
func (u *User) Plan() plan.Plan { return u.plan }

// AddAccount attaches a new account to the user and records the creation
func (u *User) AddAccount(account *Account, timestamp int) {
	u.accounts = append(u.accounts, account)
	u.RecordOutcome(domain.Event{
		Timestamp:   timestamp,
		Description: "New account created",
	})
}

// Accounts returns the user's accounts in creation order
func (u *User) Accounts() []*Account {
	return append([]*Account(nil), u.accounts...)
}

// UpgradePlan moves the user to a higher plan, deducting the converted fee
// from the given account. rate converts RON into the account's currency.
func (u *User) UpgradePlan(account *Account, next plan.Plan, rate float64, timestamp int) error {
	feeRON, err := plan.UpgradeFee(u.plan, next)
	if err != nil {
		return err
	}

	cost := plan.ConvertFee(feeRON, rate)
	if err := account.DeductFee(cost); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			u.RecordOutcome(domain.Event{
				Timestamp:   timestamp,
				Description: "Insufficient funds",
			})
		}
		return err
	}

	u.plan = next
	u.RecordOutcome(domain.Event{
		Timestamp:   timestamp,
		Description: "Upgrade plan",
		AccountIBAN: account.IBAN(),
		NewPlanType: next.String(),
	})
	return nil
}
