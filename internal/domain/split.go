package domain

import "errors"

// SplitKind determines how the per-participant shares of a split payment
// are derived: even division for EQUAL, a caller-supplied vector for CUSTOM
type SplitKind string

const (
	SplitKindEqual  SplitKind = "equal"
	SplitKindCustom SplitKind = "custom"
)

// Validate ensures the split kind is one of the two known kinds
func (k SplitKind) Validate() error {
	if k != SplitKindEqual && k != SplitKindCustom {
		return errors.New("split kind must be equal or custom")
	}
	return nil
}

// Decision is an owner's vote on a pending split payment
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// VoteState tracks one participant's progress through the protocol.
// Transitions only PENDING -> ACCEPTED or PENDING -> REJECTED, never back.
type VoteState string

const (
	VotePending  VoteState = "PENDING"
	VoteAccepted VoteState = "ACCEPTED"
	VoteRejected VoteState = "REJECTED"
)

// OutcomeKind is the payment-level result of a split payment
type OutcomeKind string

const (
	// OutcomeUndecided means some participant is still pending
	OutcomeUndecided OutcomeKind = "UNDECIDED"
	// OutcomeAllAccepted means every participant accepted and every balance covers its share
	OutcomeAllAccepted OutcomeKind = "ALL_ACCEPTED"
	// OutcomeRejected means at least one participant declined
	OutcomeRejected OutcomeKind = "REJECTED"
	// OutcomeAccountShort means everyone accepted but one account cannot cover its share
	OutcomeAccountShort OutcomeKind = "ACCOUNT_SHORT"
)

// Event is one append-only entry in an owner's outcome history.
// The same broadcast channel carries successes and protocol errors;
// readers distinguish them by the Error field, not by Go errors.
type Event struct {
	Timestamp        int       `json:"timestamp"`
	Description      string    `json:"description"`
	Amount           float64   `json:"amount,omitempty"`
	AmountForUsers   []float64 `json:"amountForUsers,omitempty"`
	Currency         Currency  `json:"currency,omitempty"`
	InvolvedAccounts []string  `json:"involvedAccounts,omitempty"`
	SplitPaymentType SplitKind `json:"splitPaymentType,omitempty"`
	AccountIBAN      string    `json:"accountIBAN,omitempty"`
	NewPlanType      string    `json:"newPlanType,omitempty"`
	Error            string    `json:"error,omitempty"`
}
