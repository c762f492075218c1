// Package splitpay implements the multi-party split-payment agreement
// protocol: every involved account owner votes independently, and the final
// decision commits to all participants or aborts for all of them.
package splitpay

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marinaa13/Banking-Application/internal/domain"
	"github.com/marinaa13/Banking-Application/internal/usecase/exchange"
)

// Observer receives a payment's terminal outcome, exactly once, in
// participant order. One observer is registered per participant owner.
type Observer interface {
	Notify(p *Payment)
}

// Payment is one split-payment instance. It owns the authoritative
// amount-per-participant vector, the per-participant vote state, and the
// decision logic. Once the outcome leaves UNDECIDED the payment is
// terminal; no further vote mutates it.
type Payment struct {
	id           uuid.UUID
	kind         domain.SplitKind
	participants []domain.Account
	totalAmount  float64
	currency     domain.Currency
	shares       []float64
	votes        map[string]domain.VoteState
	outcome      domain.OutcomeKind
	blamed       string
	observers    []Observer
	rates        *exchange.RateIndex
	timestamp    int
}

// newPayment builds a payment with every participant pending.
// For the equal kind the total is divided evenly; for the custom kind the
// caller-supplied vector is used as-is. The caller has already validated
// that a custom vector lines up with the participants.
func newPayment(kind domain.SplitKind, participants []domain.Account, totalAmount float64,
	currency domain.Currency, customShares []float64, rates *exchange.RateIndex, timestamp int) *Payment {
	p := &Payment{
		id:           uuid.New(),
		kind:         kind,
		participants: participants,
		totalAmount:  totalAmount,
		currency:     currency,
		votes:        make(map[string]domain.VoteState, len(participants)),
		outcome:      domain.OutcomeUndecided,
		rates:        rates,
		timestamp:    timestamp,
	}

	if kind == domain.SplitKindCustom {
		p.shares = append([]float64(nil), customShares...)
	} else {
		p.shares = make([]float64, len(participants))
		for i := range p.shares {
			p.shares[i] = totalAmount / float64(len(participants))
		}
	}

	for _, acc := range participants {
		p.votes[acc.IBAN()] = domain.VotePending
	}
	return p
}

// AddObserver registers a participant owner's callback, in participant order
func (p *Payment) AddObserver(o Observer) {
	p.observers = append(p.observers, o)
}

// CastVote applies one participant's decision.
//
// A reject short-circuits: the payment becomes REJECTED immediately and the
// outcome fans out to every observer without waiting for the remaining
// votes. An accept is recorded and, while any participant is still pending,
// the payment simply stays open in memory; when the last pending
// participant accepts, funds sufficiency is evaluated against current
// balances and the resulting outcome fans out.
//
// Callers dequeue the participant's ledger entry before calling, so the
// vote for this account is pending by construction. Votes against a
// terminal payment are ignored.
func (p *Payment) CastVote(account domain.Account, decision domain.Decision) {
	if p.outcome != domain.OutcomeUndecided {
		return
	}

	if decision == domain.DecisionReject {
		p.votes[account.IBAN()] = domain.VoteRejected
		p.outcome = domain.OutcomeRejected
		p.notifyObservers()
		return
	}

	p.votes[account.IBAN()] = domain.VoteAccepted
	for _, state := range p.votes {
		if state == domain.VotePending {
			return
		}
	}

	if short := p.firstShortAccount(); short != "" {
		p.blamed = short
		p.outcome = domain.OutcomeAccountShort
	} else {
		p.outcome = domain.OutcomeAllAccepted
	}
	p.notifyObservers()
}

// firstShortAccount converts each participant's share into that
// participant's own currency and compares it against the current balance.
// Participants are checked in participant order and the first short one is
// blamed, even if several are short. The check is lazy: balances may have
// changed since the proposal, only the state at the last vote counts.
//
// Plan commission is not part of this check.
func (p *Payment) firstShortAccount() string {
	for i, acc := range p.participants {
		needed := p.shares[i] * p.rates.Rate(p.currency, acc.Currency())
		if acc.Balance() < needed {
			return acc.IBAN()
		}
	}
	return ""
}

// notifyObservers delivers the terminal outcome to every observer.
// Each callback is independent: one observer's local mutation never blocks
// delivery to the others.
func (p *Payment) notifyObservers() {
	for _, o := range p.observers {
		o.Notify(p)
	}
}

// ID returns the payment's identifier
func (p *Payment) ID() uuid.UUID { return p.id }

// Kind returns the split kind
func (p *Payment) Kind() domain.SplitKind { return p.kind }

// Outcome returns the payment-level state
func (p *Payment) Outcome() domain.OutcomeKind { return p.outcome }

// Blamed returns the IBAN of the first short account, or "" when the
// outcome is not ACCOUNT_SHORT
func (p *Payment) Blamed() string { return p.blamed }

// TotalAmount returns the payment total in the payment currency
func (p *Payment) TotalAmount() float64 { return p.totalAmount }

// Currency returns the payment currency
func (p *Payment) Currency() domain.Currency { return p.currency }

// Timestamp returns the proposal timestamp
func (p *Payment) Timestamp() int { return p.timestamp }

// Vote returns the recorded vote state for a participant IBAN
func (p *Payment) Vote(iban string) domain.VoteState { return p.votes[iban] }

// Shares returns a copy of the amount-per-participant vector,
// in participant order
func (p *Payment) Shares() []float64 {
	return append([]float64(nil), p.shares...)
}

// ShareFor returns the share assigned to a participant IBAN, in the
// payment currency
func (p *Payment) ShareFor(iban string) float64 {
	for i, acc := range p.participants {
		if acc.IBAN() == iban {
			return p.shares[i]
		}
	}
	return 0
}

// ParticipantIBANs returns the involved account IBANs in participant order
func (p *Payment) ParticipantIBANs() []string {
	out := make([]string, len(p.participants))
	for i, acc := range p.participants {
		out[i] = acc.IBAN()
	}
	return out
}

// Description renders the audit description carried by every outcome
// event, e.g. "Split payment of 300.00 RON"
func (p *Payment) Description() string {
	return "Split payment of " + decimal.NewFromFloat(p.totalAmount).StringFixed(2) + " " + string(p.currency)
}
