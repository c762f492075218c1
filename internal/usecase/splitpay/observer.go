package splitpay

import (
	"fmt"

	"github.com/marinaa13/Banking-Application/internal/domain"
	"github.com/marinaa13/Banking-Application/internal/usecase/exchange"
)

// participantObserver applies one participant's local reaction to a
// payment outcome: purge the owner's queue entry, then either debit the
// participant's own account (commit) or record the shared error outcome
// (reject / short funds). Balance mutation happens here, never centrally
// in the payment, so each callback stays independent of the others.
type participantObserver struct {
	ledger  *Ledger
	account domain.Account
	rates   *exchange.RateIndex
}

// Notify implements Observer
func (o *participantObserver) Notify(p *Payment) {
	// a participant that never voted still has its entry queued
	o.ledger.remove(p, o.account)

	owner := o.account.Owner()

	switch p.Outcome() {
	case domain.OutcomeAllAccepted:
		share := p.ShareFor(o.account.IBAN())
		converted := share * o.rates.Rate(p.Currency(), o.account.Currency())
		o.account.Debit(converted)
		owner.RecordOutcome(o.commitEvent(p))

	case domain.OutcomeAccountShort:
		owner.RecordOutcome(o.errorEvent(p,
			fmt.Sprintf("Account %s has insufficient funds for a split payment.", p.Blamed())))

	case domain.OutcomeRejected:
		owner.RecordOutcome(o.errorEvent(p, "One user rejected the payment."))
	}
}

// commitEvent is the success entry each owner records after debiting its
// own account
func (o *participantObserver) commitEvent(p *Payment) domain.Event {
	event := domain.Event{
		Timestamp:        p.Timestamp(),
		Description:      p.Description(),
		Currency:         p.Currency(),
		InvolvedAccounts: p.ParticipantIBANs(),
		SplitPaymentType: p.Kind(),
	}
	o.fillAmounts(p, &event)
	return event
}

// errorEvent is the identical entry every owner records on a rejected or
// short-funded payment; no balance is touched
func (o *participantObserver) errorEvent(p *Payment, reason string) domain.Event {
	event := o.commitEvent(p)
	event.Error = reason
	return event
}

// fillAmounts mirrors the audit format of the record log: a custom split
// carries the full per-participant vector, an equal split the single
// common amount
func (o *participantObserver) fillAmounts(p *Payment, event *domain.Event) {
	if p.Kind() == domain.SplitKindCustom {
		event.AmountForUsers = p.Shares()
		return
	}
	if shares := p.Shares(); len(shares) > 0 {
		event.Amount = shares[0]
	}
}
