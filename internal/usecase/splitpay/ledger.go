package splitpay

import (
	"github.com/marinaa13/Banking-Application/internal/domain"
)

// Info is one per-participant ledger entry: a shared reference to the
// payment plus the participant account this entry represents for its owner
type Info struct {
	payment *Payment
	account domain.Account
	status  domain.VoteState
}

// Payment returns the shared payment this entry belongs to
func (i *Info) Payment() *Payment { return i.payment }

// Account returns the participant account this entry represents
func (i *Info) Account() domain.Account { return i.account }

// Status returns the entry's vote state as mirrored at enqueue time
func (i *Info) Status() domain.VoteState { return i.status }

// Ledger is one owner's FIFO queue of outstanding split-payment proposals.
// An owner with several unrelated payments outstanding resolves them
// strictly in arrival order.
type Ledger struct {
	entries []*Info
}

// NewLedger returns an empty per-owner ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Enqueue appends a proposal for one of the owner's accounts
func (l *Ledger) Enqueue(p *Payment, account domain.Account) {
	l.entries = append(l.entries, &Info{
		payment: p,
		account: account,
		status:  p.Vote(account.IBAN()),
	})
}

// Resolve advances the oldest pending proposal of the given kind.
//
// The entry is dequeued before the vote is applied, so a second resolution
// of the same kind advances to the next pending payment, never the same
// one twice. With no matching pending entry, ErrNoPendingPayment is
// returned; callers treat that as a no-op, not a failure that halts the
// command log.
func (l *Ledger) Resolve(kind domain.SplitKind, decision domain.Decision) error {
	for i, entry := range l.entries {
		if entry.status != domain.VotePending || entry.payment.Kind() != kind {
			continue
		}
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		entry.payment.CastVote(entry.account, decision)
		entry.status = entry.payment.Vote(entry.account.IBAN())
		return nil
	}
	return domain.ErrNoPendingPayment
}

// remove drops the entry for the given payment and account, if it is still
// queued. Fan-out callbacks use it so a participant that never voted does
// not keep a dead entry around once the payment is terminal.
func (l *Ledger) remove(p *Payment, account domain.Account) {
	for i, entry := range l.entries {
		if entry.payment == p && entry.account == account {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of queued proposals
func (l *Ledger) Len() int {
	return len(l.entries)
}
