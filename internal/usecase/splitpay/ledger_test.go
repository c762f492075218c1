package splitpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinaa13/Banking-Application/internal/domain"
	"github.com/marinaa13/Banking-Application/internal/usecase/exchange"
)

func testIndex() *exchange.RateIndex {
	return exchange.NewIndex([]domain.ExchangeRate{
		{From: "EUR", To: "RON", Rate: 5.0},
	})
}

func testPayment(kind domain.SplitKind, accounts ...domain.Account) *Payment {
	return newPayment(kind, accounts, 100, "RON", sharesFor(kind, len(accounts)), testIndex(), 1)
}

func sharesFor(kind domain.SplitKind, n int) []float64 {
	if kind != domain.SplitKindCustom {
		return nil
	}
	shares := make([]float64, n)
	for i := range shares {
		shares[i] = 100 / float64(n)
	}
	return shares
}

func TestLedger_ResolveDequeuesBeforeVoting(t *testing.T) {
	acc := account("acc1", "u1@bank.ro", 500, "RON")
	other := account("acc2", "u2@bank.ro", 500, "RON")
	ledger := NewLedger()

	payment := testPayment(domain.SplitKindEqual, acc, other)
	ledger.Enqueue(payment, acc)
	require.Equal(t, 1, ledger.Len())

	require.NoError(t, ledger.Resolve(domain.SplitKindEqual, domain.DecisionAccept))

	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, domain.VoteAccepted, payment.Vote("acc1"))
}

func TestLedger_ResolveSkipsNonMatchingKind(t *testing.T) {
	acc := account("acc1", "u1@bank.ro", 500, "RON")
	other := account("acc2", "u2@bank.ro", 500, "RON")
	ledger := NewLedger()

	custom := testPayment(domain.SplitKindCustom, acc, other)
	equal := testPayment(domain.SplitKindEqual, acc, other)
	ledger.Enqueue(custom, acc)
	ledger.Enqueue(equal, acc)

	require.NoError(t, ledger.Resolve(domain.SplitKindEqual, domain.DecisionAccept))

	assert.Equal(t, domain.VoteAccepted, equal.Vote("acc1"))
	assert.Equal(t, domain.VotePending, custom.Vote("acc1"))
	assert.Equal(t, 1, ledger.Len())
}

func TestLedger_ResolveWithEmptyQueueReportsNothingToResolve(t *testing.T) {
	ledger := NewLedger()
	assert.ErrorIs(t,
		ledger.Resolve(domain.SplitKindEqual, domain.DecisionAccept),
		domain.ErrNoPendingPayment)
}

func TestLedger_OldestEntryOfKindWinsAcrossManyProposals(t *testing.T) {
	acc := account("acc1", "u1@bank.ro", 500, "RON")
	peerA := account("peerA", "a@bank.ro", 500, "RON")
	peerB := account("peerB", "b@bank.ro", 500, "RON")
	peerC := account("peerC", "c@bank.ro", 500, "RON")
	ledger := NewLedger()

	oldest := testPayment(domain.SplitKindEqual, acc, peerA)
	middle := testPayment(domain.SplitKindEqual, acc, peerB)
	newest := testPayment(domain.SplitKindEqual, acc, peerC)
	for _, p := range []*Payment{oldest, middle, newest} {
		ledger.Enqueue(p, acc)
	}

	require.NoError(t, ledger.Resolve(domain.SplitKindEqual, domain.DecisionAccept))
	require.NoError(t, ledger.Resolve(domain.SplitKindEqual, domain.DecisionAccept))

	assert.Equal(t, domain.VoteAccepted, oldest.Vote("acc1"))
	assert.Equal(t, domain.VoteAccepted, middle.Vote("acc1"))
	assert.Equal(t, domain.VotePending, newest.Vote("acc1"))
}

func TestLedger_EnqueueMirrorsPendingStatus(t *testing.T) {
	acc := account("acc1", "u1@bank.ro", 500, "RON")
	ledger := NewLedger()

	payment := testPayment(domain.SplitKindEqual, acc)
	ledger.Enqueue(payment, acc)

	require.Equal(t, 1, ledger.Len())
	entry := ledger.entries[0]
	assert.Equal(t, domain.VotePending, entry.Status())
	assert.Same(t, payment, entry.Payment())
	assert.Equal(t, "acc1", entry.Account().IBAN())
}

func TestLedger_RemoveDropsOnlyTheMatchingEntry(t *testing.T) {
	acc := account("acc1", "u1@bank.ro", 500, "RON")
	peer := account("acc2", "u2@bank.ro", 500, "RON")
	ledger := NewLedger()

	first := testPayment(domain.SplitKindEqual, acc, peer)
	second := testPayment(domain.SplitKindEqual, acc, peer)
	ledger.Enqueue(first, acc)
	ledger.Enqueue(second, acc)

	ledger.remove(first, acc)

	require.Equal(t, 1, ledger.Len())
	require.NoError(t, ledger.Resolve(domain.SplitKindEqual, domain.DecisionAccept))
	assert.Equal(t, domain.VoteAccepted, second.Vote("acc1"))
	assert.Equal(t, domain.VotePending, first.Vote("acc1"))
}
