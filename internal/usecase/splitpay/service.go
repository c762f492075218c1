package splitpay

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/marinaa13/Banking-Application/internal/domain"
	"github.com/marinaa13/Banking-Application/internal/usecase/exchange"
)

// Service coordinates split payments. ProposeSplit and ResolveVote are the
// only two operations the rest of the system may call.
type Service struct {
	rates    *exchange.RateIndex
	accounts domain.AccountRepository
	ledgers  map[string]*Ledger
	payments map[uuid.UUID]*Payment
}

// NewService creates a new split-payment coordinator
func NewService(rates *exchange.RateIndex, accounts domain.AccountRepository) *Service {
	return &Service{
		rates:    rates,
		accounts: accounts,
		ledgers:  make(map[string]*Ledger),
		payments: make(map[uuid.UUID]*Payment),
	}
}

// ProposeSplit creates a split payment across the given accounts and
// registers one pending proposal in each participant owner's ledger.
//
// Every account is resolved up front; a single unresolvable IBAN aborts
// the whole proposal with ErrInvalidAccount and leaves no partial state.
func (s *Service) ProposeSplit(ctx context.Context, kind domain.SplitKind, ibans []string,
	totalAmount float64, currency domain.Currency, customShares []float64, timestamp int) (uuid.UUID, error) {
	if err := kind.Validate(); err != nil {
		return uuid.Nil, err
	}
	if kind == domain.SplitKindCustom && len(customShares) != len(ibans) {
		return uuid.Nil, domain.ErrInvalidShares
	}

	participants := make([]domain.Account, 0, len(ibans))
	for _, iban := range ibans {
		account, err := s.accounts.GetByIBAN(ctx, iban)
		if err != nil {
			return uuid.Nil, domain.ErrInvalidAccount
		}
		participants = append(participants, account)
	}

	payment := newPayment(kind, participants, totalAmount, currency, customShares, s.rates, timestamp)
	s.payments[payment.ID()] = payment

	for _, account := range participants {
		ledger := s.LedgerFor(account.Owner())
		ledger.Enqueue(payment, account)
		payment.AddObserver(&participantObserver{
			ledger:  ledger,
			account: account,
			rates:   s.rates,
		})
	}

	log.Debug().
		Str("payment", payment.ID().String()).
		Str("kind", string(kind)).
		Float64("total", totalAmount).
		Int("participants", len(participants)).
		Msg("split payment proposed")

	return payment.ID(), nil
}

// ResolveVote applies an owner's decision to their oldest pending proposal
// of the given kind. With nothing to resolve it reports
// ErrNoPendingPayment; callers log that and carry on.
func (s *Service) ResolveVote(ctx context.Context, owner domain.Owner,
	kind domain.SplitKind, decision domain.Decision) error {
	ledger, ok := s.ledgers[owner.Email()]
	if !ok {
		return domain.ErrNoPendingPayment
	}

	if err := ledger.Resolve(kind, decision); err != nil {
		return err
	}

	log.Debug().
		Str("owner", owner.Email()).
		Str("kind", string(kind)).
		Str("decision", string(decision)).
		Msg("split payment vote resolved")
	return nil
}

// Payment returns a proposed payment by ID. Terminal payments stay
// archived here for audit.
func (s *Service) Payment(id uuid.UUID) (*Payment, bool) {
	p, ok := s.payments[id]
	return p, ok
}

// LedgerFor returns the owner's proposal ledger, creating it on first use
func (s *Service) LedgerFor(owner domain.Owner) *Ledger {
	ledger, ok := s.ledgers[owner.Email()]
	if !ok {
		ledger = NewLedger()
		s.ledgers[owner.Email()] = ledger
	}
	return ledger
}
