package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/marinaa13/Banking-Application/internal/adapter/repository/memory"
	"github.com/marinaa13/Banking-Application/internal/bank"
	"github.com/marinaa13/Banking-Application/internal/domain"
	"github.com/marinaa13/Banking-Application/internal/usecase/exchange"
	"github.com/marinaa13/Banking-Application/internal/usecase/plan"
	"github.com/marinaa13/Banking-Application/internal/usecase/splitpay"
)

// referenceCurrency is the currency plan fees are quoted in
const referenceCurrency = domain.Currency("RON")

// Runner replays a recorded command log against the core. The log is
// processed as a strict sequence, one command fully completed before the
// next begins.
type Runner struct {
	db       *memory.DB
	accounts domain.AccountRepository
	users    domain.UserRepository
	rates    *exchange.RateIndex
	splits   *splitpay.Service
}

// NewRunner creates a runner over an already-populated user registry
func NewRunner(db *memory.DB, accounts domain.AccountRepository, users domain.UserRepository,
	rates *exchange.RateIndex, splits *splitpay.Service) *Runner {
	return &Runner{
		db:       db,
		accounts: accounts,
		users:    users,
		rates:    rates,
		splits:   splits,
	}
}

// Seed registers the session's users into a fresh registry
func Seed(db *memory.DB, in *Input) {
	for _, u := range in.Users {
		db.AddUser(bank.NewUser(u.FirstName, u.LastName, u.Email, u.Occupation))
	}
}

// Run dispatches every command in order and returns the output array.
// A command that fails only contributes an error entry; the replay itself
// never halts.
func (r *Runner) Run(ctx context.Context, in *Input) []OutputEntry {
	var out []OutputEntry
	for _, cmd := range in.Commands {
		if entry := r.dispatch(ctx, cmd); entry != nil {
			out = append(out, *entry)
		}
	}
	return out
}

// dispatch executes one command; a nil return means no output entry
func (r *Runner) dispatch(ctx context.Context, cmd CommandInput) *OutputEntry {
	switch cmd.Command {
	case "addAccount":
		return r.addAccount(ctx, cmd)
	case "addFunds":
		return r.addFunds(ctx, cmd)
	case "splitPayment":
		return r.splitPayment(ctx, cmd)
	case "acceptSplitPayment":
		return r.resolveSplit(ctx, cmd, domain.DecisionAccept)
	case "rejectSplitPayment":
		return r.resolveSplit(ctx, cmd, domain.DecisionReject)
	case "upgradePlan":
		return r.upgradePlan(ctx, cmd)
	case "printTransactions":
		return r.printTransactions(ctx, cmd)
	default:
		log.Debug().Str("command", cmd.Command).Int("timestamp", cmd.Timestamp).
			Msg("skipping command outside the simulated core")
		return nil
	}
}

func (r *Runner) addAccount(ctx context.Context, cmd CommandInput) *OutputEntry {
	owner, err := r.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return userNotFound(cmd)
	}
	user := owner.(*bank.User)

	account := bank.NewAccount("", domain.Currency(cmd.Currency), user)
	user.AddAccount(account, cmd.Timestamp)
	r.db.AddAccount(account)
	return nil
}

func (r *Runner) addFunds(ctx context.Context, cmd CommandInput) *OutputEntry {
	account, err := r.accounts.GetByIBAN(ctx, cmd.Account)
	if err != nil {
		log.Debug().Str("account", cmd.Account).Msg("addFunds on unknown account")
		return nil
	}
	account.(*bank.Account).Credit(cmd.Amount)
	return nil
}

func (r *Runner) splitPayment(ctx context.Context, cmd CommandInput) *OutputEntry {
	kind := domain.SplitKind(cmd.SplitPaymentType)
	_, err := r.splits.ProposeSplit(ctx, kind, cmd.Accounts, cmd.Amount,
		domain.Currency(cmd.Currency), cmd.AmountForUsers, cmd.Timestamp)
	if err != nil {
		return &OutputEntry{
			Command:   cmd.Command,
			Timestamp: cmd.Timestamp,
			Output:    errorOutput{Description: "One of the accounts is invalid", Timestamp: cmd.Timestamp},
		}
	}
	return nil
}

func (r *Runner) resolveSplit(ctx context.Context, cmd CommandInput, decision domain.Decision) *OutputEntry {
	owner, err := r.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return userNotFound(cmd)
	}

	kind := domain.SplitKind(cmd.SplitPaymentType)
	if err := r.splits.ResolveVote(ctx, owner, kind, decision); err != nil {
		if errors.Is(err, domain.ErrNoPendingPayment) {
			log.Debug().Str("owner", cmd.Email).Str("kind", cmd.SplitPaymentType).
				Msg("no pending split payment to resolve")
			return nil
		}
		log.Warn().Err(err).Str("owner", cmd.Email).Msg("failed to resolve split vote")
	}
	return nil
}

func (r *Runner) upgradePlan(ctx context.Context, cmd CommandInput) *OutputEntry {
	account, err := r.accounts.GetByIBAN(ctx, cmd.Account)
	if err != nil {
		return &OutputEntry{
			Command:   cmd.Command,
			Timestamp: cmd.Timestamp,
			Output:    errorOutput{Description: "Account not found", Timestamp: cmd.Timestamp},
		}
	}
	bankAccount := account.(*bank.Account)
	user := bankAccount.Owner().(*bank.User)

	next, err := plan.Parse(cmd.NewPlanType)
	if err != nil {
		log.Warn().Err(err).Int("timestamp", cmd.Timestamp).Msg("unknown plan in upgradePlan")
		return nil
	}

	rate := r.rates.Rate(referenceCurrency, bankAccount.Currency())
	if err := user.UpgradePlan(bankAccount, next, rate, cmd.Timestamp); err != nil {
		log.Debug().Err(err).Str("account", cmd.Account).Msg("plan upgrade refused")
	}
	return nil
}

func (r *Runner) printTransactions(ctx context.Context, cmd CommandInput) *OutputEntry {
	owner, err := r.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return userNotFound(cmd)
	}
	return &OutputEntry{
		Command:   cmd.Command,
		Timestamp: cmd.Timestamp,
		Output:    owner.(*bank.User).History(),
	}
}

func userNotFound(cmd CommandInput) *OutputEntry {
	return &OutputEntry{
		Command:   cmd.Command,
		Timestamp: cmd.Timestamp,
		Output:    errorOutput{Description: "User not found", Timestamp: cmd.Timestamp},
	}
}

// WriteOutput renders the output array as indented JSON into a file
func WriteOutput(path string, entries []OutputEntry) error {
	if entries == nil {
		entries = []OutputEntry{}
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
