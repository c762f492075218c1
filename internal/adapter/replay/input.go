// Package replay is the command-log front end: it decodes the recorded
// JSON log, dispatches each command onto the core entry points in strict
// sequence, and assembles the JSON output the simulation emits.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marinaa13/Banking-Application/internal/domain"
)

// Input is one recorded session: the users, the full exchange-rate list
// the rate index is built from, and the command sequence.
type Input struct {
	Users         []UserInput    `json:"users"`
	ExchangeRates []RateInput    `json:"exchangeRates"`
	Commands      []CommandInput `json:"commands"`
}

// UserInput describes one user at session start
type UserInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate"`
	Occupation string `json:"occupation"`
}

// RateInput is one directly quoted exchange rate
type RateInput struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// CommandInput is the superset of fields a recorded command may carry;
// each command reads only the fields it needs
type CommandInput struct {
	Command          string    `json:"command"`
	Timestamp        int       `json:"timestamp"`
	Email            string    `json:"email,omitempty"`
	Account          string    `json:"account,omitempty"`
	Accounts         []string  `json:"accounts,omitempty"`
	Currency         string    `json:"currency,omitempty"`
	Amount           float64   `json:"amount,omitempty"`
	SplitPaymentType string    `json:"splitPaymentType,omitempty"`
	AmountForUsers   []float64 `json:"amountForUsers,omitempty"`
	AccountType      string    `json:"accountType,omitempty"`
	NewPlanType      string    `json:"newPlanType,omitempty"`
}

// OutputEntry is one element of the emitted output array
type OutputEntry struct {
	Command   string `json:"command"`
	Output    any    `json:"output,omitempty"`
	Timestamp int    `json:"timestamp"`
}

// errorOutput mirrors the log's error shape for a failed command
type errorOutput struct {
	Description string `json:"description"`
	Timestamp   int    `json:"timestamp"`
}

// LoadInput reads and decodes a recorded session from a file
func LoadInput(path string) (*Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command log: %w", err)
	}
	var in Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("failed to decode command log: %w", err)
	}
	return &in, nil
}

// Rates converts the recorded rate list into domain exchange rates
func (in *Input) Rates() []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, len(in.ExchangeRates))
	for i, r := range in.ExchangeRates {
		out[i] = domain.ExchangeRate{
			From: domain.Currency(r.From),
			To:   domain.Currency(r.To),
			Rate: r.Rate,
		}
	}
	return out
}
