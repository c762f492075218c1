package domain

// Currency is an opaque currency symbol, e.g. "RON" or "EUR".
// It carries no behavior; conversions go through the exchange rate index.
type Currency string

// ExchangeRate represents one directly quoted conversion between two currencies
type ExchangeRate struct {
	From Currency
	To   Currency
	Rate float64
}
