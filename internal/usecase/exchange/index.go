// Package exchange holds the currency conversion index every monetary
// comparison in the system goes through.
package exchange

import (
	"github.com/marinaa13/Banking-Application/internal/domain"
)

// RateIndex stores pairwise exchange rates and derives every indirect rate
// via an all-pairs closure over the directly quoted pairs.
//
// Built once per session from the full rate list and immutable afterwards,
// so it may be shared freely.
type RateIndex struct {
	symbols []domain.Currency
	index   map[domain.Currency]int
	matrix  [][]float64
}

// NewIndex builds a RateIndex from a list of directly quoted rates.
//
// The matrix is seeded with each direct pair and its reciprocal, the
// diagonal is set to 1, and a Floyd-Warshall pass maximizing the product
// across intermediate currencies fills in every indirect rate. For a pair
// that is both directly quoted and derivable, the larger rate wins.
func NewIndex(rates []domain.ExchangeRate) *RateIndex {
	idx := &RateIndex{index: make(map[domain.Currency]int)}

	for _, r := range rates {
		idx.addSymbol(r.From)
		idx.addSymbol(r.To)
	}

	n := len(idx.symbols)
	idx.matrix = make([][]float64, n)
	for i := range idx.matrix {
		idx.matrix[i] = make([]float64, n)
	}

	for _, r := range rates {
		from := idx.index[r.From]
		to := idx.index[r.To]
		idx.matrix[from][to] = r.Rate
		idx.matrix[to][from] = 1 / r.Rate
	}

	for i := 0; i < n; i++ {
		idx.matrix[i][i] = 1
	}

	idx.close()
	return idx
}

// addSymbol registers a currency the first time it is mentioned,
// fixing insertion order
func (idx *RateIndex) addSymbol(c domain.Currency) {
	if _, ok := idx.index[c]; ok {
		return
	}
	idx.index[c] = len(idx.symbols)
	idx.symbols = append(idx.symbols, c)
}

// close computes the maximum product across any path between two symbols.
// Same relaxation shape as Floyd-Warshall shortest paths, maximizing
// instead of minimizing.
func (idx *RateIndex) close() {
	n := len(idx.symbols)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if via := idx.matrix[i][k] * idx.matrix[k][j]; via > idx.matrix[i][j] {
					idx.matrix[i][j] = via
				}
			}
		}
	}
}

// Rate returns the conversion rate from one currency to another.
//
// Rate(x, x) == 1 and Rate(a, b)*Rate(b, a) is 1 within floating epsilon
// for any two known symbols. A symbol never seen at build time yields 0;
// callers must not ask for un-modeled currencies.
func (idx *RateIndex) Rate(from, to domain.Currency) float64 {
	i, ok := idx.index[from]
	if !ok {
		return 0
	}
	j, ok := idx.index[to]
	if !ok {
		return 0
	}
	return idx.matrix[i][j]
}

// Symbols returns the known currencies in insertion order
func (idx *RateIndex) Symbols() []domain.Currency {
	out := make([]domain.Currency, len(idx.symbols))
	copy(out, idx.symbols)
	return out
}
