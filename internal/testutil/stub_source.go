package testutil

import (
	"context"
	"fmt"
	"sync"
)

// StubSource is a pricing.Source backed by a fixed price table. Symbols
// missing from the table (or listed in Failures) return an error, and
// every quoted symbol is recorded for assertions.
type StubSource struct {
	mu       sync.Mutex
	prices   map[string]float64
	failures map[string]error
	queried  []string
}

// NewStubSource creates a stub source quoting the given symbol-to-price table.
func NewStubSource(prices map[string]float64) *StubSource {
	table := make(map[string]float64, len(prices))
	for symbol, price := range prices {
		table[symbol] = price
	}
	return &StubSource{
		prices:   table,
		failures: map[string]error{},
	}
}

// WithFailure configures the stub to return the given error for a symbol.
func (s *StubSource) WithFailure(symbol string, err error) *StubSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[symbol] = err
	return s
}

// Quote returns the configured price for the symbol, or an error when the
// symbol is unknown or configured to fail.
func (s *StubSource) Quote(_ context.Context, symbol string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queried = append(s.queried, symbol)

	if err, ok := s.failures[symbol]; ok {
		return 0, err
	}
	price, ok := s.prices[symbol]
	if !ok {
		return 0, fmt.Errorf("no stub price for symbol %s", symbol)
	}
	return price, nil
}

// Name identifies the stub in logs.
func (s *StubSource) Name() string {
	return "stub"
}

// Queried returns the symbols quoted so far, in call order.
func (s *StubSource) Queried() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.queried))
	copy(out, s.queried)
	return out
}
