package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"networth/internal/pricing"
	"networth/internal/quotes"
	"networth/internal/repository"
)

// quoteTimeout bounds each symbol's fetch so one slow lookup cannot stall
// the batch.
const quoteTimeout = 10 * time.Second

// refreshWorkers bounds the fan-out of a refresh batch.
const refreshWorkers = 4

// PricingService orchestrates quote refreshes: it resolves the set of
// symbols the system actually tracks, fetches quotes from the configured
// source, and writes them into the in-memory mirror. Per-symbol failures
// are isolated: they are logged, the previous cached quote (if any) stays
// in place, and the rest of the batch proceeds.
type PricingService struct {
	source         pricing.Source
	cache          *quotes.Cache
	stockRepo      *repository.StockRepository
	retirementRepo *repository.RetirementRepository
}

// NewPricingService creates a new PricingService with the provided dependencies.
func NewPricingService(
	source pricing.Source,
	cache *quotes.Cache,
	stockRepo *repository.StockRepository,
	retirementRepo *repository.RetirementRepository,
) *PricingService {
	return &PricingService{
		source:         source,
		cache:          cache,
		stockRepo:      stockRepo,
		retirementRepo: retirementRepo,
	}
}

// TrackedSymbols returns the union of primary-portfolio symbols and the
// holdings of IRA-typed accounts, uppercased, deduplicated and sorted.
// No symbol outside this set is ever quoted.
func (s *PricingService) TrackedSymbols() ([]string, error) {
	seen := map[string]bool{}

	positions, err := s.stockRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio symbols: %w", err)
	}
	for _, p := range positions {
		seen[strings.ToUpper(p.Symbol)] = true
	}

	accounts, err := s.retirementRepo.GetAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list retirement accounts: %w", err)
	}
	for _, acct := range accounts {
		if !acct.Type.IsIRA() {
			continue
		}
		holdings, err := s.retirementRepo.GetHoldings(acct.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list holdings for account %s: %w", acct.ID, err)
		}
		for _, h := range holdings {
			seen[strings.ToUpper(h.Symbol)] = true
		}
	}

	symbols := make([]string, 0, len(seen))
	for symbol := range seen {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	return symbols, nil
}

// RefreshAll rebuilds the portfolio mirror from the store, then refreshes
// quotes for every tracked symbol. Safe to call repeatedly; cadence is the
// caller's concern (see session.Session).
//
// Returns an error only when the tracked-symbol set itself cannot be
// resolved; individual quote failures are logged and skipped.
func (s *PricingService) RefreshAll(ctx context.Context) error {
	if err := s.cache.RebuildFromStore(s.stockRepo); err != nil {
		return fmt.Errorf("failed to rebuild portfolio mirror: %w", err)
	}

	symbols, err := s.TrackedSymbols()
	if err != nil {
		return err
	}

	s.RefreshSymbols(ctx, symbols)
	return nil
}

// RefreshSymbols fetches quotes for an explicit symbol set with bounded
// concurrency. A failed symbol keeps its previous cached quote; it never
// aborts the batch.
func (s *PricingService) RefreshSymbols(ctx context.Context, symbols []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshWorkers)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			quoteCtx, cancel := context.WithTimeout(ctx, quoteTimeout)
			defer cancel()

			price, err := s.source.Quote(quoteCtx, symbol)
			if err != nil {
				log.Printf("failed to quote %s (%s): %v", symbol, s.source.Name(), err)
				return nil
			}

			s.cache.SetPrice(symbol, price)
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes the batch.
	_ = g.Wait()
}
