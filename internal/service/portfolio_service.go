package service

import (
	"context"
	"fmt"

	"networth/internal/apperrors"
	"networth/internal/model"
	"networth/internal/quotes"
	"networth/internal/repository"
	"networth/internal/validation"
)

// PortfolioService handles the primary equity portfolio and cash accounts.
// Portfolio mutations also rebuild the in-memory mirror so the aggregation
// layer never reads a position the store no longer has.
type PortfolioService struct {
	stockRepo *repository.StockRepository
	cashRepo  *repository.CashRepository
	cache     *quotes.Cache
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	stockRepo *repository.StockRepository,
	cashRepo *repository.CashRepository,
	cache *quotes.Cache,
) *PortfolioService {
	return &PortfolioService{
		stockRepo: stockRepo,
		cashRepo:  cashRepo,
		cache:     cache,
	}
}

// AddStock adds shares of a symbol to the primary portfolio. The symbol is
// uppercased; adding to an existing position increments it rather than
// creating a duplicate row.
//
// Returns apperrors.ErrInvalidSymbol or apperrors.ErrNegativeShares when
// the input is rejected before any write.
func (s *PortfolioService) AddStock(ctx context.Context, symbol string, shares float64) error {
	if err := validation.ValidateSymbol(symbol); err != nil {
		return err
	}
	if err := validation.ValidateShares(shares); err != nil {
		return err
	}

	if err := s.stockRepo.Upsert(ctx, symbol, shares); err != nil {
		return fmt.Errorf("failed to add stock: %w", err)
	}

	return s.cache.RebuildFromStore(s.stockRepo)
}

// RemoveStock deletes the position for a symbol entirely.
// Returns apperrors.ErrStockNotFound for an unknown symbol.
func (s *PortfolioService) RemoveStock(ctx context.Context, symbol string) error {
	if err := validation.ValidateSymbol(symbol); err != nil {
		return err
	}

	if err := s.stockRepo.Delete(ctx, symbol); err != nil {
		return err
	}

	return s.cache.RebuildFromStore(s.stockRepo)
}

// GetStocks retrieves all positions in the primary portfolio ordered by symbol.
func (s *PortfolioService) GetStocks() ([]model.StockPosition, error) {
	return s.stockRepo.GetAll()
}

// SetCashBalance overwrites the balance of the named cash account,
// creating it on first write. Idempotent.
func (s *PortfolioService) SetCashBalance(ctx context.Context, name string, balance float64) error {
	if name == "" {
		return fmt.Errorf("cash account: %w", apperrors.ErrEmptyName)
	}
	if err := validation.ValidateBalance(balance); err != nil {
		return err
	}

	return s.cashRepo.Set(ctx, name, balance)
}

// GetCashBalances retrieves all cash balances keyed by account name.
func (s *PortfolioService) GetCashBalances() (map[string]float64, error) {
	return s.cashRepo.GetAll()
}
