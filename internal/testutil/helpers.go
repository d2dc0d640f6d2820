package testutil

import (
	"database/sql"
	"testing"

	"networth/internal/pricing"
	"networth/internal/quotes"
	"networth/internal/repository"
	"networth/internal/service"
)

func NewTestPortfolioService(t *testing.T, db *sql.DB, cache *quotes.Cache) *service.PortfolioService {
	t.Helper()

	stockRepo := repository.NewStockRepository(db)
	cashRepo := repository.NewCashRepository(db)

	return service.NewPortfolioService(
		stockRepo,
		cashRepo,
		cache,
	)
}

func NewTestTreasuryService(t *testing.T, db *sql.DB) *service.TreasuryService {
	t.Helper()

	treasuryRepo := repository.NewTreasuryRepository(db)

	return service.NewTreasuryService(treasuryRepo)
}

func NewTestRetirementService(t *testing.T, db *sql.DB, cache *quotes.Cache) *service.RetirementService {
	t.Helper()

	retirementRepo := repository.NewRetirementRepository(db)

	return service.NewRetirementService(
		retirementRepo,
		cache,
	)
}

func NewTestPricingService(t *testing.T, db *sql.DB, source pricing.Source, cache *quotes.Cache) *service.PricingService {
	t.Helper()

	stockRepo := repository.NewStockRepository(db)
	retirementRepo := repository.NewRetirementRepository(db)

	return service.NewPricingService(
		source,
		cache,
		stockRepo,
		retirementRepo,
	)
}

func NewTestNetWorthService(t *testing.T, db *sql.DB, cache *quotes.Cache) *service.NetWorthService {
	t.Helper()

	cashRepo := repository.NewCashRepository(db)
	stockRepo := repository.NewStockRepository(db)

	return service.NewNetWorthService(
		cashRepo,
		stockRepo,
		NewTestTreasuryService(t, db),
		NewTestRetirementService(t, db, cache),
		cache,
	)
}
