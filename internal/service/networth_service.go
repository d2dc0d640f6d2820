package service

import (
	"log"

	"networth/internal/model"
	"networth/internal/quotes"
	"networth/internal/repository"
)

// NetWorthService is the aggregation engine: it combines cash balances,
// the primary equity portfolio, treasury accruals and retirement accounts
// into a single net-worth figure.
//
// The engine always returns a number. Store read failures are logged and
// the affected component contributes zero; missing quotes are already
// zero by the mirror's contract. An entirely empty store yields 0.0.
type NetWorthService struct {
	cashRepo      *repository.CashRepository
	stockRepo     *repository.StockRepository
	treasurySvc   *TreasuryService
	retirementSvc *RetirementService
	cache         *quotes.Cache
}

// NewNetWorthService creates a new NetWorthService with the provided dependencies.
func NewNetWorthService(
	cashRepo *repository.CashRepository,
	stockRepo *repository.StockRepository,
	treasurySvc *TreasuryService,
	retirementSvc *RetirementService,
	cache *quotes.Cache,
) *NetWorthService {
	return &NetWorthService{
		cashRepo:      cashRepo,
		stockRepo:     stockRepo,
		treasurySvc:   treasurySvc,
		retirementSvc: retirementSvc,
		cache:         cache,
	}
}

// NetWorth computes total net worth at current cached quotes, rounded to
// two decimal places.
func (s *NetWorthService) NetWorth() float64 {
	return s.Breakdown().Total
}

// Breakdown computes net worth with per-component subtotals:
//
//   - cash: sum of all cash account balances
//   - equities: primary portfolio, shares x cached quote per symbol
//   - treasuries: simple-interest accrued values as of now
//   - retirement: IRA-typed accounts by summed holdings x quote (balance
//     excluded - the cash sleeve is a data-entry concern), all other types
//     by stored balance
//
// Symbols without a cached quote contribute zero, never an error.
func (s *NetWorthService) Breakdown() model.NetWorthBreakdown {
	var b model.NetWorthBreakdown

	cash, err := s.cashRepo.GetAll()
	if err != nil {
		log.Printf("net worth: failed to read cash balances: %v", err)
	}
	for _, balance := range cash {
		b.Cash += balance
	}

	positions, err := s.stockRepo.GetAll()
	if err != nil {
		log.Printf("net worth: failed to read portfolio: %v", err)
	}
	for _, p := range positions {
		b.Equities += s.cache.Price(p.Symbol) * p.Shares
	}

	treasuries, err := s.treasurySvc.TotalValue()
	if err != nil {
		log.Printf("net worth: failed to value treasuries: %v", err)
	}
	b.Treasuries = treasuries

	accounts, err := s.retirementSvc.GetAccounts()
	if err != nil {
		log.Printf("net worth: failed to read retirement accounts: %v", err)
	}
	for _, acct := range accounts {
		value, err := s.retirementSvc.AccountValue(acct)
		if err != nil {
			log.Printf("net worth: failed to value account %s: %v", acct.ID, err)
			continue
		}
		b.Retirement += value
	}

	b.Cash = round(b.Cash)
	b.Equities = round(b.Equities)
	b.Treasuries = round(b.Treasuries)
	b.Retirement = round(b.Retirement)
	b.Total = round(b.Cash + b.Equities + b.Treasuries + b.Retirement)

	return b
}
