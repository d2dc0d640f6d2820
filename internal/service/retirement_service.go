package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"networth/internal/apperrors"
	"networth/internal/model"
	"networth/internal/quotes"
	"networth/internal/repository"
	"networth/internal/validation"
)

// RetirementService handles retirement accounts and the equity holdings of
// IRA-typed accounts.
type RetirementService struct {
	retirementRepo *repository.RetirementRepository
	cache          *quotes.Cache
}

// NewRetirementService creates a new RetirementService with the provided dependencies.
func NewRetirementService(
	retirementRepo *repository.RetirementRepository,
	cache *quotes.Cache,
) *RetirementService {
	return &RetirementService{
		retirementRepo: retirementRepo,
		cache:          cache,
	}
}

// CreateAccount validates and stores a new retirement account, assigning
// its opaque identity. Returns the created account.
func (s *RetirementService) CreateAccount(ctx context.Context, name string, accType model.RetirementType, balance float64) (*model.RetirementAccount, error) {
	if name == "" {
		return nil, fmt.Errorf("retirement account: %w", apperrors.ErrEmptyName)
	}
	if err := validation.ValidateAccountType(accType); err != nil {
		return nil, err
	}
	if err := validation.ValidateBalance(balance); err != nil {
		return nil, err
	}

	acct := &model.RetirementAccount{
		ID:      uuid.New().String(),
		Name:    name,
		Type:    accType,
		Balance: balance,
	}

	if err := s.retirementRepo.InsertAccount(ctx, *acct); err != nil {
		return nil, fmt.Errorf("failed to create retirement account: %w", err)
	}

	return acct, nil
}

// UpdateBalance overwrites the balance of an account. For IRA-typed
// accounts this is the cash sleeve; it never changes how the account is
// counted in net worth.
//
// Returns apperrors.ErrAccountNotFound for an unknown ID.
func (s *RetirementService) UpdateBalance(ctx context.Context, accountID string, balance float64) error {
	if err := validation.ValidateBalance(balance); err != nil {
		return err
	}

	return s.retirementRepo.UpdateBalance(ctx, accountID, balance)
}

// DeleteAccount removes an account and, via cascade, all of its holdings.
// Returns apperrors.ErrAccountNotFound for an unknown ID.
func (s *RetirementService) DeleteAccount(ctx context.Context, accountID string) error {
	return s.retirementRepo.DeleteAccount(ctx, accountID)
}

// GetAccount retrieves a single account by ID.
func (s *RetirementService) GetAccount(accountID string) (model.RetirementAccount, error) {
	return s.retirementRepo.GetAccount(accountID)
}

// GetAccounts retrieves all retirement accounts ordered by name.
func (s *RetirementService) GetAccounts() ([]model.RetirementAccount, error) {
	return s.retirementRepo.GetAccounts()
}

// AddHolding stores a new equity holding inside an IRA-typed account.
// Every call inserts a new row: duplicate symbols are legal and summed at
// valuation, never merged. This deliberately differs from the primary
// portfolio's increment-on-conflict behavior.
//
// Returns apperrors.ErrAccountNotFound for an unknown account and
// apperrors.ErrInvalidAccountType when the account is not IRA-typed.
func (s *RetirementService) AddHolding(ctx context.Context, accountID, symbol string, shares float64) (*model.IRAHolding, error) {
	if err := validation.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	if err := validation.ValidateShares(shares); err != nil {
		return nil, err
	}

	acct, err := s.retirementRepo.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	if !acct.Type.IsIRA() {
		return nil, fmt.Errorf("%w: %q does not hold equities", apperrors.ErrInvalidAccountType, acct.Type)
	}

	holding := &model.IRAHolding{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Symbol:    symbol,
		Shares:    shares,
	}

	if err := s.retirementRepo.InsertHolding(ctx, *holding); err != nil {
		return nil, fmt.Errorf("failed to add holding: %w", err)
	}

	return holding, nil
}

// GetHoldings retrieves all holdings of an account ordered by symbol.
// Unknown accounts yield an empty slice, matching the contract that a
// removed account's holdings list is empty rather than an error.
func (s *RetirementService) GetHoldings(accountID string) ([]model.IRAHolding, error) {
	return s.retirementRepo.GetHoldings(accountID)
}

// RemoveHolding deletes a single holding by ID.
// Returns apperrors.ErrHoldingNotFound for an unknown ID.
func (s *RetirementService) RemoveHolding(ctx context.Context, holdingID string) error {
	return s.retirementRepo.DeleteHolding(ctx, holdingID)
}

// AccountValue computes an account's contribution to net worth. IRA-typed
// accounts contribute the sum of holdings times cached quotes (missing
// quotes count as zero, and the balance field is excluded); all other
// types contribute the stored balance.
func (s *RetirementService) AccountValue(acct model.RetirementAccount) (float64, error) {
	if !acct.Type.IsIRA() {
		return acct.Balance, nil
	}

	holdings, err := s.retirementRepo.GetHoldings(acct.ID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, h := range holdings {
		total += s.cache.Price(h.Symbol) * h.Shares
	}

	return total, nil
}
