package service

import (
	"context"
	"math"
	"time"

	"networth/internal/model"
	"networth/internal/repository"
	"networth/internal/validation"
)

// TreasuryService handles treasury securities and their simple-interest
// valuation. Current value is always derived at evaluation time, never
// stored.
type TreasuryService struct {
	treasuryRepo *repository.TreasuryRepository
	now          func() time.Time
}

// NewTreasuryService creates a new TreasuryService with the provided repository.
func NewTreasuryService(treasuryRepo *repository.TreasuryRepository) *TreasuryService {
	return &TreasuryService{
		treasuryRepo: treasuryRepo,
		now:          time.Now,
	}
}

// WithClock returns a copy of the service that evaluates "today" through
// the given function. Used by tests to pin the evaluation date.
func (s *TreasuryService) WithClock(now func() time.Time) *TreasuryService {
	return &TreasuryService{
		treasuryRepo: s.treasuryRepo,
		now:          now,
	}
}

// Add validates and stores a new treasury.
//
// Returns apperrors.ErrInvalidFaceValue, ErrInvalidInterestRate,
// ErrInvalidDate or ErrEmptyName when the input is rejected, and
// apperrors.ErrDuplicateEntry when the name is already taken.
func (s *TreasuryService) Add(ctx context.Context, t model.Treasury) error {
	if err := validation.ValidateTreasury(t); err != nil {
		return err
	}

	return s.treasuryRepo.Insert(ctx, t)
}

// Remove deletes a treasury by name.
// Returns apperrors.ErrTreasuryNotFound for an unknown name.
func (s *TreasuryService) Remove(ctx context.Context, name string) error {
	return s.treasuryRepo.Delete(ctx, name)
}

// List retrieves all treasuries with their accrued values as of now.
func (s *TreasuryService) List() ([]model.TreasuryValuation, error) {
	treasuries, err := s.treasuryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	valuations := make([]model.TreasuryValuation, 0, len(treasuries))
	for _, t := range treasuries {
		valuations = append(valuations, model.TreasuryValuation{
			Treasury:     t,
			CurrentValue: s.CurrentValue(t),
		})
	}

	return valuations, nil
}

// CurrentValue computes the accrued value of a treasury using simple
// (non-compounding) interest:
//
//	face_value * (1 + interest_rate * days_held / 365)
//
// days_held is the whole-day difference between today and the purchase
// date at evaluation time, floored. A purchase date in the future yields
// negative days_held and a value below face value; that is legal, not an
// error.
//
// MaturityDate is deliberately not consulted: there is no cap at maturity
// and no rollover or redemption logic. The result is rounded to two
// decimal places.
func (s *TreasuryService) CurrentValue(t model.Treasury) float64 {
	daysHeld := daysBetween(t.PurchaseDate, s.now())
	return round(t.FaceValue * (1 + t.InterestRate*float64(daysHeld)/365))
}

// TotalValue sums the current values of all treasuries. An empty table
// yields 0.0.
func (s *TreasuryService) TotalValue() (float64, error) {
	treasuries, err := s.treasuryRepo.GetAll()
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, t := range treasuries {
		total += s.CurrentValue(t)
	}

	return total, nil
}

// daysBetween returns the whole number of days from a to b, floored
// toward negative infinity. Negative when b precedes a: 36 hours before
// purchase is -2 days held, not -1.
func daysBetween(a, b time.Time) int {
	return int(math.Floor(b.Sub(a).Hours() / 24))
}
