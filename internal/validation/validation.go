package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"networth/internal/apperrors"
	"networth/internal/model"
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// ValidateSymbol checks that a ticker symbol is present after trimming.
func ValidateSymbol(symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return apperrors.ErrInvalidSymbol
	}
	return nil
}

// ValidateShares checks that a share count is non-negative.
func ValidateShares(shares float64) error {
	if shares < 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrNegativeShares, shares)
	}
	return nil
}

// ValidateBalance checks that a balance is non-negative.
func ValidateBalance(balance float64) error {
	if balance < 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrNegativeBalance, balance)
	}
	return nil
}

// ValidateTreasury checks the fields of a treasury before insertion.
// Face value must be positive and the rate an annualized fraction in [0, 1].
// A purchase date in the future is legal (accrual runs negative until then).
func ValidateTreasury(t model.Treasury) error {
	if strings.TrimSpace(t.Name) == "" {
		return apperrors.ErrEmptyName
	}
	if t.FaceValue <= 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidFaceValue, t.FaceValue)
	}
	if t.InterestRate < 0 || t.InterestRate > 1 {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInterestRate, t.InterestRate)
	}
	if t.PurchaseDate.IsZero() {
		return fmt.Errorf("%w: purchase date is required", apperrors.ErrInvalidDate)
	}
	return nil
}

// ValidateAccountType checks that a retirement account type is supported.
func ValidateAccountType(t model.RetirementType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidAccountType, t)
	}
	return nil
}

// ParseDate parses a date string in "2006-01-02" or RFC3339 format.
func ParseDate(str string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", str)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidDate, str)
		}
	}
	return parsed.UTC(), nil
}
