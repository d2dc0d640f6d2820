package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrStockNotFound indicates that no position exists for the given symbol.
	ErrStockNotFound = errors.New("stock position not found")

	// ErrTreasuryNotFound indicates that a treasury with the given name does not exist.
	ErrTreasuryNotFound = errors.New("treasury not found")

	// ErrAccountNotFound indicates that a retirement account with the given ID does not exist.
	ErrAccountNotFound = errors.New("retirement account not found")

	// ErrHoldingNotFound indicates that an IRA holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("ira holding not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidSymbol indicates that a ticker symbol is empty or malformed.
	ErrInvalidSymbol = errors.New("symbol is required")

	// ErrNegativeShares indicates that a share count has an invalid negative value.
	ErrNegativeShares = errors.New("shares cannot be negative")

	// ErrNegativeBalance indicates that a balance field has an invalid negative value.
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrInvalidFaceValue indicates that a treasury face value is zero or negative.
	ErrInvalidFaceValue = errors.New("face value must be positive")

	// ErrInvalidInterestRate indicates that an interest rate is outside [0, 1].
	ErrInvalidInterestRate = errors.New("interest rate must be between 0 and 1")

	// ErrInvalidDate indicates that a date string could not be parsed.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidAccountType indicates an unknown retirement account type.
	ErrInvalidAccountType = errors.New("invalid retirement account type")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyName indicates that a required name field is empty or missing.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Quote errors represent price-source failures. They are isolated per symbol
// and never propagate through the aggregation layer.
var (
	// ErrQuoteUnavailable indicates that a price source could not produce a
	// quote for a symbol from either its primary or fallback field.
	ErrQuoteUnavailable = errors.New("quote unavailable")
)
