package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"networth/internal/model"
)

// MakeID generates a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// InsertStock inserts a primary portfolio row directly, bypassing the
// upsert logic under test.
func InsertStock(t *testing.T, db *sql.DB, symbol string, shares float64) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO stock_position (symbol, shares) VALUES (?, ?)`, symbol, shares)
	if err != nil {
		t.Fatalf("Failed to insert stock position: %v", err)
	}
}

// InsertCash inserts a cash account row directly.
func InsertCash(t *testing.T, db *sql.DB, name string, balance float64) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO cash_account (name, balance) VALUES (?, ?)`, name, balance)
	if err != nil {
		t.Fatalf("Failed to insert cash account: %v", err)
	}
}

// TreasuryBuilder provides a fluent interface for creating test treasuries.
//
// Example usage:
//
//	treasury := testutil.NewTreasury().
//	    WithName("T-Bill 2026").
//	    WithFaceValue(1000).
//	    WithRate(0.04).
//	    PurchasedDaysAgo(365).
//	    Build(t, db)
type TreasuryBuilder struct {
	treasury model.Treasury
}

// NewTreasury creates a TreasuryBuilder with sensible defaults.
func NewTreasury() *TreasuryBuilder {
	purchase := time.Now().UTC().AddDate(0, -6, 0)
	return &TreasuryBuilder{
		treasury: model.Treasury{
			Name:         "Test Treasury " + MakeID()[:8],
			Type:         "T-Bill",
			FaceValue:    1000,
			InterestRate: 0.04,
			PurchaseDate: purchase,
			MaturityDate: purchase.AddDate(1, 0, 0),
		},
	}
}

// WithName sets a custom name.
func (b *TreasuryBuilder) WithName(name string) *TreasuryBuilder {
	b.treasury.Name = name
	return b
}

// WithFaceValue sets a custom face value.
func (b *TreasuryBuilder) WithFaceValue(faceValue float64) *TreasuryBuilder {
	b.treasury.FaceValue = faceValue
	return b
}

// WithRate sets a custom annualized interest rate.
func (b *TreasuryBuilder) WithRate(rate float64) *TreasuryBuilder {
	b.treasury.InterestRate = rate
	return b
}

// PurchasedDaysAgo sets the purchase date relative to now. Negative values
// place the purchase in the future.
func (b *TreasuryBuilder) PurchasedDaysAgo(days int) *TreasuryBuilder {
	b.treasury.PurchaseDate = time.Now().UTC().AddDate(0, 0, -days)
	b.treasury.MaturityDate = b.treasury.PurchaseDate.AddDate(1, 0, 0)
	return b
}

// Build inserts the treasury and returns it.
func (b *TreasuryBuilder) Build(t *testing.T, db *sql.DB) model.Treasury {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO treasury (name, type, face_value, interest_rate, purchase_date, maturity_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.treasury.Name,
		b.treasury.Type,
		b.treasury.FaceValue,
		b.treasury.InterestRate,
		b.treasury.PurchaseDate.Format("2006-01-02"),
		b.treasury.MaturityDate.Format("2006-01-02"),
	)
	if err != nil {
		t.Fatalf("Failed to insert treasury: %v", err)
	}

	return b.treasury
}

// RetirementAccountBuilder provides a fluent interface for creating test
// retirement accounts.
type RetirementAccountBuilder struct {
	account model.RetirementAccount
}

// NewRetirementAccount creates a builder defaulting to a traditional 401k.
func NewRetirementAccount() *RetirementAccountBuilder {
	return &RetirementAccountBuilder{
		account: model.RetirementAccount{
			ID:      MakeID(),
			Name:    "Test Account",
			Type:    model.Retirement401kTraditional,
			Balance: 0,
		},
	}
}

// WithName sets a custom name.
func (b *RetirementAccountBuilder) WithName(name string) *RetirementAccountBuilder {
	b.account.Name = name
	return b
}

// WithType sets the account type.
func (b *RetirementAccountBuilder) WithType(accType model.RetirementType) *RetirementAccountBuilder {
	b.account.Type = accType
	return b
}

// WithBalance sets the stored balance.
func (b *RetirementAccountBuilder) WithBalance(balance float64) *RetirementAccountBuilder {
	b.account.Balance = balance
	return b
}

// Build inserts the account and returns it.
func (b *RetirementAccountBuilder) Build(t *testing.T, db *sql.DB) model.RetirementAccount {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO retirement_account (id, name, type, balance) VALUES (?, ?, ?, ?)`,
		b.account.ID,
		b.account.Name,
		string(b.account.Type),
		b.account.Balance,
	)
	if err != nil {
		t.Fatalf("Failed to insert retirement account: %v", err)
	}

	return b.account
}

// InsertHolding inserts an IRA holding row directly and returns it.
func InsertHolding(t *testing.T, db *sql.DB, accountID, symbol string, shares float64) model.IRAHolding {
	t.Helper()

	holding := model.IRAHolding{
		ID:        MakeID(),
		AccountID: accountID,
		Symbol:    symbol,
		Shares:    shares,
	}

	_, err := db.Exec(
		`INSERT INTO ira_holding (id, account_id, symbol, shares) VALUES (?, ?, ?, ?)`,
		holding.ID,
		holding.AccountID,
		holding.Symbol,
		holding.Shares,
	)
	if err != nil {
		t.Fatalf("Failed to insert ira holding: %v", err)
	}

	return holding
}
