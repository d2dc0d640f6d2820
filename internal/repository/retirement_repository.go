package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"networth/internal/apperrors"
	"networth/internal/model"
)

// RetirementRepository provides data access methods for the
// retirement_account and ira_holding tables. Deleting an account cascades
// to its holdings via the ira_holding foreign key.
type RetirementRepository struct {
	db *sql.DB
}

// NewRetirementRepository creates a new RetirementRepository with the provided database connection.
func NewRetirementRepository(db *sql.DB) *RetirementRepository {
	return &RetirementRepository{db: db}
}

// InsertAccount stores a new retirement account.
func (r *RetirementRepository) InsertAccount(ctx context.Context, acct model.RetirementAccount) error {
	query := `
        INSERT INTO retirement_account (id, name, type, balance)
        VALUES (?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		acct.ID,
		acct.Name,
		string(acct.Type),
		acct.Balance,
	)
	if err != nil {
		return fmt.Errorf("failed to insert retirement_account: %w", err)
	}

	return nil
}

// UpdateBalance overwrites the balance of the account with the given ID.
// Returns apperrors.ErrAccountNotFound if the account does not exist.
func (r *RetirementRepository) UpdateBalance(ctx context.Context, accountID string, balance float64) error {
	query := `UPDATE retirement_account SET balance = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, balance, accountID)
	if err != nil {
		return fmt.Errorf("failed to update retirement_account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// DeleteAccount removes the account with the given ID. The database
// cascades the delete to all ira_holding rows owned by the account.
// Returns apperrors.ErrAccountNotFound if the account does not exist.
func (r *RetirementRepository) DeleteAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM retirement_account WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete retirement_account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// GetAccount retrieves a single retirement account by ID.
// Returns apperrors.ErrAccountNotFound if the account does not exist.
func (r *RetirementRepository) GetAccount(accountID string) (model.RetirementAccount, error) {
	query := `
        SELECT id, name, type, balance
        FROM retirement_account
        WHERE id = ?
    `

	var a model.RetirementAccount

	err := r.db.QueryRow(query, accountID).Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.Balance,
	)
	if err == sql.ErrNoRows {
		return model.RetirementAccount{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return model.RetirementAccount{}, fmt.Errorf("failed to query retirement_account: %w", err)
	}

	return a, nil
}

// GetAccounts retrieves all retirement accounts ordered by name.
// Returns an empty slice if none exist.
func (r *RetirementRepository) GetAccounts() ([]model.RetirementAccount, error) {
	query := `
        SELECT id, name, type, balance
        FROM retirement_account
        ORDER BY name
    `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query retirement_account table: %w", err)
	}
	defer rows.Close()

	accounts := []model.RetirementAccount{}

	for rows.Next() {
		var a model.RetirementAccount

		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Type,
			&a.Balance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan retirement_account table results: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating retirement_account table: %w", err)
	}

	return accounts, nil
}

// InsertHolding stores a new equity holding inside an account. Each call
// inserts a new row; duplicate symbols within an account are legal and are
// summed at valuation, never merged.
func (r *RetirementRepository) InsertHolding(ctx context.Context, h model.IRAHolding) error {
	query := `
        INSERT INTO ira_holding (id, account_id, symbol, shares)
        VALUES (?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.AccountID,
		strings.ToUpper(strings.TrimSpace(h.Symbol)),
		h.Shares,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ira_holding: %w", err)
	}

	return nil
}

// GetHoldings retrieves all holdings of an account ordered by symbol.
// Returns an empty slice for an unknown account or one with no holdings.
func (r *RetirementRepository) GetHoldings(accountID string) ([]model.IRAHolding, error) {
	query := `
        SELECT id, account_id, symbol, shares
        FROM ira_holding
        WHERE account_id = ?
        ORDER BY symbol, id
    `

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ira_holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.IRAHolding{}

	for rows.Next() {
		var h model.IRAHolding

		err := rows.Scan(
			&h.ID,
			&h.AccountID,
			&h.Symbol,
			&h.Shares,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ira_holding table results: %w", err)
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ira_holding table: %w", err)
	}

	return holdings, nil
}

// DeleteHolding removes a single holding by ID.
// Returns apperrors.ErrHoldingNotFound if the holding does not exist.
func (r *RetirementRepository) DeleteHolding(ctx context.Context, holdingID string) error {
	query := `DELETE FROM ira_holding WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete ira_holding: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}
