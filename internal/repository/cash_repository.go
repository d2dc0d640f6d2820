package repository

import (
	"context"
	"database/sql"
	"fmt"

	"networth/internal/model"
)

// CashRepository provides data access methods for the cash_account table.
// Accounts are keyed by name and created implicitly on first write.
type CashRepository struct {
	db *sql.DB
}

// NewCashRepository creates a new CashRepository with the provided database connection.
func NewCashRepository(db *sql.DB) *CashRepository {
	return &CashRepository{db: db}
}

// Set writes the balance for the named account, inserting the row on first
// write and overwriting it afterwards. Idempotent.
func (r *CashRepository) Set(ctx context.Context, name string, balance float64) error {
	query := `
        INSERT OR REPLACE INTO cash_account (name, balance)
        VALUES (?, ?)
    `

	_, err := r.db.ExecContext(ctx, query, name, balance)
	if err != nil {
		return fmt.Errorf("failed to upsert cash_account: %w", err)
	}

	return nil
}

// GetAll retrieves all cash balances keyed by account name.
// Returns an empty map if no accounts exist.
func (r *CashRepository) GetAll() (map[string]float64, error) {
	query := `SELECT name, balance FROM cash_account`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash_account table: %w", err)
	}
	defer rows.Close()

	balances := map[string]float64{}

	for rows.Next() {
		var a model.CashAccount

		if err := rows.Scan(&a.Name, &a.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan cash_account table results: %w", err)
		}

		balances[a.Name] = a.Balance
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash_account table: %w", err)
	}

	return balances, nil
}
