package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"networth/internal/apperrors"
	"networth/internal/model"
)

// StockRepository provides data access methods for the stock_position table.
// The table holds the primary portfolio with at most one row per symbol.
type StockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new StockRepository with the provided database connection.
func NewStockRepository(db *sql.DB) *StockRepository {
	return &StockRepository{db: db}
}

// Upsert adds deltaShares to the existing position for the symbol, or
// inserts a new row if none exists. The symbol is uppercased so "aapl"
// and "AAPL" address the same row.
func (r *StockRepository) Upsert(ctx context.Context, symbol string, deltaShares float64) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	query := `
        INSERT INTO stock_position (symbol, shares)
        VALUES (?, ?)
        ON CONFLICT(symbol) DO UPDATE SET shares = shares + excluded.shares
    `

	_, err := r.db.ExecContext(ctx, query, symbol, deltaShares)
	if err != nil {
		return fmt.Errorf("failed to upsert stock_position: %w", err)
	}

	return nil
}

// Delete removes the position for the symbol entirely.
// Returns apperrors.ErrStockNotFound if no position exists.
func (r *StockRepository) Delete(ctx context.Context, symbol string) error {
	query := `DELETE FROM stock_position WHERE symbol = ?`

	result, err := r.db.ExecContext(ctx, query, strings.ToUpper(strings.TrimSpace(symbol)))
	if err != nil {
		return fmt.Errorf("failed to delete stock_position: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrStockNotFound
	}

	return nil
}

// GetAll retrieves all positions in the primary portfolio ordered by symbol.
// Returns an empty slice if the portfolio is empty.
func (r *StockRepository) GetAll() ([]model.StockPosition, error) {
	query := `SELECT symbol, shares FROM stock_position ORDER BY symbol`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock_position table: %w", err)
	}
	defer rows.Close()

	positions := []model.StockPosition{}

	for rows.Next() {
		var p model.StockPosition

		if err := rows.Scan(&p.Symbol, &p.Shares); err != nil {
			return nil, fmt.Errorf("failed to scan stock_position table results: %w", err)
		}

		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_position table: %w", err)
	}

	return positions, nil
}
