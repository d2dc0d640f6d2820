package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"networth/internal/apperrors"
	"networth/internal/model"
)

// TreasuryRepository provides data access methods for the treasury table.
// Treasuries are keyed by name and immutable once created; amending one
// means removing and re-adding it.
type TreasuryRepository struct {
	db *sql.DB
}

// NewTreasuryRepository creates a new TreasuryRepository with the provided database connection.
func NewTreasuryRepository(db *sql.DB) *TreasuryRepository {
	return &TreasuryRepository{db: db}
}

// Insert stores a new treasury. Dates are persisted as "2006-01-02".
// Returns apperrors.ErrDuplicateEntry if a treasury with the name exists.
func (r *TreasuryRepository) Insert(ctx context.Context, t model.Treasury) error {
	exists, err := r.exists(t.Name)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrDuplicateEntry
	}

	query := `
        INSERT INTO treasury (name, type, face_value, interest_rate, purchase_date, maturity_date)
        VALUES (?, ?, ?, ?, ?, ?)
    `

	_, err = r.db.ExecContext(ctx, query,
		t.Name,
		t.Type,
		t.FaceValue,
		t.InterestRate,
		t.PurchaseDate.UTC().Format("2006-01-02"),
		t.MaturityDate.UTC().Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert treasury: %w", err)
	}

	return nil
}

// Delete removes the treasury with the given name.
// Returns apperrors.ErrTreasuryNotFound if no such treasury exists.
func (r *TreasuryRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM treasury WHERE name = ?`

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to delete treasury: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrTreasuryNotFound
	}

	return nil
}

// Get retrieves a single treasury by name.
// Returns apperrors.ErrTreasuryNotFound if no such treasury exists.
func (r *TreasuryRepository) Get(name string) (model.Treasury, error) {
	query := `
        SELECT name, type, face_value, interest_rate, purchase_date, maturity_date
        FROM treasury
        WHERE name = ?
    `

	var t model.Treasury
	var purchase, maturity string

	err := r.db.QueryRow(query, name).Scan(
		&t.Name,
		&t.Type,
		&t.FaceValue,
		&t.InterestRate,
		&purchase,
		&maturity,
	)
	if err == sql.ErrNoRows {
		return model.Treasury{}, apperrors.ErrTreasuryNotFound
	}
	if err != nil {
		return model.Treasury{}, fmt.Errorf("failed to query treasury: %w", err)
	}

	if t.PurchaseDate, err = parseStoredDate(purchase); err != nil {
		return model.Treasury{}, err
	}
	if t.MaturityDate, err = parseStoredDate(maturity); err != nil {
		return model.Treasury{}, err
	}

	return t, nil
}

// GetAll retrieves all treasuries ordered by name.
// Returns an empty slice if none exist.
func (r *TreasuryRepository) GetAll() ([]model.Treasury, error) {
	query := `
        SELECT name, type, face_value, interest_rate, purchase_date, maturity_date
        FROM treasury
        ORDER BY name
    `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query treasury table: %w", err)
	}
	defer rows.Close()

	treasuries := []model.Treasury{}

	for rows.Next() {
		var t model.Treasury
		var purchase, maturity string

		err := rows.Scan(
			&t.Name,
			&t.Type,
			&t.FaceValue,
			&t.InterestRate,
			&purchase,
			&maturity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan treasury table results: %w", err)
		}

		if t.PurchaseDate, err = parseStoredDate(purchase); err != nil {
			return nil, err
		}
		if t.MaturityDate, err = parseStoredDate(maturity); err != nil {
			return nil, err
		}

		treasuries = append(treasuries, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating treasury table: %w", err)
	}

	return treasuries, nil
}

func (r *TreasuryRepository) exists(name string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM treasury WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check treasury existence: %w", err)
	}
	return count > 0, nil
}

// parseStoredDate parses a date column in "2006-01-02" or RFC3339 format.
func parseStoredDate(str string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", str)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse stored date: %w", err)
		}
	}
	return parsed.UTC(), nil
}
