package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations in internal/database.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Cash accounts keyed by name, created implicitly on first write
		CREATE TABLE cash_account (
			name VARCHAR(50) NOT NULL PRIMARY KEY,
			balance FLOAT NOT NULL DEFAULT 0.0
		);

		-- Primary portfolio, one row per symbol
		CREATE TABLE stock_position (
			symbol VARCHAR(10) NOT NULL PRIMARY KEY,
			shares FLOAT NOT NULL
		);

		-- Treasury securities keyed by name
		CREATE TABLE treasury (
			name VARCHAR(100) NOT NULL PRIMARY KEY,
			type VARCHAR(20) NOT NULL DEFAULT '',
			face_value FLOAT NOT NULL,
			interest_rate FLOAT NOT NULL,
			purchase_date DATE NOT NULL,
			maturity_date DATE NOT NULL
		);

		-- Retirement accounts keyed by generated id
		CREATE TABLE retirement_account (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			type VARCHAR(20) NOT NULL,
			balance FLOAT NOT NULL DEFAULT 0.0
		);

		-- IRA equity holdings; duplicate symbols per account are legal
		CREATE TABLE ira_holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			account_id VARCHAR(36) NOT NULL,
			symbol VARCHAR(10) NOT NULL,
			shares FLOAT NOT NULL,
			FOREIGN KEY(account_id) REFERENCES retirement_account(id) ON DELETE CASCADE
		);

		CREATE INDEX idx_ira_holding_account ON ira_holding(account_id);
	`

	_, err := db.Exec(schema)
	return err
}
