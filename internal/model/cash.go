package model

// CashAccount represents a named cash balance from the database.
// Accounts are keyed by name and created implicitly on first write;
// they are never deleted, only zeroed.
type CashAccount struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// Well-known cash account labels surfaced by the frontend. The store
// accepts any name; these are the defaults presented for data entry.
var DefaultCashAccounts = []string{"SWVXX", "SPAXX", "Checking"}
