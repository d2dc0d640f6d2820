package model

// StockPosition represents a position in the primary portfolio.
// Symbols are stored uppercased with at most one row per symbol;
// adding shares for an existing symbol increments the row.
type StockPosition struct {
	Symbol string  `json:"symbol"`
	Shares float64 `json:"shares"`
}
