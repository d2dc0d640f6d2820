package request

// AddStockRequest is the payload for adding shares to the primary portfolio.
type AddStockRequest struct {
	Symbol string  `json:"symbol"`
	Shares float64 `json:"shares"`
}

// SetCashRequest is the payload for overwriting a cash account balance.
type SetCashRequest struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}
