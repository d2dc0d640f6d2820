package model

// PriceQuote is a symbol's current price as produced by a price source.
// Quotes are ephemeral: they live in the in-memory mirror for the current
// process only and are never persisted. A missing quote is treated as
// price 0.0 by the aggregation layer, never as an error.
type PriceQuote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// NetWorthBreakdown is the per-component view of net worth the dashboard
// renders. All values are rounded to two decimal places.
type NetWorthBreakdown struct {
	Cash       float64 `json:"cash"`
	Equities   float64 `json:"equities"`
	Treasuries float64 `json:"treasuries"`
	Retirement float64 `json:"retirement"`
	Total      float64 `json:"total"`
}
