package request

// CreateRetirementAccountRequest is the payload for creating a retirement
// account. Type must be one of 401k_traditional, 401k_roth,
// IRA_traditional, IRA_roth.
type CreateRetirementAccountRequest struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
}

// UpdateBalanceRequest is the payload for overwriting an account balance
// (the cash sleeve for IRA-typed accounts).
type UpdateBalanceRequest struct {
	Balance float64 `json:"balance"`
}

// AddHoldingRequest is the payload for adding an equity holding to an
// IRA-typed account.
type AddHoldingRequest struct {
	Symbol string  `json:"symbol"`
	Shares float64 `json:"shares"`
}
