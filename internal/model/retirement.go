package model

// RetirementType enumerates the supported retirement account types.
type RetirementType string

const (
	Retirement401kTraditional RetirementType = "401k_traditional"
	Retirement401kRoth        RetirementType = "401k_roth"
	RetirementIRATraditional  RetirementType = "IRA_traditional"
	RetirementIRARoth         RetirementType = "IRA_roth"
)

// IsIRA reports whether the account type carries an equity sub-portfolio.
// IRA-typed accounts are valued by their summed holdings; all other types
// are valued by their stored balance.
func (t RetirementType) IsIRA() bool {
	return t == RetirementIRATraditional || t == RetirementIRARoth
}

// Valid reports whether t is one of the supported account types.
func (t RetirementType) Valid() bool {
	switch t {
	case Retirement401kTraditional, Retirement401kRoth, RetirementIRATraditional, RetirementIRARoth:
		return true
	}
	return false
}

// RetirementAccount represents a retirement account from the database.
// Balance is the cash in the account for all types; for IRA types it
// additionally acts as the cash sleeve alongside equity holdings and is
// excluded from net worth (holdings are counted instead).
type RetirementAccount struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Type    RetirementType `json:"type"`
	Balance float64        `json:"balance"`
}

// IRAHolding represents an equity position inside an IRA-typed account.
// Unlike the primary portfolio, duplicate-symbol rows are legal and are
// summed at valuation, never merged.
type IRAHolding struct {
	ID        string  `json:"id"`
	AccountID string  `json:"accountId"`
	Symbol    string  `json:"symbol"`
	Shares    float64 `json:"shares"`
}
