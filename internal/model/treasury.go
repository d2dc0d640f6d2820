package model

import "time"

// Treasury represents a treasury security from the database.
// Immutable once created except via full removal and re-add.
//
// InterestRate is an annualized simple rate in [0, 1]. MaturityDate is
// stored for display but is not used in valuation (no cap at maturity);
// see TreasuryService.CurrentValue.
type Treasury struct {
	Name         string    `json:"name"`
	Type         string    `json:"type"` // free-form, e.g. "T-Bill", "Note", "Bond"
	FaceValue    float64   `json:"faceValue"`
	InterestRate float64   `json:"interestRate"`
	PurchaseDate time.Time `json:"purchaseDate"`
	MaturityDate time.Time `json:"maturityDate"`
}

// TreasuryValuation pairs a treasury with its accrued value as of the
// evaluation time. Derived, never stored.
type TreasuryValuation struct {
	Treasury
	CurrentValue float64 `json:"currentValue"`
}
