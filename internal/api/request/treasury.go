package request

// AddTreasuryRequest is the payload for creating a treasury security.
// The interest rate is an annualized fraction in [0, 1]; dates use
// "2006-01-02" or RFC3339 format.
type AddTreasuryRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	FaceValue    float64 `json:"faceValue"`
	InterestRate float64 `json:"interestRate"`
	PurchaseDate string  `json:"purchaseDate"`
	MaturityDate string  `json:"maturityDate"`
}
