package model

// Financials is the repayment schedule summary for one set of loan terms.
// All fields are currency amounts.
type Financials struct {
	MonthlyPayment float64
	TotalInterest  float64
	TotalAmount    float64
}
