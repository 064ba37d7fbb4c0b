package models

// LoanPayload carries loan terms over the wire. Optional fields use pointers
// so "absent" is distinguishable from zero. Field presence is not enforced by
// binding tags because compare variations are deliberately partial; handlers
// validate the merged loan instead.
type LoanPayload struct {
	Name            string   `json:"name,omitempty"`
	Principal       float64  `json:"principal"`
	AnnualRatePct   float64  `json:"annual_rate_pct"`
	DurationMonths  int      `json:"duration_months"`
	CollateralValue *float64 `json:"collateral_value,omitempty"`
	MonthlyIncome   *float64 `json:"monthly_income,omitempty"`
	MonthlyExpenses *float64 `json:"monthly_expenses,omitempty"`
}

// StressTestRequest represents the request body for running a stress test
type StressTestRequest struct {
	Loan    LoanPayload       `json:"loan" binding:"required"`
	Options StressTestOptions `json:"options,omitempty"`
}

// StressTestOptions contains optional stress-test parameters
type StressTestOptions struct {
	SkipCache bool `json:"skip_cache,omitempty"` // bypass the response cache
}

// CompareRequest represents a request to stress several loan variations
type CompareRequest struct {
	BaseLoan   LoanPayload     `json:"base_loan" binding:"required"`
	Variations []LoanVariation `json:"variations" binding:"required"`
}

// LoanVariation defines a variation to test; set fields override the base loan
type LoanVariation struct {
	Name string      `json:"name" binding:"required"`
	Loan LoanPayload `json:"loan"`
}
