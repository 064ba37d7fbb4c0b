package models

// StressTestResponse represents the response from a stress-test run
type StressTestResponse struct {
	BaseCase    BaseCasePayload  `json:"base_case"`
	StressTests []ScenarioResult `json:"stress_tests"`
	OverallRisk string           `json:"overall_risk"`
	Summary     string           `json:"summary"`
	Cached      bool             `json:"cached,omitempty"`
}

// BaseCasePayload contains the no-stress projection
type BaseCasePayload struct {
	Profit               float64 `json:"profit"`
	RepaymentProbability float64 `json:"repayment_probability"`
	DefaultProbability   float64 `json:"default_probability"`
}

// ScenarioResult is one scenario's outcome
type ScenarioResult struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Impact          string   `json:"impact"`
	Severity        string   `json:"severity"`
	OnProfit        float64  `json:"on_profit"`
	OnRepayment     float64  `json:"on_repayment"`
	OnDefault       float64  `json:"on_default"`
	FinancialImpact float64  `json:"financial_impact"`
	Warnings        []string `json:"warnings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name        string  `json:"name"`
	OverallRisk string  `json:"overall_risk"`
	Summary     string  `json:"summary"`
	BaseProfit  float64 `json:"base_profit"`
	Downside    float64 `json:"downside"`
}

// RankResponse represents the response from ranking loan presets
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked loan
type Ranking struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	OverallRisk string  `json:"overall_risk"`
	Downside    float64 `json:"downside"`
	Scenarios   int     `json:"scenarios"`
}

// ScenarioInfo represents information about a scenario family
type ScenarioInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Requires    []string        `json:"requires,omitempty"` // optional loan fields the family needs
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a scenario parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Values      interface{} `json:"values,omitempty"`
}

// LoanInfo represents information about a loan preset
type LoanInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	File           string  `json:"file"`
	Principal      float64 `json:"principal"`
	AnnualRatePct  float64 `json:"annual_rate_pct"`
	DurationMonths int     `json:"duration_months"`
	HasCollateral  bool    `json:"has_collateral"`
	HasIncome      bool    `json:"has_income"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
