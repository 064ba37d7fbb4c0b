package stress

import "loanstress/internal/model"

// Impact quantifies one scenario's effect relative to the base case.
// Profit deltas are currency amounts; probability deltas are in [-1, 1].
// FinancialImpact mirrors OnProfit and exists so consumers can render a single
// headline number without knowing which delta drives a given scenario.
type Impact struct {
	OnProfit        float64
	OnRepayment     float64
	OnDefault       float64
	FinancialImpact float64
}

// Result is the outcome of a single stress scenario.
type Result struct {
	Factor          model.StressFactor
	Impact          Impact
	Warnings        []string
	Recommendations []string
}

// BaseCase is the no-stress projection the scenarios perturb.
type BaseCase struct {
	Profit               float64
	RepaymentProbability float64
	DefaultProbability   float64
}

// Output bundles the base case, every generated scenario in generation order,
// and the aggregate verdict.
type Output struct {
	BaseCase    BaseCase
	StressTests []Result
	OverallRisk model.Severity
	Summary     string
}
