package stress

import (
	"fmt"

	"loanstress/internal/model"
)

// Baseline repayment/default probabilities are fixed underwriting priors, not
// derived from the loan terms.
const (
	baseRepaymentProbability = 0.75
	baseDefaultProbability   = 0.15
)

// Calculator prices a repayment schedule. finance.Calculate is the default;
// any standard amortization method works, provided the same method backs both
// the baseline and the restructuring scenario.
type Calculator func(principal, annualRatePct float64, months int) model.Financials

type Engine struct {
	calc Calculator
}

func New(calc Calculator) *Engine { return &Engine{calc: calc} }

// Run computes the base case for the loan, evaluates every applicable
// scenario in a fixed order, and aggregates the results into an overall risk
// verdict. Scenario families whose optional inputs are missing are skipped,
// not failed. Two calls with the same input produce identical output.
func (e *Engine) Run(loan model.Loan) (*Output, error) {
	if e.calc == nil {
		return nil, fmt.Errorf("calculator is nil")
	}
	if err := loan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid loan: %w", err)
	}

	baseline := e.calc(loan.Principal, loan.AnnualRatePct, loan.DurationMonths)

	results := make([]Result, 0, len(delayMagnitudes)+len(collateralDropMagnitudes)+2)
	for _, days := range delayMagnitudes {
		results = append(results, paymentDelayScenario(loan, baseline, days))
	}
	if loan.HasCollateral() {
		for _, drop := range collateralDropMagnitudes {
			results = append(results, collateralDevaluationScenario(loan, baseline, drop))
		}
	}
	if loan.HasIncomeProfile() {
		results = append(results, inflationShockScenario(loan, baseline))
	}
	results = append(results, restructuringScenario(loan, baseline, e.calc))

	risk, summary := aggregate(results)

	return &Output{
		BaseCase: BaseCase{
			Profit:               baseline.TotalInterest,
			RepaymentProbability: baseRepaymentProbability,
			DefaultProbability:   baseDefaultProbability,
		},
		StressTests: results,
		OverallRisk: risk,
		Summary:     summary,
	}, nil
}
