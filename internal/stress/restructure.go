package stress

import (
	"fmt"
	"math"

	"loanstress/internal/model"
)

// Restructuring heuristics.
const (
	restructureDurationFactor = 1.25 // term extension applied by the scenario
	restructureRepaymentBoost = 0.10
	restructureDefaultRelief  = 0.05
)

// restructuringScenario extends the repayment term by 25% and reprices the
// loan with the same calculator that produced the baseline, so the profit
// delta is the extra interest accrued over the longer term.
func restructuringScenario(loan model.Loan, baseline model.Financials, calc Calculator) Result {
	newDuration := int(math.Round(float64(loan.DurationMonths) * restructureDurationFactor))
	restructured := calc(loan.Principal, loan.AnnualRatePct, newDuration)

	onProfit := restructured.TotalInterest - baseline.TotalInterest

	return Result{
		Factor: model.StressFactor{
			Name:        "Restructuring +25% Term",
			Description: fmt.Sprintf("Extend the repayment term from %d to %d months", loan.DurationMonths, newDuration),
			Impact:      model.ImpactPositive,
			Severity:    model.SeverityLow,
		},
		Impact: Impact{
			OnProfit:        onProfit,
			OnRepayment:     restructureRepaymentBoost,
			OnDefault:       -restructureDefaultRelief,
			FinancialImpact: onProfit,
		},
		Recommendations: []string{
			"A longer term trades higher total interest for lower monthly payments",
			"Offer restructuring proactively to borrowers showing payment strain",
		},
	}
}
