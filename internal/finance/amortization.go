package finance

import (
	"math"

	"loanstress/internal/model"
)

// Calculate prices a loan with the French (annuity) method: constant monthly
// payment on a reducing balance. A zero rate divides the principal evenly.
// Currency results are rounded to 2 decimals.
func Calculate(principal, annualRatePct float64, months int) model.Financials {
	var payment float64
	if annualRatePct == 0 {
		payment = principal / float64(months)
	} else {
		monthlyRate := (annualRatePct / 100) / 12
		n := float64(months)
		payment = principal * (monthlyRate / (1 - math.Pow(1+monthlyRate, -n)))
	}

	total := payment * float64(months)

	return model.Financials{
		MonthlyPayment: round2(payment),
		TotalInterest:  round2(total - principal),
		TotalAmount:    round2(total),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
