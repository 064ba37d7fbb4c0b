package stress

import (
	"fmt"
	"math"

	"loanstress/internal/model"
)

// delayMagnitudes are the fixed payment-delay perturbations, in days.
var delayMagnitudes = []int{7, 14, 30}

// Payment-delay heuristics.
const (
	lateFeeRate            = 0.05        // flat share of the monthly payment charged as a late fee
	penaltyInterestRate    = 0.02 / 100. // monthly penalty rate on the outstanding principal
	latePaymentShare       = 3.0         // roughly one in three scheduled payments lands late
	delayDefaultScale      = 0.05        // default-probability bump per 30 days of delay
	delayDefaultCap        = 0.3
	delayRepaymentCoupling = 0.8 // repayment-probability drop per unit of default increase
)

// paymentDelayScenario models every payment arriving delayDays late on
// average. Delays add revenue (late fees, penalty interest) but raise the
// default probability, so the factor reads negative even when profit rises.
func paymentDelayScenario(loan model.Loan, baseline model.Financials, delayDays int) Result {
	delayMonths := float64(delayDays) / 30

	lateFee := baseline.MonthlyPayment * lateFeeRate
	penaltyInterest := loan.Principal * penaltyInterestRate * delayMonths
	additionalRevenue := lateFee + penaltyInterest

	onProfit := additionalRevenue * (float64(loan.DurationMonths) / latePaymentShare)
	onDefault := math.Min(delayDefaultCap, delayMonths*delayDefaultScale)
	onRepayment := -(onDefault * delayRepaymentCoupling)

	var warnings []string
	switch {
	case delayDays >= 30:
		warnings = append(warnings, fmt.Sprintf("Severe payment delay of %d days significantly raises default risk", delayDays))
	case delayDays >= 14:
		warnings = append(warnings, fmt.Sprintf("Moderate payment delay of %d days strains cash flow", delayDays))
	}

	recommendations := []string{"Monitor payment patterns closely"}
	if delayDays >= 14 {
		recommendations = []string{
			"Consider restructuring the loan terms",
			"Set up early-warning monitoring for missed payments",
			"Review the borrower's repayment capacity",
		}
	}

	return Result{
		Factor: model.StressFactor{
			Name:        fmt.Sprintf("Payment Delay +%d days", delayDays),
			Description: fmt.Sprintf("Scheduled payments arrive %d days late on average", delayDays),
			Impact:      model.ImpactNegative,
			Severity:    delaySeverity(delayDays),
		},
		Impact: Impact{
			OnProfit:        onProfit,
			OnRepayment:     onRepayment,
			OnDefault:       onDefault,
			FinancialImpact: onProfit,
		},
		Warnings:        warnings,
		Recommendations: recommendations,
	}
}

func delaySeverity(delayDays int) model.Severity {
	switch {
	case delayDays >= 30:
		return model.SeverityCritical
	case delayDays >= 14:
		return model.SeverityHigh
	case delayDays >= 7:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}
