package stress

import (
	"fmt"
	"math"

	"loanstress/internal/model"
)

// Income-shock heuristics.
const (
	incomeShockPct             = 0.10 // fixed income reduction under the shock
	inflationDefaultCap        = 0.25
	highPaymentRatioCutoff     = 0.8 // above this, the default bump is pinned high
	highPaymentRatioDefault    = 0.2
	paymentRatioFloor          = 0.3  // ratio at which the scaled default bump crosses zero
	paymentRatioDefaultScale   = 0.25 // default bump per unit of payment ratio above the floor
	inflationRepaymentCoupling = 0.8
	inflationProfitCoupling    = 0.3 // share of at-risk profit written off per unit of default increase
	criticalPaymentRatio       = 0.9
	elevatedPaymentRatio       = 0.7
)

// inflationShockScenario models a 10% income reduction and measures how much
// of the borrower's remaining disposable income the scheduled payment
// consumes. Requires both loan.MonthlyIncome and loan.MonthlyExpenses.
func inflationShockScenario(loan model.Loan, baseline model.Financials) Result {
	reducedIncome := *loan.MonthlyIncome * (1 - incomeShockPct)
	disposableIncome := reducedIncome - *loan.MonthlyExpenses

	// Non-positive disposable income pins the ratio to the worst case instead
	// of dividing by a non-positive number.
	paymentRatio := 1.0
	if disposableIncome > 0 {
		paymentRatio = baseline.MonthlyPayment / disposableIncome
	}

	scaled := highPaymentRatioDefault
	if paymentRatio <= highPaymentRatioCutoff {
		scaled = (paymentRatio - paymentRatioFloor) * paymentRatioDefaultScale
	}
	// Left signed on purpose: for payment ratios under the floor the heuristic
	// yields a negative default delta. Pinned by a test rather than clamped.
	onDefault := math.Min(inflationDefaultCap, scaled)
	onRepayment := -(onDefault * inflationRepaymentCoupling)
	onProfit := -(baseline.TotalInterest * onDefault * inflationProfitCoupling)

	var warnings []string
	if paymentRatio > highPaymentRatioCutoff {
		warnings = append(warnings, fmt.Sprintf("Loan payment would consume %.0f%% of disposable income after a 10%% income drop", paymentRatio*100))
	} else {
		warnings = append(warnings, "Monitor the borrower's income stability under inflationary pressure")
	}

	recommendations := []string{
		"Offer flexible repayment options",
		"Prepare a restructuring offer before arrears build up",
		"Monitor economic indicators affecting the borrower's sector",
	}

	return Result{
		Factor: model.StressFactor{
			Name:        "Income Shock -10%",
			Description: "Borrower income falls 10% while expenses hold steady",
			Impact:      model.ImpactNegative,
			Severity:    inflationSeverity(paymentRatio),
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

// inflationSeverity never returns low: even a comfortable payment ratio keeps
// this scenario at medium.
func inflationSeverity(paymentRatio float64) model.Severity {
	switch {
	case paymentRatio > criticalPaymentRatio:
		return model.SeverityCritical
	case paymentRatio > elevatedPaymentRatio:
		return model.SeverityHigh
	default:
		return model.SeverityMedium
	}
}
