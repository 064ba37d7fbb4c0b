package stress

import (
	"fmt"
	"math"

	"loanstress/internal/model"
)

// collateralDropMagnitudes are the fixed devaluation shocks, as fractions of
// the stated collateral value.
var collateralDropMagnitudes = []float64{0.10, 0.20, 0.40}

// Collateral-devaluation heuristics.
const (
	quickSaleHaircut            = 0.65 // share of collateral value recovered in a forced sale
	collateralDefaultScale      = 0.15 // default-probability bump per unit of devaluation
	collateralRepaymentCoupling = 0.5  // repayment-probability drop per unit of default increase
)

// collateralDevaluationScenario models the collateral losing drop (a fraction
// in (0,1]) of its market value before a forced liquidation. Requires
// loan.CollateralValue.
func collateralDevaluationScenario(loan model.Loan, baseline model.Financials, drop float64) Result {
	totalOwed := baseline.TotalAmount
	collateral := *loan.CollateralValue

	originalLoss := quickSaleLoss(collateral, 0, totalOwed)
	newLoss := quickSaleLoss(collateral, drop, totalOwed)

	// Devaluation can only widen the loss, never shrink it.
	onProfit := -math.Abs(originalLoss - newLoss)
	onDefault := drop * collateralDefaultScale
	onRepayment := -(onDefault * collateralRepaymentCoupling)

	warnings := []string{
		fmt.Sprintf("A %.0f%% collateral devaluation reduces the recoverable value in a forced sale", drop*100),
		fmt.Sprintf("Estimated additional loss: %.2f", math.Abs(onProfit)),
	}
	recommendations := []string{
		"Monitor the collateral's market value",
		"Require additional collateral if the value keeps falling",
		"Review the loan-to-value ratio",
	}

	return Result{
		Factor: model.StressFactor{
			Name:        fmt.Sprintf("Collateral Devaluation -%.0f%%", drop*100),
			Description: fmt.Sprintf("Collateral loses %.0f%% of its market value before liquidation", drop*100),
			Impact:      model.ImpactNegative,
			Severity:    collateralSeverity(drop),
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

// quickSaleLoss is the unrecovered balance after liquidating devalued
// collateral under duress. Recovery is capped at the total owed.
func quickSaleLoss(collateral, drop, totalOwed float64) float64 {
	recovery := math.Min(collateral*(1-drop)*quickSaleHaircut, totalOwed)
	return math.Max(0, totalOwed-recovery)
}

func collateralSeverity(drop float64) model.Severity {
	switch {
	case drop >= 0.40:
		return model.SeverityCritical
	case drop >= 0.20:
		return model.SeverityHigh
	default:
		return model.SeverityMedium
	}
}
