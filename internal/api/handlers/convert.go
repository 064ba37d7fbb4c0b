package handlers

import (
	"loanstress/internal/api/models"
	"loanstress/internal/model"
	"loanstress/internal/stress"
)

func toModelLoan(p models.LoanPayload) model.Loan {
	return model.Loan{
		Principal:       p.Principal,
		AnnualRatePct:   p.AnnualRatePct,
		DurationMonths:  p.DurationMonths,
		CollateralValue: p.CollateralValue,
		MonthlyIncome:   p.MonthlyIncome,
		MonthlyExpenses: p.MonthlyExpenses,
	}
}

// mergeLoanPayload overlays set fields from override onto base, mirroring
// config.MergeLoan for wire payloads.
func mergeLoanPayload(base, override models.LoanPayload) models.LoanPayload {
	merged := base
	if override.Name != "" {
		merged.Name = override.Name
	}
	if override.Principal != 0 {
		merged.Principal = override.Principal
	}
	if override.AnnualRatePct != 0 {
		merged.AnnualRatePct = override.AnnualRatePct
	}
	if override.DurationMonths != 0 {
		merged.DurationMonths = override.DurationMonths
	}
	if override.CollateralValue != nil {
		merged.CollateralValue = override.CollateralValue
	}
	if override.MonthlyIncome != nil {
		merged.MonthlyIncome = override.MonthlyIncome
	}
	if override.MonthlyExpenses != nil {
		merged.MonthlyExpenses = override.MonthlyExpenses
	}
	return merged
}

func buildResponse(out *stress.Output) models.StressTestResponse {
	results := make([]models.ScenarioResult, len(out.StressTests))
	for i, r := range out.StressTests {
		results[i] = models.ScenarioResult{
			Name:            r.Factor.Name,
			Description:     r.Factor.Description,
			Impact:          string(r.Factor.Impact),
			Severity:        string(r.Factor.Severity),
			OnProfit:        r.Impact.OnProfit,
			OnRepayment:     r.Impact.OnRepayment,
			OnDefault:       r.Impact.OnDefault,
			FinancialImpact: r.Impact.FinancialImpact,
			Warnings:        r.Warnings,
			Recommendations: r.Recommendations,
		}
	}
	return models.StressTestResponse{
		BaseCase: models.BaseCasePayload{
			Profit:               out.BaseCase.Profit,
			RepaymentProbability: out.BaseCase.RepaymentProbability,
			DefaultProbability:   out.BaseCase.DefaultProbability,
		},
		StressTests: results,
		OverallRisk: string(out.OverallRisk),
		Summary:     out.Summary,
	}
}
