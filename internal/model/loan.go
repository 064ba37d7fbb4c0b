package model

import "errors"

// Loan defines the terms under stress.
// Units:
// - Principal, CollateralValue, MonthlyIncome, MonthlyExpenses: currency
// - AnnualRatePct: annual percentage (15 = 15%/yr)
// - DurationMonths: months
//
// CollateralValue, MonthlyIncome and MonthlyExpenses are optional; nil means
// the caller did not supply them. Scenario families that need a missing input
// are skipped, not defaulted.
type Loan struct {
	Principal      float64
	AnnualRatePct  float64
	DurationMonths int

	CollateralValue *float64
	MonthlyIncome   *float64
	MonthlyExpenses *float64
}

func (l Loan) Validate() error {
	if l.Principal <= 0 {
		return errors.New("principal must be > 0")
	}
	if l.AnnualRatePct < 0 {
		return errors.New("annual rate must be >= 0")
	}
	if l.DurationMonths <= 0 {
		return errors.New("duration must be > 0 months")
	}
	if l.CollateralValue != nil && *l.CollateralValue < 0 {
		return errors.New("collateral value must be >= 0")
	}
	if l.MonthlyIncome != nil && *l.MonthlyIncome < 0 {
		return errors.New("monthly income must be >= 0")
	}
	if l.MonthlyExpenses != nil && *l.MonthlyExpenses < 0 {
		return errors.New("monthly expenses must be >= 0")
	}
	return nil
}

func (l Loan) HasCollateral() bool {
	return l.CollateralValue != nil
}

// HasIncomeProfile reports whether both income and expenses were supplied.
// The income-shock scenario needs both to compute disposable income.
func (l Loan) HasIncomeProfile() bool {
	return l.MonthlyIncome != nil && l.MonthlyExpenses != nil
}
