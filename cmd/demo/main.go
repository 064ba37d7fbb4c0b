package main

import (
	"flag"
	"fmt"

	"loanstress/internal/config"
	"loanstress/internal/finance"
	"loanstress/internal/model"
	"loanstress/internal/stress"
)

// Demo:
// - Stress a sample microfinance loan (optionally loaded from a YAML config)
// - Print the scenario suite and the aggregate verdict
func main() {
	cfgPath := flag.String("config", "", "Path to loan YAML config (optional)")
	flag.Parse()

	// Defaults (can be overridden via --config): a small working-capital loan
	// with collateral and a thin income margin.
	collateral := 8000.0
	income := 3000.0
	expenses := 2800.0
	loan := model.Loan{
		Principal:       10000,
		AnnualRatePct:   15,
		DurationMonths:  12,
		CollateralValue: &collateral,
		MonthlyIncome:   &income,
		MonthlyExpenses: &expenses,
	}
	name := "demo loan"

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		loan = cfg.Loan.ToModel()
		if cfg.Loan.Name != "" {
			name = cfg.Loan.Name
		}
	}

	engine := stress.New(finance.Calculate)
	out, err := engine.Run(loan)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Stressing %s: principal=%.2f rate=%.2f%% duration=%d months\n",
		name, loan.Principal, loan.AnnualRatePct, loan.DurationMonths)
	fmt.Printf("Base case: profit=%.2f repayment=%.2f default=%.2f\n\n",
		out.BaseCase.Profit,
		out.BaseCase.RepaymentProbability,
		out.BaseCase.DefaultProbability,
	)

	for _, r := range out.StressTests {
		fmt.Printf(
			"%-28s sev=%-8s profit=%10.2f  repay=%+.3f  default=%+.3f\n",
			r.Factor.Name,
			string(r.Factor.Severity),
			r.Impact.OnProfit,
			r.Impact.OnRepayment,
			r.Impact.OnDefault,
		)
	}

	fmt.Printf("\nDone. Overall risk=%s\n%s\n", string(out.OverallRisk), out.Summary)
}
