package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"loanstress/internal/analysis"
	"loanstress/internal/config"
	"loanstress/internal/finance"
	"loanstress/internal/stress"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "stress":
		cmdStress(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli stress --config examples/loans/working_capital.yaml --out results/stress.csv")
	fmt.Println("  cli rank --loans examples/loans")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - stress prints the scenario suite and verdict for one loan")
	fmt.Println("  - rank orders a directory of loan YAMLs by projected downside")
}

func cmdStress(args []string) {
	fs := flag.NewFlagSet("stress", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to loan YAML config")
	outPath := fs.String("out", "", "Optional CSV output path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	engine := stress.New(finance.Calculate)
	out, err := engine.Run(cfg.Loan.ToModel())
	if err != nil {
		panic(err)
	}

	printReport(cfg.Loan.Name, out)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := stress.WriteResultsCSV(*outPath, out.StressTests); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(out.StressTests), *outPath)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	loanDir := fs.String("loans", "examples/loans", "Directory of loan YAML files")
	_ = fs.Parse(args)

	entries, err := os.ReadDir(*loanDir)
	if err != nil {
		panic(err)
	}

	loans := []analysis.NamedLoan{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		cfg, err := config.Load(filepath.Join(*loanDir, e.Name()))
		if err != nil {
			fmt.Printf("skipping %s: %v\n", e.Name(), err)
			continue
		}
		name := cfg.Loan.Name
		if name == "" {
			name = strings.TrimSuffix(e.Name(), ".yaml")
		}
		loans = append(loans, analysis.NamedLoan{Name: name, Loan: cfg.Loan.ToModel()})
	}

	engine := stress.New(finance.Calculate)
	ranked, err := analysis.RankByDownside(engine, loans)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-4s %-32s %-10s %-12s %-9s\n", "rank", "loan", "risk", "downside$", "scenarios")
	for i, r := range ranked {
		fmt.Printf("%-4d %-32s %-10s %-12.2f %-9d\n", i+1, r.Name, string(r.OverallRisk), r.Downside, r.Scenarios)
	}
}

func printReport(name string, out *stress.Output) {
	if name == "" {
		name = "loan"
	}
	fmt.Printf("Stress report for %s\n", name)
	fmt.Printf("Base case: profit=%.2f repayment=%.2f default=%.2f\n\n",
		out.BaseCase.Profit,
		out.BaseCase.RepaymentProbability,
		out.BaseCase.DefaultProbability,
	)

	for _, r := range out.StressTests {
		fmt.Printf(
			"%-28s sev=%-8s impact=%-8s profit=%10.2f  repay=%+.3f  default=%+.3f\n",
			r.Factor.Name,
			string(r.Factor.Severity),
			string(r.Factor.Impact),
			r.Impact.OnProfit,
			r.Impact.OnRepayment,
			r.Impact.OnDefault,
		)
		for _, w := range r.Warnings {
			fmt.Printf("    ! %s\n", w)
		}
	}

	fmt.Printf("\nOverall risk: %s\n%s\n", string(out.OverallRisk), out.Summary)
}
