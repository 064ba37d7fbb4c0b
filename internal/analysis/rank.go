package analysis

import (
	"fmt"
	"sort"

	"loanstress/internal/model"
	"loanstress/internal/stress"
)

// NamedLoan pairs a portfolio label with loan terms.
type NamedLoan struct {
	Name string
	Loan model.Loan
}

// RankedLoan is one row of portfolio triage output.
type RankedLoan struct {
	Name        string
	OverallRisk model.Severity
	// Downside is the sum of negative profit deltas across the loan's
	// scenarios: how much the stress scenarios can cost in the worst case.
	Downside  float64
	Scenarios int
}

// RankByDownside runs the stress engine over every loan and orders the
// results worst-first: largest downside, then highest risk band.
func RankByDownside(engine *stress.Engine, loans []NamedLoan) ([]RankedLoan, error) {
	ranked := make([]RankedLoan, 0, len(loans))
	for _, nl := range loans {
		out, err := engine.Run(nl.Loan)
		if err != nil {
			return nil, fmt.Errorf("loan %q: %w", nl.Name, err)
		}
		downside := 0.0
		for _, r := range out.StressTests {
			if r.Impact.OnProfit < 0 {
				downside -= r.Impact.OnProfit
			}
		}
		ranked = append(ranked, RankedLoan{
			Name:        nl.Name,
			OverallRisk: out.OverallRisk,
			Downside:    downside,
			Scenarios:   len(out.StressTests),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Downside != ranked[j].Downside {
			return ranked[i].Downside > ranked[j].Downside
		}
		return ranked[i].OverallRisk.Rank() > ranked[j].OverallRisk.Rank()
	})
	return ranked, nil
}
