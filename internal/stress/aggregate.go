package stress

import (
	"fmt"

	"loanstress/internal/model"
)

// Aggregation thresholds over per-scenario severities.
const (
	highCountForHighRisk   = 3
	highCountForMediumRisk = 1
)

// aggregate reduces the generated scenarios to an overall risk band and a
// one-line summary. The verdict depends only on the multiset of severities:
// any critical scenario makes the whole loan critical, several high scenarios
// make it high, a single high makes it medium, otherwise low.
func aggregate(results []Result) (model.Severity, string) {
	var criticalCount, highCount int
	for _, r := range results {
		switch r.Factor.Severity {
		case model.SeverityCritical:
			criticalCount++
		case model.SeverityHigh:
			highCount++
		}
	}

	switch {
	case criticalCount > 0:
		return model.SeverityCritical, fmt.Sprintf("%d scenario(s) produce critical stress; the loan is highly vulnerable to adverse conditions", criticalCount)
	case highCount >= highCountForHighRisk:
		return model.SeverityHigh, fmt.Sprintf("%d scenarios produce high stress; adverse conditions would materially hurt this loan", highCount)
	case highCount >= highCountForMediumRisk:
		return model.SeverityMedium, "Some scenarios show elevated stress; the loan tolerates adverse conditions with monitoring"
	default:
		return model.SeverityLow, "The loan holds up well across the stress scenarios"
	}
}
