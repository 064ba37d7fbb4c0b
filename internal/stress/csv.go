package stress

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
)

// WriteResultsCSV writes one row per generated scenario. This is the primary
// artifact for sharing a stress run with loan officers.
func WriteResultsCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"scenario",
		"description",
		"impact",
		"severity",
		"on_profit",
		"on_repayment",
		"on_default",
		"financial_impact",
		"warnings",
		"recommendations",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Factor.Name,
			r.Factor.Description,
			string(r.Factor.Impact),
			string(r.Factor.Severity),
			fmtFloat(r.Impact.OnProfit),
			fmtFloat(r.Impact.OnRepayment),
			fmtFloat(r.Impact.OnDefault),
			fmtFloat(r.Impact.FinancialImpact),
			strings.Join(r.Warnings, "; "),
			strings.Join(r.Recommendations, "; "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
