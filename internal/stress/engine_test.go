package stress

import (
	"math"
	"reflect"
	"testing"

	"loanstress/internal/model"
)

// testCalc is a simple-interest calculator with exact arithmetic, so scenario
// expectations can be computed by hand. Total interest grows linearly with
// duration, which the restructuring scenario relies on.
func testCalc(principal, annualRatePct float64, months int) model.Financials {
	interest := principal * (annualRatePct / 100) * float64(months) / 12
	total := principal + interest
	return model.Financials{
		MonthlyPayment: total / float64(months),
		TotalInterest:  interest,
		TotalAmount:    total,
	}
}

// testLoan is the reference case used across the scenario tests:
// 10k at 15% over 12 months, so testCalc gives interest=1500, total=11500,
// payment=958.3333.
func testLoan() model.Loan {
	return model.Loan{
		Principal:      10000,
		AnnualRatePct:  15,
		DurationMonths: 12,
	}
}

func within(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func ptr(v float64) *float64 { return &v }

func TestRun_NoOptionalInputs(t *testing.T) {
	engine := New(testCalc)

	out, err := engine.Run(testLoan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3 delay scenarios + restructuring; collateral and income families skipped.
	if len(out.StressTests) != 4 {
		t.Fatalf("expected 4 stress tests, got %d", len(out.StressTests))
	}

	wantNames := []string{
		"Payment Delay +7 days",
		"Payment Delay +14 days",
		"Payment Delay +30 days",
		"Restructuring +25% Term",
	}
	for i, want := range wantNames {
		if got := out.StressTests[i].Factor.Name; got != want {
			t.Errorf("stress test %d: name = %q, want %q", i, got, want)
		}
	}

	within(t, "base profit", out.BaseCase.Profit, 1500, 1e-9)
	within(t, "base repayment", out.BaseCase.RepaymentProbability, 0.75, 1e-12)
	within(t, "base default", out.BaseCase.DefaultProbability, 0.15, 1e-12)

	// The 30-day delay is critical, so the whole loan is critical.
	if out.OverallRisk != model.SeverityCritical {
		t.Errorf("overall risk = %s, want critical", out.OverallRisk)
	}
}

func TestRun_WithCollateral(t *testing.T) {
	loan := testLoan()
	loan.CollateralValue = ptr(8000)

	out, err := New(testCalc).Run(loan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.StressTests) != 7 {
		t.Fatalf("expected 7 stress tests, got %d", len(out.StressTests))
	}

	// Collateral scenarios sit between the delays and restructuring,
	// in increasing drop order.
	drop40 := out.StressTests[5]
	if drop40.Factor.Name != "Collateral Devaluation -40%" {
		t.Fatalf("stress test 5: name = %q", drop40.Factor.Name)
	}
	if drop40.Factor.Severity != model.SeverityCritical {
		t.Errorf("40%% drop severity = %s, want critical", drop40.Factor.Severity)
	}
}

func TestRun_WithIncomeProfile(t *testing.T) {
	loan := testLoan()
	loan.MonthlyIncome = ptr(3000)
	loan.MonthlyExpenses = ptr(2800)

	out, err := New(testCalc).Run(loan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.StressTests) != 5 {
		t.Fatalf("expected 5 stress tests, got %d", len(out.StressTests))
	}

	// After a 10% income cut disposable income is 2700-2800 < 0, so the
	// payment ratio pins to 1 and the scenario goes critical.
	shock := out.StressTests[3]
	if shock.Factor.Name != "Income Shock -10%" {
		t.Fatalf("stress test 3: name = %q", shock.Factor.Name)
	}
	if shock.Factor.Severity != model.SeverityCritical {
		t.Errorf("income shock severity = %s, want critical", shock.Factor.Severity)
	}
}

func TestRun_AllInputs(t *testing.T) {
	loan := testLoan()
	loan.CollateralValue = ptr(8000)
	loan.MonthlyIncome = ptr(3000)
	loan.MonthlyExpenses = ptr(2800)

	out, err := New(testCalc).Run(loan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.StressTests) != 8 {
		t.Fatalf("expected 8 stress tests, got %d", len(out.StressTests))
	}
	last := out.StressTests[len(out.StressTests)-1]
	if last.Factor.Name != "Restructuring +25% Term" {
		t.Errorf("restructuring should be generated last, got %q", last.Factor.Name)
	}
}

func TestRun_IncomeWithoutExpensesSkipsShock(t *testing.T) {
	loan := testLoan()
	loan.MonthlyIncome = ptr(3000)

	out, err := New(testCalc).Run(loan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.StressTests) != 4 {
		t.Errorf("income without expenses should skip the shock, got %d tests", len(out.StressTests))
	}
}

func TestRun_Idempotent(t *testing.T) {
	loan := testLoan()
	loan.CollateralValue = ptr(8000)
	loan.MonthlyIncome = ptr(3000)
	loan.MonthlyExpenses = ptr(2800)
	engine := New(testCalc)

	first, err := engine.Run(loan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Run(loan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs should produce identical outputs")
	}
}

func TestRun_InvalidLoan(t *testing.T) {
	_, err := New(testCalc).Run(model.Loan{Principal: 0, DurationMonths: 12})
	if err == nil {
		t.Errorf("expected error for invalid principal")
	}
}

func TestRun_NilCalculator(t *testing.T) {
	_, err := New(nil).Run(testLoan())
	if err == nil {
		t.Errorf("expected error for nil calculator")
	}
}
