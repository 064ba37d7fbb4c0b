package finance

import (
	"math"
	"testing"
)

func TestCalculate_WithInterest(t *testing.T) {
	got := Calculate(10000, 12, 24)

	if got.MonthlyPayment <= 0 {
		t.Fatalf("expected monthly payment > 0, got %.2f", got.MonthlyPayment)
	}
	if got.TotalInterest <= 0 {
		t.Errorf("expected total interest > 0, got %.2f", got.TotalInterest)
	}
	if math.Abs(got.TotalAmount-(10000+got.TotalInterest)) > 0.01 {
		t.Errorf("total amount %.2f should equal principal + interest %.2f",
			got.TotalAmount, 10000+got.TotalInterest)
	}
}

func TestCalculate_ZeroInterest(t *testing.T) {
	got := Calculate(1200, 0, 12)

	if got.MonthlyPayment != 100.0 {
		t.Errorf("expected payment 100.00, got %.2f", got.MonthlyPayment)
	}
	if got.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %.2f", got.TotalInterest)
	}
	if got.TotalAmount != 1200.0 {
		t.Errorf("expected total 1200.00, got %.2f", got.TotalAmount)
	}
}

func TestCalculate_KnownMortgage(t *testing.T) {
	// $100,000 at 5% for 360 months pays approximately $536.82/month.
	got := Calculate(100000, 5, 360)

	if math.Abs(got.MonthlyPayment-536.82) > 0.02 {
		t.Errorf("expected payment ~536.82, got %.2f", got.MonthlyPayment)
	}
}

func TestCalculate_InterestGrowsWithDuration(t *testing.T) {
	shorter := Calculate(10000, 15, 12)
	longer := Calculate(10000, 15, 15)

	if longer.TotalInterest <= shorter.TotalInterest {
		t.Errorf("interest should grow with duration: 12mo=%.2f 15mo=%.2f",
			shorter.TotalInterest, longer.TotalInterest)
	}
}
