package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loanstress/internal/api/models"
	"loanstress/internal/cache"
	"loanstress/internal/model"
	"loanstress/internal/stress"

	"github.com/gin-gonic/gin"
)

func simpleCalc(principal, annualRatePct float64, months int) model.Financials {
	interest := principal * (annualRatePct / 100) * float64(months) / 12
	total := principal + interest
	return model.Financials{
		MonthlyPayment: total / float64(months),
		TotalInterest:  interest,
		TotalAmount:    total,
	}
}

func newTestRouter(c cache.Cache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStressHandler(stress.New(simpleCalc), c, time.Minute)
	r := gin.New()
	r.POST("/api/v1/stress-test", h.RunStressTest)
	r.POST("/api/v1/stress-test/compare", h.CompareStressTests)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRunStressTest_OK(t *testing.T) {
	r := newTestRouter(nil)

	w := postJSON(t, r, "/api/v1/stress-test", models.StressTestRequest{
		Loan: models.LoanPayload{Principal: 10000, AnnualRatePct: 15, DurationMonths: 12},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.StressTestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.StressTests) != 4 {
		t.Errorf("expected 4 stress tests, got %d", len(resp.StressTests))
	}
	if resp.OverallRisk != "critical" {
		t.Errorf("overall risk = %q, want critical", resp.OverallRisk)
	}
	if resp.BaseCase.RepaymentProbability != 0.75 || resp.BaseCase.DefaultProbability != 0.15 {
		t.Errorf("unexpected base case: %+v", resp.BaseCase)
	}
}

func TestRunStressTest_InvalidBody(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stress-test", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRunStressTest_MissingPrincipal(t *testing.T) {
	r := newTestRouter(nil)

	w := postJSON(t, r, "/api/v1/stress-test", models.StressTestRequest{
		Loan: models.LoanPayload{DurationMonths: 12},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRunStressTest_CachesResponse(t *testing.T) {
	r := newTestRouter(cache.NewMemory())

	req := models.StressTestRequest{
		Loan: models.LoanPayload{Principal: 10000, AnnualRatePct: 15, DurationMonths: 12},
	}

	first := postJSON(t, r, "/api/v1/stress-test", req)
	if first.Code != http.StatusOK {
		t.Fatalf("first call status = %d", first.Code)
	}
	var firstResp models.StressTestResponse
	if err := json.Unmarshal(first.Body.Bytes(), &firstResp); err != nil {
		t.Fatalf("unmarshal first response: %v", err)
	}
	if firstResp.Cached {
		t.Errorf("first call should not be served from cache")
	}

	second := postJSON(t, r, "/api/v1/stress-test", req)
	var secondResp models.StressTestResponse
	if err := json.Unmarshal(second.Body.Bytes(), &secondResp); err != nil {
		t.Fatalf("unmarshal second response: %v", err)
	}
	if !secondResp.Cached {
		t.Errorf("second identical call should be served from cache")
	}
	if secondResp.OverallRisk != firstResp.OverallRisk || len(secondResp.StressTests) != len(firstResp.StressTests) {
		t.Errorf("cached response should match the original")
	}
}

func TestCompareStressTests(t *testing.T) {
	r := newTestRouter(nil)

	collateral := 8000.0
	w := postJSON(t, r, "/api/v1/stress-test/compare", models.CompareRequest{
		BaseLoan: models.LoanPayload{Principal: 10000, AnnualRatePct: 15, DurationMonths: 12},
		Variations: []models.LoanVariation{
			{Name: "as-is"},
			{Name: "with-collateral", Loan: models.LoanPayload{CollateralValue: &collateral}},
			{Name: "longer-term", Loan: models.LoanPayload{DurationMonths: 24}},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.CompareResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Comparison) != 3 {
		t.Fatalf("expected 3 comparison entries, got %d", len(resp.Comparison))
	}
	if resp.Comparison[0].Name != "as-is" {
		t.Errorf("comparison should preserve variation order, got %q first", resp.Comparison[0].Name)
	}
	// The collateral variation exposes quick-sale losses the base never sees.
	if resp.Comparison[1].Downside <= resp.Comparison[0].Downside {
		t.Errorf("collateralized variation should show a larger downside: %+v", resp.Comparison)
	}
}
