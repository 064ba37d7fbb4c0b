package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"loanstress/internal/api/models"
	"loanstress/internal/config"

	"github.com/gin-gonic/gin"
)

// LoanHandler handles loan-preset requests
type LoanHandler struct {
	loanDir string
}

// NewLoanHandler creates a new loan handler. Presets are YAML files under
// LOAN_DIR (default: ./examples/loans).
func NewLoanHandler() *LoanHandler {
	dir := os.Getenv("LOAN_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "loans")
		} else {
			dir = "./examples/loans"
		}
	}
	return &LoanHandler{loanDir: dir}
}

// GetLoanDir returns the preset directory path (for diagnostics)
func (h *LoanHandler) GetLoanDir() string {
	return h.loanDir
}

// ListLoans handles GET /api/v1/loans
func (h *LoanHandler) ListLoans(c *gin.Context) {
	entries, err := os.ReadDir(h.loanDir)
	if err != nil {
		log.Printf("LoanHandler: failed to read %s: %v", h.loanDir, err)
		c.JSON(http.StatusOK, gin.H{"loans": []models.LoanInfo{}})
		return
	}

	loans := make([]models.LoanInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.loanDir, e.Name())
		cfg, err := config.LoadUnchecked(path)
		if err != nil {
			log.Printf("LoanHandler: skipping %s: %v", e.Name(), err)
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		name := cfg.Loan.Name
		if name == "" {
			name = id
		}
		loan := cfg.Loan.ToModel()
		loans = append(loans, models.LoanInfo{
			ID:             id,
			Name:           name,
			File:           e.Name(),
			Principal:      loan.Principal,
			AnnualRatePct:  loan.AnnualRatePct,
			DurationMonths: loan.DurationMonths,
			HasCollateral:  loan.HasCollateral(),
			HasIncome:      loan.HasIncomeProfile(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"loans": loans})
}
