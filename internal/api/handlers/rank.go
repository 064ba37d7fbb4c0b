package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"loanstress/internal/analysis"
	"loanstress/internal/api/models"
	"loanstress/internal/config"
	"loanstress/internal/stress"

	"github.com/gin-gonic/gin"
)

// RankHandler handles portfolio-triage requests
type RankHandler struct {
	engine  *stress.Engine
	loanDir string
}

// NewRankHandler creates a new rank handler reading presets from the same
// directory as the loan handler.
func NewRankHandler(engine *stress.Engine, loanDir string) *RankHandler {
	return &RankHandler{engine: engine, loanDir: loanDir}
}

// RankLoans handles GET /api/v1/rank
func (h *RankHandler) RankLoans(c *gin.Context) {
	entries, err := os.ReadDir(h.loanDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "LOAN_DIR_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	loans := make([]analysis.NamedLoan, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		cfg, err := config.Load(filepath.Join(h.loanDir, e.Name()))
		if err != nil {
			continue // Skip invalid presets
		}
		name := cfg.Loan.Name
		if name == "" {
			name = strings.TrimSuffix(e.Name(), ".yaml")
		}
		loans = append(loans, analysis.NamedLoan{Name: name, Loan: cfg.Loan.ToModel()})
	}

	ranked, err := analysis.RankByDownside(h.engine, loans)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RANK_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.Ranking{
			Rank:        i + 1,
			Name:        r.Name,
			OverallRisk: string(r.OverallRisk),
			Downside:    r.Downside,
			Scenarios:   r.Scenarios,
		}
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
