package handlers

import (
	"net/http"

	"loanstress/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles scenario-catalog requests
type ScenarioHandler struct{}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{
		{
			Name:        "payment_delay",
			Description: "Scheduled payments arrive late. Adds late-fee revenue but raises default risk. Always generated.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "delay_days",
					Type:        "int",
					Description: "Average payment delay in days, one scenario per magnitude",
					Values:      []int{7, 14, 30},
				},
			},
		},
		{
			Name:        "collateral_devaluation",
			Description: "Collateral loses market value before a forced quick sale at a 65% haircut.",
			Requires:    []string{"collateral_value"},
			Parameters: []models.ParameterInfo{
				{
					Name:        "drop_pct",
					Type:        "float",
					Description: "Fraction of collateral value lost, one scenario per magnitude",
					Values:      []float64{0.10, 0.20, 0.40},
				},
			},
		},
		{
			Name:        "income_shock",
			Description: "Borrower income falls 10%; stress is measured by how much of disposable income the payment consumes.",
			Requires:    []string{"monthly_income", "monthly_expenses"},
			Parameters: []models.ParameterInfo{
				{
					Name:        "income_drop_pct",
					Type:        "float",
					Description: "Fixed income reduction applied by the shock",
					Values:      []float64{0.10},
				},
			},
		},
		{
			Name:        "restructuring",
			Description: "Extends the repayment term by 25% and reprices the loan. The only favorable scenario. Always generated.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "duration_factor",
					Type:        "float",
					Description: "Multiplier applied to the loan duration",
					Values:      []float64{1.25},
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
