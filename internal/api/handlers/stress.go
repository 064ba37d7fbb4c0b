package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"loanstress/internal/api/models"
	"loanstress/internal/cache"
	"loanstress/internal/stress"

	"github.com/gin-gonic/gin"
)

// StressHandler handles stress-test requests
type StressHandler struct {
	engine *stress.Engine
	cache  cache.Cache
	ttl    time.Duration
}

// NewStressHandler creates a new stress handler. cache may be nil to disable
// response caching.
func NewStressHandler(engine *stress.Engine, c cache.Cache, ttl time.Duration) *StressHandler {
	return &StressHandler{engine: engine, cache: c, ttl: ttl}
}

// RunStressTest handles POST /api/v1/stress-test
func (h *StressHandler) RunStressTest(c *gin.Context) {
	var req models.StressTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	loan := toModelLoan(req.Loan)
	if err := loan.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_LOAN",
				Message: err.Error(),
			},
		})
		return
	}

	key := requestKey(req.Loan)
	if h.cache != nil && !req.Options.SkipCache {
		if raw, ok := h.cache.Get(c.Request.Context(), key); ok {
			var cached models.StressTestResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				cached.Cached = true
				c.JSON(http.StatusOK, cached)
				return
			}
			log.Printf("StressHandler: dropping unreadable cache entry %s", key)
		}
	}

	out, err := h.engine.Run(loan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STRESS_TEST_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	response := buildResponse(out)

	if h.cache != nil {
		if raw, err := json.Marshal(response); err == nil {
			if err := h.cache.Set(c.Request.Context(), key, string(raw), h.ttl); err != nil {
				log.Printf("StressHandler: failed to cache response: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

// CompareStressTests handles POST /api/v1/stress-test/compare
func (h *StressHandler) CompareStressTests(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeLoanPayload(req.BaseLoan, variation.Loan)

		loan := toModelLoan(merged)
		if err := loan.Validate(); err != nil {
			continue // Skip invalid variations
		}

		out, err := h.engine.Run(loan)
		if err != nil {
			continue // Skip failed runs
		}

		downside := 0.0
		for _, r := range out.StressTests {
			if r.Impact.OnProfit < 0 {
				downside -= r.Impact.OnProfit
			}
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:        variation.Name,
			OverallRisk: string(out.OverallRisk),
			Summary:     out.Summary,
			BaseProfit:  out.BaseCase.Profit,
			Downside:    downside,
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// requestKey derives a stable cache key from the canonical loan JSON.
func requestKey(loan models.LoanPayload) string {
	raw, err := json.Marshal(loan)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return "stress:" + hex.EncodeToString(sum[:])
}
