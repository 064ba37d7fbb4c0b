package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"loanstress/internal/api/handlers"
	"loanstress/internal/api/middleware"
	"loanstress/internal/cache"
	"loanstress/internal/finance"
	"loanstress/internal/stress"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	rateLimiter := middleware.NewRateLimiter(60, time.Minute)
	defer rateLimiter.Stop()
	router.Use(middleware.RateLimit(rateLimiter))

	// Shared redis cache when REDIS_ADDR is set, in-process cache otherwise.
	var responseCache cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		responseCache = cache.NewRedis(addr)
		log.Printf("Using redis response cache at %s", addr)
	} else {
		responseCache = cache.NewMemory()
	}

	engine := stress.New(finance.Calculate)

	stressHandler := handlers.NewStressHandler(engine, responseCache, time.Hour)
	scenarioHandler := handlers.NewScenarioHandler()
	loanHandler := handlers.NewLoanHandler()
	rankHandler := handlers.NewRankHandler(engine, loanHandler.GetLoanDir())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/stress-test", stressHandler.RunStressTest)
		api.POST("/stress-test/compare", stressHandler.CompareStressTests)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/loans", loanHandler.ListLoans)
		api.GET("/rank", rankHandler.RankLoans)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
