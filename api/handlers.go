package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-wordle-engine/services"
)

const maxRequestBodySize = 1 << 20 // 1 MiB; every request body here is tiny

// API holds dependencies for API handlers, primarily the solver engine.
type API struct {
	engine services.SolverEngine
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.SolverEngine) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the API routes for the solver engine.
func SetupRoutes(router *gin.Engine, engine services.SolverEngine) {
	apiHandler := NewAPI(engine)

	router.Use(RequestIDMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Solving and analysis routes
	solverRoutes := router.Group("/api")
	{
		solverRoutes.POST("/solve", apiHandler.SolveHandler)                 // Solve for a known answer
		solverRoutes.GET("/analyze/opening", apiHandler.OpeningHandler)      // Best opening word analysis
		solverRoutes.POST("/generate", apiHandler.GenerateHandler)           // Generate a decision tree (async)
		solverRoutes.POST("/feedback-cache", apiHandler.FeedbackCacheHandler) // Rebuild the feedback cache (async)
	}

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("", apiHandler.ListJobsHandler)              // List jobs, optionally by status
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler) // Get job performance metrics
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)         // Get job status by ID
	}
}

// HealthCheckHandler reports engine liveness and vocabulary size.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"vocabulary_size": api.engine.VocabularySize(),
		"timestamp":       time.Now(),
	})
}
