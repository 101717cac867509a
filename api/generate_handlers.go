package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	engineErrors "github.com/gcbaptista/go-wordle-engine/internal/errors"
	"github.com/gcbaptista/go-wordle-engine/services"
)

// GenerateHandler handles the request to generate a decision tree.
// Generation takes minutes, so it always runs as a background job.
// Request Body: services.GenerateRequest
func (api *API) GenerateHandler(c *gin.Context) {
	var req services.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	jobID, err := api.engine.GenerateTreeAsync(req)
	if err != nil {
		switch {
		case errors.Is(err, engineErrors.ErrInvalidWord):
			SendValidationError(c, "start_word", err.Error())
		case errors.Is(err, engineErrors.ErrWordNotFound):
			SendWordNotFoundError(c, req.StartWord)
		default:
			SendGenerationError(c, err)
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Decision tree generation started",
		"job_id":  jobID,
	})
}

// FeedbackCacheHandler handles the request to rebuild the feedback cache.
func (api *API) FeedbackCacheHandler(c *gin.Context) {
	jobID, err := api.engine.BuildFeedbackCacheAsync()
	if err != nil {
		SendGenerationError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Feedback cache rebuild started",
		"job_id":  jobID,
	})
}
