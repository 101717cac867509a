package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	engineErrors "github.com/gcbaptista/go-wordle-engine/internal/errors"
	"github.com/gcbaptista/go-wordle-engine/services"
)

// SolveHandler handles the request to solve for a known answer.
// Request Body: services.SolveRequest
func (api *API) SolveHandler(c *gin.Context) {
	var req services.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if req.Answer == "" {
		SendValidationError(c, "answer", "answer word is required")
		return
	}

	result, err := api.engine.Solve(req.Answer, req.HardMode)
	if err != nil {
		switch {
		case errors.Is(err, engineErrors.ErrInvalidWord):
			SendValidationError(c, "answer", err.Error())
		case errors.Is(err, engineErrors.ErrWordNotFound):
			SendWordNotFoundError(c, req.Answer)
		default:
			SendSolveError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// OpeningHandler handles the request to compute the best opening word.
func (api *API) OpeningHandler(c *gin.Context) {
	result, err := api.engine.BestOpening()
	if err != nil {
		SendSolveError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
