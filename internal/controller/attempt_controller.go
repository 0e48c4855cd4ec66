package controller

import (
	"net/http"

	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/middleware"
	"github.com/ebeyer/lapwise/internal/service"
	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

// Create submits one answer for one card within a lap and returns the
// graded attempt.
func (c *AttemptController) Create(ctx *gin.Context) {
	var req dto.AttemptCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	attempt, err := c.attemptService.Create(middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}
