package controller

import (
	"net/http"

	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/middleware"
	"github.com/ebeyer/lapwise/internal/service"
	"github.com/gin-gonic/gin"
)

type LapController struct {
	lapService service.LapService
}

func NewLapController(lapService service.LapService) *LapController {
	return &LapController{lapService: lapService}
}

// Create starts a lap on a goal/resource pair. Student role enforced at
// the route level; the goal's own student enforced in the service.
func (c *LapController) Create(ctx *gin.Context) {
	var req dto.LapCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	lap, err := c.lapService.Create(middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, lap)
}

// Get returns a lap with its attempts. Goal members only.
func (c *LapController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lap_id")
	if !ok {
		return
	}
	lap, err := c.lapService.Get(middleware.CurrentUser(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lap)
}

// Update closes out a lap with end_ts and score.
func (c *LapController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lap_id")
	if !ok {
		return
	}
	var req dto.LapUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	lap, err := c.lapService.Update(middleware.CurrentUser(ctx), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lap)
}
