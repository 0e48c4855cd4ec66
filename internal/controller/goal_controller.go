package controller

import (
	"net/http"

	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/middleware"
	"github.com/ebeyer/lapwise/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type GoalController struct {
	goalService service.GoalService
}

func NewGoalController(goalService service.GoalService) *GoalController {
	return &GoalController{goalService: goalService}
}

// Create assigns a standard to a student within a group. Teacher role
// enforced at the route level.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.GoalCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	goal, err := c.goalService.Create(middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	log.Info().Uint("goalID", goal.ID).Msg("Goal created")
	ctx.JSON(http.StatusCreated, goal)
}

// Get returns a goal with its linked resources. Teacher and student of the
// goal only.
func (c *GoalController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "goal_id")
	if !ok {
		return
	}
	goal, err := c.goalService.Get(middleware.CurrentUser(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, goal)
}

// Delete removes a goal and its resource links. Refused while laps exist.
func (c *GoalController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "goal_id")
	if !ok {
		return
	}
	if err := c.goalService.Delete(middleware.CurrentUser(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// LinkResource links a resource (own or public) to the teacher's goal.
func (c *GoalController) LinkResource(ctx *gin.Context) {
	var req dto.GoalResourceLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	goal, err := c.goalService.LinkResource(middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, goal)
}

// LinkResources links several resources at once, silently dropping the ones
// the teacher may not use.
func (c *GoalController) LinkResources(ctx *gin.Context) {
	var req dto.GoalResourceMultiLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	goal, err := c.goalService.LinkResources(middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, goal)
}
