package controller

import (
	"net/http"

	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/service"
	"github.com/gin-gonic/gin"
)

// CatalogController covers the curriculum catalog (topics, standards) and
// classroom groups. Creation routes sit behind the superuser gate.
type CatalogController struct {
	topicService    service.TopicService
	standardService service.StandardService
	groupService    service.GroupService
}

func NewCatalogController(
	topicService service.TopicService,
	standardService service.StandardService,
	groupService service.GroupService,
) *CatalogController {
	return &CatalogController{
		topicService:    topicService,
		standardService: standardService,
		groupService:    groupService,
	}
}

func (c *CatalogController) CreateTopic(ctx *gin.Context) {
	var req dto.TopicCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	topic, err := c.topicService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, topic)
}

func (c *CatalogController) ListTopics(ctx *gin.Context) {
	skip, limit := pagination(ctx)
	topics, err := c.topicService.List(skip, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

func (c *CatalogController) CreateStandard(ctx *gin.Context) {
	var req dto.StandardCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	standard, err := c.standardService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, standard)
}

func (c *CatalogController) GetStandard(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "standard_id")
	if !ok {
		return
	}
	standard, err := c.standardService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, standard)
}

func (c *CatalogController) ListStandards(ctx *gin.Context) {
	skip, limit := pagination(ctx)
	standards, err := c.standardService.List(skip, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, standards)
}

func (c *CatalogController) CreateGroup(ctx *gin.Context) {
	var req dto.GroupCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	group, err := c.groupService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, group)
}

// AddGroupMember puts a user into a group. Membership is a set: re-adding
// is a no-op.
func (c *CatalogController) AddGroupMember(ctx *gin.Context) {
	var req dto.GroupMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := c.groupService.AddMember(req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
