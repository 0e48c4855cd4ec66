package controller

import (
	"net/http"
	"strconv"

	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/middleware"
	"github.com/ebeyer/lapwise/internal/service"
	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	resourceService service.ResourceService
}

func NewResourceController(resourceService service.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// Create makes a resource owned by the logged-in user.
func (c *ResourceController) Create(ctx *gin.Context) {
	var req dto.ResourceCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resource, err := c.resourceService.Create(middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resource)
}

// Get returns one resource. The viewer must be the creator or the resource
// must be public; creator identity is withheld from non-creators.
func (c *ResourceController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "resource_id")
	if !ok {
		return
	}
	resource, err := c.resourceService.Get(middleware.CurrentUser(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resource)
}

// List returns the viewer's own resources, or resources linked to a
// standard (optionally including public ones) when standard_id is given.
func (c *ResourceController) List(ctx *gin.Context) {
	var standardID *uint
	if raw := ctx.Query("standard_id"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid standard_id format"})
			return
		}
		id := uint(val)
		standardID = &id
	}
	includePublic := ctx.Query("include_public") == "true"
	skip, limit := pagination(ctx)

	resources, err := c.resourceService.List(middleware.CurrentUser(ctx), standardID, includePublic, skip, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resources)
}

// Update patches a resource that the logged-in user created.
func (c *ResourceController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "resource_id")
	if !ok {
		return
	}
	var req dto.ResourceUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resource, err := c.resourceService.Update(middleware.CurrentUser(ctx), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resource)
}

// Delete removes a resource, its cards and its links. Refused while laps
// have been recorded against it.
func (c *ResourceController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "resource_id")
	if !ok {
		return
	}
	if err := c.resourceService.Delete(middleware.CurrentUser(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// LinkStandard relates one resource to one standard.
func (c *ResourceController) LinkStandard(ctx *gin.Context) {
	var req dto.StandardLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resource, err := c.resourceService.LinkStandard(middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resource)
}

// LinkStandards relates one resource to several standards at once. Missing
// standard ids abort the whole call unless ignore_non_exist_stds=true.
func (c *ResourceController) LinkStandards(ctx *gin.Context) {
	var req dto.StandardMultiLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ignoreMissing := ctx.Query("ignore_non_exist_stds") == "true"
	resource, err := c.resourceService.LinkStandards(middleware.CurrentUser(ctx), req, ignoreMissing)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resource)
}
