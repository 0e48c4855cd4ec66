package controller

import (
	"net/http"
	"strconv"

	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/middleware"
	"github.com/ebeyer/lapwise/internal/service"
	"github.com/gin-gonic/gin"
)

type CardController struct {
	cardService service.CardService
}

func NewCardController(cardService service.CardService) *CardController {
	return &CardController{cardService: cardService}
}

// Create adds one flashcard to a resource the logged-in user created.
func (c *CardController) Create(ctx *gin.Context) {
	var req dto.CardCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	card, err := c.cardService.Create(middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, card)
}

// CreateBatch adds several flashcards to one resource and returns the
// resource with its full card set.
func (c *CardController) CreateBatch(ctx *gin.Context) {
	var reqs []dto.CardCreateRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resource, err := c.cardService.CreateBatch(middleware.CurrentUser(ctx), reqs)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resource)
}

func (c *CardController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "card_id")
	if !ok {
		return
	}
	card, err := c.cardService.Get(middleware.CurrentUser(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, card)
}

// ByResource returns a resource together with its flashcards.
func (c *CardController) ByResource(ctx *gin.Context) {
	raw := ctx.Query("resource_id")
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid resource_id format"})
		return
	}
	resource, err := c.cardService.ByResource(middleware.CurrentUser(ctx), uint(val))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resource)
}

// Update patches a card on a resource the logged-in user created.
func (c *CardController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "card_id")
	if !ok {
		return
	}
	var req dto.CardUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	card, err := c.cardService.Update(middleware.CurrentUser(ctx), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, card)
}
