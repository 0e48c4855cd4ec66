package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps the service error classes onto HTTP status codes. The
// original API reports every authorization failure as 401, so Forbidden maps
// there rather than to 403.
func respondError(ctx *gin.Context, err error) {
	var (
		notFound   *apperr.NotFoundError
		forbidden  *apperr.ForbiddenError
		validation *apperr.ValidationError
		conflict   *apperr.ConflictError
		badRequest *apperr.BadRequestError
	)
	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFound.Message})
	case errors.As(err, &forbidden):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: forbidden.Message})
	case errors.As(err, &validation):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: validation.Message})
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: conflict.Message})
	case errors.As(err, &badRequest):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: badRequest.Message})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}

// parseIDParam reads a positive integer path parameter, answering 400 itself
// on malformed input.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

const defaultListLimit = 5000

// pagination reads skip/limit query params with the API's defaults.
func pagination(ctx *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = defaultListLimit
	}
	return skip, limit
}
