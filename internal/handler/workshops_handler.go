package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	"github.com/cuet-cad-club/clubsite-api/internal/middleware"
	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
	"github.com/cuet-cad-club/clubsite-api/pkg/response"
)

type workshopsService interface {
	Page(ctx context.Context) (*dto.WorkshopsPageResponse, bool, error)
}

// WorkshopsHandler serves the workshops page view model.
type WorkshopsHandler struct {
	service workshopsService
}

// NewWorkshopsHandler constructs the handler.
func NewWorkshopsHandler(service workshopsService) *WorkshopsHandler {
	return &WorkshopsHandler{service: service}
}

// Page godoc
// @Summary Workshops page view model
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /pages/workshops [get]
func (h *WorkshopsHandler) Page(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	page, cacheHit, err := h.service.Page(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, page, meta)
}
