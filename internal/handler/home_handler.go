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

type homeService interface {
	Page(ctx context.Context) (*dto.HomePageResponse, bool, bool)
}

// HomeHandler serves the homepage view model.
type HomeHandler struct {
	service homeService
}

// NewHomeHandler constructs the handler.
func NewHomeHandler(service homeService) *HomeHandler {
	return &HomeHandler{service: service}
}

// Page godoc
// @Summary Homepage view model
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /pages/home [get]
func (h *HomeHandler) Page(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	page, cacheHit, degraded := h.service.Page(c.Request.Context())
	middleware.SetCacheHit(c, cacheHit)
	middleware.SetDegraded(c, degraded)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, page, meta)
}
