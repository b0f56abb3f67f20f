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

type aboutService interface {
	Page(ctx context.Context) (*dto.AboutPageResponse, bool, bool)
}

// AboutHandler serves the about page view model.
type AboutHandler struct {
	service aboutService
}

// NewAboutHandler constructs the handler.
func NewAboutHandler(service aboutService) *AboutHandler {
	return &AboutHandler{service: service}
}

// Page godoc
// @Summary About page view model
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /pages/about [get]
func (h *AboutHandler) Page(c *gin.Context) {
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
