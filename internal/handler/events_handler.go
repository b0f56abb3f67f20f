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

type eventsService interface {
	Page(ctx context.Context) (*dto.EventsPageResponse, bool, error)
}

// EventsHandler serves the events page view model.
type EventsHandler struct {
	service eventsService
}

// NewEventsHandler constructs the handler.
func NewEventsHandler(service eventsService) *EventsHandler {
	return &EventsHandler{service: service}
}

// Page godoc
// @Summary Events page view model
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /pages/events [get]
func (h *EventsHandler) Page(c *gin.Context) {
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
