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

type joinService interface {
	Page(ctx context.Context) (*dto.JoinPageResponse, bool, bool)
	ApplicationsEnabled() bool
	SubmitApplication(req dto.ApplicationRequest) (dto.ApplicationResponse, error)
}

// JoinHandler serves the join page and accepts membership applications.
type JoinHandler struct {
	service joinService
}

// NewJoinHandler constructs the handler.
func NewJoinHandler(service joinService) *JoinHandler {
	return &JoinHandler{service: service}
}

// Page godoc
// @Summary Join page view model
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /pages/join [get]
func (h *JoinHandler) Page(c *gin.Context) {
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

// Apply godoc
// @Summary Submit a membership application
// @Tags Join
// @Accept json
// @Produce json
// @Param request body dto.ApplicationRequest true "Application payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /join/applications [post]
func (h *JoinHandler) Apply(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	if !h.service.ApplicationsEnabled() {
		response.Error(c, appErrors.ErrDisabled)
		return
	}
	var req dto.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid application payload"))
		return
	}
	ack, err := h.service.SubmitApplication(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, ack)
}
