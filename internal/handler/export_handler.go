package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
	"github.com/cuet-cad-club/clubsite-api/pkg/response"
)

type exportService interface {
	AlumniCSV(ctx context.Context) ([]byte, error)
	EventsPDF(ctx context.Context) ([]byte, error)
}

// ExportHandler serves downloadable content exports.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// AlumniCSV godoc
// @Summary Alumni directory as CSV
// @Tags Exports
// @Produce text/csv
// @Success 200 {file} file
// @Failure 502 {object} response.Envelope
// @Router /exports/alumni.csv [get]
func (h *ExportHandler) AlumniCSV(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	data, err := h.service.AlumniCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\"alumni.csv\"")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/csv", data)
}

// EventsPDF godoc
// @Summary Event calendar as PDF
// @Tags Exports
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 502 {object} response.Envelope
// @Router /exports/events.pdf [get]
func (h *ExportHandler) EventsPDF(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	data, err := h.service.EventsPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\"event-calendar.pdf\"")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", data)
}
