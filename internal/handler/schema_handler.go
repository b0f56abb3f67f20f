package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuet-cad-club/clubsite-api/internal/schema"
	"github.com/cuet-cad-club/clubsite-api/pkg/response"
)

// SchemaHandler exposes the content authoring contract.
type SchemaHandler struct{}

// NewSchemaHandler constructs the handler.
func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

// Types godoc
// @Summary Content authoring contract
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /content/schema [get]
func (h *SchemaHandler) Types(c *gin.Context) {
	response.JSON(c, http.StatusOK, schema.Types())
}
