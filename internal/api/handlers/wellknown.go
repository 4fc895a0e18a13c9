package handlers

import (
	"errors"
	"net/http"
	"path"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WellKnownHandler serves the public documents of an enterprise host
type WellKnownHandler struct {
	service service.EnterpriseServiceInterface
}

// NewWellKnownHandler creates a new well-known handler
func NewWellKnownHandler(service service.EnterpriseServiceInterface) *WellKnownHandler {
	return &WellKnownHandler{service: service}
}

// GetFile handles GET /.well-known/:fileName
// @Summary Get a public enterprise document
// @Description Serve did.json, participant.json or the certificate chain of the enterprise owning the request host. Private keys and signing requests are never served.
// @Tags well-known
// @Produce json
// @Param fileName path string true "File name" example(did.json)
// @Success 200 {object} map[string]interface{} "Document"
// @Failure 400 {object} map[string]interface{} "File not accessible"
// @Failure 404 {object} map[string]interface{} "Enterprise or file not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /.well-known/{fileName} [get]
func (h *WellKnownHandler) GetFile(c *gin.Context) {
	fileName := c.Param("fileName")

	data, err := h.service.GetWellKnownFile(c.Request.Context(), c.Request.Host, fileName)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrFileAccessDenied), apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get file", "details": err.Error()})
		}
		return
	}

	contentType := "application/json"
	if path.Ext(fileName) == ".pem" {
		contentType = "application/x-pem-file"
	}
	c.Data(http.StatusOK, contentType, data)
}
