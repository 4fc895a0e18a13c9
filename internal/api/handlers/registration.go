package handlers

import (
	"net/http"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for enterprise registration
type RegistrationHandler struct {
	service service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Register handles POST /api/v1/register
// @Summary Register an enterprise
// @Description Register an enterprise, offer its membership credential and schedule the onboarding chain
// @Tags enterprises
// @Accept json
// @Produce json
// @Param enterprise body service.RegisterEnterpriseRequest true "Enterprise data"
// @Success 201 {object} service.EnterpriseResponse "Enterprise registered"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Enterprise already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/register [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req service.RegisterEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	enterprise, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register enterprise", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, enterprise)
}
