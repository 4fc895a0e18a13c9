package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EnterpriseHandler handles HTTP requests for enterprise queries
type EnterpriseHandler struct {
	service service.EnterpriseServiceInterface
}

// NewEnterpriseHandler creates a new enterprise handler
func NewEnterpriseHandler(service service.EnterpriseServiceInterface) *EnterpriseHandler {
	return &EnterpriseHandler{service: service}
}

// parseEnterpriseID reads the :id path parameter, answering 400 when it is not a UUID
func parseEnterpriseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enterprise ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// ListEnterprises handles GET /api/v1/enterprises
// @Summary List enterprises
// @Description List registered enterprises with their onboarding status
// @Tags enterprises
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.EnterpriseListResponse "Enterprises"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/enterprises [get]
func (h *EnterpriseHandler) ListEnterprises(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	enterprises, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list enterprises", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, enterprises)
}

// GetEnterprise handles GET /api/v1/enterprises/:id
// @Summary Get enterprise by ID
// @Description Get an enterprise and its onboarding status
// @Tags enterprises
// @Produce json
// @Param id path string true "Enterprise ID (UUID)"
// @Success 200 {object} service.EnterpriseResponse "Enterprise"
// @Failure 400 {object} map[string]interface{} "Invalid enterprise ID"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/enterprises/{id} [get]
func (h *EnterpriseHandler) GetEnterprise(c *gin.Context) {
	id, ok := parseEnterpriseID(c)
	if !ok {
		return
	}

	enterprise, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEnterpriseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get enterprise", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, enterprise)
}

// GetEnterpriseJobs handles GET /api/v1/enterprises/:id/jobs
// @Summary List onboarding jobs
// @Description List the scheduled onboarding jobs of an enterprise
// @Tags enterprises
// @Produce json
// @Param id path string true "Enterprise ID (UUID)"
// @Success 200 {array} service.ScheduledJobResponse "Jobs"
// @Failure 400 {object} map[string]interface{} "Invalid enterprise ID"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/enterprises/{id}/jobs [get]
func (h *EnterpriseHandler) GetEnterpriseJobs(c *gin.Context) {
	id, ok := parseEnterpriseID(c)
	if !ok {
		return
	}

	jobs, err := h.service.GetJobs(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEnterpriseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get jobs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetEnterpriseCredentials handles GET /api/v1/enterprises/:id/credentials
// @Summary List issued credentials
// @Description List the verifiable credentials issued for an enterprise
// @Tags enterprises
// @Produce json
// @Param id path string true "Enterprise ID (UUID)"
// @Success 200 {array} service.CredentialResponse "Credentials"
// @Failure 400 {object} map[string]interface{} "Invalid enterprise ID"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/enterprises/{id}/credentials [get]
func (h *EnterpriseHandler) GetEnterpriseCredentials(c *gin.Context) {
	id, ok := parseEnterpriseID(c)
	if !ok {
		return
	}

	credentials, err := h.service.GetCredentials(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEnterpriseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get credentials", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, credentials)
}
