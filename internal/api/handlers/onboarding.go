package handlers

import (
	"errors"
	"net/http"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// stepJobTypes maps the resume path segments to onboarding steps
var stepJobTypes = map[string]models.JobType{
	"subdomain":   models.JobTypeDomain,
	"certificate": models.JobTypeCertificate,
	"ingress":     models.JobTypeIngress,
	"did":         models.JobTypeDID,
	"participant": models.JobTypeParticipant,
}

// OnboardingHandler handles manual resumes of onboarding steps
type OnboardingHandler struct {
	service service.OnboardingServiceInterface
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(service service.OnboardingServiceInterface) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// ResumeStep handles POST /api/v1/enterprises/:id/:step
// @Summary Resume an onboarding step
// @Description Schedule an onboarding step to run immediately. Resuming the certificate step schedules a repeating recovery job that is cancelled once the certificate is issued.
// @Tags onboarding
// @Produce json
// @Param id path string true "Enterprise ID (UUID)"
// @Param step path string true "Step" Enums(subdomain, certificate, ingress, did, participant)
// @Success 202 {object} service.ResumeResponse "Step scheduled"
// @Failure 400 {object} map[string]interface{} "Invalid enterprise ID or step"
// @Failure 404 {object} map[string]interface{} "Enterprise not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/enterprises/{id}/{step} [post]
func (h *OnboardingHandler) ResumeStep(c *gin.Context) {
	id, ok := parseEnterpriseID(c)
	if !ok {
		return
	}

	jobType, ok := stepJobTypes[c.Param("step")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown onboarding step"})
		return
	}

	resp, err := h.service.Resume(c.Request.Context(), id, jobType)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEnterpriseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule step", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusAccepted, resp)
}
