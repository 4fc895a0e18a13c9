package auth

import (
	"net/http"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Token handles POST /api/v1/auth/token
// @Summary Issue operator token
// @Description Exchange the admin API key for a short-lived operator JWT
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "API key"
// @Success 200 {object} TokenResponse "Issued token"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid API key"
// @Failure 500 {object} map[string]interface{} "Failed to issue token"
// @Router /api/v1/auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.IssueToken(req.APIKey)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			logger.WithContext(c.Request.Context()).Warn("Rejected token request with invalid API key")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Validate handles GET /api/v1/auth/validate
// @Summary Validate operator token
// @Description Return the claims of the presented operator token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Token is valid"
// @Failure 401 {object} map[string]interface{} "Invalid token"
// @Router /api/v1/auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "claims": claims})
}
