package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "onboarding-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret: "test-signing-key",
		TokenTTL:  time.Hour,
		APIKey:    "admin-key",
	}
}

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config structure", func(t *testing.T) {
		config := testConfig()
		assert.NoError(t, config.ValidateConfig())
		assert.Equal(t, defaultIssuer, config.Issuer)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""
		assert.ErrorContains(t, config.ValidateConfig(), "JWT secret is required")
	})

	t.Run("missing api key", func(t *testing.T) {
		config := testConfig()
		config.APIKey = ""
		assert.ErrorContains(t, config.ValidateConfig(), "admin API key is required")
	})

	t.Run("non positive ttl", func(t *testing.T) {
		config := testConfig()
		config.TokenTTL = 0
		assert.ErrorContains(t, config.ValidateConfig(), "token TTL must be positive")
	})
}

func TestIssueToken(t *testing.T) {
	service := newTestService(t)

	t.Run("valid api key", func(t *testing.T) {
		resp, err := service.IssueToken("admin-key")
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)

		claims, err := service.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "operator", claims.Role)
		assert.Equal(t, defaultIssuer, claims.Issuer)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("wrong api key", func(t *testing.T) {
		_, err := service.IssueToken("guess")
		assert.ErrorIs(t, err, apperrors.ErrInvalidAPIKey)
	})
}

func TestValidateJWT(t *testing.T) {
	service := newTestService(t)

	t.Run("expired token", func(t *testing.T) {
		issued := time.Now().Add(-2 * time.Hour)
		service.now = func() time.Time { return issued }
		token, err := service.GenerateJWT()
		require.NoError(t, err)
		service.now = time.Now

		_, err = service.ValidateJWT(token)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("foreign signature", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other", TokenTTL: time.Hour, APIKey: "k"})
		require.NoError(t, err)
		token, err := other.GenerateJWT()
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: defaultIssuer},
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateJWT(signed)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-jwt")
		assert.Error(t, err)
	})
}

func setupRouter(service *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAuthHandler(service)
	middleware := NewAuthMiddleware(service)

	router.POST("/api/v1/auth/token", handler.Token)
	router.GET("/api/v1/auth/validate", middleware.RequireAuth(), handler.Validate)
	return router
}

func TestTokenHandler(t *testing.T) {
	router := setupRouter(newTestService(t))

	t.Run("issues token", func(t *testing.T) {
		body, _ := json.Marshal(TokenRequest{APIKey: "admin-key"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewBufferString(`{"api_key":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects missing key", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	service := newTestService(t)
	router := setupRouter(service)
	token, err := service.GenerateJWT()
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer abc", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/validate", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/operator", middleware.RequireAuth(), middleware.RequireRole(RoleOperator), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/unguarded", middleware.RequireRole(RoleOperator), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	operatorToken, err := service.GenerateJWT()
	require.NoError(t, err)

	auditor := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
		Role: "auditor",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    defaultIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	auditorToken, err := auditor.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	cases := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{"operator role", "/operator", operatorToken, http.StatusNoContent},
		{"other role", "/operator", auditorToken, http.StatusForbidden},
		{"no claims on context", "/unguarded", operatorToken, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}
