package handlers

import (
	"net/http"
	"testing"

	"onboarding-backend/internal/testutils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	httpSuite := testutils.SetupHTTPTest()
	handler := NewHealthHandler(nil, client)
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)

	t.Run("healthy", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var resp HealthResponse
		testutils.ParseJSONResponse(t, recorder, &resp)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "healthy", resp.Services["redis"])
		assert.NotContains(t, resp.Services, "database")
	})

	t.Run("live", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("redis down", func(t *testing.T) {
		mr.Close()

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "not ready")
	})
}
