package routes

import (
	"net/http"

	"onboarding-backend/internal/api/handlers"
	"onboarding-backend/internal/api/middleware"
	"onboarding-backend/internal/auth"
	"onboarding-backend/internal/config"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles everything the HTTP layer dispatches to
type Services struct {
	DB           *gorm.DB
	Redis        redis.UniversalClient
	Registration service.RegistrationServiceInterface
	Enterprises  service.EnterpriseServiceInterface
	Onboarding   service.OnboardingServiceInterface
	Auth         *auth.AuthService
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, services *Services) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Tracing())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	healthHandler := handlers.NewHealthHandler(services.DB, services.Redis)
	registrationHandler := handlers.NewRegistrationHandler(services.Registration)
	enterpriseHandler := handlers.NewEnterpriseHandler(services.Enterprises)
	onboardingHandler := handlers.NewOnboardingHandler(services.Onboarding)
	wellKnownHandler := handlers.NewWellKnownHandler(services.Enterprises)
	authHandler := auth.NewAuthHandler(services.Auth)
	authMiddleware := auth.NewAuthMiddleware(services.Auth)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Published DID documents and certificates, resolved by Host header
	router.GET("/.well-known/:fileName", wellKnownHandler.GetFile)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/register", registrationHandler.Register)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/token", authHandler.Token)
			authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
		}

		// Operator routes
		enterprises := v1.Group("/enterprises")
		enterprises.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(auth.RoleOperator))
		{
			enterprises.GET("", enterpriseHandler.ListEnterprises)
			enterprises.GET("/:id", enterpriseHandler.GetEnterprise)
			enterprises.GET("/:id/jobs", enterpriseHandler.GetEnterpriseJobs)
			enterprises.GET("/:id/credentials", enterpriseHandler.GetEnterpriseCredentials)
			enterprises.POST("/:id/:step", onboardingHandler.ResumeStep)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(string(logger.RequestIDKey)),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, redisClient redis.UniversalClient) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
