package routes

import (
	"net/http"

	"postl-admin-backend/internal/api/handlers"
	"postl-admin-backend/internal/api/middleware"
	"postl-admin-backend/internal/config"
	"postl-admin-backend/internal/metrics"
	"postl-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the wired components the router serves
type Dependencies struct {
	Config        *config.Config
	TenantService service.TenantServiceInterface
	Store         handlers.StorePinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(deps.Config))
	router.Use(middleware.Metrics())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Store)
	tenantHandler := handlers.NewTenantHandler(deps.TenantService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/dashboard", tenantHandler.GetDashboard)

		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/defaults", tenantHandler.GetTenantDefaults)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.PUT("/:id", tenantHandler.UpdateTenant)
			tenants.PATCH("/:id/status", tenantHandler.ToggleTenantStatus)
			tenants.DELETE("/:id", tenantHandler.DeleteTenant)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
