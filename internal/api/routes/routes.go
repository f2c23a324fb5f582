package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mf-advisor/advisor_service/internal/api/handlers"
	"github.com/mf-advisor/advisor_service/internal/api/middleware"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/di"
)

// SetupRoutes configures all application routes
func SetupRoutes(container *di.Container) *gin.Engine {
	router := gin.New()

	// Global middleware - order matters
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logger(container.Logger))
	router.Use(middleware.Recovery(container.Logger))
	router.Use(middleware.CORS(container.Config.Server.AllowedOrigins))
	router.Use(middleware.RateLimit(container.Config.Server.RateLimitPerMin))
	router.Use(middleware.SecurityHeaders())

	healthHandlers := handlers.NewHealthHandlers(container.HealthChecker, container.CatalogService, container.Logger)
	fundHandlers := handlers.NewFundHandlers(container.CatalogService, container.Logger)
	investmentHandlers := handlers.NewInvestmentHandlers(container.InvestmentService, container.Logger)

	// Status and observability (no /api prefix)
	router.GET("/", healthHandlers.Status)
	router.GET("/health", healthHandlers.Health)
	router.GET("/live", healthHandlers.Live)
	router.GET("/version", healthHandlers.Version)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		funds := api.Group("/funds")
		{
			funds.GET("/search", fundHandlers.Search)
			funds.GET("/all", fundHandlers.ListAll)
			funds.GET("/top", fundHandlers.Top)
			funds.GET("/:code", fundHandlers.Detail)
		}

		api.GET("/recommendations/:code", fundHandlers.Recommendations)
		api.GET("/compare/:code1/:code2", fundHandlers.CompareStats)
		api.GET("/metrics/glossary", fundHandlers.Glossary)
		api.POST("/compare-investment", investmentHandlers.CompareInvestment)
	}

	return router
}
