package api

import (
	"slices"
	"time"

	"crawler-dashboard/pkg/api/handlers"
	"crawler-dashboard/pkg/api/middleware"
	"crawler-dashboard/pkg/config"
	"crawler-dashboard/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(service handlers.URLService, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Metrics(m))
	router.Use(cors.New(corsConfig(cfg.API.AllowedOrigins)))

	// Health check
	router.GET("/ping", handlers.Ping)
	router.GET("/health", handlers.HealthCheck(service))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	urls := router.Group("/urls")
	{
		urls.GET("", handlers.ListURLs(service))
		urls.POST("", handlers.CreateURL(service))
		urls.GET("/:id", handlers.GetURL(service))
		urls.DELETE("/:id", handlers.DeleteURL(service))
		urls.POST("/:id/refresh", handlers.RefreshURL(service))
		urls.POST("/:id/stop", handlers.StopURL(service))
		urls.PUT("/:id/stop", handlers.StopURL(service))
		urls.PUT("/:id/start", handlers.StartURL(service))
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
	}
	return c
}
