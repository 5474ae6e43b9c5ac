package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(catalog *handlers.CatalogHandler, advisory *handlers.AdvisoryHandler, assistant *handlers.AssistantHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/breeds", catalog.ListBreeds)
		api.GET("/breeds/regions", catalog.ListBreedRegions)

		api.GET("/schemes", catalog.ListSchemes)
		api.GET("/schemes/filters", catalog.ListSchemeFilters)

		api.GET("/lifecycle", catalog.ListLifecycleStages)
		api.GET("/lifecycle/:stage", catalog.GetLifecycleStage)

		api.GET("/eco/practices", catalog.ListEcoPractices)
		api.GET("/eco/guides", catalog.ListPracticeGuides)
		api.POST("/eco/carbon", advisory.EstimateCarbon)
		api.POST("/eco/water", advisory.EstimateWater)

		api.POST("/diagnosis", advisory.Diagnose)

		api.POST("/valuation/estimate", advisory.EstimateValue)
		api.GET("/prices/trends", advisory.ListPriceTrends)
		api.GET("/prices/summary", advisory.PriceSummary)

		api.POST("/breeding/suggest", advisory.SuggestPair)
		api.GET("/breeding/goals", advisory.ListBreedingGoals)
		api.GET("/breeding/pairs", advisory.ListRecentPairs)
		api.GET("/breeding/offspring", advisory.ListRecentOffspring)

		api.POST("/chat", assistant.Chat)
		api.GET("/chat/history", assistant.ChatHistory)
		api.GET("/chat/languages", assistant.ListLanguages)

		api.POST("/identify", assistant.Identify)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
