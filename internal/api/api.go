// internal/api/api.go
package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inventorypro/insights/internal/analysis"
	"github.com/inventorypro/insights/internal/api/handlers"
	"github.com/inventorypro/insights/internal/inventory"
	"github.com/inventorypro/insights/internal/report"
)

type Services struct {
	Inventory   *inventory.Service
	Coordinator *analysis.Coordinator
	Exporter    *report.Exporter
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Inventory != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.Inventory)

			itemGroup := apiGroup.Group("/items")
			{
				itemGroup.GET("", inventoryHandler.ListItems)
				itemGroup.POST("", inventoryHandler.CreateItem)
				itemGroup.PUT("/:id", inventoryHandler.UpdateItem)
				itemGroup.DELETE("/:id", inventoryHandler.DeleteItem)
				itemGroup.POST("/:id/sell", inventoryHandler.SellItem)
			}

			categoryGroup := apiGroup.Group("/categories")
			{
				categoryGroup.GET("", inventoryHandler.ListCategories)
				categoryGroup.POST("", inventoryHandler.CreateCategory)
				categoryGroup.PUT("/:id", inventoryHandler.UpdateCategory)
				categoryGroup.DELETE("/:id", inventoryHandler.DeleteCategory)
			}

			apiGroup.GET("/sold-items", inventoryHandler.ListSoldItems)
			apiGroup.GET("/analytics/summary", inventoryHandler.GetSummary)
		}

		if services.Coordinator != nil && services.Inventory != nil {
			analysisHandler := handlers.NewAnalysisHandler(services.Coordinator, services.Inventory)
			analysisGroup := apiGroup.Group("/analysis")
			{
				analysisGroup.GET("/stock-alert", analysisHandler.GetStockAlert)
				analysisGroup.POST("/stock-alert/refresh", analysisHandler.RefreshStockAlert)
				analysisGroup.GET("/inventory-health", analysisHandler.GetInventoryHealth)
				analysisGroup.POST("/inventory-health/refresh", analysisHandler.RefreshInventoryHealth)
			}
		}

		if services.Exporter != nil {
			reportHandler := handlers.NewReportHandler(services.Exporter)
			apiGroup.GET("/reports/:type", reportHandler.Download)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
