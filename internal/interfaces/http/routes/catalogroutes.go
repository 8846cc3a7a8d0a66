package routes

import (
	"github.com/gin-gonic/gin"

	"classicmodels/internal/interfaces/http/handlers"
)

type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
}

func SetupCatalogRoutes(engine *gin.Engine, config *CatalogRouteConfig) {
	h := config.CatalogHandler

	products := engine.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:code", h.GetProduct)
		products.GET("/:code/product-line", h.GetProductProductLine)
	}

	lines := engine.Group("/product-lines")
	{
		lines.GET("", h.ListProductLines)
		lines.GET("/:id", h.GetProductLine)
	}
}
