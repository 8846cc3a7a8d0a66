package routes

import (
	"github.com/gin-gonic/gin"

	"classicmodels/internal/interfaces/http/handlers"
)

type OrderRouteConfig struct {
	OrderHandler *handlers.OrderHandler
}

func SetupOrderRoutes(engine *gin.Engine, config *OrderRouteConfig) {
	h := config.OrderHandler

	orders := engine.Group("/orders")
	{
		// Static paths first, then the /:id family.
		orders.GET("", h.ListOrders)
		orders.GET("/sorted-desc", h.ListOrdersSortedDesc)
		orders.GET("/paged", h.PageOrders)
		orders.GET("/reference/:id", h.GetOrderByReference)

		orders.GET("/customer", h.ListOrdersByCustomer)
		orders.GET("/customer/statuses", h.ListOrdersByCustomerAndStatuses)

		orders.GET("/statuses", h.ListOrdersByStatuses)
		orders.GET("/statuses/paged", h.PageOrdersByStatuses)
		orders.GET("/statuses/customer", h.ListOrdersByStatusesAndCustomer)
		orders.GET("/statuses/customer/paged", h.PageOrdersByStatusesAndCustomer)

		orders.GET("/status/:status", h.ListOrdersByStatus)
		orders.GET("/status/:status/or/:other", h.ListOrdersByEitherStatus)
		orders.GET("/status/:status/first", h.GetFirstOrderByStatus)
		orders.GET("/status/:status/top-one", h.GetTopOrderByStatus)
		orders.GET("/status/:status/last", h.GetLastOrderByStatus)
		orders.GET("/status/:status/top", h.ListTopOrdersByStatus)

		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/customer", h.GetOrderCustomer)
		orders.GET("/:id/details", h.ListOrderDetails)
		orders.GET("/:id/details/:productCode", h.GetOrderDetail)
	}
}
