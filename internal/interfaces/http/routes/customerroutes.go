package routes

import (
	"github.com/gin-gonic/gin"

	"classicmodels/internal/interfaces/http/handlers"
)

type CustomerRouteConfig struct {
	CustomerHandler *handlers.CustomerHandler
}

func SetupCustomerRoutes(engine *gin.Engine, config *CustomerRouteConfig) {
	h := config.CustomerHandler

	customers := engine.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/paged", h.PageCustomers)
		customers.GET("/country/:country/paged", h.PageCustomersByCountry)
		customers.GET("/country/:country/sales-rep/paged", h.PageCustomersBySalesRep)

		customers.GET("/:id", h.GetCustomer)
		customers.GET("/:id/sales-rep", h.GetCustomerSalesRep)
		customers.GET("/:id/payments", h.ListCustomerPayments)
		customers.GET("/:id/payments/:checkNumber", h.GetCustomerPayment)
	}
}
