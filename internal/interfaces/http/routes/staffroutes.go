package routes

import (
	"github.com/gin-gonic/gin"

	"classicmodels/internal/interfaces/http/handlers"
)

type StaffRouteConfig struct {
	StaffHandler *handlers.StaffHandler
}

func SetupStaffRoutes(engine *gin.Engine, config *StaffRouteConfig) {
	h := config.StaffHandler

	employees := engine.Group("/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.GET("/:id/manager", h.GetEmployeeManager)
		employees.GET("/:id/office", h.GetEmployeeOffice)
		employees.GET("/:id/reports", h.ListEmployeeReports)
	}

	offices := engine.Group("/offices")
	{
		offices.GET("", h.ListOffices)
		offices.GET("/:code", h.GetOffice)
		offices.GET("/:code/employees", h.ListOfficeEmployees)
	}
}
