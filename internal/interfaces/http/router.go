package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"classicmodels/internal/application/catalog"
	"classicmodels/internal/application/customer"
	"classicmodels/internal/application/order"
	"classicmodels/internal/application/staff"
	"classicmodels/internal/infrastructure/config"
	"classicmodels/internal/infrastructure/repository"
	"classicmodels/internal/interfaces/http/handlers"
	"classicmodels/internal/interfaces/http/middleware"
	"classicmodels/internal/interfaces/http/routes"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/services/markdown"

	_ "classicmodels/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	cfg             *config.Config
	logger          logger.Interface
	healthHandler   *handlers.HealthHandler
	orderHandler    *handlers.OrderHandler
	customerHandler *handlers.CustomerHandler
	staffHandler    *handlers.StaffHandler
	catalogHandler  *handlers.CatalogHandler
}

// NewRouter wires repositories, services and handlers over db.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	engine := gin.New()

	orderRepo := repository.NewOrderRepository(db)
	orderDetailRepo := repository.NewOrderDetailRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	productRepo := repository.NewProductRepository(db)
	productLineRepo := repository.NewProductLineRepository(db)

	orderService := order.NewService(orderRepo, orderDetailRepo, customerRepo, log.Named("order"))
	customerService := customer.NewService(customerRepo, paymentRepo, employeeRepo, log.Named("customer"))
	staffService := staff.NewService(employeeRepo, officeRepo, log.Named("staff"))
	catalogService := catalog.NewService(productRepo, productLineRepo, markdown.NewMarkdownService(), log.Named("catalog"))

	return &Router{
		engine:          engine,
		cfg:             cfg,
		logger:          log,
		healthHandler:   handlers.NewHealthHandler(sqlDB, log),
		orderHandler:    handlers.NewOrderHandler(orderService, log),
		customerHandler: handlers.NewCustomerHandler(customerService, log),
		staffHandler:    handlers.NewStaffHandler(staffService, log),
		catalogHandler:  handlers.NewCatalogHandler(catalogService, log),
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.ErrorHandler(r.logger))

	if r.cfg.Server.EnableSwagger {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	routes.SetupOrderRoutes(r.engine, &routes.OrderRouteConfig{OrderHandler: r.orderHandler})
	routes.SetupCustomerRoutes(r.engine, &routes.CustomerRouteConfig{CustomerHandler: r.customerHandler})
	routes.SetupStaffRoutes(r.engine, &routes.StaffRouteConfig{StaffHandler: r.staffHandler})
	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{CatalogHandler: r.catalogHandler})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
