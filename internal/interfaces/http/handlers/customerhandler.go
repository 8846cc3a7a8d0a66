package handlers

import (
	"github.com/gin-gonic/gin"

	customerapp "classicmodels/internal/application/customer"
	"classicmodels/internal/domain/customer"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/utils"
)

type CustomerHandler struct {
	customers CustomerService
	logger    logger.Interface
}

func NewCustomerHandler(customers CustomerService, logger logger.Interface) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		logger:    logger,
	}
}

// SalesRepQuery names the sales rep whose customers are paged and picks
// the query variant answering it.
type SalesRepQuery struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
	Mode      string `form:"mode"`
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]customerdto.CustomerDTO}
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	result, err := h.customers.FindAll(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// PageCustomers handles GET /customers/paged
// @Summary Page through customers
// @Tags Customers
// @Produce json
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param perPage query int false "Page size, capped at 100" default(10)
// @Success 200 {object} utils.APIResponse{data=query.Page[customerdto.CustomerDTO]}
// @Failure 400 {object} utils.APIResponse
// @Router /customers/paged [get]
func (h *CustomerHandler) PageCustomers(c *gin.Context) {
	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customers.FindPage(c.Request.Context(), page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// PageCustomersByCountry handles GET /customers/country/:country/paged
// @Summary Page through the customers of a country
// @Tags Customers
// @Produce json
// @Param country path string true "Country"
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param perPage query int false "Page size, capped at 100" default(10)
// @Success 200 {object} utils.APIResponse{data=query.Page[customerdto.CustomerDTO]}
// @Failure 400 {object} utils.APIResponse
// @Router /customers/country/{country}/paged [get]
func (h *CustomerHandler) PageCustomersByCountry(c *gin.Context) {
	country, err := utils.ParseStringParam(c, "country", "country")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customers.FindByCountryPage(c.Request.Context(), country, page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// PageCustomersBySalesRep handles GET /customers/country/:country/sales-rep/paged
// @Summary Page through the customers of a country served by a sales rep
// @Description mode=orm uses a join through the ORM, mode=native runs hand-written SQL. Both return the same page.
// @Tags Customers
// @Produce json
// @Param country path string true "Country"
// @Param firstName query string true "Sales rep first name"
// @Param lastName query string true "Sales rep last name"
// @Param mode query string false "orm or native" default(orm)
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param perPage query int false "Page size, capped at 100" default(10)
// @Success 200 {object} utils.APIResponse{data=query.Page[customerdto.CustomerDTO]}
// @Failure 400 {object} utils.APIResponse
// @Router /customers/country/{country}/sales-rep/paged [get]
func (h *CustomerHandler) PageCustomersBySalesRep(c *gin.Context) {
	country, err := utils.ParseStringParam(c, "country", "country")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var q SalesRepQuery
	if err := bindQuery(c, &q); err != nil {
		h.logger.Warnw("invalid sales rep query", "country", country, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	mode, err := customerapp.ParseQueryMode(q.Mode)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter := customer.SalesRepFilter{
		Country:   country,
		FirstName: q.FirstName,
		LastName:  q.LastName,
	}

	result, err := h.customers.FindBySalesRepPage(c.Request.Context(), filter, mode, page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetCustomer handles GET /customers/:id
// @Summary Get a customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer number"
// @Success 200 {object} utils.APIResponse{data=customerdto.CustomerDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	number, err := parseCustomerNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customers.GetByNumber(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetCustomerSalesRep handles GET /customers/:id/sales-rep
// @Summary Resolve the sales rep of a customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer number"
// @Success 200 {object} utils.APIResponse{data=staffdto.EmployeeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id}/sales-rep [get]
func (h *CustomerHandler) GetCustomerSalesRep(c *gin.Context) {
	number, err := parseCustomerNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customers.GetSalesRep(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListCustomerPayments handles GET /customers/:id/payments
// @Summary List the payments of a customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer number"
// @Success 200 {object} utils.APIResponse{data=[]customerdto.PaymentDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id}/payments [get]
func (h *CustomerHandler) ListCustomerPayments(c *gin.Context) {
	number, err := parseCustomerNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customers.ListPayments(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetCustomerPayment handles GET /customers/:id/payments/:checkNumber
// @Summary Get one payment
// @Tags Customers
// @Produce json
// @Param id path int true "Customer number"
// @Param checkNumber path string true "Check number"
// @Success 200 {object} utils.APIResponse{data=customerdto.PaymentDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id}/payments/{checkNumber} [get]
func (h *CustomerHandler) GetCustomerPayment(c *gin.Context) {
	number, err := parseCustomerNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	checkNumber, err := utils.ParseStringParam(c, "checkNumber", "check number")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customers.GetPayment(c.Request.Context(), number, checkNumber)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func parseCustomerNumber(c *gin.Context) (int64, error) {
	return utils.ParseInt64Param(c, "id", "customer")
}
