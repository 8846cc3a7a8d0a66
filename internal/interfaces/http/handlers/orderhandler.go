package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	orderdto "classicmodels/internal/application/order/dto"
	"classicmodels/internal/shared/constants"
	"classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/utils"
)

type OrderHandler struct {
	orders OrderService
	logger logger.Interface
}

func NewOrderHandler(orders OrderService, logger logger.Interface) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// StatusesQuery carries the comma-delimited status list. The parameter must
// be present; an empty list yields no orders.
type StatusesQuery struct {
	Statuses *string `form:"statuses" validate:"required"`
}

// CustomerOrdersQuery filters orders by customer name and, optionally, status.
type CustomerOrdersQuery struct {
	Customer string  `form:"customer" validate:"required"`
	Statuses *string `form:"statuses"`
}

// TopOrdersQuery bounds a top-N lookup.
type TopOrdersQuery struct {
	Limit int `form:"limit,default=5" validate:"gte=1,lte=100"`
}

// ListOrders handles GET /orders
// @Summary List orders
// @Description All orders by order number
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDTO}
// @Failure 503 {object} utils.APIResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	result, err := h.orders.FindAll(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOrdersSortedDesc handles GET /orders/sorted-desc
// @Summary List orders, newest number first
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDTO}
// @Router /orders/sorted-desc [get]
func (h *OrderHandler) ListOrdersSortedDesc(c *gin.Context) {
	result, err := h.orders.FindAllSortedDesc(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// PageOrders handles GET /orders/paged
// @Summary Page through orders
// @Tags Orders
// @Produce json
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param perPage query int false "Page size, capped at 100" default(10)
// @Success 200 {object} utils.APIResponse{data=query.Page[orderdto.OrderDTO]}
// @Failure 400 {object} utils.APIResponse
// @Router /orders/paged [get]
func (h *OrderHandler) PageOrders(c *gin.Context) {
	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindPage(c.Request.Context(), page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetOrder handles GET /orders/:id
// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param id path int true "Order number"
// @Success 200 {object} utils.APIResponse{data=orderdto.OrderDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	number, err := parseOrderNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.GetByNumber(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetOrderByReference handles GET /orders/reference/:id
// @Summary Resolve an order reference
// @Description Takes a lazy handle on the order and resolves it within the request
// @Tags Orders
// @Produce json
// @Param id path int true "Order number"
// @Success 200 {object} utils.APIResponse{data=orderdto.OrderDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /orders/reference/{id} [get]
func (h *OrderHandler) GetOrderByReference(c *gin.Context) {
	number, err := parseOrderNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.GetByReference(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOrdersByStatus handles GET /orders/status/:status
// @Summary List orders with a status
// @Description Status matching ignores case
// @Tags Orders
// @Produce json
// @Param status path string true "Order status"
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDTO}
// @Router /orders/status/{status} [get]
func (h *OrderHandler) ListOrdersByStatus(c *gin.Context) {
	status, err := utils.ParseStringParam(c, "status", "status")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindByStatus(c.Request.Context(), status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOrdersByEitherStatus handles GET /orders/status/:status/or/:other
// @Summary List orders having one of two statuses
// @Tags Orders
// @Produce json
// @Param status path string true "First status"
// @Param other path string true "Second status"
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDTO}
// @Router /orders/status/{status}/or/{other} [get]
func (h *OrderHandler) ListOrdersByEitherStatus(c *gin.Context) {
	first, err := utils.ParseStringParam(c, "status", "status")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	second, err := utils.ParseStringParam(c, "other", "status")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindByStatusOrStatus(c.Request.Context(), first, second)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetFirstOrderByStatus handles GET /orders/status/:status/first
// @Summary First order with a status
// @Description Lowest order number among the matches
// @Tags Orders
// @Produce json
// @Param status path string true "Order status"
// @Success 200 {object} utils.APIResponse{data=orderdto.OrderDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /orders/status/{status}/first [get]
func (h *OrderHandler) GetFirstOrderByStatus(c *gin.Context) {
	h.rankedByStatus(c, h.orders.FindFirstByStatus)
}

// GetTopOrderByStatus handles GET /orders/status/:status/top-one
// @Summary Top order with a status
// @Tags Orders
// @Produce json
// @Param status path string true "Order status"
// @Success 200 {object} utils.APIResponse{data=orderdto.OrderDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /orders/status/{status}/top-one [get]
func (h *OrderHandler) GetTopOrderByStatus(c *gin.Context) {
	h.rankedByStatus(c, h.orders.FindTopByStatus)
}

// GetLastOrderByStatus handles GET /orders/status/:status/last
// @Summary Last order with a status
// @Description Highest order number among the matches
// @Tags Orders
// @Produce json
// @Param status path string true "Order status"
// @Success 200 {object} utils.APIResponse{data=orderdto.OrderDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /orders/status/{status}/last [get]
func (h *OrderHandler) GetLastOrderByStatus(c *gin.Context) {
	h.rankedByStatus(c, h.orders.FindTopByStatusOrderByNumberDesc)
}

// ListTopOrdersByStatus handles GET /orders/status/:status/top
// @Summary First N orders with a status
// @Tags Orders
// @Produce json
// @Param status path string true "Order status"
// @Param limit query int false "Number of orders, 1 to 100" default(5)
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /orders/status/{status}/top [get]
func (h *OrderHandler) ListTopOrdersByStatus(c *gin.Context) {
	status, err := utils.ParseStringParam(c, "status", "status")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var q TopOrdersQuery
	if err := bindQuery(c, &q); err != nil {
		h.logger.Warnw("invalid top orders query", "status", status, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindTopNByStatus(c.Request.Context(), status, q.Limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOrdersByStatuses handles GET /orders/statuses
// @Summary List orders whose status is in a list
// @Tags Orders
// @Produce json
// @Param statuses query string true "Comma-delimited statuses"
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /orders/statuses [get]
func (h *OrderHandler) ListOrdersByStatuses(c *gin.Context) {
	statuses, err := parseStatuses(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindByStatusIn(c.Request.Context(), statuses)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// PageOrdersByStatuses handles GET /orders/statuses/paged
// @Summary Page through orders whose status is in a list
// @Tags Orders
// @Produce json
// @Param statuses query string true "Comma-delimited statuses"
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param perPage query int false "Page size, capped at 100" default(10)
// @Success 200 {object} utils.APIResponse{data=query.Page[orderdto.OrderDTO]}
// @Failure 400 {object} utils.APIResponse
// @Router /orders/statuses/paged [get]
func (h *OrderHandler) PageOrdersByStatuses(c *gin.Context) {
	statuses, err := parseStatuses(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindByStatusInPaged(c.Request.Context(), statuses, page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOrdersByCustomer handles GET /orders/customer
// @Summary List orders of a customer
// @Description Customer name must match exactly
// @Tags Orders
// @Produce json
// @Param customer query string true "Customer name"
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /orders/customer [get]
func (h *OrderHandler) ListOrdersByCustomer(c *gin.Context) {
	var q CustomerOrdersQuery
	if err := bindQuery(c, &q); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindByCustomerName(c.Request.Context(), q.Customer)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOrdersByStatusesAndCustomer handles GET /orders/statuses/customer
// @Summary List orders of a customer whose status is in a list
// @Tags Orders
// @Produce json
// @Param customer query string true "Customer name"
// @Param statuses query string true "Comma-delimited statuses"
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /orders/statuses/customer [get]
func (h *OrderHandler) ListOrdersByStatusesAndCustomer(c *gin.Context) {
	q, statuses, err := parseCustomerStatuses(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindByStatusInAndCustomerName(c.Request.Context(), statuses, q.Customer)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOrdersByCustomerAndStatuses handles GET /orders/customer/statuses
// @Summary List orders of a customer whose status is in a list
// @Description Same rows as /orders/statuses/customer with the predicates reversed
// @Tags Orders
// @Produce json
// @Param customer query string true "Customer name"
// @Param statuses query string true "Comma-delimited statuses"
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /orders/customer/statuses [get]
func (h *OrderHandler) ListOrdersByCustomerAndStatuses(c *gin.Context) {
	q, statuses, err := parseCustomerStatuses(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindByCustomerNameAndStatusIn(c.Request.Context(), q.Customer, statuses)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// PageOrdersByStatusesAndCustomer handles GET /orders/statuses/customer/paged
// @Summary Page through orders of a customer whose status is in a list
// @Tags Orders
// @Produce json
// @Param customer query string true "Customer name"
// @Param statuses query string true "Comma-delimited statuses"
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param perPage query int false "Page size, capped at 100" default(10)
// @Success 200 {object} utils.APIResponse{data=query.Page[orderdto.OrderDTO]}
// @Failure 400 {object} utils.APIResponse
// @Router /orders/statuses/customer/paged [get]
func (h *OrderHandler) PageOrdersByStatusesAndCustomer(c *gin.Context) {
	q, statuses, err := parseCustomerStatuses(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.FindByStatusInAndCustomerNamePaged(c.Request.Context(), statuses, q.Customer, page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetOrderCustomer handles GET /orders/:id/customer
// @Summary Resolve the customer of an order
// @Tags Orders
// @Produce json
// @Param id path int true "Order number"
// @Success 200 {object} utils.APIResponse{data=customerdto.CustomerDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /orders/{id}/customer [get]
func (h *OrderHandler) GetOrderCustomer(c *gin.Context) {
	number, err := parseOrderNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.ResolveCustomer(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOrderDetails handles GET /orders/:id/details
// @Summary List the lines of an order
// @Tags Orders
// @Produce json
// @Param id path int true "Order number"
// @Success 200 {object} utils.APIResponse{data=[]orderdto.OrderDetailDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /orders/{id}/details [get]
func (h *OrderHandler) ListOrderDetails(c *gin.Context) {
	number, err := parseOrderNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.ListDetails(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetOrderDetail handles GET /orders/:id/details/:productCode
// @Summary Get one order line
// @Tags Orders
// @Produce json
// @Param id path int true "Order number"
// @Param productCode path string true "Product code"
// @Success 200 {object} utils.APIResponse{data=orderdto.OrderDetailDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /orders/{id}/details/{productCode} [get]
func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	number, err := parseOrderNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	productCode, err := utils.ParseStringParam(c, "productCode", "product code")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.orders.GetDetail(c.Request.Context(), number, productCode)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *OrderHandler) rankedByStatus(
	c *gin.Context,
	find func(ctx context.Context, status string) (*orderdto.OrderDTO, error),
) {
	status, err := utils.ParseStringParam(c, "status", "status")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := find(c.Request.Context(), status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func parseOrderNumber(c *gin.Context) (int64, error) {
	return utils.ParseInt64Param(c, "id", "order")
}

func parseStatuses(c *gin.Context) ([]string, error) {
	var q StatusesQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	return utils.SplitCSV(*q.Statuses), nil
}

func parseCustomerStatuses(c *gin.Context) (*CustomerOrdersQuery, []string, error) {
	var q CustomerOrdersQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, nil, err
	}
	if q.Statuses == nil {
		return nil, nil, errors.NewValidationError(constants.ErrMsgValidationFailed, constants.QueryStatuses+" is required")
	}
	return &q, utils.SplitCSV(*q.Statuses), nil
}
