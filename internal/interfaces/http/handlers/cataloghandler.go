package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogdto "classicmodels/internal/application/catalog/dto"
	"classicmodels/internal/domain/product"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/query"
	"classicmodels/internal/shared/utils"
)

// CatalogService is what CatalogHandler needs to serve products and product lines.
type CatalogService interface {
	FindProducts(ctx context.Context, filter product.Filter, page query.PageRequest) (*query.Page[*catalogdto.ProductDTO], error)
	GetProduct(ctx context.Context, code string) (*catalogdto.ProductDTO, error)
	GetProductLineOf(ctx context.Context, code string) (*catalogdto.ProductLineDTO, error)
	ListProductLines(ctx context.Context) ([]*catalogdto.ProductLineDTO, error)
	GetProductLine(ctx context.Context, id string) (*catalogdto.ProductLineDTO, error)
}

type CatalogHandler struct {
	catalog CatalogService
	logger  logger.Interface
}

func NewCatalogHandler(catalog CatalogService, logger logger.Interface) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ProductsQuery optionally narrows products to one product line.
type ProductsQuery struct {
	ProductLine string `form:"productLine" validate:"omitempty,max=50"`
}

// ListProducts handles GET /products
// @Summary Page through products
// @Tags Products
// @Produce json
// @Param productLine query string false "Product line"
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param perPage query int false "Page size, capped at 100" default(10)
// @Success 200 {object} utils.APIResponse{data=query.Page[catalogdto.ProductDTO]}
// @Failure 400 {object} utils.APIResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var q ProductsQuery
	if err := bindQuery(c, &q); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.catalog.FindProducts(c.Request.Context(), product.Filter{ProductLine: q.ProductLine}, page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetProduct handles GET /products/:code
// @Summary Get a product
// @Tags Products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} utils.APIResponse{data=catalogdto.ProductDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /products/{code} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	code, err := utils.ParseStringParam(c, "code", "product code")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.catalog.GetProduct(c.Request.Context(), code)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetProductProductLine handles GET /products/:code/product-line
// @Summary Resolve the product line of a product
// @Tags Products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} utils.APIResponse{data=catalogdto.ProductLineDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /products/{code}/product-line [get]
func (h *CatalogHandler) GetProductProductLine(c *gin.Context) {
	code, err := utils.ParseStringParam(c, "code", "product code")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.catalog.GetProductLineOf(c.Request.Context(), code)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListProductLines handles GET /product-lines
// @Summary List product lines
// @Description htmlDescription is sanitized, and rendered from the text description when no HTML is stored
// @Tags Products
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]catalogdto.ProductLineDTO}
// @Router /product-lines [get]
func (h *CatalogHandler) ListProductLines(c *gin.Context) {
	result, err := h.catalog.ListProductLines(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetProductLine handles GET /product-lines/:id
// @Summary Get a product line
// @Tags Products
// @Produce json
// @Param id path string true "Product line"
// @Success 200 {object} utils.APIResponse{data=catalogdto.ProductLineDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /product-lines/{id} [get]
func (h *CatalogHandler) GetProductLine(c *gin.Context) {
	id, err := utils.ParseStringParam(c, "id", "product line")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.catalog.GetProductLine(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
