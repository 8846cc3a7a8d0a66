package mappers

import (
	"classicmodels/internal/domain/product"
	"classicmodels/internal/infrastructure/persistence/models"
)

// ProductMapper handles products and product lines.
type ProductMapper interface {
	ToDomain(model *models.ProductModel) (*product.Product, error)
	ToDomainList(rows []models.ProductModel) ([]*product.Product, error)
	LineToDomain(model *models.ProductLineModel) (*product.Line, error)
	LineToDomainList(rows []models.ProductLineModel) ([]*product.Line, error)
}

// ProductMapperImpl is the concrete implementation of ProductMapper.
type ProductMapperImpl struct{}

// NewProductMapper creates a new ProductMapper.
func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToDomain(model *models.ProductModel) (*product.Product, error) {
	return product.ReconstructProduct(
		model.ProductCode,
		model.ProductName,
		model.ProductLine,
		model.ProductScale,
		model.ProductVendor,
		model.ProductDescription,
		model.QuantityInStock,
		model.BuyPrice,
		model.MSRP,
	)
}

func (m *ProductMapperImpl) ToDomainList(rows []models.ProductModel) ([]*product.Product, error) {
	return mapRows(rows, m.ToDomain, func(r *models.ProductModel) string { return r.ProductCode })
}

func (m *ProductMapperImpl) LineToDomain(model *models.ProductLineModel) (*product.Line, error) {
	return product.ReconstructLine(
		model.ProductLine,
		deref(model.TextDescription),
		deref(model.HTMLDescription),
		model.Image,
	)
}

func (m *ProductMapperImpl) LineToDomainList(rows []models.ProductLineModel) ([]*product.Line, error) {
	return mapRows(rows, m.LineToDomain, func(r *models.ProductLineModel) string { return r.ProductLine })
}
