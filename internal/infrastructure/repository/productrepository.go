package repository

import (
	"context"

	"gorm.io/gorm"

	"classicmodels/internal/domain/product"
	"classicmodels/internal/infrastructure/persistence/mappers"
	"classicmodels/internal/infrastructure/persistence/models"
	"classicmodels/internal/shared/db"
	apperrors "classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/query"
)

type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepository) FindPage(
	ctx context.Context,
	filter product.Filter,
	page query.PageRequest,
) (*query.Page[*product.Product], error) {
	base := func() *gorm.DB {
		q := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{})
		if filter.ProductLine != "" {
			q = q.Where("productLine = ?", filter.ProductLine)
		}
		return q
	}
	return fetchPage(base, "productCode ASC", page, r.toDomain, "products")
}

func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	var model models.ProductModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("productCode = ?", code).First(&model).Error; err != nil {
		return nil, notFoundOrUnavailable(err, "product", "productCode="+code)
	}

	p, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map product", err.Error())
	}
	return p, nil
}

func (r *ProductRepository) toDomain(rows []models.ProductModel) ([]*product.Product, error) {
	products, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map products", err.Error())
	}
	return products, nil
}

type ProductLineRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductLineRepository(db *gorm.DB) *ProductLineRepository {
	return &ProductLineRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductLineRepository) FindAll(ctx context.Context) ([]*product.Line, error) {
	var rows []models.ProductLineModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("productLine ASC").Find(&rows).Error; err != nil {
		return nil, unavailable(err, "failed to list product lines")
	}

	lines, err := r.mapper.LineToDomainList(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map product lines", err.Error())
	}
	return lines, nil
}

func (r *ProductLineRepository) GetByID(ctx context.Context, id string) (*product.Line, error) {
	var model models.ProductLineModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("productLine = ?", id).First(&model).Error; err != nil {
		return nil, notFoundOrUnavailable(err, "product line", "productLine="+id)
	}

	l, err := r.mapper.LineToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map product line", err.Error())
	}
	return l, nil
}
