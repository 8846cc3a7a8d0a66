package product

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"classicmodels/internal/shared/query"
)

// Filter narrows a product listing. Empty fields do not filter.
type Filter struct {
	ProductLine string
}

type Repository interface {
	FindPage(ctx context.Context, filter Filter, page query.PageRequest) (*query.Page[*Product], error)
	GetByCode(ctx context.Context, code string) (*Product, error)
}

type LineRepository interface {
	FindAll(ctx context.Context) ([]*Line, error)
	GetByID(ctx context.Context, id string) (*Line, error)
}
