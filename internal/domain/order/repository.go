package order

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"classicmodels/internal/domain/shared"
	"classicmodels/internal/shared/query"
)

// Sortable order fields.
const (
	SortByNumber       = "orderNumber"
	SortByOrderDate    = "orderDate"
	SortByRequiredDate = "requiredDate"
	SortByShippedDate  = "shippedDate"
	SortByStatus       = "status"
)

// Reference is a lazy handle to an order.
type Reference = shared.Reference[int64, *Order]

type Repository interface {
	// FindAll returns every order; an empty sort means order number ascending.
	FindAll(ctx context.Context, sort query.Sort) ([]*Order, error)
	Find(ctx context.Context, criteria Criteria) ([]*Order, error)
	FindPage(ctx context.Context, criteria Criteria, page query.PageRequest) (*query.Page[*Order], error)
	// FindFirst returns the first match, or a not found error.
	FindFirst(ctx context.Context, criteria Criteria) (*Order, error)
	GetByNumber(ctx context.Context, number int64) (*Order, error)
	// GetReference returns a handle without touching the store.
	GetReference(number int64) Reference
}

type DetailRepository interface {
	ListByOrder(ctx context.Context, orderNumber int64) ([]*Detail, error)
	GetByKey(ctx context.Context, key DetailKey) (*Detail, error)
}
