package customer

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"classicmodels/internal/shared/query"
)

// SalesRepFilter selects customers of one country whose sales
// representative has the given first and last name.
type SalesRepFilter struct {
	Country   string
	FirstName string
	LastName  string
}

type Repository interface {
	FindAll(ctx context.Context) ([]*Customer, error)
	FindPage(ctx context.Context, page query.PageRequest) (*query.Page[*Customer], error)
	FindByCountryPage(ctx context.Context, country string, page query.PageRequest) (*query.Page[*Customer], error)
	// FindBySalesRepPage answers the filter through the ORM query builder.
	FindBySalesRepPage(ctx context.Context, filter SalesRepFilter, page query.PageRequest) (*query.Page[*Customer], error)
	// FindBySalesRepPageNative answers the same filter with hand-written SQL.
	// Both variants return identical pages.
	FindBySalesRepPageNative(ctx context.Context, filter SalesRepFilter, page query.PageRequest) (*query.Page[*Customer], error)
	GetByNumber(ctx context.Context, number int64) (*Customer, error)
}

type PaymentRepository interface {
	ListByCustomer(ctx context.Context, customerNumber int64) ([]*Payment, error)
	GetByKey(ctx context.Context, key PaymentKey) (*Payment, error)
}
