package handlers

import (
	"context"

	customerapp "classicmodels/internal/application/customer"
	customerdto "classicmodels/internal/application/customer/dto"
	staffdto "classicmodels/internal/application/staff/dto"
	"classicmodels/internal/domain/customer"
	"classicmodels/internal/shared/query"
)

type customerListing interface {
	FindAll(ctx context.Context) ([]*customerdto.CustomerDTO, error)
	FindPage(ctx context.Context, page query.PageRequest) (*query.Page[*customerdto.CustomerDTO], error)
	FindByCountryPage(ctx context.Context, country string, page query.PageRequest) (*query.Page[*customerdto.CustomerDTO], error)
	FindBySalesRepPage(
		ctx context.Context,
		filter customer.SalesRepFilter,
		mode customerapp.QueryMode,
		page query.PageRequest,
	) (*query.Page[*customerdto.CustomerDTO], error)
}

type customerLookup interface {
	GetByNumber(ctx context.Context, number int64) (*customerdto.CustomerDTO, error)
	GetSalesRep(ctx context.Context, number int64) (*staffdto.EmployeeDTO, error)
	ListPayments(ctx context.Context, number int64) ([]*customerdto.PaymentDTO, error)
	GetPayment(ctx context.Context, number int64, checkNumber string) (*customerdto.PaymentDTO, error)
}

// CustomerService is everything CustomerHandler needs from the customer application service.
type CustomerService interface {
	customerListing
	customerLookup
}
