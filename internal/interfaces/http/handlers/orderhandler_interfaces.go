package handlers

import (
	"context"

	customerdto "classicmodels/internal/application/customer/dto"
	orderdto "classicmodels/internal/application/order/dto"
	"classicmodels/internal/shared/query"
)

// orderListing covers the unfiltered and status filtered order listings.
type orderListing interface {
	FindAll(ctx context.Context) ([]*orderdto.OrderDTO, error)
	FindAllSortedDesc(ctx context.Context) ([]*orderdto.OrderDTO, error)
	FindPage(ctx context.Context, page query.PageRequest) (*query.Page[*orderdto.OrderDTO], error)
	FindByStatus(ctx context.Context, status string) ([]*orderdto.OrderDTO, error)
	FindByStatusOrStatus(ctx context.Context, first, second string) ([]*orderdto.OrderDTO, error)
	FindByStatusIn(ctx context.Context, statuses []string) ([]*orderdto.OrderDTO, error)
	FindByStatusInPaged(ctx context.Context, statuses []string, page query.PageRequest) (*query.Page[*orderdto.OrderDTO], error)
}

// orderCustomerListing covers the listings filtered by customer name.
type orderCustomerListing interface {
	FindByCustomerName(ctx context.Context, name string) ([]*orderdto.OrderDTO, error)
	FindByStatusInAndCustomerName(ctx context.Context, statuses []string, name string) ([]*orderdto.OrderDTO, error)
	FindByCustomerNameAndStatusIn(ctx context.Context, name string, statuses []string) ([]*orderdto.OrderDTO, error)
	FindByStatusInAndCustomerNamePaged(
		ctx context.Context,
		statuses []string,
		name string,
		page query.PageRequest,
	) (*query.Page[*orderdto.OrderDTO], error)
}

// orderRanking covers first, top and top-N lookups by status.
type orderRanking interface {
	FindFirstByStatus(ctx context.Context, status string) (*orderdto.OrderDTO, error)
	FindTopByStatus(ctx context.Context, status string) (*orderdto.OrderDTO, error)
	FindTopByStatusOrderByNumberDesc(ctx context.Context, status string) (*orderdto.OrderDTO, error)
	FindTopNByStatus(ctx context.Context, status string, n int) ([]*orderdto.OrderDTO, error)
}

// orderLookup covers single order lookups and their associations.
type orderLookup interface {
	GetByNumber(ctx context.Context, number int64) (*orderdto.OrderDTO, error)
	GetByReference(ctx context.Context, number int64) (*orderdto.OrderDTO, error)
	ResolveCustomer(ctx context.Context, number int64) (*customerdto.CustomerDTO, error)
	ListDetails(ctx context.Context, number int64) ([]*orderdto.OrderDetailDTO, error)
	GetDetail(ctx context.Context, number int64, productCode string) (*orderdto.OrderDetailDTO, error)
}

// OrderService is everything OrderHandler needs from the order application service.
type OrderService interface {
	orderListing
	orderCustomerListing
	orderRanking
	orderLookup
}
