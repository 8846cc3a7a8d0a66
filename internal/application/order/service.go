// Package order serves the order read operations: status and customer
// filtered listings, ranked lookups, paging and association resolution.
package order

import (
	"context"
	"fmt"

	customerdto "classicmodels/internal/application/customer/dto"
	"classicmodels/internal/application/order/dto"
	"classicmodels/internal/domain/customer"
	"classicmodels/internal/domain/order"
	"classicmodels/internal/shared/constants"
	"classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/query"
)

type Service struct {
	orderRepo    order.Repository
	detailRepo   order.DetailRepository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewService(
	orderRepo order.Repository,
	detailRepo order.DetailRepository,
	customerRepo customer.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		orderRepo:    orderRepo,
		detailRepo:   detailRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// FindAll returns every order by order number.
func (s *Service) FindAll(ctx context.Context) ([]*dto.OrderDTO, error) {
	return s.list(ctx, order.All(), "find all")
}

// FindAllSortedDesc returns every order, highest order number first.
func (s *Service) FindAllSortedDesc(ctx context.Context) ([]*dto.OrderDTO, error) {
	return s.list(ctx, order.All().OrderBy(query.ByDesc(order.SortByNumber)), "find all sorted desc")
}

func (s *Service) FindPage(ctx context.Context, page query.PageRequest) (*query.Page[*dto.OrderDTO], error) {
	return s.page(ctx, order.All(), page, "find page")
}

func (s *Service) GetByNumber(ctx context.Context, number int64) (*dto.OrderDTO, error) {
	o, err := s.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		s.logFailure("get order", err, "order_number", number)
		return nil, err
	}
	return dto.ToOrderDTO(o), nil
}

// GetByReference obtains a lazy handle and resolves it within ctx. A missing
// order surfaces here, on resolve, as a not found error.
func (s *Service) GetByReference(ctx context.Context, number int64) (*dto.OrderDTO, error) {
	ref := s.orderRepo.GetReference(number)

	o, err := ref.Resolve(ctx)
	if err != nil {
		s.logFailure("resolve order reference", err, "order_number", ref.Key())
		return nil, err
	}
	return dto.ToOrderDTO(o), nil
}

func (s *Service) FindByStatus(ctx context.Context, status string) ([]*dto.OrderDTO, error) {
	if err := requireStatus(status); err != nil {
		return nil, err
	}
	return s.list(ctx, order.ByStatus(order.Status(status)), "find by status")
}

func (s *Service) FindByStatusOrStatus(ctx context.Context, first, second string) ([]*dto.OrderDTO, error) {
	return s.list(ctx, order.ByStatusOr(order.Status(first), order.Status(second)), "find by status or status")
}

// FindByStatusIn returns orders whose status is any of statuses. An empty
// set yields an empty result.
func (s *Service) FindByStatusIn(ctx context.Context, statuses []string) ([]*dto.OrderDTO, error) {
	return s.list(ctx, order.ByStatusIn(toStatuses(statuses)...), "find by status in")
}

func (s *Service) FindByStatusInPaged(
	ctx context.Context,
	statuses []string,
	page query.PageRequest,
) (*query.Page[*dto.OrderDTO], error) {
	return s.page(ctx, order.ByStatusIn(toStatuses(statuses)...), page, "find by status in paged")
}

func (s *Service) FindByCustomerName(ctx context.Context, name string) ([]*dto.OrderDTO, error) {
	if err := requireCustomerName(name); err != nil {
		return nil, err
	}
	return s.list(ctx, order.ByCustomerName(name), "find by customer name")
}

func (s *Service) FindByStatusInAndCustomerName(
	ctx context.Context,
	statuses []string,
	name string,
) ([]*dto.OrderDTO, error) {
	if err := requireCustomerName(name); err != nil {
		return nil, err
	}
	criteria := order.ByStatusIn(toStatuses(statuses)...).WithCustomerName(name)
	return s.list(ctx, criteria, "find by status in and customer name")
}

// FindByCustomerNameAndStatusIn is FindByStatusInAndCustomerName with the
// predicates stated the other way round; both yield the same rows.
func (s *Service) FindByCustomerNameAndStatusIn(
	ctx context.Context,
	name string,
	statuses []string,
) ([]*dto.OrderDTO, error) {
	if err := requireCustomerName(name); err != nil {
		return nil, err
	}
	criteria := order.ByCustomerName(name).WithStatuses(toStatuses(statuses)...)
	return s.list(ctx, criteria, "find by customer name and status in")
}

func (s *Service) FindByStatusInAndCustomerNamePaged(
	ctx context.Context,
	statuses []string,
	name string,
	page query.PageRequest,
) (*query.Page[*dto.OrderDTO], error) {
	if err := requireCustomerName(name); err != nil {
		return nil, err
	}
	criteria := order.ByStatusIn(toStatuses(statuses)...).WithCustomerName(name)
	return s.page(ctx, criteria, page, "find by status in and customer name paged")
}

// FindFirstByStatus returns the lowest numbered order with the status.
func (s *Service) FindFirstByStatus(ctx context.Context, status string) (*dto.OrderDTO, error) {
	if err := requireStatus(status); err != nil {
		return nil, err
	}

	o, err := s.orderRepo.FindFirst(ctx, order.ByStatus(order.Status(status)))
	if err != nil {
		s.logFailure("find first by status", err, "status", status)
		return nil, err
	}
	return dto.ToOrderDTO(o), nil
}

// FindTopByStatus is the single row variant of FindTopNByStatus. It agrees
// with FindFirstByStatus.
func (s *Service) FindTopByStatus(ctx context.Context, status string) (*dto.OrderDTO, error) {
	top, err := s.FindTopNByStatus(ctx, status, 1)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, errors.NewNotFoundError("order not found", fmt.Sprintf("no order with status %q", status))
	}
	return top[0], nil
}

// FindTopByStatusOrderByNumberDesc returns the highest numbered order with
// the status.
func (s *Service) FindTopByStatusOrderByNumberDesc(ctx context.Context, status string) (*dto.OrderDTO, error) {
	if err := requireStatus(status); err != nil {
		return nil, err
	}

	criteria := order.ByStatus(order.Status(status)).OrderBy(query.ByDesc(order.SortByNumber))
	o, err := s.orderRepo.FindFirst(ctx, criteria)
	if err != nil {
		s.logFailure("find top by status desc", err, "status", status)
		return nil, err
	}
	return dto.ToOrderDTO(o), nil
}

// FindTopNByStatus returns at most n orders with the status by order number.
func (s *Service) FindTopNByStatus(ctx context.Context, status string, n int) ([]*dto.OrderDTO, error) {
	if err := requireStatus(status); err != nil {
		return nil, err
	}
	if n < 1 || n > constants.MaxPageSize {
		return nil, errors.NewValidationError(
			"invalid limit",
			fmt.Sprintf("limit must be between 1 and %d, got %d", constants.MaxPageSize, n),
		)
	}
	return s.list(ctx, order.ByStatus(order.Status(status)).Top(n), "find top n by status")
}

// ResolveCustomer loads the order, then the customer it belongs to.
func (s *Service) ResolveCustomer(ctx context.Context, number int64) (*customerdto.CustomerDTO, error) {
	o, err := s.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		s.logFailure("get order", err, "order_number", number)
		return nil, err
	}

	c, err := s.customerRepo.GetByNumber(ctx, o.CustomerNumber())
	if err != nil {
		s.logFailure("resolve order customer", err,
			"order_number", number,
			"customer_number", o.CustomerNumber(),
		)
		return nil, err
	}
	return customerdto.ToCustomerDTO(c), nil
}

// ListDetails returns the lines of an existing order.
func (s *Service) ListDetails(ctx context.Context, number int64) ([]*dto.OrderDetailDTO, error) {
	if _, err := s.orderRepo.GetByNumber(ctx, number); err != nil {
		s.logFailure("get order", err, "order_number", number)
		return nil, err
	}

	details, err := s.detailRepo.ListByOrder(ctx, number)
	if err != nil {
		s.logFailure("list order details", err, "order_number", number)
		return nil, err
	}
	return dto.ToOrderDetailDTOList(details), nil
}

func (s *Service) GetDetail(ctx context.Context, number int64, productCode string) (*dto.OrderDetailDTO, error) {
	key := order.DetailKey{OrderNumber: number, ProductCode: productCode}

	d, err := s.detailRepo.GetByKey(ctx, key)
	if err != nil {
		s.logFailure("get order detail", err, "key", key.String())
		return nil, err
	}
	return dto.ToOrderDetailDTO(d), nil
}

func (s *Service) list(ctx context.Context, criteria order.Criteria, op string) ([]*dto.OrderDTO, error) {
	orders, err := s.orderRepo.Find(ctx, criteria)
	if err != nil {
		s.logFailure(op, err)
		return nil, err
	}
	s.logger.Debugw("order query", "op", op, "count", len(orders))
	return dto.ToOrderDTOList(orders), nil
}

func (s *Service) page(
	ctx context.Context,
	criteria order.Criteria,
	page query.PageRequest,
	op string,
) (*query.Page[*dto.OrderDTO], error) {
	result, err := s.orderRepo.FindPage(ctx, criteria, page)
	if err != nil {
		s.logFailure(op, err, "page", page.Number, "size", page.Size)
		return nil, err
	}
	return query.MapPage(result, dto.ToOrderDTO), nil
}

// logFailure records store failures; not found and validation errors are
// ordinary outcomes and stay at debug level.
func (s *Service) logFailure(op string, err error, keysAndValues ...interface{}) {
	args := append([]interface{}{"op", op, "error", err}, keysAndValues...)
	if errors.IsNotFoundError(err) || errors.IsValidationError(err) {
		s.logger.Debugw("order lookup rejected", args...)
		return
	}
	s.logger.Errorw("order query failed", args...)
}

func toStatuses(values []string) []order.Status {
	out := make([]order.Status, 0, len(values))
	for _, v := range values {
		out = append(out, order.Status(v))
	}
	return out
}

func requireStatus(status string) error {
	if order.Status(status).Folded() == "" {
		return errors.NewValidationError("status is required")
	}
	return nil
}

func requireCustomerName(name string) error {
	if name == "" {
		return errors.NewValidationError("customer is required")
	}
	return nil
}
