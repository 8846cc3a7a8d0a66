// Package customer serves customer listings, the sales rep lookups and
// customer payments.
package customer

import (
	"context"
	"strings"

	"classicmodels/internal/application/customer/dto"
	staffdto "classicmodels/internal/application/staff/dto"
	"classicmodels/internal/domain/customer"
	"classicmodels/internal/domain/employee"
	"classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/query"
)

// QueryMode selects how the sales rep filter is answered.
type QueryMode string

const (
	QueryModeORM    QueryMode = "orm"
	QueryModeNative QueryMode = "native"
)

// ParseQueryMode accepts "orm" or "native"; empty means orm.
func ParseQueryMode(s string) (QueryMode, error) {
	switch QueryMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", QueryModeORM:
		return QueryModeORM, nil
	case QueryModeNative:
		return QueryModeNative, nil
	default:
		return "", errors.NewValidationError("invalid mode", "mode must be one of [orm native]")
	}
}

type Service struct {
	customerRepo customer.Repository
	paymentRepo  customer.PaymentRepository
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewService(
	customerRepo customer.Repository,
	paymentRepo customer.PaymentRepository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *Service) FindAll(ctx context.Context) ([]*dto.CustomerDTO, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		s.logger.Errorw("failed to list customers", "error", err)
		return nil, err
	}
	return dto.ToCustomerDTOList(customers), nil
}

func (s *Service) FindPage(ctx context.Context, page query.PageRequest) (*query.Page[*dto.CustomerDTO], error) {
	result, err := s.customerRepo.FindPage(ctx, page)
	if err != nil {
		s.logger.Errorw("failed to page customers", "page", page.Number, "error", err)
		return nil, err
	}
	return query.MapPage(result, dto.ToCustomerDTO), nil
}

func (s *Service) FindByCountryPage(
	ctx context.Context,
	country string,
	page query.PageRequest,
) (*query.Page[*dto.CustomerDTO], error) {
	if country == "" {
		return nil, errors.NewValidationError("country is required")
	}

	result, err := s.customerRepo.FindByCountryPage(ctx, country, page)
	if err != nil {
		s.logger.Errorw("failed to page customers by country", "country", country, "error", err)
		return nil, err
	}
	return query.MapPage(result, dto.ToCustomerDTO), nil
}

// FindBySalesRepPage pages the customers of a country served by the named
// sales rep. Both modes return the same page.
func (s *Service) FindBySalesRepPage(
	ctx context.Context,
	filter customer.SalesRepFilter,
	mode QueryMode,
	page query.PageRequest,
) (*query.Page[*dto.CustomerDTO], error) {
	if filter.Country == "" || filter.FirstName == "" || filter.LastName == "" {
		return nil, errors.NewValidationError("country, firstName and lastName are required")
	}

	var (
		result *query.Page[*customer.Customer]
		err    error
	)
	switch mode {
	case QueryModeNative:
		result, err = s.customerRepo.FindBySalesRepPageNative(ctx, filter, page)
	default:
		result, err = s.customerRepo.FindBySalesRepPage(ctx, filter, page)
	}
	if err != nil {
		s.logger.Errorw("failed to page customers by sales rep",
			"country", filter.Country,
			"mode", mode,
			"error", err,
		)
		return nil, err
	}
	return query.MapPage(result, dto.ToCustomerDTO), nil
}

func (s *Service) GetByNumber(ctx context.Context, number int64) (*dto.CustomerDTO, error) {
	c, err := s.customerRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerDTO(c), nil
}

// GetSalesRep resolves the employee serving a customer. A customer without
// a sales rep yields not found.
func (s *Service) GetSalesRep(ctx context.Context, number int64) (*staffdto.EmployeeDTO, error) {
	c, err := s.customerRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if !c.HasSalesRep() {
		return nil, errors.NewNotFoundError("sales rep not found", "customer has no sales rep")
	}

	rep, err := s.employeeRepo.GetByNumber(ctx, *c.SalesRepEmployeeNumber())
	if err != nil {
		s.logger.Warnw("failed to resolve sales rep",
			"customer_number", number,
			"employee_number", *c.SalesRepEmployeeNumber(),
			"error", err,
		)
		return nil, err
	}
	return staffdto.ToEmployeeDTO(rep), nil
}

// ListPayments returns the payments of an existing customer.
func (s *Service) ListPayments(ctx context.Context, number int64) ([]*dto.PaymentDTO, error) {
	if _, err := s.customerRepo.GetByNumber(ctx, number); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByCustomer(ctx, number)
	if err != nil {
		s.logger.Errorw("failed to list payments", "customer_number", number, "error", err)
		return nil, err
	}
	return dto.ToPaymentDTOList(payments), nil
}

func (s *Service) GetPayment(ctx context.Context, number int64, checkNumber string) (*dto.PaymentDTO, error) {
	p, err := s.paymentRepo.GetByKey(ctx, customer.PaymentKey{CustomerNumber: number, CheckNumber: checkNumber})
	if err != nil {
		return nil, err
	}
	return dto.ToPaymentDTO(p), nil
}
