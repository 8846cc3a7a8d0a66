package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"classicmodels/internal/domain/customer"
	"classicmodels/internal/infrastructure/persistence/mappers"
	"classicmodels/internal/infrastructure/persistence/models"
	"classicmodels/internal/shared/db"
	apperrors "classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/query"
)

const customerKeyColumn = "customers.customerNumber"

const salesRepJoin = "JOIN employees ON employees.employeeNumber = customers.salesRepEmployeeNumber"

// Native variant of the sales rep lookup. Column list mirrors CustomerModel.
const (
	salesRepNativeSelect = `SELECT c.customerNumber, c.customerName, c.contactLastName, c.contactFirstName,
       c.phone, c.addressLine1, c.addressLine2, c.city, c.state, c.postalCode, c.country,
       c.salesRepEmployeeNumber, c.creditLimit
FROM customers c
JOIN employees e ON e.employeeNumber = c.salesRepEmployeeNumber
WHERE c.country = ? AND e.firstName = ? AND e.lastName = ?
ORDER BY c.customerNumber ASC
LIMIT ? OFFSET ?`

	salesRepNativeCount = `SELECT COUNT(*)
FROM customers c
JOIN employees e ON e.employeeNumber = c.salesRepEmployeeNumber
WHERE c.country = ? AND e.firstName = ? AND e.lastName = ?`
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var rows []models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order(customerKeyColumn + " ASC").Find(&rows).Error; err != nil {
		return nil, unavailable(err, "failed to list customers")
	}
	return r.toDomain(rows)
}

func (r *CustomerRepository) FindPage(ctx context.Context, page query.PageRequest) (*query.Page[*customer.Customer], error) {
	base := func() *gorm.DB {
		return db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{})
	}
	return fetchPage(base, customerKeyColumn+" ASC", page, r.toDomain, "customers")
}

func (r *CustomerRepository) FindByCountryPage(
	ctx context.Context,
	country string,
	page query.PageRequest,
) (*query.Page[*customer.Customer], error) {
	base := func() *gorm.DB {
		return db.GetTxFromContext(ctx, r.db).
			Model(&models.CustomerModel{}).
			Where("customers.country = ?", country)
	}
	return fetchPage(base, customerKeyColumn+" ASC", page, r.toDomain, "customers")
}

func (r *CustomerRepository) FindBySalesRepPage(
	ctx context.Context,
	filter customer.SalesRepFilter,
	page query.PageRequest,
) (*query.Page[*customer.Customer], error) {
	base := func() *gorm.DB {
		return db.GetTxFromContext(ctx, r.db).
			Model(&models.CustomerModel{}).
			Joins(salesRepJoin).
			Where("customers.country = ? AND employees.firstName = ? AND employees.lastName = ?",
				filter.Country, filter.FirstName, filter.LastName)
	}
	return fetchPage(base, customerKeyColumn+" ASC", page, r.toDomain, "customers")
}

func (r *CustomerRepository) FindBySalesRepPageNative(
	ctx context.Context,
	filter customer.SalesRepFilter,
	page query.PageRequest,
) (*query.Page[*customer.Customer], error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Raw(salesRepNativeCount, filter.Country, filter.FirstName, filter.LastName).
		Scan(&total).Error; err != nil {
		return nil, unavailable(err, "failed to count customers")
	}
	if int64(page.Offset()) >= total {
		return query.NewPage([]*customer.Customer{}, page, total), nil
	}

	var rows []models.CustomerModel
	if err := tx.Raw(salesRepNativeSelect,
		filter.Country, filter.FirstName, filter.LastName,
		page.Limit(), page.Offset(),
	).Scan(&rows).Error; err != nil {
		return nil, unavailable(err, "failed to list customers")
	}

	content, err := r.toDomain(rows)
	if err != nil {
		return nil, err
	}
	return query.NewPage(content, page, total), nil
}

func (r *CustomerRepository) GetByNumber(ctx context.Context, number int64) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("customerNumber = ?", number).First(&model).Error; err != nil {
		return nil, notFoundOrUnavailable(err, "customer", fmt.Sprintf("customerNumber=%d", number))
	}

	c, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map customer", err.Error())
	}
	return c, nil
}

func (r *CustomerRepository) toDomain(rows []models.CustomerModel) ([]*customer.Customer, error) {
	customers, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map customers", err.Error())
	}
	return customers, nil
}

type PaymentRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

// ListByCustomer returns a customer's payments, oldest first.
func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerNumber int64) ([]*customer.Payment, error) {
	var rows []models.PaymentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("customerNumber = ?", customerNumber).
		Order("paymentDate ASC").
		Order("checkNumber ASC").
		Find(&rows).Error; err != nil {
		return nil, unavailable(err, "failed to list payments")
	}

	payments, err := r.mapper.PaymentToDomainList(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map payments", err.Error())
	}
	return payments, nil
}

func (r *PaymentRepository) GetByKey(ctx context.Context, key customer.PaymentKey) (*customer.Payment, error) {
	var model models.PaymentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("customerNumber = ? AND checkNumber = ?", key.CustomerNumber, key.CheckNumber).
		First(&model).Error; err != nil {
		return nil, notFoundOrUnavailable(err, "payment",
			fmt.Sprintf("customerNumber=%d checkNumber=%s", key.CustomerNumber, key.CheckNumber))
	}

	p, err := r.mapper.PaymentToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map payment", err.Error())
	}
	return p, nil
}
