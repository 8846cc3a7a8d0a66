package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"classicmodels/internal/domain/order"
	"classicmodels/internal/domain/shared"
	"classicmodels/internal/infrastructure/persistence/mappers"
	"classicmodels/internal/infrastructure/persistence/models"
	"classicmodels/internal/shared/db"
	apperrors "classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/query"
)

// allowedOrderSortFields maps sortable fields to qualified columns; the
// orders table may be joined with customers.
var allowedOrderSortFields = map[string]string{
	order.SortByNumber:       "orders.orderNumber",
	order.SortByOrderDate:    "orders.orderDate",
	order.SortByRequiredDate: "orders.requiredDate",
	order.SortByShippedDate:  "orders.shippedDate",
	order.SortByStatus:       "orders.status",
}

const orderKeyColumn = "orders.orderNumber"

type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepository) FindAll(ctx context.Context, sort query.Sort) ([]*order.Order, error) {
	return r.Find(ctx, order.All().OrderBy(sort))
}

func (r *OrderRepository) Find(ctx context.Context, criteria order.Criteria) ([]*order.Order, error) {
	if criteria.MatchesNothing() {
		return []*order.Order{}, nil
	}

	orderClause, err := orderClauseFor(criteria.Sort())
	if err != nil {
		return nil, err
	}

	var rows []models.OrderModel
	if err := r.base(ctx, criteria)().
		Order(orderClause).
		Scopes(db.Limit(criteria.Limit())).
		Find(&rows).Error; err != nil {
		return nil, unavailable(err, "failed to list orders")
	}

	return r.toDomain(rows)
}

func (r *OrderRepository) FindPage(
	ctx context.Context,
	criteria order.Criteria,
	page query.PageRequest,
) (*query.Page[*order.Order], error) {
	if criteria.MatchesNothing() {
		return query.NewPage([]*order.Order{}, page, 0), nil
	}

	orderClause, err := orderClauseFor(criteria.Sort())
	if err != nil {
		return nil, err
	}

	return fetchPage(r.base(ctx, criteria), orderClause, page, r.toDomain, "orders")
}

func (r *OrderRepository) FindFirst(ctx context.Context, criteria order.Criteria) (*order.Order, error) {
	found, err := r.Find(ctx, criteria.Top(1))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, apperrors.NewNotFoundError("order not found", "no order matches the criteria")
	}
	return found[0], nil
}

func (r *OrderRepository) GetByNumber(ctx context.Context, number int64) (*order.Order, error) {
	var model models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("orderNumber = ?", number).First(&model).Error; err != nil {
		return nil, notFoundOrUnavailable(err, "order", fmt.Sprintf("orderNumber=%d", number))
	}

	o, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map order", err.Error())
	}
	return o, nil
}

func (r *OrderRepository) GetReference(number int64) order.Reference {
	return shared.NewReference(number, r.GetByNumber)
}

// base returns a statement factory for the criteria's predicates. A fresh
// statement is built per call so count and select never share state.
func (r *OrderRepository) base(ctx context.Context, criteria order.Criteria) func() *gorm.DB {
	return func() *gorm.DB {
		q := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{})

		if statuses, ok := criteria.Statuses(); ok {
			q = q.Scopes(db.CaseInsensitiveIn("orders.status", statuses))
		}
		if name, ok := criteria.CustomerName(); ok {
			q = q.Joins("JOIN customers ON customers.customerNumber = orders.customerNumber").
				Where("customers.customerName = ?", name)
		}
		return q
	}
}

func (r *OrderRepository) toDomain(rows []models.OrderModel) ([]*order.Order, error) {
	orders, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map orders", err.Error())
	}
	return orders, nil
}

// orderClauseFor resolves the sort and appends the order number as a
// tiebreak so paging is stable.
func orderClauseFor(sort query.Sort) (string, error) {
	clause, err := sort.OrderClause(allowedOrderSortFields, orderKeyColumn)
	if err != nil {
		return "", err
	}
	if sort.IsZero() || sort.Field == order.SortByNumber {
		return clause, nil
	}
	return clause + ", " + orderKeyColumn + " ASC", nil
}

type OrderDetailRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderDetailRepository(db *gorm.DB) *OrderDetailRepository {
	return &OrderDetailRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

// ListByOrder returns the lines of an order by line number.
func (r *OrderDetailRepository) ListByOrder(ctx context.Context, orderNumber int64) ([]*order.Detail, error) {
	var rows []models.OrderDetailModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("orderNumber = ?", orderNumber).
		Order("orderLineNumber ASC").
		Order("productCode ASC").
		Find(&rows).Error; err != nil {
		return nil, unavailable(err, "failed to list order details")
	}

	details, err := r.mapper.DetailToDomainList(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map order details", err.Error())
	}
	return details, nil
}

func (r *OrderDetailRepository) GetByKey(ctx context.Context, key order.DetailKey) (*order.Detail, error) {
	var model models.OrderDetailModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("orderNumber = ? AND productCode = ?", key.OrderNumber, key.ProductCode).
		First(&model).Error; err != nil {
		return nil, notFoundOrUnavailable(err, "order detail",
			fmt.Sprintf("orderNumber=%d productCode=%s", key.OrderNumber, key.ProductCode))
	}

	d, err := r.mapper.DetailToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map order detail", err.Error())
	}
	return d, nil
}
