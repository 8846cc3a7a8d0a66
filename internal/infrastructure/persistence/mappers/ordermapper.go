package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"classicmodels/internal/domain/order"
	"classicmodels/internal/infrastructure/persistence/models"
)

// OrderMapper handles the conversion between orders and their persistence models.
type OrderMapper interface {
	// ToDomain converts an order row to a domain entity.
	ToDomain(model *models.OrderModel) (*order.Order, error)

	// ToDomainList converts order rows, preserving order.
	ToDomainList(rows []models.OrderModel) ([]*order.Order, error)

	// ToModel converts an order to its row, used by seeding.
	ToModel(o *order.Order) *models.OrderModel

	// DetailToDomain converts an order line row to a domain entity.
	DetailToDomain(model *models.OrderDetailModel) (*order.Detail, error)

	// DetailToDomainList converts order line rows, preserving order.
	DetailToDomainList(rows []models.OrderDetailModel) ([]*order.Detail, error)
}

// OrderMapperImpl is the concrete implementation of OrderMapper.
type OrderMapperImpl struct{}

// NewOrderMapper creates a new OrderMapper.
func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToDomain(model *models.OrderModel) (*order.Order, error) {
	return order.ReconstructOrder(
		model.OrderNumber,
		time.Time(model.OrderDate),
		time.Time(model.RequiredDate),
		datePtr(model.ShippedDate),
		order.Status(model.Status),
		model.Comments,
		model.CustomerNumber,
	)
}

func (m *OrderMapperImpl) ToDomainList(rows []models.OrderModel) ([]*order.Order, error) {
	return mapRows(rows, m.ToDomain, func(r *models.OrderModel) int64 { return r.OrderNumber })
}

func (m *OrderMapperImpl) ToModel(o *order.Order) *models.OrderModel {
	model := &models.OrderModel{
		OrderNumber:    o.Number(),
		OrderDate:      datatypes.Date(o.OrderDate()),
		RequiredDate:   datatypes.Date(o.RequiredDate()),
		Status:         o.Status().String(),
		Comments:       o.Comments(),
		CustomerNumber: o.CustomerNumber(),
	}
	if o.ShippedDate() != nil {
		shipped := datatypes.Date(*o.ShippedDate())
		model.ShippedDate = &shipped
	}
	return model
}

func (m *OrderMapperImpl) DetailToDomain(model *models.OrderDetailModel) (*order.Detail, error) {
	return order.ReconstructDetail(
		order.DetailKey{OrderNumber: model.OrderNumber, ProductCode: model.ProductCode},
		model.QuantityOrdered,
		model.PriceEach,
		model.OrderLineNumber,
	)
}

func (m *OrderMapperImpl) DetailToDomainList(rows []models.OrderDetailModel) ([]*order.Detail, error) {
	return mapRows(rows, m.DetailToDomain, func(r *models.OrderDetailModel) string {
		return fmt.Sprintf("%d/%s", r.OrderNumber, r.ProductCode)
	})
}
