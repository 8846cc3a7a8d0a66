package dto

import (
	"time"

	"classicmodels/internal/domain/order"
	"classicmodels/internal/shared/mapper"
)

const dateLayout = "2006-01-02"

type OrderDTO struct {
	OrderNumber    int64   `json:"orderNumber"`
	OrderDate      string  `json:"orderDate"`
	RequiredDate   string  `json:"requiredDate"`
	ShippedDate    *string `json:"shippedDate"`
	Status         string  `json:"status"`
	Comments       *string `json:"comments"`
	CustomerNumber int64   `json:"customerNumber"`
}

type OrderDetailDTO struct {
	OrderNumber     int64   `json:"orderNumber"`
	ProductCode     string  `json:"productCode"`
	QuantityOrdered int     `json:"quantityOrdered"`
	PriceEach       float64 `json:"priceEach"`
	OrderLineNumber int     `json:"orderLineNumber"`
	LineTotal       float64 `json:"lineTotal"`
}

func ToOrderDTO(o *order.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		OrderNumber:    o.Number(),
		OrderDate:      o.OrderDate().Format(dateLayout),
		RequiredDate:   o.RequiredDate().Format(dateLayout),
		ShippedDate:    formatDate(o.ShippedDate()),
		Status:         o.Status().String(),
		Comments:       o.Comments(),
		CustomerNumber: o.CustomerNumber(),
	}
}

func ToOrderDTOList(orders []*order.Order) []*OrderDTO {
	return mapper.MapSlice(orders, ToOrderDTO)
}

func ToOrderDetailDTO(d *order.Detail) *OrderDetailDTO {
	if d == nil {
		return nil
	}
	return &OrderDetailDTO{
		OrderNumber:     d.OrderNumber(),
		ProductCode:     d.ProductCode(),
		QuantityOrdered: d.QuantityOrdered(),
		PriceEach:       d.PriceEach(),
		OrderLineNumber: d.OrderLineNumber(),
		LineTotal:       d.LineTotal(),
	}
}

func ToOrderDetailDTOList(details []*order.Detail) []*OrderDetailDTO {
	return mapper.MapSlice(details, ToOrderDetailDTO)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
