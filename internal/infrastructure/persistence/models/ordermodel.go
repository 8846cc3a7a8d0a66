package models

import "gorm.io/datatypes"

type OrderModel struct {
	OrderNumber    int64           `gorm:"column:orderNumber;primaryKey;autoIncrement:false"`
	OrderDate      datatypes.Date  `gorm:"column:orderDate;not null"`
	RequiredDate   datatypes.Date  `gorm:"column:requiredDate;not null"`
	ShippedDate    *datatypes.Date `gorm:"column:shippedDate"`
	Status         string          `gorm:"column:status;size:15;not null;index"`
	Comments       *string         `gorm:"column:comments;type:text"`
	CustomerNumber int64           `gorm:"column:customerNumber;not null;index"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderDetailModel struct {
	OrderNumber     int64   `gorm:"column:orderNumber;primaryKey;autoIncrement:false"`
	ProductCode     string  `gorm:"column:productCode;primaryKey;size:15;index"`
	QuantityOrdered int     `gorm:"column:quantityOrdered;not null"`
	PriceEach       float64 `gorm:"column:priceEach;type:decimal(10,2);not null"`
	OrderLineNumber int     `gorm:"column:orderLineNumber;not null"`
}

func (OrderDetailModel) TableName() string {
	return "orderdetails"
}
