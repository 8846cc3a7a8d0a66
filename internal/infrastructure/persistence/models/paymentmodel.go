package models

import "gorm.io/datatypes"

type PaymentModel struct {
	CustomerNumber int64          `gorm:"column:customerNumber;primaryKey;autoIncrement:false"`
	CheckNumber    string         `gorm:"column:checkNumber;primaryKey;size:50"`
	PaymentDate    datatypes.Date `gorm:"column:paymentDate;not null"`
	Amount         float64        `gorm:"column:amount;type:decimal(10,2);not null"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
