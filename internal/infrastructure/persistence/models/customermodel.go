package models

type CustomerModel struct {
	CustomerNumber         int64    `gorm:"column:customerNumber;primaryKey;autoIncrement:false"`
	CustomerName           string   `gorm:"column:customerName;size:50;not null;index"`
	ContactLastName        string   `gorm:"column:contactLastName;size:50;not null"`
	ContactFirstName       string   `gorm:"column:contactFirstName;size:50;not null"`
	Phone                  string   `gorm:"column:phone;size:50;not null"`
	AddressLine1           string   `gorm:"column:addressLine1;size:50;not null"`
	AddressLine2           *string  `gorm:"column:addressLine2;size:50"`
	City                   string   `gorm:"column:city;size:50;not null"`
	State                  *string  `gorm:"column:state;size:50"`
	PostalCode             *string  `gorm:"column:postalCode;size:15"`
	Country                string   `gorm:"column:country;size:50;not null;index"`
	SalesRepEmployeeNumber *int64   `gorm:"column:salesRepEmployeeNumber;index"`
	CreditLimit            *float64 `gorm:"column:creditLimit;type:decimal(10,2)"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
