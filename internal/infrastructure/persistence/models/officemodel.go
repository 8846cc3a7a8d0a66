package models

type OfficeModel struct {
	OfficeCode   string  `gorm:"column:officeCode;primaryKey;size:10"`
	City         string  `gorm:"column:city;size:50;not null"`
	Phone        string  `gorm:"column:phone;size:50;not null"`
	AddressLine1 string  `gorm:"column:addressLine1;size:50;not null"`
	AddressLine2 *string `gorm:"column:addressLine2;size:50"`
	State        *string `gorm:"column:state;size:50"`
	Country      string  `gorm:"column:country;size:50;not null"`
	PostalCode   string  `gorm:"column:postalCode;size:15;not null"`
	Territory    string  `gorm:"column:territory;size:10;not null"`
}

func (OfficeModel) TableName() string {
	return "offices"
}
