package models

type ProductModel struct {
	ProductCode        string  `gorm:"column:productCode;primaryKey;size:15"`
	ProductName        string  `gorm:"column:productName;size:70;not null"`
	ProductLine        string  `gorm:"column:productLine;size:50;not null;index"`
	ProductScale       string  `gorm:"column:productScale;size:10;not null"`
	ProductVendor      string  `gorm:"column:productVendor;size:50;not null"`
	ProductDescription string  `gorm:"column:productDescription;type:text;not null"`
	QuantityInStock    int     `gorm:"column:quantityInStock;not null"`
	BuyPrice           float64 `gorm:"column:buyPrice;type:decimal(10,2);not null"`
	MSRP               float64 `gorm:"column:MSRP;type:decimal(10,2);not null"`
}

func (ProductModel) TableName() string {
	return "products"
}

type ProductLineModel struct {
	ProductLine     string  `gorm:"column:productLine;primaryKey;size:50"`
	TextDescription *string `gorm:"column:textDescription;size:4000"`
	HTMLDescription *string `gorm:"column:htmlDescription;type:mediumtext"`
	Image           []byte  `gorm:"column:image;type:mediumblob"`
}

func (ProductLineModel) TableName() string {
	return "productlines"
}
