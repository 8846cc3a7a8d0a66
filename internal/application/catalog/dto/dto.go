package dto

import (
	"classicmodels/internal/domain/product"
	"classicmodels/internal/shared/mapper"
)

type ProductDTO struct {
	ProductCode        string  `json:"productCode"`
	ProductName        string  `json:"productName"`
	ProductLine        string  `json:"productLine"`
	ProductScale       string  `json:"productScale"`
	ProductVendor      string  `json:"productVendor"`
	ProductDescription string  `json:"productDescription"`
	QuantityInStock    int     `json:"quantityInStock"`
	BuyPrice           float64 `json:"buyPrice"`
	MSRP               float64 `json:"msrp"`
}

// ProductLineDTO carries sanitized HTML only; the image blob stays in the store.
type ProductLineDTO struct {
	ProductLine     string `json:"productLine"`
	TextDescription string `json:"textDescription"`
	HTMLDescription string `json:"htmlDescription"`
	HasImage        bool   `json:"hasImage"`
}

func ToProductDTO(p *product.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ProductCode:        p.Code(),
		ProductName:        p.Name(),
		ProductLine:        p.ProductLine(),
		ProductScale:       p.Scale(),
		ProductVendor:      p.Vendor(),
		ProductDescription: p.Description(),
		QuantityInStock:    p.QuantityInStock(),
		BuyPrice:           p.BuyPrice(),
		MSRP:               p.MSRP(),
	}
}

func ToProductDTOList(products []*product.Product) []*ProductDTO {
	return mapper.MapSlice(products, ToProductDTO)
}

// ToProductLineDTO builds the response for a line; html must already be
// sanitized.
func ToProductLineDTO(l *product.Line, html string) *ProductLineDTO {
	if l == nil {
		return nil
	}
	return &ProductLineDTO{
		ProductLine:     l.ID(),
		TextDescription: l.TextDescription(),
		HTMLDescription: html,
		HasImage:        l.HasImage(),
	}
}
