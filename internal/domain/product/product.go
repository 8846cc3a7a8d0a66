package product

import "fmt"

// Product is a scale model in the catalogue. Its line is held by id.
type Product struct {
	code            string
	name            string
	productLine     string
	scale           string
	vendor          string
	description     string
	quantityInStock int
	buyPrice        float64
	msrp            float64
}

// ReconstructProduct rebuilds a product from persisted state.
func ReconstructProduct(
	code, name, productLine, scale, vendor, description string,
	quantityInStock int,
	buyPrice, msrp float64,
) (*Product, error) {
	if code == "" {
		return nil, fmt.Errorf("product code is required")
	}
	if productLine == "" {
		return nil, fmt.Errorf("product %s has no product line", code)
	}
	return &Product{
		code:            code,
		name:            name,
		productLine:     productLine,
		scale:           scale,
		vendor:          vendor,
		description:     description,
		quantityInStock: quantityInStock,
		buyPrice:        buyPrice,
		msrp:            msrp,
	}, nil
}

func (p *Product) Code() string         { return p.code }
func (p *Product) Name() string         { return p.name }
func (p *Product) ProductLine() string  { return p.productLine }
func (p *Product) Scale() string        { return p.scale }
func (p *Product) Vendor() string       { return p.vendor }
func (p *Product) Description() string  { return p.description }
func (p *Product) QuantityInStock() int { return p.quantityInStock }
func (p *Product) BuyPrice() float64    { return p.buyPrice }
func (p *Product) MSRP() float64        { return p.msrp }

// Margin is MSRP minus buy price.
func (p *Product) Margin() float64 {
	return p.msrp - p.buyPrice
}
