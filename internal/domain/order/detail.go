package order

import "fmt"

// DetailKey identifies one order line. It is comparable and usable as a map key.
type DetailKey struct {
	OrderNumber int64
	ProductCode string
}

func (k DetailKey) String() string {
	return fmt.Sprintf("%d/%s", k.OrderNumber, k.ProductCode)
}

// Detail is one line of an order.
type Detail struct {
	key             DetailKey
	quantityOrdered int
	priceEach       float64
	orderLineNumber int
}

// ReconstructDetail rebuilds an order line from persisted state.
func ReconstructDetail(key DetailKey, quantityOrdered int, priceEach float64, orderLineNumber int) (*Detail, error) {
	if key.OrderNumber <= 0 || key.ProductCode == "" {
		return nil, fmt.Errorf("incomplete order line key %s", key)
	}
	return &Detail{
		key:             key,
		quantityOrdered: quantityOrdered,
		priceEach:       priceEach,
		orderLineNumber: orderLineNumber,
	}, nil
}

func (d *Detail) Key() DetailKey {
	return d.key
}

func (d *Detail) OrderNumber() int64 {
	return d.key.OrderNumber
}

func (d *Detail) ProductCode() string {
	return d.key.ProductCode
}

func (d *Detail) QuantityOrdered() int {
	return d.quantityOrdered
}

func (d *Detail) PriceEach() float64 {
	return d.priceEach
}

func (d *Detail) OrderLineNumber() int {
	return d.orderLineNumber
}

// LineTotal is quantity times unit price.
func (d *Detail) LineTotal() float64 {
	return float64(d.quantityOrdered) * d.priceEach
}
