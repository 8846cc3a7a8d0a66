package order

import (
	"fmt"
	"time"
)

// Order is a customer order header. The customer is carried by number only;
// loading it is a separate lookup.
type Order struct {
	number         int64
	orderDate      time.Time
	requiredDate   time.Time
	shippedDate    *time.Time
	status         Status
	comments       *string
	customerNumber int64
}

// ReconstructOrder rebuilds an order from persisted state.
func ReconstructOrder(
	number int64,
	orderDate time.Time,
	requiredDate time.Time,
	shippedDate *time.Time,
	status Status,
	comments *string,
	customerNumber int64,
) (*Order, error) {
	if number <= 0 {
		return nil, fmt.Errorf("order number must be positive, got %d", number)
	}
	if customerNumber <= 0 {
		return nil, fmt.Errorf("order %d has no customer", number)
	}

	return &Order{
		number:         number,
		orderDate:      orderDate,
		requiredDate:   requiredDate,
		shippedDate:    shippedDate,
		status:         status,
		comments:       comments,
		customerNumber: customerNumber,
	}, nil
}

func (o *Order) Number() int64 {
	return o.number
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) RequiredDate() time.Time {
	return o.requiredDate
}

func (o *Order) ShippedDate() *time.Time {
	return o.shippedDate
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Comments() *string {
	return o.comments
}

func (o *Order) CustomerNumber() int64 {
	return o.customerNumber
}

// IsShipped reports whether a ship date was recorded.
func (o *Order) IsShipped() bool {
	return o.shippedDate != nil
}

// IsLate reports whether the order shipped after, or is still open past,
// its required date.
func (o *Order) IsLate(now time.Time) bool {
	if o.shippedDate != nil {
		return o.shippedDate.After(o.requiredDate)
	}
	return now.After(o.requiredDate)
}
