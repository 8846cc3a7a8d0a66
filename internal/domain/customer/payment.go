package customer

import (
	"fmt"
	"time"
)

// PaymentKey identifies a payment by customer and check number. It is
// comparable and usable as a map key.
type PaymentKey struct {
	CustomerNumber int64
	CheckNumber    string
}

func (k PaymentKey) String() string {
	return fmt.Sprintf("%d/%s", k.CustomerNumber, k.CheckNumber)
}

// Payment is a check received from a customer.
type Payment struct {
	key         PaymentKey
	paymentDate time.Time
	amount      float64
}

// ReconstructPayment rebuilds a payment from persisted state.
func ReconstructPayment(key PaymentKey, paymentDate time.Time, amount float64) (*Payment, error) {
	if key.CustomerNumber <= 0 || key.CheckNumber == "" {
		return nil, fmt.Errorf("incomplete payment key %s", key)
	}
	return &Payment{key: key, paymentDate: paymentDate, amount: amount}, nil
}

func (p *Payment) Key() PaymentKey {
	return p.key
}

func (p *Payment) CustomerNumber() int64 {
	return p.key.CustomerNumber
}

func (p *Payment) CheckNumber() string {
	return p.key.CheckNumber
}

func (p *Payment) PaymentDate() time.Time {
	return p.paymentDate
}

func (p *Payment) Amount() float64 {
	return p.amount
}
