package dto

import (
	"classicmodels/internal/domain/customer"
	"classicmodels/internal/shared/mapper"
)

const dateLayout = "2006-01-02"

type CustomerDTO struct {
	CustomerNumber         int64    `json:"customerNumber"`
	CustomerName           string   `json:"customerName"`
	ContactFirstName       string   `json:"contactFirstName"`
	ContactLastName        string   `json:"contactLastName"`
	Phone                  string   `json:"phone"`
	AddressLine1           string   `json:"addressLine1"`
	AddressLine2           *string  `json:"addressLine2"`
	City                   string   `json:"city"`
	State                  *string  `json:"state"`
	PostalCode             *string  `json:"postalCode"`
	Country                string   `json:"country"`
	SalesRepEmployeeNumber *int64   `json:"salesRepEmployeeNumber"`
	CreditLimit            *float64 `json:"creditLimit"`
}

type PaymentDTO struct {
	CustomerNumber int64   `json:"customerNumber"`
	CheckNumber    string  `json:"checkNumber"`
	PaymentDate    string  `json:"paymentDate"`
	Amount         float64 `json:"amount"`
}

func ToCustomerDTO(c *customer.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}

	contact := c.Contact()
	address := c.Address()
	return &CustomerDTO{
		CustomerNumber:         c.Number(),
		CustomerName:           c.Name(),
		ContactFirstName:       contact.FirstName,
		ContactLastName:        contact.LastName,
		Phone:                  contact.Phone,
		AddressLine1:           address.Line1,
		AddressLine2:           address.Line2,
		City:                   address.City,
		State:                  address.State,
		PostalCode:             address.PostalCode,
		Country:                address.Country,
		SalesRepEmployeeNumber: c.SalesRepEmployeeNumber(),
		CreditLimit:            c.CreditLimit(),
	}
}

func ToCustomerDTOList(customers []*customer.Customer) []*CustomerDTO {
	return mapper.MapSlice(customers, ToCustomerDTO)
}

func ToPaymentDTO(p *customer.Payment) *PaymentDTO {
	if p == nil {
		return nil
	}
	return &PaymentDTO{
		CustomerNumber: p.CustomerNumber(),
		CheckNumber:    p.CheckNumber(),
		PaymentDate:    p.PaymentDate().Format(dateLayout),
		Amount:         p.Amount(),
	}
}

func ToPaymentDTOList(payments []*customer.Payment) []*PaymentDTO {
	return mapper.MapSlice(payments, ToPaymentDTO)
}
