package customer

import (
	"fmt"
	"strings"
)

// Address is the postal address shared by customers and offices.
type Address struct {
	Line1      string
	Line2      *string
	City       string
	State      *string
	PostalCode *string
	Country    string
}

// Contact is the person to talk to at a customer.
type Contact struct {
	FirstName string
	LastName  string
	Phone     string
}

// FullName joins first and last name.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Customer is a buyer. The sales representative is an optional employee number.
type Customer struct {
	number                 int64
	name                   string
	contact                Contact
	address                Address
	salesRepEmployeeNumber *int64
	creditLimit            *float64
}

// ReconstructCustomer rebuilds a customer from persisted state.
func ReconstructCustomer(
	number int64,
	name string,
	contact Contact,
	address Address,
	salesRepEmployeeNumber *int64,
	creditLimit *float64,
) (*Customer, error) {
	if number <= 0 {
		return nil, fmt.Errorf("customer number must be positive, got %d", number)
	}
	if name == "" {
		return nil, fmt.Errorf("customer %d has no name", number)
	}

	return &Customer{
		number:                 number,
		name:                   name,
		contact:                contact,
		address:                address,
		salesRepEmployeeNumber: salesRepEmployeeNumber,
		creditLimit:            creditLimit,
	}, nil
}

func (c *Customer) Number() int64 {
	return c.number
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Contact() Contact {
	return c.contact
}

func (c *Customer) Address() Address {
	return c.address
}

func (c *Customer) Country() string {
	return c.address.Country
}

func (c *Customer) SalesRepEmployeeNumber() *int64 {
	return c.salesRepEmployeeNumber
}

// HasSalesRep reports whether a sales representative is assigned.
func (c *Customer) HasSalesRep() bool {
	return c.salesRepEmployeeNumber != nil
}

func (c *Customer) CreditLimit() *float64 {
	return c.creditLimit
}
