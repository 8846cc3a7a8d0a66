package mappers

import (
	"time"

	"classicmodels/internal/domain/customer"
	"classicmodels/internal/infrastructure/persistence/models"
)

// CustomerMapper handles the conversion between customers, payments and
// their persistence models.
type CustomerMapper interface {
	ToDomain(model *models.CustomerModel) (*customer.Customer, error)
	ToDomainList(rows []models.CustomerModel) ([]*customer.Customer, error)
	PaymentToDomain(model *models.PaymentModel) (*customer.Payment, error)
	PaymentToDomainList(rows []models.PaymentModel) ([]*customer.Payment, error)
}

// CustomerMapperImpl is the concrete implementation of CustomerMapper.
type CustomerMapperImpl struct{}

// NewCustomerMapper creates a new CustomerMapper.
func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.CustomerNumber,
		model.CustomerName,
		customer.Contact{
			FirstName: model.ContactFirstName,
			LastName:  model.ContactLastName,
			Phone:     model.Phone,
		},
		customer.Address{
			Line1:      model.AddressLine1,
			Line2:      model.AddressLine2,
			City:       model.City,
			State:      model.State,
			PostalCode: model.PostalCode,
			Country:    model.Country,
		},
		model.SalesRepEmployeeNumber,
		model.CreditLimit,
	)
}

func (m *CustomerMapperImpl) ToDomainList(rows []models.CustomerModel) ([]*customer.Customer, error) {
	return mapRows(rows, m.ToDomain, func(r *models.CustomerModel) int64 { return r.CustomerNumber })
}

func (m *CustomerMapperImpl) PaymentToDomain(model *models.PaymentModel) (*customer.Payment, error) {
	return customer.ReconstructPayment(
		customer.PaymentKey{CustomerNumber: model.CustomerNumber, CheckNumber: model.CheckNumber},
		time.Time(model.PaymentDate),
		model.Amount,
	)
}

func (m *CustomerMapperImpl) PaymentToDomainList(rows []models.PaymentModel) ([]*customer.Payment, error) {
	return mapRows(rows, m.PaymentToDomain, func(r *models.PaymentModel) string { return r.CheckNumber })
}
