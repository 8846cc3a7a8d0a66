package mappers

import (
	"classicmodels/internal/domain/employee"
	"classicmodels/internal/domain/office"
	"classicmodels/internal/infrastructure/persistence/models"
)

// StaffMapper handles employees and offices.
type StaffMapper interface {
	EmployeeToDomain(model *models.EmployeeModel) (*employee.Employee, error)
	EmployeeToDomainList(rows []models.EmployeeModel) ([]*employee.Employee, error)
	OfficeToDomain(model *models.OfficeModel) (*office.Office, error)
	OfficeToDomainList(rows []models.OfficeModel) ([]*office.Office, error)
}

// StaffMapperImpl is the concrete implementation of StaffMapper.
type StaffMapperImpl struct{}

// NewStaffMapper creates a new StaffMapper.
func NewStaffMapper() StaffMapper {
	return &StaffMapperImpl{}
}

func (m *StaffMapperImpl) EmployeeToDomain(model *models.EmployeeModel) (*employee.Employee, error) {
	return employee.ReconstructEmployee(
		model.EmployeeNumber,
		model.LastName,
		model.FirstName,
		model.Extension,
		model.Email,
		model.OfficeCode,
		model.ReportsTo,
		model.JobTitle,
	)
}

func (m *StaffMapperImpl) EmployeeToDomainList(rows []models.EmployeeModel) ([]*employee.Employee, error) {
	return mapRows(rows, m.EmployeeToDomain, func(r *models.EmployeeModel) int64 { return r.EmployeeNumber })
}

func (m *StaffMapperImpl) OfficeToDomain(model *models.OfficeModel) (*office.Office, error) {
	return office.ReconstructOffice(
		model.OfficeCode,
		model.City,
		model.Phone,
		model.AddressLine1,
		model.AddressLine2,
		model.State,
		model.Country,
		model.PostalCode,
		model.Territory,
	)
}

func (m *StaffMapperImpl) OfficeToDomainList(rows []models.OfficeModel) ([]*office.Office, error) {
	return mapRows(rows, m.OfficeToDomain, func(r *models.OfficeModel) string { return r.OfficeCode })
}
