package dto

import (
	"classicmodels/internal/domain/employee"
	"classicmodels/internal/domain/office"
	"classicmodels/internal/shared/mapper"
)

type EmployeeDTO struct {
	EmployeeNumber int64  `json:"employeeNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Extension      string `json:"extension"`
	Email          string `json:"email"`
	OfficeCode     string `json:"officeCode"`
	ReportsTo      *int64 `json:"reportsTo"`
	JobTitle       string `json:"jobTitle"`
}

type OfficeDTO struct {
	OfficeCode   string  `json:"officeCode"`
	City         string  `json:"city"`
	Phone        string  `json:"phone"`
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	State        *string `json:"state"`
	Country      string  `json:"country"`
	PostalCode   string  `json:"postalCode"`
	Territory    string  `json:"territory"`
}

func ToEmployeeDTO(e *employee.Employee) *EmployeeDTO {
	if e == nil {
		return nil
	}
	return &EmployeeDTO{
		EmployeeNumber: e.Number(),
		FirstName:      e.FirstName(),
		LastName:       e.LastName(),
		Extension:      e.Extension(),
		Email:          e.Email(),
		OfficeCode:     e.OfficeCode(),
		ReportsTo:      e.ReportsTo(),
		JobTitle:       e.JobTitle(),
	}
}

func ToEmployeeDTOList(employees []*employee.Employee) []*EmployeeDTO {
	return mapper.MapSlice(employees, ToEmployeeDTO)
}

func ToOfficeDTO(o *office.Office) *OfficeDTO {
	if o == nil {
		return nil
	}
	return &OfficeDTO{
		OfficeCode:   o.Code(),
		City:         o.City(),
		Phone:        o.Phone(),
		AddressLine1: o.AddressLine1(),
		AddressLine2: o.AddressLine2(),
		State:        o.State(),
		Country:      o.Country(),
		PostalCode:   o.PostalCode(),
		Territory:    o.Territory(),
	}
}

func ToOfficeDTOList(offices []*office.Office) []*OfficeDTO {
	return mapper.MapSlice(offices, ToOfficeDTO)
}
