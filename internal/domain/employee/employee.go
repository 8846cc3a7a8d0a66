package employee

import (
	"fmt"
	"strings"
)

// Employee works at an office and may report to another employee. The
// manager is held as an employee number, never as a loaded Employee, so the
// reporting chain cannot form reference cycles.
type Employee struct {
	number     int64
	lastName   string
	firstName  string
	extension  string
	email      string
	officeCode string
	reportsTo  *int64
	jobTitle   string
}

// ReconstructEmployee rebuilds an employee from persisted state.
func ReconstructEmployee(
	number int64,
	lastName string,
	firstName string,
	extension string,
	email string,
	officeCode string,
	reportsTo *int64,
	jobTitle string,
) (*Employee, error) {
	if number <= 0 {
		return nil, fmt.Errorf("employee number must be positive, got %d", number)
	}
	if officeCode == "" {
		return nil, fmt.Errorf("employee %d has no office", number)
	}
	if reportsTo != nil && *reportsTo == number {
		return nil, fmt.Errorf("employee %d cannot report to themselves", number)
	}

	return &Employee{
		number:     number,
		lastName:   lastName,
		firstName:  firstName,
		extension:  extension,
		email:      email,
		officeCode: officeCode,
		reportsTo:  reportsTo,
		jobTitle:   jobTitle,
	}, nil
}

func (e *Employee) Number() int64 {
	return e.number
}

func (e *Employee) LastName() string {
	return e.lastName
}

func (e *Employee) FirstName() string {
	return e.firstName
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.firstName + " " + e.lastName)
}

func (e *Employee) Extension() string {
	return e.extension
}

func (e *Employee) Email() string {
	return e.email
}

func (e *Employee) OfficeCode() string {
	return e.officeCode
}

func (e *Employee) ReportsTo() *int64 {
	return e.reportsTo
}

// HasManager reports whether the employee reports to someone.
func (e *Employee) HasManager() bool {
	return e.reportsTo != nil
}

func (e *Employee) JobTitle() string {
	return e.jobTitle
}
