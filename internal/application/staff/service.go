// Package staff serves employees and offices, including the manager and
// office associations of an employee.
package staff

import (
	"context"

	"classicmodels/internal/application/staff/dto"
	"classicmodels/internal/domain/employee"
	"classicmodels/internal/domain/office"
	"classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/logger"
)

type Service struct {
	employeeRepo employee.Repository
	officeRepo   office.Repository
	logger       logger.Interface
}

func NewService(
	employeeRepo employee.Repository,
	officeRepo office.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		officeRepo:   officeRepo,
		logger:       logger,
	}
}

func (s *Service) ListEmployees(ctx context.Context) ([]*dto.EmployeeDTO, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		s.logger.Errorw("failed to list employees", "error", err)
		return nil, err
	}
	return dto.ToEmployeeDTOList(employees), nil
}

func (s *Service) GetEmployee(ctx context.Context, number int64) (*dto.EmployeeDTO, error) {
	e, err := s.employeeRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return dto.ToEmployeeDTO(e), nil
}

// GetManager follows reportsTo. The top of the hierarchy has no manager and
// yields not found.
func (s *Service) GetManager(ctx context.Context, number int64) (*dto.EmployeeDTO, error) {
	e, err := s.employeeRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if !e.HasManager() {
		return nil, errors.NewNotFoundError("manager not found", "employee reports to nobody")
	}

	manager, err := s.employeeRepo.GetByNumber(ctx, *e.ReportsTo())
	if err != nil {
		s.logger.Warnw("failed to resolve manager",
			"employee_number", number,
			"manager_number", *e.ReportsTo(),
			"error", err,
		)
		return nil, err
	}
	return dto.ToEmployeeDTO(manager), nil
}

func (s *Service) GetEmployeeOffice(ctx context.Context, number int64) (*dto.OfficeDTO, error) {
	e, err := s.employeeRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	o, err := s.officeRepo.GetByCode(ctx, e.OfficeCode())
	if err != nil {
		s.logger.Warnw("failed to resolve office",
			"employee_number", number,
			"office_code", e.OfficeCode(),
			"error", err,
		)
		return nil, err
	}
	return dto.ToOfficeDTO(o), nil
}

// ListReports returns the direct reports of an existing employee.
func (s *Service) ListReports(ctx context.Context, number int64) ([]*dto.EmployeeDTO, error) {
	if _, err := s.employeeRepo.GetByNumber(ctx, number); err != nil {
		return nil, err
	}

	reports, err := s.employeeRepo.ListReports(ctx, number)
	if err != nil {
		s.logger.Errorw("failed to list reports", "employee_number", number, "error", err)
		return nil, err
	}
	return dto.ToEmployeeDTOList(reports), nil
}

func (s *Service) ListOffices(ctx context.Context) ([]*dto.OfficeDTO, error) {
	offices, err := s.officeRepo.FindAll(ctx)
	if err != nil {
		s.logger.Errorw("failed to list offices", "error", err)
		return nil, err
	}
	return dto.ToOfficeDTOList(offices), nil
}

func (s *Service) GetOffice(ctx context.Context, code string) (*dto.OfficeDTO, error) {
	o, err := s.officeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return dto.ToOfficeDTO(o), nil
}

// ListOfficeEmployees returns the staff of an existing office.
func (s *Service) ListOfficeEmployees(ctx context.Context, code string) ([]*dto.EmployeeDTO, error) {
	if _, err := s.officeRepo.GetByCode(ctx, code); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByOffice(ctx, code)
	if err != nil {
		s.logger.Errorw("failed to list office employees", "office_code", code, "error", err)
		return nil, err
	}
	return dto.ToEmployeeDTOList(employees), nil
}
