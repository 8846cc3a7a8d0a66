package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"classicmodels/internal/domain/employee"
	"classicmodels/internal/domain/office"
	"classicmodels/internal/infrastructure/persistence/mappers"
	"classicmodels/internal/infrastructure/persistence/models"
	"classicmodels/internal/shared/db"
	apperrors "classicmodels/internal/shared/errors"
)

type EmployeeRepository struct {
	db     *gorm.DB
	mapper mappers.StaffMapper
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{
		db:     db,
		mapper: mappers.NewStaffMapper(),
	}
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*employee.Employee, error) {
	return r.list(ctx, nil, "failed to list employees")
}

func (r *EmployeeRepository) GetByNumber(ctx context.Context, number int64) (*employee.Employee, error) {
	var model models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("employeeNumber = ?", number).First(&model).Error; err != nil {
		return nil, notFoundOrUnavailable(err, "employee", fmt.Sprintf("employeeNumber=%d", number))
	}

	e, err := r.mapper.EmployeeToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map employee", err.Error())
	}
	return e, nil
}

func (r *EmployeeRepository) ListByOffice(ctx context.Context, officeCode string) ([]*employee.Employee, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("officeCode = ?", officeCode)
	}, "failed to list office employees")
}

func (r *EmployeeRepository) ListReports(ctx context.Context, managerNumber int64) ([]*employee.Employee, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("reportsTo = ?", managerNumber)
	}, "failed to list reports")
}

func (r *EmployeeRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB, message string) ([]*employee.Employee, error) {
	var rows []models.EmployeeModel
	q := db.GetTxFromContext(ctx, r.db).Model(&models.EmployeeModel{})
	if scope != nil {
		q = q.Scopes(scope)
	}

	if err := q.Order("employeeNumber ASC").Find(&rows).Error; err != nil {
		return nil, unavailable(err, message)
	}

	employees, err := r.mapper.EmployeeToDomainList(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map employees", err.Error())
	}
	return employees, nil
}

type OfficeRepository struct {
	db     *gorm.DB
	mapper mappers.StaffMapper
}

func NewOfficeRepository(db *gorm.DB) *OfficeRepository {
	return &OfficeRepository{
		db:     db,
		mapper: mappers.NewStaffMapper(),
	}
}

func (r *OfficeRepository) FindAll(ctx context.Context) ([]*office.Office, error) {
	var rows []models.OfficeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("officeCode ASC").Find(&rows).Error; err != nil {
		return nil, unavailable(err, "failed to list offices")
	}

	offices, err := r.mapper.OfficeToDomainList(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map offices", err.Error())
	}
	return offices, nil
}

func (r *OfficeRepository) GetByCode(ctx context.Context, code string) (*office.Office, error) {
	var model models.OfficeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("officeCode = ?", code).First(&model).Error; err != nil {
		return nil, notFoundOrUnavailable(err, "office", "officeCode="+code)
	}

	o, err := r.mapper.OfficeToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map office", err.Error())
	}
	return o, nil
}
